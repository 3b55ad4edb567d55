// Package atomics decides which operations stay single instructions in the
// rendered graph and which are left to the grammar to expand. The built-in
// primitive set provides the default answer; configuration overrides it
// per operation name.
package atomics

import (
	"strings"

	"github.com/tylerchen0619/NNEF-Tools/internal/model"
)

// Override records one configured atomicity decision for an operation name.
type Override struct {
	Name   string
	Atomic bool
}

// ParseOverrides splits spec on whitespace and reads each token as
// {+|-}<opName>: '+' forces the operation atomic, '-' forces it composite.
// Tokens without a recognized prefix are returned in malformed and
// skipped; well-formed tokens around them still apply.
func ParseOverrides(spec string) (overrides []Override, malformed []string) {
	for _, token := range strings.Fields(spec) {
		switch {
		case len(token) > 1 && token[0] == '+':
			overrides = append(overrides, Override{Name: token[1:], Atomic: true})
		case len(token) > 1 && token[0] == '-':
			overrides = append(overrides, Override{Name: token[1:], Atomic: false})
		default:
			malformed = append(malformed, token)
		}
	}
	return overrides, malformed
}

// Classifier answers atomicity queries. Configured overrides win
// unconditionally; names without an override fall back to membership in
// the built-in primitive set. A Classifier is immutable after construction
// and safe to share.
type Classifier struct {
	overrides map[string]bool
}

// NewClassifier builds a Classifier from the given overrides. A later
// override for the same name replaces an earlier one.
func NewClassifier(overrides []Override) *Classifier {
	table := make(map[string]bool, len(overrides))
	for _, o := range overrides {
		table[o.Name] = o.Atomic
	}
	return &Classifier{overrides: table}
}

// IsAtomic reports whether the named operation should be kept as a single
// instruction. The override/default policy decides by name alone and
// ignores the bound argument values.
func (c *Classifier) IsAtomic(sig *model.Signature, args *model.Dict[model.Value]) bool {
	if atomic, ok := c.overrides[sig.Name]; ok {
		return atomic
	}
	_, ok := defaultAtomicOps[sig.Name]
	return ok
}
