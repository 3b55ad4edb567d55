// Package render produces the canonical textual form of a graph: one
// opening line per graph, one tab-indented line per operation, one closing
// brace. The exact separator placement is part of the output contract so
// that two validator runs over the same description stay byte-diffable.
// Rendering carries no state between calls.
package render

import (
	"fmt"
	"strings"

	"github.com/tylerchen0619/NNEF-Tools/internal/model"
)

// GraphHeader renders the opening line of a graph from its signature, e.g.
//
//	graph net( data ) -> ( prob ) {
//
// Parameter and result names print comma-separated inside always-present
// parentheses.
func GraphHeader(graph *model.Signature) string {
	var sb strings.Builder
	sb.WriteString("graph ")
	sb.WriteString(graph.Name)
	sb.WriteString("( ")
	for i, param := range graph.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.Name)
	}
	sb.WriteString(" ) -> ( ")
	for i, result := range graph.Results {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(result.Name)
	}
	sb.WriteString(" ) {")
	return sb.String()
}

// Operation renders one instruction line. Result slots print the bound
// value looked up by the signature's declared result name. Argument slots
// follow declaration order: tensor-typed parameters print their bound
// value bare, attribute-typed parameters print as "name = value". A
// declared name missing from args means the event source broke its
// contract; the returned error names the missing key.
func Operation(sig *model.Signature, args *model.Dict[model.Value]) (string, error) {
	var sb strings.Builder
	sb.WriteByte('\t')
	for i, result := range sig.Results {
		if i > 0 {
			sb.WriteString(", ")
		}
		value, err := args.Get(result.Name)
		if err != nil {
			return "", fmt.Errorf("rendering results of %q: %w", sig.Name, err)
		}
		sb.WriteString(value.String())
	}
	sb.WriteString(" = ")
	sb.WriteString(sig.Name)
	sb.WriteByte('(')
	for i, param := range sig.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		value, err := args.Get(param.Name)
		if err != nil {
			return "", fmt.Errorf("rendering arguments of %q: %w", sig.Name, err)
		}
		if param.Kind == model.ParamAttribute {
			sb.WriteString(param.Name)
			sb.WriteString(" = ")
		}
		sb.WriteString(value.String())
	}
	sb.WriteByte(')')
	return sb.String(), nil
}

// GraphFooter renders the closing line of a graph.
func GraphFooter() string {
	return "}"
}
