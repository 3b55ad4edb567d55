// Package validate cross-checks the variable tensors a parsed graph
// declared against the binary data files stored alongside the
// description. Each tensor is checked independently: a missing or corrupt
// file is reported and the loop moves on, so every remaining tensor still
// gets its verdict.
package validate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tylerchen0619/NNEF-Tools/internal/binary"
	"github.com/tylerchen0619/NNEF-Tools/internal/ctxlog"
	"github.com/tylerchen0619/NNEF-Tools/internal/model"
)

// FindingKind labels one category of per-tensor validation failure.
type FindingKind int

const (
	// FileOpenError means the tensor's data file could not be opened.
	FileOpenError FindingKind = iota
	// HeaderReadError means the file opened but its header was invalid.
	HeaderReadError
	// ShapeMismatch means the stored shape differs from the declared one.
	ShapeMismatch
)

var findingKindNames = [...]string{
	FileOpenError:   "FileOpenError",
	HeaderReadError: "HeaderReadError",
	ShapeMismatch:   "ShapeMismatch",
}

// String returns the diagnostic name of the kind.
func (k FindingKind) String() string {
	if k < 0 || int(k) >= len(findingKindNames) {
		return "UnknownFinding"
	}
	return findingKindNames[k]
}

// Finding is one per-tensor discrepancy. Cause is set for open and header
// failures; Declared and Stored for shape mismatches.
type Finding struct {
	Kind     FindingKind
	Path     string
	Cause    error
	Declared model.Shape
	Stored   model.Shape
}

// String renders the diagnostic line reported to the user, in the form
// "<Kind>: <path> [<details>]".
func (f Finding) String() string {
	if f.Kind == ShapeMismatch {
		return fmt.Sprintf("%s: %s [declared %s, stored %s]", f.Kind, f.Path, f.Declared, f.Stored)
	}
	return fmt.Sprintf("%s: %s [%v]", f.Kind, f.Path, f.Cause)
}

// CheckTensors validates every declared variable tensor against its data
// file, expected at <dir>/<label>.dat. Findings come back in declaration
// order; an empty slice means every tensor checked out.
func CheckTensors(ctx context.Context, dir string, declared *model.Dict[model.Shape]) []Finding {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Binary validation started.", "dir", dir, "tensors", declared.Len())

	var findings []Finding
	for _, label := range declared.Keys() {
		shape, ok := declared.Lookup(label)
		if !ok {
			continue
		}
		path := filepath.Join(dir, label+".dat")
		if finding := checkTensor(path, shape); finding != nil {
			findings = append(findings, *finding)
			continue
		}
		logger.Debug("Tensor data matches declared shape.", "path", path)
	}

	logger.Debug("Binary validation finished.", "findings", len(findings))
	return findings
}

// checkTensor validates a single file. The handle is released before the
// caller moves to the next tensor, whatever the outcome.
func checkTensor(path string, declared model.Shape) *Finding {
	file, err := os.Open(path)
	if err != nil {
		return &Finding{Kind: FileOpenError, Path: path, Cause: err}
	}
	defer file.Close()

	header, err := binary.ReadHeader(file)
	if err != nil {
		return &Finding{Kind: HeaderReadError, Path: path, Cause: err}
	}

	if stored := header.Shape(); !declared.Equal(stored) {
		return &Finding{Kind: ShapeMismatch, Path: path, Declared: declared, Stored: stored}
	}
	return nil
}
