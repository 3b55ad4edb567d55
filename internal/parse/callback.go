package parse

import (
	"context"

	"github.com/tylerchen0619/NNEF-Tools/internal/model"
)

// Callback is the event sink a parser drives while reading one graph
// description. Events arrive in a fixed order: BeginGraph exactly once,
// then zero or more Operation calls, then EndGraph exactly once.
//
// Operation's args mapping binds every declared parameter and result name
// of the signature to its evaluated Value; shapes binds declared result
// names to declared Shapes where the description provides one. EndGraph's
// shapes mapping binds the bound tensor names of the whole graph to their
// declared shapes. An error returned from an event aborts the parse and
// propagates to the Parse caller unchanged.
//
// IsAtomic may be consulted between BeginGraph and EndGraph any number of
// times and must answer identically for identical inputs.
type Callback interface {
	BeginGraph(graph *model.Signature) error
	Operation(sig *model.Signature, args *model.Dict[model.Value], shapes *model.Dict[model.Shape]) error
	EndGraph(graph *model.Signature, shapes *model.Dict[model.Shape]) error
	IsAtomic(sig *model.Signature, args *model.Dict[model.Value]) bool
}

// Parser reads one graph description and drives cb with its events.
// Failures are reported as *Error values.
type Parser interface {
	Parse(ctx context.Context, filename string, src []byte, cb Callback) error
}
