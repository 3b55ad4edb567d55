// Package printer implements the event consumer a graph parser drives: it
// renders every event in canonical form and records the declared shape of
// each variable tensor so the binary cross-check can run after parsing.
package printer

import (
	"fmt"
	"io"

	"github.com/tylerchen0619/NNEF-Tools/internal/atomics"
	"github.com/tylerchen0619/NNEF-Tools/internal/model"
	"github.com/tylerchen0619/NNEF-Tools/internal/parse"
	"github.com/tylerchen0619/NNEF-Tools/internal/render"
)

// labelParam names the argument of a variable declaration that carries the
// tensor's persisted identity, and with it the data file name.
const labelParam = "label"

// Printer renders parse events to w and accumulates variable tensor
// shapes per graph. It implements parse.Callback.
type Printer struct {
	w          io.Writer
	classifier *atomics.Classifier
	variables  *model.Dict[model.Shape]
}

var _ parse.Callback = (*Printer)(nil)

// New returns a Printer writing canonical output to w and answering
// atomicity queries through classifier.
func New(w io.Writer, classifier *atomics.Classifier) *Printer {
	return &Printer{
		w:          w,
		classifier: classifier,
		variables:  model.NewDict[model.Shape](),
	}
}

// BeginGraph renders the graph-open line and resets the variable
// accumulator for the new graph.
func (p *Printer) BeginGraph(graph *model.Signature) error {
	p.variables = model.NewDict[model.Shape]()
	_, err := fmt.Fprintln(p.w, render.GraphHeader(graph))
	return err
}

// Operation renders the instruction line. For variable declarations it
// additionally records the label and declared result shape.
func (p *Printer) Operation(sig *model.Signature, args *model.Dict[model.Value], shapes *model.Dict[model.Shape]) error {
	line, err := render.Operation(sig, args)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.w, line); err != nil {
		return err
	}
	if sig.Kind == model.KindVariable {
		return p.recordVariable(sig, args, shapes)
	}
	return nil
}

func (p *Printer) recordVariable(sig *model.Signature, args *model.Dict[model.Value], shapes *model.Dict[model.Shape]) error {
	label, err := args.Get(labelParam)
	if err != nil {
		return fmt.Errorf("variable declaration: %w", err)
	}
	if label.Kind() != model.ValueString {
		return fmt.Errorf("variable label must be a string, got %s", label.Kind())
	}
	if len(sig.Results) == 0 {
		return fmt.Errorf("variable signature %q declares no result", sig.Name)
	}
	shape, err := shapes.Get(sig.Results[0].Name)
	if err != nil {
		return fmt.Errorf("variable %q: %w", label.AsString(), err)
	}
	p.variables.Set(label.AsString(), shape)
	return nil
}

// EndGraph renders the graph-close line. The recorded variable shapes stay
// available through Variables until the next BeginGraph.
func (p *Printer) EndGraph(graph *model.Signature, shapes *model.Dict[model.Shape]) error {
	_, err := fmt.Fprintln(p.w, render.GraphFooter())
	return err
}

// IsAtomic answers through the configured classifier.
func (p *Printer) IsAtomic(sig *model.Signature, args *model.Dict[model.Value]) bool {
	return p.classifier.IsAtomic(sig, args)
}

// Variables returns the label to declared-shape records of the current
// graph, in declaration order.
func (p *Printer) Variables() *model.Dict[model.Shape] {
	return p.variables
}
