package hclgraph

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tylerchen0619/NNEF-Tools/internal/ctxlog"
	"github.com/tylerchen0619/NNEF-Tools/internal/model"
	"github.com/tylerchen0619/NNEF-Tools/internal/parse"
)

// Options configure a Driver.
type Options struct {
	// Flat rejects fragment definitions: the description must be a single
	// graph of primitive operations.
	Flat bool

	// Layers preloads the embedded layer-level fragment library before the
	// description's own definitions are read.
	Layers bool
}

// Driver reads HCL graph descriptions and replays them into a
// parse.Callback. A Driver carries no per-description state and is safe
// for concurrent use.
type Driver struct {
	opts     Options
	builtins *model.Dict[*model.Signature]
}

var _ parse.Parser = (*Driver)(nil)

// NewDriver returns a Driver resolving operations against the standard
// primitive signature table.
func NewDriver(opts Options) *Driver {
	return &Driver{opts: opts, builtins: builtinSignatures()}
}

// Parse implements parse.Parser. Description failures come back as
// *parse.Error values positioned in src; positions inside fragment
// expansions carry origin chains through the invocation sites. Errors
// returned by cb propagate unchanged.
func (d *Driver) Parse(ctx context.Context, filename string, src []byte, cb parse.Callback) error {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return errFromDiags(diags)
	}
	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return errFromDiags(diags)
	}

	r := &graphRun{
		builtins:  d.builtins,
		fragments: model.NewDict[*fragmentDef](),
		cb:        cb,
	}

	if d.opts.Layers {
		for _, block := range layerLibrary() {
			if err := r.defineFragment(block); err != nil {
				return fmt.Errorf("loading layer library: %w", err)
			}
		}
	}

	var graphBlock *hcl.Block
	for _, block := range content.Blocks {
		switch block.Type {
		case "fragment":
			if d.opts.Flat {
				return parse.Errorf(posOf(block.DefRange),
					"fragment %q: fragment definitions are not allowed in flat mode", block.Labels[0])
			}
			if err := r.defineFragment(block); err != nil {
				return err
			}
		case "graph":
			if graphBlock != nil {
				return parse.Errorf(posOf(block.DefRange), "a description must contain exactly one graph")
			}
			graphBlock = block
		}
	}
	if graphBlock == nil {
		return parse.Errorf(parse.Position{Line: 1, Column: 1}, "a description must contain exactly one graph")
	}

	ctxlog.FromContext(ctx).Debug("Walking graph.",
		"file", filename, "graph", graphBlock.Labels[0], "fragments", r.fragments.Len())
	return r.walkGraph(ctx, graphBlock)
}

// graphRun is the mutable state of one Parse call: the operation tables,
// the graph-level binding bookkeeping, and the expansion counters.
type graphRun struct {
	builtins  *model.Dict[*model.Signature]
	fragments *model.Dict[*fragmentDef]
	cb        parse.Callback

	graph       *model.Signature
	inputs      map[string]bool
	externals   map[string]bool
	graphShapes *model.Dict[model.Shape]

	expansions int
	depth      int
}

// frame is one lexical scope operations evaluate in: the graph body, or
// one fragment expansion. tensors maps local tensor names to their
// resolved values (caller bindings, literals, or generated names); bound
// marks the names that may be referenced. origin is the invocation chain
// attached to every error raised at a position inside this frame, nearest
// site first.
type frame struct {
	graph   bool
	evalCtx *hcl.EvalContext
	tensors map[string]model.Value
	bound   map[string]bool
	prefix  string
	origin  []parse.Position
}

func (r *graphRun) fail(f *frame, pos parse.Position, format string, args ...any) *parse.Error {
	err := parse.Errorf(pos, format, args...)
	err.Origin = f.origin
	return err
}

func (r *graphRun) failDiags(f *frame, diags hcl.Diagnostics) *parse.Error {
	err := errFromDiags(diags)
	err.Origin = f.origin
	return err
}

func (r *graphRun) walkGraph(ctx context.Context, block *hcl.Block) error {
	top := &frame{
		graph:   true,
		tensors: map[string]model.Value{},
		bound:   map[string]bool{},
	}

	content, diags := block.Body.Content(graphSchema)
	if diags.HasErrors() {
		return r.failDiags(top, diags)
	}

	inputs, inputPositions, err := r.identList(top, content.Attributes["inputs"].Expr)
	if err != nil {
		return err
	}
	outputs, outputPositions, err := r.identList(top, content.Attributes["outputs"].Expr)
	if err != nil {
		return err
	}

	r.inputs = make(map[string]bool, len(inputs))
	params := make([]model.Param, len(inputs))
	for i, name := range inputs {
		if r.inputs[name] {
			return r.fail(top, inputPositions[i], "duplicate graph input %q", name)
		}
		r.inputs[name] = true
		params[i] = model.Param{Name: name, Kind: model.ParamTensor}
	}

	seenOutputs := make(map[string]bool, len(outputs))
	results := make([]model.Param, len(outputs))
	for i, name := range outputs {
		if seenOutputs[name] {
			return r.fail(top, outputPositions[i], "duplicate graph output %q", name)
		}
		seenOutputs[name] = true
		results[i] = model.Param{Name: name, Kind: model.ParamTensor}
	}

	r.graph = &model.Signature{
		Name:    block.Labels[0],
		Kind:    model.KindGraph,
		Params:  params,
		Results: results,
	}
	r.externals = map[string]bool{}
	r.graphShapes = model.NewDict[model.Shape]()

	if err := r.cb.BeginGraph(r.graph); err != nil {
		return err
	}

	for _, opBlock := range content.Blocks {
		if err := r.invoke(ctx, opBlock, top); err != nil {
			return err
		}
	}

	for _, p := range r.graph.Params {
		if !r.externals[p.Name] {
			return r.fail(top, posOf(block.DefRange), "graph input %q is not bound by an external operation", p.Name)
		}
	}
	for _, res := range r.graph.Results {
		if !top.bound[res.Name] {
			return r.fail(top, posOf(block.DefRange), "graph output %q is never bound", res.Name)
		}
	}

	return r.cb.EndGraph(r.graph, r.graphShapes)
}

// identList reads an expression of the form [a, b, c] into identifier
// names, one source position per name.
func (r *graphRun) identList(f *frame, expr hcl.Expression) ([]string, []parse.Position, error) {
	exprs, diags := hcl.ExprList(expr)
	if diags.HasErrors() {
		return nil, nil, r.failDiags(f, diags)
	}
	names := make([]string, len(exprs))
	positions := make([]parse.Position, len(exprs))
	for i, e := range exprs {
		traversal, diags := hcl.AbsTraversalForExpr(e)
		if diags.HasErrors() || len(traversal) != 1 {
			return nil, nil, r.fail(f, posOf(e.Range()), "expected a plain tensor identifier")
		}
		names[i] = traversal.RootName()
		positions[i] = posOf(e.Range())
	}
	return names, positions, nil
}
