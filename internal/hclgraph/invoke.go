package hclgraph

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/hashicorp/hcl/v2"
	"github.com/tylerchen0619/NNEF-Tools/internal/model"
	"github.com/tylerchen0619/NNEF-Tools/internal/parse"
)

// invoke evaluates one op block in f's scope and either emits it to the
// callback or expands it in place when it names a non-atomic fragment.
func (r *graphRun) invoke(ctx context.Context, block *hcl.Block, f *frame) error {
	name := block.Labels[0]
	pos := posOf(block.DefRange)

	sig, frag, err := r.resolveOp(f, name, pos)
	if err != nil {
		return err
	}
	if sig.Kind == model.KindExternal && !f.graph {
		return r.fail(f, pos, "external operations may only appear in the graph body")
	}

	content, diags := block.Body.Content(opSchema(sig))
	if diags.HasErrors() {
		return r.failDiags(f, diags)
	}

	args := model.NewDict[model.Value]()
	for _, param := range sig.Params {
		attr, ok := content.Attributes[param.Name]
		if !ok {
			args.Set(param.Name, *param.Default)
			continue
		}
		var v model.Value
		var err error
		if param.Kind == model.ParamTensor {
			v, err = r.tensorArg(f, attr.Expr)
		} else {
			v, err = r.attrArg(f, attr.Expr)
		}
		if err != nil {
			return err
		}
		args.Set(param.Name, v)
	}

	for _, result := range sig.Results {
		v, err := r.bindResultExpr(f, sig, content.Attributes[result.Name].Expr)
		if err != nil {
			return err
		}
		args.Set(result.Name, v)
	}

	shapes, err := r.declaredShapes(f, sig, content, args)
	if err != nil {
		return err
	}
	r.recordShapes(sig, args, shapes)

	if frag != nil && !r.cb.IsAtomic(sig, args) {
		return r.expand(ctx, frag, args, f, pos)
	}
	return r.cb.Operation(sig, args, shapes)
}

// resolveOp looks an operation name up in the built-in table, then the
// fragment table. The two tables share a namespace.
func (r *graphRun) resolveOp(f *frame, name string, pos parse.Position) (*model.Signature, *fragmentDef, error) {
	if sig, ok := r.builtins.Lookup(name); ok {
		return sig, nil, nil
	}
	if frag, ok := r.fragments.Lookup(name); ok {
		return frag.sig, frag, nil
	}
	msg := fmt.Sprintf("unknown operation %q", name)
	if suggestion := r.nearestOpName(name); suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", suggestion)
	}
	return nil, nil, r.fail(f, pos, "%s", msg)
}

// nearestOpName returns a defined operation name within a small edit
// distance of the given one, or "".
func (r *graphRun) nearestOpName(given string) string {
	for _, candidates := range [][]string{r.builtins.Keys(), r.fragments.Keys()} {
		for _, candidate := range candidates {
			if levenshtein.Distance(given, candidate, nil) < 3 {
				return candidate
			}
		}
	}
	return ""
}

// tensorArg resolves an expression in tensor-parameter position: a bare
// identifier, a list of tensor arguments, or a literal constant standing
// in for a tensor.
func (r *graphRun) tensorArg(f *frame, expr hcl.Expression) (model.Value, error) {
	if traversal, diags := hcl.AbsTraversalForExpr(expr); !diags.HasErrors() {
		return r.tensorRef(f, traversal, posOf(expr.Range()))
	}
	if exprs, diags := hcl.ExprList(expr); !diags.HasErrors() {
		items := make([]model.Value, len(exprs))
		for i, e := range exprs {
			item, err := r.tensorArg(f, e)
			if err != nil {
				return model.Value{}, err
			}
			items[i] = item
		}
		return model.ArrayValue(items...), nil
	}
	v, err := r.attrArg(f, expr)
	if err != nil {
		return model.Value{}, err
	}
	if v.Kind() == model.ValueString {
		return model.Value{}, r.fail(f, posOf(expr.Range()), "strings cannot appear in tensor position")
	}
	return v, nil
}

func (r *graphRun) tensorRef(f *frame, traversal hcl.Traversal, pos parse.Position) (model.Value, error) {
	if len(traversal) != 1 {
		return model.Value{}, r.fail(f, pos, "tensor references must be plain identifiers")
	}
	name := traversal.RootName()
	if f.bound[name] {
		return f.tensors[name], nil
	}
	// Inside a fragment body an attribute parameter may stand in tensor
	// position as a constant.
	if f.evalCtx != nil {
		if cv, ok := f.evalCtx.Variables[name]; ok {
			v, err := ctyToValue(cv)
			if err != nil {
				return model.Value{}, r.fail(f, pos, "%s", err)
			}
			return v, nil
		}
	}
	return model.Value{}, r.fail(f, pos, "undefined tensor %q", name)
}

// attrArg evaluates an expression in attribute-parameter position.
func (r *graphRun) attrArg(f *frame, expr hcl.Expression) (model.Value, error) {
	cv, diags := expr.Value(f.evalCtx)
	if diags.HasErrors() {
		return model.Value{}, r.failDiags(f, diags)
	}
	v, err := ctyToValue(cv)
	if err != nil {
		return model.Value{}, r.fail(f, posOf(expr.Range()), "%s", err)
	}
	return v, nil
}

// bindResultExpr binds a result expression: a fresh identifier, or a list
// of identifiers for operations producing tensor arrays.
func (r *graphRun) bindResultExpr(f *frame, sig *model.Signature, expr hcl.Expression) (model.Value, error) {
	if traversal, diags := hcl.AbsTraversalForExpr(expr); !diags.HasErrors() {
		if len(traversal) != 1 {
			return model.Value{}, r.fail(f, posOf(expr.Range()), "result bindings must be plain identifiers")
		}
		return r.bindName(f, sig, traversal.RootName(), posOf(expr.Range()))
	}
	exprs, diags := hcl.ExprList(expr)
	if diags.HasErrors() {
		return model.Value{}, r.fail(f, posOf(expr.Range()), "result bindings must be identifiers or lists of identifiers")
	}
	items := make([]model.Value, len(exprs))
	for i, e := range exprs {
		item, err := r.bindResultExpr(f, sig, e)
		if err != nil {
			return model.Value{}, err
		}
		items[i] = item
	}
	return model.ArrayValue(items...), nil
}

// bindName introduces name as a bound tensor in f. At graph scope,
// external operations must bind declared graph inputs and nothing else may
// bind one; in an expansion, names that are not formal outputs get
// generated graph-level names.
func (r *graphRun) bindName(f *frame, sig *model.Signature, name string, pos parse.Position) (model.Value, error) {
	if f.bound[name] {
		return model.Value{}, r.fail(f, pos, "tensor %q is bound more than once", name)
	}
	if f.graph {
		if sig.Kind == model.KindExternal {
			if !r.inputs[name] {
				return model.Value{}, r.fail(f, pos, "external operation must bind a graph input, not %q", name)
			}
			r.externals[name] = true
		} else if r.inputs[name] {
			return model.Value{}, r.fail(f, pos, "graph input %q must be bound by an external operation", name)
		}
		f.tensors[name] = model.IdentifierValue(name)
	} else if _, ok := f.tensors[name]; !ok {
		f.tensors[name] = model.IdentifierValue(f.prefix + name)
	}
	f.bound[name] = true
	return f.tensors[name], nil
}

// declaredShapes reads the optional shapes block and, for the declaration
// primitives, checks the shape attribute against it or derives the single
// result's shape from it.
func (r *graphRun) declaredShapes(f *frame, sig *model.Signature, content *hcl.BodyContent, args *model.Dict[model.Value]) (*model.Dict[model.Shape], error) {
	shapes := model.NewDict[model.Shape]()

	var blk *hcl.Block
	for _, b := range content.Blocks {
		if b.Type != "shapes" {
			continue
		}
		if blk != nil {
			return nil, r.fail(f, posOf(b.DefRange), "duplicate shapes block")
		}
		blk = b
	}

	if blk != nil {
		attrs, diags := blk.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, r.failDiags(f, diags)
		}
		declared := make(map[string]bool, len(sig.Results))
		for _, res := range sig.Results {
			declared[res.Name] = true
			attr, ok := attrs[res.Name]
			if !ok {
				continue
			}
			if bound, ok := args.Lookup(res.Name); ok && bound.Kind() != model.ValueIdentifier {
				return nil, r.fail(f, posOf(attr.Expr.Range()),
					"result %q is bound to a tensor list and cannot take a single shape", res.Name)
			}
			v, err := r.attrArg(f, attr.Expr)
			if err != nil {
				return nil, err
			}
			shape, err := shapeFromValue(v)
			if err != nil {
				return nil, r.fail(f, posOf(attr.Expr.Range()), "result %q: %s", res.Name, err)
			}
			shapes.Set(res.Name, shape)
		}
		var unknown []string
		for name := range attrs {
			if !declared[name] {
				unknown = append(unknown, name)
			}
		}
		if len(unknown) > 0 {
			slices.Sort(unknown)
			return nil, r.fail(f, posOf(blk.DefRange),
				"shapes block names unknown results: %s", strings.Join(unknown, ", "))
		}
	}

	switch sig.Kind {
	case model.KindExternal, model.KindVariable, model.KindConstant:
		shapeVal, _ := args.Lookup("shape")
		shape, err := shapeFromValue(shapeVal)
		exprPos := posOf(content.Attributes["shape"].Expr.Range())
		if err != nil {
			return nil, r.fail(f, exprPos, "%s", err)
		}
		resultName := sig.Results[0].Name
		if existing, ok := shapes.Lookup(resultName); ok {
			if !existing.Equal(shape) {
				return nil, r.fail(f, exprPos,
					"shape attribute %s disagrees with declared shape %s for result %q", shape, existing, resultName)
			}
		} else {
			shapes.Set(resultName, shape)
		}
	}

	return shapes, nil
}

// recordShapes folds an emitted operation's declared result shapes into
// the graph-level shape table, keyed by the bound tensor names.
func (r *graphRun) recordShapes(sig *model.Signature, args *model.Dict[model.Value], shapes *model.Dict[model.Shape]) {
	for _, res := range sig.Results {
		shape, ok := shapes.Lookup(res.Name)
		if !ok {
			continue
		}
		bound, ok := args.Lookup(res.Name)
		if !ok || bound.Kind() != model.ValueIdentifier {
			continue
		}
		r.graphShapes.Set(bound.Identifier(), shape)
	}
}
