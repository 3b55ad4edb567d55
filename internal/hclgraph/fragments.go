package hclgraph

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/tylerchen0619/NNEF-Tools/internal/ctxlog"
	"github.com/tylerchen0619/NNEF-Tools/internal/model"
	"github.com/tylerchen0619/NNEF-Tools/internal/parse"
	"github.com/zclconf/go-cty/cty"
)

// Expansion nests when fragments invoke fragments; the bound exists only
// to turn runaway mutual recursion into a reportable error.
const maxExpansionDepth = 64

// fragmentDef is one fragment definition: its signature and the body op
// blocks awaiting expansion.
type fragmentDef struct {
	sig    *model.Signature
	body   []*hcl.Block
	defPos parse.Position
}

// defineFragment parses a fragment block into its signature and body and
// registers it. Fragments share a namespace with the built-in operations.
func (r *graphRun) defineFragment(block *hcl.Block) error {
	name := block.Labels[0]
	pos := posOf(block.DefRange)

	if r.builtins.Has(name) {
		return parse.Errorf(pos, "fragment %q redefines a built-in operation", name)
	}
	if r.fragments.Has(name) {
		return parse.Errorf(pos, "fragment %q is already defined", name)
	}

	content, diags := block.Body.Content(fragmentSchema)
	if diags.HasErrors() {
		return errFromDiags(diags)
	}

	sig := &model.Signature{Name: name, Kind: model.KindFragment}
	var body []*hcl.Block
	seen := map[string]bool{}

	for _, b := range content.Blocks {
		if b.Type == "op" {
			body = append(body, b)
			continue
		}
		if len(body) > 0 {
			return parse.Errorf(posOf(b.DefRange), "%s declarations must precede the fragment body", b.Type)
		}
		paramName := b.Labels[0]
		if seen[paramName] {
			return parse.Errorf(posOf(b.DefRange), "duplicate parameter %q in fragment %q", paramName, name)
		}
		seen[paramName] = true

		switch b.Type {
		case "input":
			if _, diags := b.Body.Content(emptyBlockSchema); diags.HasErrors() {
				return errFromDiags(diags)
			}
			sig.Params = append(sig.Params, model.Param{Name: paramName, Kind: model.ParamTensor})
		case "output":
			if _, diags := b.Body.Content(emptyBlockSchema); diags.HasErrors() {
				return errFromDiags(diags)
			}
			sig.Results = append(sig.Results, model.Param{Name: paramName, Kind: model.ParamTensor})
		case "attr":
			inner, diags := b.Body.Content(attrDeclSchema)
			if diags.HasErrors() {
				return errFromDiags(diags)
			}
			param := model.Param{Name: paramName, Kind: model.ParamAttribute}
			if attr, ok := inner.Attributes["default"]; ok {
				cv, diags := attr.Expr.Value(nil)
				if diags.HasErrors() {
					return errFromDiags(diags)
				}
				v, err := ctyToValue(cv)
				if err != nil {
					return parse.Errorf(posOf(attr.Expr.Range()), "default for attr %q: %s", paramName, err)
				}
				param.Default = &v
			}
			sig.Params = append(sig.Params, param)
		}
	}

	if len(sig.Results) == 0 {
		return parse.Errorf(pos, "fragment %q declares no outputs", name)
	}

	r.fragments.Set(name, &fragmentDef{sig: sig, body: body, defPos: pos})
	return nil
}

// expand replays a fragment body in place of an invocation. Formal tensor
// parameters take the caller's resolved values, attribute parameters enter
// the body's evaluation context, body-local tensors get generated
// graph-level names, and every error raised inside the body carries the
// invocation chain.
func (r *graphRun) expand(ctx context.Context, frag *fragmentDef, args *model.Dict[model.Value], f *frame, invPos parse.Position) error {
	if r.depth >= maxExpansionDepth {
		return r.fail(f, invPos, "fragment expansion exceeds depth %d", maxExpansionDepth)
	}
	r.depth++
	defer func() { r.depth-- }()

	origin := make([]parse.Position, 0, len(f.origin)+1)
	origin = append(origin, invPos)
	origin = append(origin, f.origin...)

	sub := &frame{
		evalCtx: &hcl.EvalContext{Variables: map[string]cty.Value{}},
		tensors: map[string]model.Value{},
		bound:   map[string]bool{},
		prefix:  fmt.Sprintf("%s$%d$", frag.sig.Name, r.expansions),
		origin:  origin,
	}
	r.expansions++

	for _, param := range frag.sig.Params {
		v, _ := args.Lookup(param.Name)
		if param.Kind == model.ParamTensor {
			sub.tensors[param.Name] = v
			sub.bound[param.Name] = true
		} else {
			sub.evalCtx.Variables[param.Name] = valueToCty(v)
		}
	}
	// Formal outputs resolve to the caller's bindings but only become
	// referenceable once the body binds them.
	for _, res := range frag.sig.Results {
		v, _ := args.Lookup(res.Name)
		sub.tensors[res.Name] = v
	}

	ctxlog.FromContext(ctx).Debug("Expanding fragment.",
		"fragment", frag.sig.Name, "depth", r.depth, "prefix", sub.prefix)

	for _, opBlock := range frag.body {
		if err := r.invoke(ctx, opBlock, sub); err != nil {
			return err
		}
	}

	for _, res := range frag.sig.Results {
		if !sub.bound[res.Name] {
			return r.fail(sub, frag.defPos, "fragment %q does not bind output %q", frag.sig.Name, res.Name)
		}
	}
	return nil
}
