package hclgraph

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/tylerchen0619/NNEF-Tools/internal/model"
	"github.com/tylerchen0619/NNEF-Tools/internal/parse"
	"github.com/zclconf/go-cty/cty"
)

// ctyToValue converts an evaluated HCL expression result into a model
// value. Integral numbers become integer values; the HCL number type does
// not preserve a syntactic int/float distinction.
func ctyToValue(v cty.Value) (model.Value, error) {
	if !v.IsKnown() {
		return model.Value{}, fmt.Errorf("value is not known")
	}
	if v.IsNull() {
		return model.Value{}, fmt.Errorf("value is null")
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return model.StringValue(v.AsString()), nil

	case ty == cty.Bool:
		return model.LogicalValue(v.True()), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return model.IntegerValue(int(i)), nil
			}
		}
		f, _ := bf.Float64()
		return model.ScalarValue(f), nil

	case ty.IsTupleType() || ty.IsListType():
		items := make([]model.Value, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			item, err := ctyToValue(ev)
			if err != nil {
				return model.Value{}, err
			}
			items = append(items, item)
		}
		return model.ArrayValue(items...), nil

	default:
		return model.Value{}, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}

// valueToCty converts a model value back into a cty value for use in an
// expansion evaluation context. Identifier values never appear in such
// contexts, so hitting one is a programming error.
func valueToCty(v model.Value) cty.Value {
	switch v.Kind() {
	case model.ValueString:
		return cty.StringVal(v.AsString())
	case model.ValueLogical:
		return cty.BoolVal(v.AsLogical())
	case model.ValueInteger:
		return cty.NumberIntVal(int64(v.AsInteger()))
	case model.ValueScalar:
		return cty.NumberFloatVal(v.AsScalar())
	case model.ValueArray, model.ValueTuple:
		items := v.Items()
		if len(items) == 0 {
			return cty.EmptyTupleVal
		}
		vals := make([]cty.Value, len(items))
		for i, item := range items {
			vals[i] = valueToCty(item)
		}
		return cty.TupleVal(vals)
	default:
		panic("hclgraph: cannot convert " + v.Kind().String() + " value to cty")
	}
}

// shapeFromValue interprets a value as a tensor shape: an array of
// non-negative integers, one per dimension.
func shapeFromValue(v model.Value) (model.Shape, error) {
	if v.Kind() != model.ValueArray {
		return nil, fmt.Errorf("shape must be an array of integers, got %s", v.Kind())
	}
	items := v.Items()
	shape := make(model.Shape, len(items))
	for i, item := range items {
		if item.Kind() != model.ValueInteger {
			return nil, fmt.Errorf("shape extent %d must be an integer, got %s", i, item.Kind())
		}
		n := item.AsInteger()
		if n < 0 {
			return nil, fmt.Errorf("shape extent %d must be non-negative, got %d", i, n)
		}
		shape[i] = n
	}
	return shape, nil
}

func posOf(r hcl.Range) parse.Position {
	return parse.Position{Line: r.Start.Line, Column: r.Start.Column}
}

// errFromDiags collapses HCL diagnostics into a single parse error carrying
// the position of the first error-severity entry.
func errFromDiags(diags hcl.Diagnostics) *parse.Error {
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		msg := d.Summary
		if d.Detail != "" {
			msg += ": " + d.Detail
		}
		pos := parse.Position{Line: 1, Column: 1}
		if d.Subject != nil {
			pos = posOf(*d.Subject)
		}
		return &parse.Error{Message: msg, Pos: pos}
	}
	return nil
}
