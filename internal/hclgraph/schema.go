package hclgraph

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/tylerchen0619/NNEF-Tools/internal/model"
)

// fileSchema describes the top level of a description file.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "graph", LabelNames: []string{"name"}},
		{Type: "fragment", LabelNames: []string{"name"}},
	},
}

// graphSchema describes the body of a graph block.
var graphSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "inputs", Required: true},
		{Name: "outputs", Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "op", LabelNames: []string{"name"}},
	},
}

// fragmentSchema describes the body of a fragment definition: its
// signature blocks followed by the body operations.
var fragmentSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "input", LabelNames: []string{"name"}},
		{Type: "attr", LabelNames: []string{"name"}},
		{Type: "output", LabelNames: []string{"name"}},
		{Type: "op", LabelNames: []string{"name"}},
	},
}

// attrDeclSchema describes the body of an attr declaration block.
var attrDeclSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "default"},
	},
}

// emptyBlockSchema matches a block that must have an empty body, such as
// input and output declarations.
var emptyBlockSchema = &hcl.BodySchema{}

// opSchema builds the body schema for an invocation of sig: one attribute
// per declared parameter (required unless it has a default), one per
// declared result, and an optional shapes block. Unknown or missing
// attributes surface as HCL diagnostics with their source ranges.
func opSchema(sig *model.Signature) *hcl.BodySchema {
	schema := &hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "shapes"}},
	}
	for _, param := range sig.Params {
		schema.Attributes = append(schema.Attributes, hcl.AttributeSchema{
			Name:     param.Name,
			Required: param.Default == nil,
		})
	}
	for _, result := range sig.Results {
		schema.Attributes = append(schema.Attributes, hcl.AttributeSchema{
			Name:     result.Name,
			Required: true,
		})
	}
	return schema
}
