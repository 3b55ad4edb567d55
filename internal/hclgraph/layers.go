package hclgraph

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
)

//go:embed layers.hcl
var layersSrc []byte

var layerBlocks = sync.OnceValue(parseLayerLibrary)

// layerLibrary returns the fragment blocks of the embedded layer-level
// library. Positions inside them refer to layers.hcl coordinates.
func layerLibrary() []*hcl.Block {
	return layerBlocks()
}

func parseLayerLibrary() []*hcl.Block {
	file, diags := hclparse.NewParser().ParseHCL(layersSrc, "layers.hcl")
	if diags.HasErrors() {
		panic(fmt.Sprintf("embedded layer library: %s", diags.Error()))
	}
	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		panic(fmt.Sprintf("embedded layer library: %s", diags.Error()))
	}
	blocks := make([]*hcl.Block, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		if block.Type != "fragment" {
			panic("embedded layer library: contains a non-fragment block")
		}
		blocks = append(blocks, block)
	}
	return blocks
}
