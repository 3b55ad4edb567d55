package hclgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tylerchen0619/NNEF-Tools/internal/model"
)

func TestLayerLibrary_ContainsTheLayerFragments(t *testing.T) {
	t.Parallel()

	var names []string
	for _, block := range layerLibrary() {
		names = append(names, block.Labels[0])
	}

	assert.Equal(t, []string{
		"linear_layer", "conv_layer", "max_pool_layer", "avg_pool_layer", "softmax_layer",
	}, names)
}

func TestParse_LinearLayerExpandsToVariablesAndLinear(t *testing.T) {
	t.Parallel()

	src := `
graph "net" {
  inputs  = [input]
  outputs = [out]

  op "external" {
    output = input
    shape  = [1, 10]
  }
  op "linear_layer" {
    output       = out
    input        = input
    scope        = "fc1"
    filter_shape = [4, 10]
  }
}
`
	rec := &recorder{}
	require.NoError(t, parseSource(t, Options{Layers: true}, src, rec))

	require.Equal(t, []string{"external", "variable", "variable", "linear"}, rec.opNames())

	filter := rec.ops[1]
	requireArg(t, filter.args, "label", model.StringValue("fc1/filter"))
	shape, err := filter.shapes.Get("output")
	require.NoError(t, err)
	assert.Equal(t, model.Shape{4, 10}, shape)

	// The bias shape derives from the filter shape's leading extent.
	bias := rec.ops[2]
	requireArg(t, bias.args, "label", model.StringValue("fc1/bias"))
	shape, err = bias.shapes.Get("output")
	require.NoError(t, err)
	assert.Equal(t, model.Shape{1, 4}, shape)

	linear := rec.ops[3]
	requireArg(t, linear.args, "input", model.IdentifierValue("input"))
	requireArg(t, linear.args, "filter", model.IdentifierValue("linear_layer$0$filter"))
	requireArg(t, linear.args, "bias", model.IdentifierValue("linear_layer$0$bias"))
	requireArg(t, linear.args, "output", model.IdentifierValue("out"))
}

func TestParse_LayerFragmentsUnavailableWithoutOption(t *testing.T) {
	t.Parallel()

	src := `
graph "net" {
  inputs  = [input]
  outputs = [out]

  op "external" {
    output = input
    shape  = [1, 10]
  }
  op "linear_layer" {
    output       = out
    input        = input
    scope        = "fc1"
    filter_shape = [4, 10]
  }
}
`
	err := parseSource(t, Options{}, src, &recorder{})

	perr := requireParseError(t, err)
	assert.Contains(t, perr.Message, `unknown operation "linear_layer"`)
}

func TestParse_AtomicConvLayerStaysOneInvocation(t *testing.T) {
	t.Parallel()

	src := `
graph "net" {
  inputs  = [input]
  outputs = [out]

  op "external" {
    output = input
    shape  = [1, 3, 8, 8]
  }
  op "conv_layer" {
    output       = out
    input        = input
    scope        = "conv1"
    filter_shape = [16, 3, 3, 3]
  }
}
`
	rec := &recorder{atomics: map[string]bool{"conv_layer": true}}
	require.NoError(t, parseSource(t, Options{Layers: true}, src, rec))

	require.Equal(t, []string{"external", "conv_layer"}, rec.opNames())
	conv := rec.ops[1]
	assert.Equal(t, model.KindFragment, conv.sig.Kind)
	requireArg(t, conv.args, "border", model.StringValue("constant"))
	requireArg(t, conv.args, "groups", model.IntegerValue(1))
}

func TestParse_PoolAndSoftmaxLayersExpand(t *testing.T) {
	t.Parallel()

	src := `
graph "net" {
  inputs  = [input]
  outputs = [prob]

  op "external" {
    output = input
    shape  = [1, 4, 8, 8]
  }
  op "max_pool_layer" {
    output = pooled
    input  = input
    size   = [1, 1, 2, 2]
  }
  op "softmax_layer" {
    output = prob
    input  = pooled
  }
}
`
	rec := &recorder{}
	require.NoError(t, parseSource(t, Options{Layers: true}, src, rec))

	require.Equal(t, []string{"external", "max_pool", "softmax"}, rec.opNames())

	pool := rec.ops[1]
	requireArg(t, pool.args, "size", model.ArrayValue(
		model.IntegerValue(1), model.IntegerValue(1), model.IntegerValue(2), model.IntegerValue(2)))
	requireArg(t, pool.args, "border", model.StringValue("ignore"))
	requireArg(t, pool.args, "output", model.IdentifierValue("pooled"))

	softmax := rec.ops[2]
	requireArg(t, softmax.args, "x", model.IdentifierValue("pooled"))
	requireArg(t, softmax.args, "axes", model.ArrayValue(model.IntegerValue(1)))
	requireArg(t, softmax.args, "y", model.IdentifierValue("prob"))
}
