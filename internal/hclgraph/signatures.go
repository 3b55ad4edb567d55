package hclgraph

import "github.com/tylerchen0619/NNEF-Tools/internal/model"

func tensor(name string) model.Param {
	return model.Param{Name: name, Kind: model.ParamTensor}
}

func tensorDefault(name string, def model.Value) model.Param {
	return model.Param{Name: name, Kind: model.ParamTensor, Default: &def}
}

func attr(name string) model.Param {
	return model.Param{Name: name, Kind: model.ParamAttribute}
}

func attrDefault(name string, def model.Value) model.Param {
	return model.Param{Name: name, Kind: model.ParamAttribute, Default: &def}
}

func unarySig(name string) *model.Signature {
	return &model.Signature{
		Name:    name,
		Params:  []model.Param{tensor("x")},
		Results: []model.Param{tensor("y")},
	}
}

func binarySig(name string) *model.Signature {
	return &model.Signature{
		Name:    name,
		Params:  []model.Param{tensor("x"), tensor("y")},
		Results: []model.Param{tensor("z")},
	}
}

func reduceSig(name string) *model.Signature {
	return &model.Signature{
		Name:    name,
		Params:  []model.Param{tensor("input"), attr("axes")},
		Results: []model.Param{tensor("output")},
	}
}

func poolSig(name, border string) *model.Signature {
	return &model.Signature{
		Name: name,
		Params: []model.Param{
			tensor("input"),
			attr("size"),
			attrDefault("border", model.StringValue(border)),
			attrDefault("padding", model.ArrayValue()),
			attrDefault("stride", model.ArrayValue()),
			attrDefault("dilation", model.ArrayValue()),
		},
		Results: []model.Param{tensor("output")},
	}
}

func downsampleSig(name string) *model.Signature {
	return &model.Signature{
		Name:    name,
		Params:  []model.Param{tensor("input"), attr("factor")},
		Results: []model.Param{tensor("output")},
	}
}

var unaryOps = []string{
	"copy", "neg", "not", "abs", "sign", "rcp", "exp", "log", "log2",
	"sin", "cos", "tan", "sinh", "cosh", "tanh",
	"asin", "acos", "atan", "asinh", "acosh", "atanh",
	"floor", "ceil", "round", "sqr", "sqrt", "rsqr", "rsqrt",
	"relu", "sigmoid", "gelu", "silu", "softabs", "softplus",
}

var binaryOps = []string{
	"add", "sub", "mul", "div", "pow", "min", "max",
	"lt", "gt", "le", "ge", "eq", "ne", "and", "or",
}

var reduceOps = []string{
	"sum_reduce", "max_reduce", "min_reduce", "argmax_reduce",
	"argmin_reduce", "mean_reduce", "any_reduce", "all_reduce",
}

// builtinSignatures assembles the signature table of the standard
// primitive operations. Parameter order here is canonical: the renderer
// prints arguments in exactly this order.
func builtinSignatures() *model.Dict[*model.Signature] {
	zero := model.ScalarValue(0)
	one := model.ScalarValue(1)
	oneInt := model.IntegerValue(1)
	emptyArray := model.ArrayValue()
	constantBorder := model.StringValue("constant")

	sigs := []*model.Signature{
		{
			Name:    "external",
			Kind:    model.KindExternal,
			Params:  []model.Param{attr("shape")},
			Results: []model.Param{tensor("output")},
		},
		{
			Name:    "variable",
			Kind:    model.KindVariable,
			Params:  []model.Param{attr("shape"), attr("label")},
			Results: []model.Param{tensor("output")},
		},
		{
			Name:    "constant",
			Kind:    model.KindConstant,
			Params:  []model.Param{attr("shape"), attr("value")},
			Results: []model.Param{tensor("output")},
		},
		{
			Name:    "update",
			Params:  []model.Param{tensor("variable"), tensor("value")},
			Results: []model.Param{tensor("result")},
		},
		{
			Name: "reshape",
			Params: []model.Param{
				tensor("input"), attr("shape"),
				attrDefault("axis_start", model.IntegerValue(0)),
				attrDefault("axis_count", model.IntegerValue(-1)),
			},
			Results: []model.Param{tensor("output")},
		},
		{
			Name:    "transpose",
			Params:  []model.Param{tensor("input"), attr("axes")},
			Results: []model.Param{tensor("output")},
		},
		{
			Name:    "concat",
			Params:  []model.Param{tensor("values"), attr("axis")},
			Results: []model.Param{tensor("value")},
		},
		{
			Name:    "split",
			Params:  []model.Param{tensor("value"), attr("axis"), attr("ratios")},
			Results: []model.Param{tensor("values")},
		},
		{
			Name: "slice",
			Params: []model.Param{
				tensor("input"), attr("axes"), attr("begin"), attr("end"),
				attrDefault("stride", emptyArray),
			},
			Results: []model.Param{tensor("output")},
		},
		{
			Name:    "stack",
			Params:  []model.Param{tensor("values"), attr("axis")},
			Results: []model.Param{tensor("value")},
		},
		{
			Name:    "unstack",
			Params:  []model.Param{tensor("value"), attr("axis")},
			Results: []model.Param{tensor("values")},
		},
		{
			Name:    "squeeze",
			Params:  []model.Param{tensor("input"), attr("axes")},
			Results: []model.Param{tensor("output")},
		},
		{
			Name:    "unsqueeze",
			Params:  []model.Param{tensor("input"), attr("axes")},
			Results: []model.Param{tensor("output")},
		},
		{
			Name: "pad",
			Params: []model.Param{
				tensor("input"), attr("padding"),
				attrDefault("border", constantBorder),
				attrDefault("value", zero),
			},
			Results: []model.Param{tensor("output")},
		},
		{
			Name:    "tile",
			Params:  []model.Param{tensor("input"), attr("repeats")},
			Results: []model.Param{tensor("output")},
		},
		{
			Name:    "select",
			Params:  []model.Param{tensor("condition"), tensor("true_value"), tensor("false_value")},
			Results: []model.Param{tensor("output")},
		},
		{
			Name:    "clamp",
			Params:  []model.Param{tensor("x"), tensor("a"), tensor("b")},
			Results: []model.Param{tensor("y")},
		},
		{
			Name:    "leaky_relu",
			Params:  []model.Param{tensor("x"), attr("alpha")},
			Results: []model.Param{tensor("y")},
		},
		{
			Name:    "prelu",
			Params:  []model.Param{tensor("x"), tensor("alpha")},
			Results: []model.Param{tensor("y")},
		},
		{
			Name:    "elu",
			Params:  []model.Param{tensor("x"), attrDefault("alpha", one)},
			Results: []model.Param{tensor("y")},
		},
		{
			Name: "selu",
			Params: []model.Param{
				tensor("x"),
				attrDefault("alpha", model.ScalarValue(1.673263)),
				attrDefault("lambda", model.ScalarValue(1.050701)),
			},
			Results: []model.Param{tensor("y")},
		},
		{
			Name:    "softmax",
			Params:  []model.Param{tensor("x"), attrDefault("axes", model.ArrayValue(oneInt))},
			Results: []model.Param{tensor("y")},
		},
		{
			Name:    "linear",
			Params:  []model.Param{tensor("input"), tensor("filter"), tensorDefault("bias", zero)},
			Results: []model.Param{tensor("output")},
		},
		{
			Name: "matmul",
			Params: []model.Param{
				tensor("A"), tensor("B"),
				attrDefault("transposeA", model.LogicalValue(false)),
				attrDefault("transposeB", model.LogicalValue(false)),
			},
			Results: []model.Param{tensor("C")},
		},
		{
			Name: "conv",
			Params: []model.Param{
				tensor("input"), tensor("filter"), tensorDefault("bias", zero),
				attrDefault("border", constantBorder),
				attrDefault("padding", emptyArray),
				attrDefault("stride", emptyArray),
				attrDefault("dilation", emptyArray),
				attrDefault("groups", oneInt),
			},
			Results: []model.Param{tensor("output")},
		},
		{
			Name: "deconv",
			Params: []model.Param{
				tensor("input"), tensor("filter"), tensorDefault("bias", zero),
				attrDefault("border", constantBorder),
				attrDefault("padding", emptyArray),
				attrDefault("stride", emptyArray),
				attrDefault("dilation", emptyArray),
				attrDefault("output_shape", emptyArray),
				attrDefault("groups", oneInt),
			},
			Results: []model.Param{tensor("output")},
		},
		{
			Name: "box",
			Params: []model.Param{
				tensor("input"), attr("size"),
				attrDefault("border", constantBorder),
				attrDefault("padding", emptyArray),
				attrDefault("stride", emptyArray),
				attrDefault("dilation", emptyArray),
				attrDefault("normalize", model.LogicalValue(false)),
			},
			Results: []model.Param{tensor("output")},
		},
		{
			Name: "max_pool_with_index",
			Params: []model.Param{
				tensor("input"), attr("size"),
				attrDefault("border", model.StringValue("ignore")),
				attrDefault("padding", emptyArray),
				attrDefault("stride", emptyArray),
				attrDefault("dilation", emptyArray),
			},
			Results: []model.Param{tensor("output"), tensor("index")},
		},
		{
			Name:    "moments",
			Params:  []model.Param{tensor("input"), attr("axes")},
			Results: []model.Param{tensor("mean"), tensor("variance")},
		},
		{
			Name: "batch_normalization",
			Params: []model.Param{
				tensor("input"), tensor("mean"), tensor("variance"),
				tensor("offset"), tensor("scale"), attr("epsilon"),
			},
			Results: []model.Param{tensor("output")},
		},
		{
			Name: "local_response_normalization",
			Params: []model.Param{
				tensor("input"), attr("size"),
				attrDefault("alpha", one),
				attrDefault("beta", model.ScalarValue(0.5)),
				attrDefault("bias", one),
			},
			Results: []model.Param{tensor("output")},
		},
		{
			Name: "l1_normalization",
			Params: []model.Param{
				tensor("input"), attr("axes"),
				attrDefault("bias", zero),
				attrDefault("epsilon", zero),
			},
			Results: []model.Param{tensor("output")},
		},
		{
			Name: "l2_normalization",
			Params: []model.Param{
				tensor("input"), attr("axes"),
				attrDefault("bias", zero),
				attrDefault("epsilon", zero),
			},
			Results: []model.Param{tensor("output")},
		},
		{
			Name: "multilinear_upsample",
			Params: []model.Param{
				tensor("input"), attr("factor"),
				attrDefault("method", model.StringValue("symmetric")),
				attrDefault("border", model.StringValue("replicate")),
			},
			Results: []model.Param{tensor("output")},
		},
	}

	for _, name := range unaryOps {
		sigs = append(sigs, unarySig(name))
	}
	for _, name := range binaryOps {
		sigs = append(sigs, binarySig(name))
	}
	for _, name := range reduceOps {
		sigs = append(sigs, reduceSig(name))
	}
	sigs = append(sigs,
		poolSig("max_pool", "ignore"),
		poolSig("avg_pool", "constant"),
		poolSig("rms_pool", "constant"),
		poolSig("debox", "constant"),
	)
	for _, name := range []string{"nearest_downsample", "area_downsample", "nearest_upsample"} {
		sigs = append(sigs, downsampleSig(name))
	}

	table := model.NewDict[*model.Signature]()
	for _, sig := range sigs {
		table.Set(sig.Name, sig)
	}
	return table
}
