package atomics

// defaultAtomicOps is the built-in set of primitive operation names. Every
// name listed here is atomic unless an override says otherwise; compound
// operations (fragments, layer library entries) are absent and therefore
// composite by default.
var defaultAtomicOps = makeNameSet(
	// tensor declarations
	"external", "variable", "constant", "update",

	// shape manipulation
	"reshape", "transpose", "concat", "split", "slice", "stack", "unstack",
	"squeeze", "unsqueeze", "pad", "tile",

	// element-wise arithmetic
	"add", "sub", "mul", "div", "pow", "min", "max",

	// comparison and logic
	"lt", "gt", "le", "ge", "eq", "ne", "and", "or", "not",

	// element-wise math
	"neg", "abs", "sign", "rcp", "exp", "log", "log2", "sin", "cos", "tan",
	"sinh", "cosh", "tanh", "asin", "acos", "atan", "asinh", "acosh", "atanh",
	"floor", "ceil", "round", "sqr", "sqrt", "rsqr", "rsqrt",

	// selection
	"select", "clamp",

	// activations
	"relu", "leaky_relu", "prelu", "elu", "selu", "gelu", "silu", "sigmoid",
	"softabs", "softmax", "softplus",

	// linear and convolutional
	"linear", "matmul", "conv", "deconv", "box", "debox",

	// pooling and sampling
	"max_pool", "max_pool_with_index", "avg_pool", "rms_pool", "argmax_pool",
	"sample", "desample", "nearest_downsample", "area_downsample",
	"nearest_upsample", "multilinear_upsample",

	// reductions
	"sum_reduce", "max_reduce", "min_reduce", "argmax_reduce", "argmin_reduce",
	"mean_reduce", "any_reduce", "all_reduce", "moments",

	// normalization
	"local_response_normalization", "local_mean_normalization",
	"local_variance_normalization", "local_contrast_normalization",
	"l1_normalization", "l2_normalization", "batch_normalization",

	// quantization
	"linear_quantize", "logarithmic_quantize", "min_max_linear_quantize",
	"zero_point_linear_quantize",

	// misc
	"copy", "copy_n", "add_n",
)

func makeNameSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
