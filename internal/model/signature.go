package model

// ParamKind distinguishes how a parameter or result is bound and printed.
type ParamKind int

const (
	// ParamTensor parameters bind tensor references and print bare.
	ParamTensor ParamKind = iota
	// ParamAttribute parameters bind literal values and print as "name = value".
	ParamAttribute
)

// OpKind classifies the role an operation plays within a graph. The event
// source assigns it from its signature table; consumers must branch on the
// kind rather than on the operation's name.
type OpKind int

const (
	// KindPrimitive is an ordinary built-in operation.
	KindPrimitive OpKind = iota
	// KindGraph marks the top-level graph signature itself.
	KindGraph
	// KindExternal declares a graph input placeholder tensor.
	KindExternal
	// KindVariable declares a learned tensor persisted in a binary data file.
	KindVariable
	// KindConstant declares an inline constant tensor.
	KindConstant
	// KindFragment is a user-defined compound operation.
	KindFragment
)

// Param describes one declared parameter or result of a Signature.
type Param struct {
	Name string
	Kind ParamKind

	// Default, when non-nil, is the value bound for the parameter when an
	// invocation omits it. A nil Default marks the parameter as required.
	Default *Value
}

// Signature is the prototype of an operation, fragment, or graph: its name
// and the ordered parameters and results it declares. Signatures are
// immutable once constructed and are shared by reference across events.
type Signature struct {
	Name    string
	Kind    OpKind
	Params  []Param
	Results []Param
}
