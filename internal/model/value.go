package model

import (
	"strconv"
	"strings"
)

// ValueKind enumerates the forms an evaluated argument value can take.
type ValueKind int

const (
	ValueInvalid ValueKind = iota
	ValueIdentifier
	ValueString
	ValueLogical
	ValueInteger
	ValueScalar
	ValueArray
	ValueTuple
)

var valueKindNames = [...]string{
	ValueInvalid:    "invalid",
	ValueIdentifier: "identifier",
	ValueString:     "string",
	ValueLogical:    "logical",
	ValueInteger:    "integer",
	ValueScalar:     "scalar",
	ValueArray:      "array",
	ValueTuple:      "tuple",
}

// String returns the lower-case name of the kind.
func (k ValueKind) String() string {
	if k < 0 || int(k) >= len(valueKindNames) {
		return "unknown"
	}
	return valueKindNames[k]
}

// Value is a tagged variant holding one evaluated argument: a tensor
// identifier, a literal, or an ordered collection of further values. The
// zero Value has kind ValueInvalid.
type Value struct {
	kind  ValueKind
	str   string
	ival  int
	fval  float64
	bval  bool
	items []Value
}

// IdentifierValue returns a Value referencing the tensor with the given name.
func IdentifierValue(name string) Value {
	return Value{kind: ValueIdentifier, str: name}
}

// StringValue returns a string literal Value.
func StringValue(s string) Value {
	return Value{kind: ValueString, str: s}
}

// LogicalValue returns a boolean literal Value.
func LogicalValue(b bool) Value {
	return Value{kind: ValueLogical, bval: b}
}

// IntegerValue returns an integer literal Value.
func IntegerValue(i int) Value {
	return Value{kind: ValueInteger, ival: i}
}

// ScalarValue returns a floating-point literal Value.
func ScalarValue(f float64) Value {
	return Value{kind: ValueScalar, fval: f}
}

// ArrayValue returns an ordered array of the given values.
func ArrayValue(items ...Value) Value {
	return Value{kind: ValueArray, items: items}
}

// TupleValue returns a fixed tuple of the given values.
func TupleValue(items ...Value) Value {
	return Value{kind: ValueTuple, items: items}
}

// Kind reports which variant the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Identifier returns the referenced tensor name. It panics if the value is
// not an identifier.
func (v Value) Identifier() string {
	v.mustBe(ValueIdentifier)
	return v.str
}

// AsString returns the string literal. It panics if the value is not a string.
func (v Value) AsString() string {
	v.mustBe(ValueString)
	return v.str
}

// AsLogical returns the boolean literal. It panics if the value is not logical.
func (v Value) AsLogical() bool {
	v.mustBe(ValueLogical)
	return v.bval
}

// AsInteger returns the integer literal. It panics if the value is not an integer.
func (v Value) AsInteger() int {
	v.mustBe(ValueInteger)
	return v.ival
}

// AsScalar returns the floating-point literal. It panics if the value is not a scalar.
func (v Value) AsScalar() float64 {
	v.mustBe(ValueScalar)
	return v.fval
}

// Items returns the contained values. It panics unless the value is an
// array or a tuple.
func (v Value) Items() []Value {
	if v.kind != ValueArray && v.kind != ValueTuple {
		panic("model: Items called on " + v.kind.String() + " value")
	}
	return v.items
}

func (v Value) mustBe(k ValueKind) {
	if v.kind != k {
		panic("model: " + k.String() + " access on " + v.kind.String() + " value")
	}
}

// Equal reports whether two values hold the same variant with the same
// content, comparing arrays and tuples element-wise.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueIdentifier, ValueString:
		return v.str == o.str
	case ValueLogical:
		return v.bval == o.bval
	case ValueInteger:
		return v.ival == o.ival
	case ValueScalar:
		return v.fval == o.fval
	case ValueArray, ValueTuple:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders the value in its canonical textual form: identifiers bare,
// strings single-quoted, arrays bracketed and tuples parenthesized with
// ", " separators.
func (v Value) String() string {
	switch v.kind {
	case ValueIdentifier:
		return v.str
	case ValueString:
		return "'" + v.str + "'"
	case ValueLogical:
		if v.bval {
			return "true"
		}
		return "false"
	case ValueInteger:
		return strconv.Itoa(v.ival)
	case ValueScalar:
		return formatScalar(v.fval)
	case ValueArray:
		return "[" + joinValues(v.items) + "]"
	case ValueTuple:
		return "(" + joinValues(v.items) + ")"
	default:
		return "<invalid>"
	}
}

func joinValues(items []Value) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
	return sb.String()
}

func formatScalar(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// FormatFloat drops the decimal point for whole numbers; keep it so
	// scalars stay distinguishable from integers.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
