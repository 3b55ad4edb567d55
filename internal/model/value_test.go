package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String_CanonicalForms(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		value    Value
		expected string
	}{
		{"identifier prints bare", IdentifierValue("t1"), "t1"},
		{"string is single quoted", StringValue("conv1/filter"), "'conv1/filter'"},
		{"logical true", LogicalValue(true), "true"},
		{"logical false", LogicalValue(false), "false"},
		{"integer", IntegerValue(42), "42"},
		{"negative integer", IntegerValue(-3), "-3"},
		{"scalar keeps decimal point", ScalarValue(1), "1.0"},
		{"scalar fraction", ScalarValue(0.5), "0.5"},
		{"scalar exponent form", ScalarValue(1e-7), "1e-07"},
		{"empty array", ArrayValue(), "[]"},
		{"array of integers", ArrayValue(IntegerValue(3), IntegerValue(3)), "[3, 3]"},
		{"nested array", ArrayValue(ArrayValue(IntegerValue(1), IntegerValue(1)), ArrayValue(IntegerValue(2), IntegerValue(2))), "[[1, 1], [2, 2]]"},
		{"tuple", TupleValue(IdentifierValue("a"), IdentifierValue("b")), "(a, b)"},
		{"zero value is invalid", Value{}, "<invalid>"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.value.String())
		})
	}
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	a := ArrayValue(IntegerValue(1), StringValue("x"))

	assert.True(t, a.Equal(ArrayValue(IntegerValue(1), StringValue("x"))))
	assert.False(t, a.Equal(ArrayValue(IntegerValue(1))), "shorter array must differ")
	assert.False(t, a.Equal(TupleValue(IntegerValue(1), StringValue("x"))), "tuple and array must differ")
	assert.False(t, IntegerValue(1).Equal(ScalarValue(1)), "integer and scalar must differ")
	assert.True(t, IdentifierValue("t").Equal(IdentifierValue("t")))
}

func TestValue_AccessorsPanicOnWrongKind(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { IntegerValue(1).AsString() })
	require.Panics(t, func() { StringValue("x").Identifier() })
	require.Panics(t, func() { IdentifierValue("t").Items() })
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "t1", IdentifierValue("t1").Identifier())
	assert.Equal(t, "label", StringValue("label").AsString())
	assert.Equal(t, 7, IntegerValue(7).AsInteger())
	assert.Equal(t, 0.25, ScalarValue(0.25).AsScalar())
	assert.True(t, LogicalValue(true).AsLogical())
	assert.Len(t, ArrayValue(IntegerValue(1), IntegerValue(2)).Items(), 2)
}
