package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNull, "Null"},
		{KindNumber, "Number"},
		{KindString, "String"},
		{KindBool, "Bool"},
		{KindArray, "Array"},
		{Kind(99), "Invalid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestValueAccessors(t *testing.T) {
	n, ok := Number(3.5).AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 3.5, n)

	_, ok = Number(3.5).AsString()
	assert.False(t, ok)

	s, ok := String("deg").AsString()
	assert.True(t, ok)
	assert.Equal(t, "deg", s)

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	a, ok := Array([]Value{Number(1), Number(2)}).AsArray()
	assert.True(t, ok)
	assert.Len(t, a, 2)

	assert.True(t, Null().IsNull())
	assert.False(t, Number(0).IsNull())
}

func TestFromInterface(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
		ok   bool
	}{
		{"Nil", nil, Null(), true},
		{"Int", 7, Number(7), true},
		{"Int64", int64(7), Number(7), true},
		{"Uint32", uint32(7), Number(7), true},
		{"Float64", 2.5, Number(2.5), true},
		{"Float32", float32(0.5), Number(0.5), true},
		{"String", "x", String("x"), true},
		{"Bool", true, Bool(true), true},
		{"Value", Number(1), Number(1), true},
		{"AnySlice", []any{1, "a"}, Array([]Value{Number(1), String("a")}), true},
		{"Float64Slice", []float64{1, 2}, Array([]Value{Number(1), Number(2)}), true},
		{"StringSlice", []string{"a"}, Array([]Value{String("a")}), true},
		{"Unsupported", struct{}{}, Value{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromInterface(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Number(2).Equal(Number(2)))
	assert.False(t, Number(2).Equal(Number(3)))
	assert.False(t, Number(2).Equal(String("2")))
	assert.True(t, Null().Equal(Null()))
	assert.True(t, Array([]Value{String("a")}).Equal(Array([]Value{String("a")})))
	assert.False(t, Array([]Value{String("a")}).Equal(Array(nil)))
}

func TestValueInterfaceRoundTrip(t *testing.T) {
	vals := []Value{
		Null(),
		Number(1.5),
		String("helvetica"),
		Bool(false),
		Array([]Value{Number(4), Number(2)}),
	}
	for _, v := range vals {
		back, ok := FromInterface(v.Interface())
		assert.True(t, ok)
		assert.True(t, v.Equal(back))
	}
}
