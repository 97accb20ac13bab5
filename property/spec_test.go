package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertSpecMarkers(t *testing.T) {
	fs := FieldSpec{Name: "text", Type: FieldTypeString, Vector: true}

	spec, err := fs.ConvertSpec(Field("names"))
	require.NoError(t, err)
	assert.True(t, spec.IsField())
	assert.Equal(t, "names", spec.FieldName())

	spec, err = fs.ConvertSpec(Lit("fixed"))
	require.NoError(t, err)
	assert.False(t, spec.IsField())
	assert.Equal(t, String("fixed"), spec.Value())

	_, err = fs.ConvertSpec(Field(""))
	assert.Error(t, err)
}

func TestConvertSpecBareString(t *testing.T) {
	// On string- and number-typed vector fields a bare string is a
	// column reference.
	str := FieldSpec{Name: "text", Type: FieldTypeString, Vector: true}
	spec, err := str.ConvertSpec("names")
	require.NoError(t, err)
	assert.True(t, spec.IsField())

	num := FieldSpec{Name: "x", Type: FieldTypeNumber, Vector: true}
	spec, err = num.ConvertSpec("heights")
	require.NoError(t, err)
	assert.True(t, spec.IsField())

	spec, err = num.ConvertSpec(3)
	require.NoError(t, err)
	assert.False(t, spec.IsField())
	assert.Equal(t, Number(3), spec.Value())
}

func TestConvertSpecEnum(t *testing.T) {
	fs := FieldSpec{Name: "text_align", Type: FieldTypeEnum, Enum: TextAlign, Vector: true}

	// Inside the domain: literal. Outside: column reference.
	spec, err := fs.ConvertSpec("center")
	require.NoError(t, err)
	assert.False(t, spec.IsField())
	assert.Equal(t, String("center"), spec.Value())

	spec, err = fs.ConvertSpec("alignments")
	require.NoError(t, err)
	assert.True(t, spec.IsField())
	assert.Equal(t, "alignments", spec.FieldName())
}

func TestConvertSpecColor(t *testing.T) {
	fs := FieldSpec{Name: "text_color", Type: FieldTypeColor, Vector: true}

	// A bare string on a color field is a literal color; columns need
	// an explicit Field marker.
	spec, err := fs.ConvertSpec("firebrick")
	require.NoError(t, err)
	assert.False(t, spec.IsField())

	spec, err = fs.ConvertSpec(Field("colors"))
	require.NoError(t, err)
	assert.True(t, spec.IsField())
}

func TestConvertSpecValidatesLiterals(t *testing.T) {
	fs := FieldSpec{Name: "x", Type: FieldTypeNumber, Vector: true}

	_, err := fs.ConvertSpec(Lit(true))
	var iv *ErrInvalidValue
	require.ErrorAs(t, err, &iv)
	assert.Equal(t, "x", iv.Field)
}

func TestDataSpecEqual(t *testing.T) {
	assert.True(t, LitSpec(Number(1)).Equal(LitSpec(Number(1))))
	assert.False(t, LitSpec(Number(1)).Equal(LitSpec(Number(2))))
	assert.True(t, FieldSpecOf("x").Equal(FieldSpecOf("x")))
	assert.False(t, FieldSpecOf("x").Equal(FieldSpecOf("y")))
	assert.False(t, FieldSpecOf("x").Equal(LitSpec(String("x"))))
}
