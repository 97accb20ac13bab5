package plotspec_test

import (
	"testing"
	"time"

	"github.com/hupe1980/plotspec"
	"github.com/hupe1980/plotspec/datasource"
	"github.com/hupe1980/plotspec/property"
	"github.com/hupe1980/plotspec/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, opts ...plotspec.Option) *plotspec.Registry {
	t.Helper()
	reg, err := plotspec.New(opts...)
	require.NoError(t, err)
	return reg
}

func TestDefine(t *testing.T) {
	reg := newRegistry(t)

	assert.Equal(t, []string{"Label", "LabelSet", "Title"}, reg.Variants())

	for _, variant := range reg.Variants() {
		fields, err := reg.Define(variant)
		require.NoError(t, err)
		assert.NotEmpty(t, fields)

		// Deterministic: two calls return the same ordered set.
		again, err := reg.Define(variant)
		require.NoError(t, err)
		require.Equal(t, len(fields), len(again))
		for i := range fields {
			assert.Equal(t, fields[i].Name, again[i].Name)
		}
	}
}

func TestDefineUnknownVariant(t *testing.T) {
	reg := newRegistry(t)

	_, err := reg.Define("Arrow")
	var uv *plotspec.ErrUnknownVariant
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, "Arrow", uv.Variant)

	_, err = reg.Construct("Arrow", nil)
	require.ErrorAs(t, err, &uv)
}

func TestConstructTranslatesErrors(t *testing.T) {
	reg := newRegistry(t)

	_, err := reg.Construct(plotspec.VariantLabel, map[string]any{"nope": 1})
	var ifd *plotspec.ErrInvalidField
	require.ErrorAs(t, err, &ifd)
	assert.Equal(t, "nope", ifd.Field)

	_, err = reg.Construct(plotspec.VariantLabel, map[string]any{"x": nil})
	var iv *plotspec.ErrInvalidValue
	require.ErrorAs(t, err, &iv)
	assert.Equal(t, "x", iv.Field)
}

func TestConstructTimestamp(t *testing.T) {
	reg := newRegistry(t)
	ts := time.Date(2022, 1, 2, 3, 4, 5, 0, time.UTC)

	in, err := reg.Construct(plotspec.VariantLabel, map[string]any{"x": ts, "y": 1})
	require.NoError(t, err)

	v, err := reg.Resolve(in, "x")
	require.NoError(t, err)
	n, ok := v.AsNumber()
	require.True(t, ok)
	assert.Equal(t, float64(ts.UnixMilli()), n)
}

func TestMutate(t *testing.T) {
	reg := newRegistry(t)

	in, err := reg.Construct(plotspec.VariantTitle, nil)
	require.NoError(t, err)

	require.NoError(t, reg.Mutate(in, "text", "Trend"))
	v, err := reg.Resolve(in, "text")
	require.NoError(t, err)
	assert.Equal(t, property.String("Trend"), v)

	err = reg.Mutate(in, "align", "justified")
	var iv *plotspec.ErrInvalidValue
	require.ErrorAs(t, err, &iv)
}

func TestResolveVector(t *testing.T) {
	reg := newRegistry(t)

	src, err := datasource.NewColumnDataSource(map[string][]any{
		"x": {1, 2, 3}, "y": {4, 5, 6}, "text": {"a", "b", "c"},
	})
	require.NoError(t, err)

	in, err := reg.Construct(plotspec.VariantLabelSet, map[string]any{"source": src})
	require.NoError(t, err)

	v, err := reg.Resolve(in, "text", 2)
	require.NoError(t, err)
	assert.Equal(t, property.String("c"), v)

	_, err = reg.Resolve(in, "text")
	assert.ErrorIs(t, err, plotspec.ErrRowIndexRequired)

	require.NoError(t, reg.Mutate(in, "text", property.Field("captions")))
	_, err = reg.Resolve(in, "text", 0)
	var mc *plotspec.ErrMissingColumn
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, "captions", mc.Column)

	_, err = reg.Resolve(in, "x", 17)
	var oor *plotspec.ErrRowOutOfRange
	require.ErrorAs(t, err, &oor)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	reg := newRegistry(t)

	in, err := reg.Construct(plotspec.VariantLabel, map[string]any{
		"x": 70, "y": 60, "text": "peak load", "x_units": "screen",
	})
	require.NoError(t, err)

	data, err := reg.Encode(in)
	require.NoError(t, err)

	out, err := reg.Decode(data)
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestDecodeRebindSource(t *testing.T) {
	reg := newRegistry(t)

	src, err := datasource.NewColumnDataSource(map[string][]any{
		"x": {1.0}, "y": {2.0}, "text": {"only"},
	})
	require.NoError(t, err)

	in, err := reg.Construct(plotspec.VariantLabelSet, map[string]any{"source": src})
	require.NoError(t, err)

	data, err := reg.Encode(in)
	require.NoError(t, err)

	// The source is not part of the wire format.
	out, err := reg.Decode(data)
	require.NoError(t, err)
	require.Nil(t, out.Source())
	assert.True(t, in.Equal(out))

	out.BindSource(src)
	v, err := reg.Resolve(out, "text", 0)
	require.NoError(t, err)
	assert.Equal(t, property.String("only"), v)
}

func TestWithTheme(t *testing.T) {
	th, err := theme.Parse([]byte(`
attrs:
  Title:
    text_font: times
    text_font_style: normal
`))
	require.NoError(t, err)

	reg := newRegistry(t, plotspec.WithTheme(th))

	in, err := reg.Construct(plotspec.VariantTitle, nil)
	require.NoError(t, err)

	v, err := reg.Resolve(in, "text_font")
	require.NoError(t, err)
	assert.Equal(t, property.String("times"), v)

	// Explicit overrides win over themed defaults.
	in, err = reg.Construct(plotspec.VariantTitle, map[string]any{"text_font": "courier"})
	require.NoError(t, err)
	v, err = reg.Resolve(in, "text_font")
	require.NoError(t, err)
	assert.Equal(t, property.String("courier"), v)
}

func TestWithThemeInvalidOverlay(t *testing.T) {
	th, err := theme.Parse([]byte(`
attrs:
  Title:
    text_font_style: underline
`))
	require.NoError(t, err)

	_, err = plotspec.New(plotspec.WithTheme(th))
	var iv *plotspec.ErrInvalidValue
	require.ErrorAs(t, err, &iv)
}
