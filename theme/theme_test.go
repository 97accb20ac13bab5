package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const darkTheme = `
attrs:
  Title:
    text_font: times
    text_font_style: normal
  Label:
    text_color: "#eeeeee"
`

func TestParse(t *testing.T) {
	th, err := Parse([]byte(darkTheme))
	require.NoError(t, err)

	overlay := th.Overlay("Title")
	require.NotNil(t, overlay)
	assert.Equal(t, "times", overlay["text_font"])
	assert.Equal(t, "normal", overlay["text_font_style"])

	assert.Nil(t, th.Overlay("LabelSet"))
	assert.ElementsMatch(t, []string{"Title", "Label"}, th.Variants())
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("attrs: [not, a, mapping"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dark.yaml")
	require.NoError(t, os.WriteFile(path, []byte(darkTheme), 0o644))

	th, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, th.Overlay("Label"))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestNilTheme(t *testing.T) {
	var th *Theme
	assert.Nil(t, th.Overlay("Title"))
	assert.Nil(t, th.Variants())
}
