// Package theme loads YAML default overlays for annotation variants.
//
// A theme replaces per-variant property defaults without touching
// explicitly assigned values:
//
//	attrs:
//	  Title:
//	    text_font: times
//	    text_font_style: normal
//	  Label:
//	    text_color: "#2b83ba"
//
// Overlay values pass the same validation as assignments when the theme
// is applied to a registry.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme is a set of per-variant default overlays.
type Theme struct {
	Attrs map[string]map[string]any `yaml:"attrs"`
}

// Parse reads a theme from YAML bytes.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	return &t, nil
}

// Load reads a theme from a YAML file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	return Parse(data)
}

// Overlay returns the default overlay for a variant. Nil when the theme
// has nothing for it.
func (t *Theme) Overlay(variant string) map[string]any {
	if t == nil {
		return nil
	}
	return t.Attrs[variant]
}

// Variants returns the variant names the theme covers.
func (t *Theme) Variants() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.Attrs))
	for v := range t.Attrs {
		out = append(out, v)
	}
	return out
}
