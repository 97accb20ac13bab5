// Package codec centralizes the encoding of serialized annotation
// documents.
//
// Codec selection is a compatibility boundary: an archived document only
// decodes with the codec (and compression wrapper) it was written with,
// so stores should record the codec name alongside the payload.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name. Compound names
// select a compression wrapper around a base codec (e.g. "json+s2").
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "json+s2":
		return S2{Inner: JSON{}}, true
	case "go-json+s2":
		return S2{Inner: GoJSON{}}, true
	case "json+lz4":
		return LZ4{Inner: JSON{}}, true
	case "go-json+lz4":
		return LZ4{Inner: GoJSON{}}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
