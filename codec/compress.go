package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
)

// S2 wraps a base codec with S2 block compression. Useful when archiving
// large vectorized documents to a document store.
type S2 struct {
	Inner Codec
}

// Marshal encodes with the inner codec and compresses the result.
func (c S2) Marshal(v any) ([]byte, error) {
	b, err := c.inner().Marshal(v)
	if err != nil {
		return nil, err
	}
	return s2.Encode(nil, b), nil
}

// Unmarshal decompresses the data and decodes with the inner codec.
func (c S2) Unmarshal(data []byte, v any) error {
	b, err := s2.Decode(nil, data)
	if err != nil {
		return err
	}
	return c.inner().Unmarshal(b, v)
}

// Name returns the compound codec name (e.g. "json+s2").
func (c S2) Name() string { return c.inner().Name() + "+s2" }

func (c S2) inner() Codec {
	if c.Inner == nil {
		return Default
	}
	return c.Inner
}

// LZ4 wraps a base codec with LZ4 frame compression.
type LZ4 struct {
	Inner Codec
}

// Marshal encodes with the inner codec and compresses the result.
func (c LZ4) Marshal(v any) ([]byte, error) {
	b, err := c.inner().Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decompresses the data and decodes with the inner codec.
func (c LZ4) Unmarshal(data []byte, v any) error {
	zr := lz4.NewReader(bytes.NewReader(data))
	b, err := io.ReadAll(zr)
	if err != nil {
		return err
	}
	return c.inner().Unmarshal(b, v)
}

// Name returns the compound codec name (e.g. "json+lz4").
func (c LZ4) Name() string { return c.inner().Name() + "+lz4" }

func (c LZ4) inner() Codec {
	if c.Inner == nil {
		return Default
	}
	return c.Inner
}
