package codec

import "encoding/json"

// JSON is the standard-library JSON codec.
//
// It is the most portable option: documents written with it can be read
// by any JSON consumer, including the browser-side renderer.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// The wire format every codec produces here is identical JSON; Default
// only selects the encoder implementation.
var Default Codec = GoJSON{}
