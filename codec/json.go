package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Non-finite floats (NaN, ±Inf) cannot be represented in JSON; Marshal
// reports an error for vectors containing them.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used for newly written datasets.
var Default Codec = GoJSON{}
