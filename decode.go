package jsoncompat

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Unmarshal decodes JSON that may contain NaN and Infinity literals into v.
//
// Note that data is translated in place before decoding, so the caller's
// slice is modified (and the decoded bytes may be a shorter prefix of it).
// Copy first if the original bytes are still needed.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(Translate(data), v)
}

// Decode reads a single JSON value from r through the filter into v.
func Decode(r io.Reader, v any) error {
	return NewDecoder(r).Decode(v)
}

// NewDecoder returns a decoder whose input passes through the filter, for
// callers that stream several values from one source.
func NewDecoder(r io.Reader) *jsoniter.Decoder {
	return json.NewDecoder(NewReader(r))
}
