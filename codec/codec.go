// Package codec provides content-type-aware serialization helpers that
// reconstruct typed values from a prototype plus raw data.
//
// A Codec encodes and decodes one wire format; JSON and YAML providers are
// built in. Stringify turns a value into text, and Parse rebuilds a typed
// value by decoding text over a copy of a prototype, so fields absent from
// the payload keep the prototype's values.
package codec

import (
	"fmt"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/selector/errors"
)

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g. "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Cloner allows prototype types to provide deep-copy logic for Parse. For
// value types without pointers, slices or maps, Clone can simply return the
// receiver; types with reference fields should copy them so the reconstructed
// value is isolated from the prototype.
type Cloner[T any] interface {
	Clone() T
}

// Stringify encodes v with c and returns the text.
// Failures wrap ErrEncode; match with errors.Is.
func Stringify(c Codec, v any) (string, error) {
	data, err := c.Marshal(v)
	if err != nil {
		return "", errorc.With(
			errors.ErrEncode,
			errorc.String(errors.ErrorFieldContentType, c.ContentType()),
			errorc.String(errors.ErrorFieldCause, err.Error()),
		)
	}
	return string(data), nil
}

// Parse decodes data over a copy of proto and returns the reconstructed
// value. Fields present in data override the prototype's; fields absent from
// data keep the prototype's values. When T implements Cloner[T] the copy is
// taken via Clone, otherwise a plain value copy is used.
// Failures wrap ErrDecode; match with errors.Is.
func Parse[T any](c Codec, data string, proto T) (T, error) {
	out := clone(proto)
	if err := c.Unmarshal([]byte(data), &out); err != nil {
		var zero T
		return zero, errorc.With(
			errors.ErrDecode,
			errorc.String(errors.ErrorFieldContentType, c.ContentType()),
			errorc.String(errors.ErrorFieldTargetType, fmt.Sprintf("%T", proto)),
			errorc.String(errors.ErrorFieldCause, err.Error()),
		)
	}
	return out, nil
}

func clone[T any](proto T) T {
	if c, ok := any(proto).(Cloner[T]); ok {
		return c.Clone()
	}
	return proto
}
