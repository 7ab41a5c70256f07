package codec

import "encoding/json"

// Option configures the JSON codec.
type Option func(*jsonCodec)

// WithIndent enables indented output using the given indent string.
func WithIndent(indent string) Option {
	return func(c *jsonCodec) { c.indent = indent }
}

// JSON returns a Codec backed by encoding/json.
func JSON(opts ...Option) Codec {
	c := &jsonCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type jsonCodec struct {
	indent string
}

func (c *jsonCodec) ContentType() string { return "application/json" }

func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	if c.indent != "" {
		return json.MarshalIndent(v, "", c.indent)
	}
	return json.Marshal(v)
}

func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
