package codec

import "gopkg.in/yaml.v3"

// YAML returns a Codec backed by gopkg.in/yaml.v3.
func YAML() Codec { return yamlCodec{} }

type yamlCodec struct{}

func (yamlCodec) ContentType() string { return "application/yaml" }

func (yamlCodec) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }
