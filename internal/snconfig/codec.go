package snconfig

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec converts config values to and from a structured text format.
type Codec interface {
	// Extension is the file extension without the leading dot.
	Extension() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// TagName is the struct tag the codec reads field keys from.
	TagName() string
	// TopLevelKeys returns the keys of the top-level object in data.
	TopLevelKeys(data []byte) ([]string, error)
}

// JSONCodec writes pretty-printed JSON with a two-space indent.
type JSONCodec struct{}

func (JSONCodec) Extension() string { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) TagName() string { return "json" }

func (JSONCodec) TopLevelKeys(data []byte) ([]string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return mapKeys(fields), nil
}

// YAMLCodec stores configs as YAML documents.
type YAMLCodec struct{}

func (YAMLCodec) Extension() string { return "yaml" }

func (YAMLCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

func (YAMLCodec) TagName() string { return "yaml" }

func (YAMLCodec) TopLevelKeys(data []byte) ([]string, error) {
	var fields map[string]yaml.Node
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return mapKeys(fields), nil
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}

// CodecByName returns the codec registered under name ("json" or "yaml").
func CodecByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSONCodec{}, true
	case "yaml", "yml":
		return YAMLCodec{}, true
	default:
		return nil, false
	}
}
