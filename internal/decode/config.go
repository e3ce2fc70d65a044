package decode

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Name is the config name the decoder settings are stored under.
const Name = "decode"

const defaultNumBeams = 4

// Kind discriminates the decoder variants.
type Kind string

const (
	KindBeam   Kind = "beam"
	KindGreedy Kind = "greedy"
)

// Config selects the decoding strategy. NumBeams is only meaningful for
// KindBeam; a greedy config with beams set fails to encode.
type Config struct {
	Type     Kind
	NumBeams uint32
}

// Beam returns a beam search config with n beams.
func Beam(n uint32) Config {
	return Config{Type: KindBeam, NumBeams: n}
}

// Greedy returns a greedy decoding config.
func Greedy() Config {
	return Config{Type: KindGreedy}
}

// ConfigName implements snconfig.Config.
func (Config) ConfigName() string {
	return Name
}

// DefaultConfig implements snconfig.Defaulter: beam search with four beams.
func (Config) DefaultConfig() Config {
	return Beam(defaultNumBeams)
}

func (c Config) String() string {
	if c.Type == KindBeam {
		return fmt.Sprintf("beam(num_beams=%d)", c.NumBeams)
	}
	return string(c.Type)
}

// wireConfig is the encoded shape shared by the JSON and YAML forms.
type wireConfig struct {
	Type     Kind    `json:"type" yaml:"type"`
	NumBeams *uint32 `json:"num_beams,omitempty" yaml:"num_beams,omitempty"`
}

func (c Config) toWire() (wireConfig, error) {
	switch c.Type {
	case KindBeam:
		n := c.NumBeams
		return wireConfig{Type: KindBeam, NumBeams: &n}, nil
	case KindGreedy:
		if c.NumBeams != 0 {
			return wireConfig{}, fmt.Errorf("%w: %d", ErrUnexpectedNumBeams, c.NumBeams)
		}
		return wireConfig{Type: KindGreedy}, nil
	default:
		return wireConfig{}, fmt.Errorf("%w: %q", ErrUnknownKind, c.Type)
	}
}

func (w wireConfig) toConfig() (Config, error) {
	switch w.Type {
	case KindBeam:
		if w.NumBeams == nil {
			return Config{}, ErrMissingNumBeams
		}
		return Beam(*w.NumBeams), nil
	case KindGreedy:
		return Greedy(), nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownKind, w.Type)
	}
}

func (c Config) MarshalJSON() ([]byte, error) {
	w, err := c.toWire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (c *Config) UnmarshalJSON(data []byte) error {
	var w wireConfig
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	decoded, err := w.toConfig()
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

func (c Config) MarshalYAML() (any, error) {
	return c.toWire()
}

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var w wireConfig
	if err := node.Decode(&w); err != nil {
		return err
	}
	decoded, err := w.toConfig()
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}
