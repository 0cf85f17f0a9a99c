package hal

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A ChannelConfig describes one hardware channel in a HAL configuration
// file.
type ChannelConfig struct {
	ID     string  `yaml:"id"`
	Kind   string  `yaml:"kind"`
	Scale  float64 `yaml:"scale"`
	Offset float64 `yaml:"offset"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Unit   string  `yaml:"unit"`
}

// A Config is the parsed form of a HAL configuration file.
type Config struct {
	Channels []ChannelConfig `yaml:"channels"`
}

// LoadConfig parses and validates a YAML HAL configuration:
//
//	channels:
//	  - id: motorCurrent
//	    kind: AnalogIn
//	    scale: 0.01
//	    offset: -5.0
//	    min: 0.0
//	    max: 4095.0
//	    unit: A
//
// Unknown channel kinds, unresolvable unit names, empty ids, a zero scale
// on a Real channel and an empty valid range are all rejected here, before
// any channel is wired into a graph. An omitted unit means dimensionless.
//
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decode hal config")
	}
	for i := range c.Channels {
		if err := c.Channels[i].validate(); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (c *ChannelConfig) validate() error {
	if c.ID == "" {
		return errors.New("channel with empty id")
	}
	if _, ok := DirectionOfChannel[c.Kind]; !ok {
		return errors.Errorf("channel %q: unknown kind %q", c.ID, c.Kind)
	}
	if c.Unit != "" {
		if _, err := LookupUnit(c.Unit); err != nil {
			return errors.Wrapf(err, "channel %q", c.ID)
		}
	}
	if TypeOfChannel[c.Kind] == Real {
		if c.Scale == 0 {
			return errors.Errorf("channel %q: zero scale", c.ID)
		}
		if c.Min >= c.Max {
			return errors.Errorf("channel %q: empty valid range [%g, %g]", c.ID, c.Min, c.Max)
		}
	}
	return nil
}

// Scalable builds the ScalableInput adapter for an input channel.
//
func (c *ChannelConfig) Scalable() (*ScalableInput[float64], error) {
	if DirectionOfChannel[c.Kind] != In {
		return nil, errors.Errorf("channel %q: kind %q is not an input", c.ID, c.Kind)
	}
	unit := UnitByName["1"]
	if c.Unit != "" {
		var err error
		if unit, err = LookupUnit(c.Unit); err != nil {
			return nil, errors.Wrapf(err, "channel %q", c.ID)
		}
	}
	return NewScalableInput(c.ID, c.Scale, c.Offset, c.Min, c.Max, unit), nil
}
