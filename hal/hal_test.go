package hal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/sigflow"
	"github.com/db47h/sigflow/blocks"
	"github.com/db47h/sigflow/hal"
	"github.com/db47h/sigflow/sigtest"
)

func TestLookupUnit(t *testing.T) {
	u, err := hal.LookupUnit("W")
	require.NoError(t, err)
	assert.Equal(t, sigflow.Watt, u)

	u, err = hal.LookupUnit("rad")
	require.NoError(t, err)
	assert.Equal(t, sigflow.Radian, u)

	_, err = hal.LookupUnit("furlong")
	assert.Error(t, err)
}

func TestChannelTables(t *testing.T) {
	assert.Equal(t, hal.In, hal.DirectionOfChannel["AnalogIn"])
	assert.Equal(t, hal.Out, hal.DirectionOfChannel["Pwm"])
	assert.Equal(t, hal.Logic, hal.TypeOfChannel["DigIn"])
	assert.Equal(t, hal.Real, hal.TypeOfChannel["Fqd"])
}

func TestScalableInput(t *testing.T) {
	s := hal.NewScalableInput("ain0", 2.0, 1.0, 0.0, 4095.0, sigflow.Volt)

	assert.Equal(t, "ain0", s.ID())
	assert.Equal(t, 7.0, s.Convert(3))
	assert.True(t, s.InRange(0))
	assert.True(t, s.InRange(4095))
	assert.False(t, s.InRange(-1))

	// tuning parameters are mutable after construction
	s.SetScale(0.5)
	s.SetOffset(-1)
	s.SetMinIn(10)
	s.SetMaxIn(20)
	s.SetUnit(sigflow.Ampere)
	assert.Equal(t, 0.5, s.Scale())
	assert.Equal(t, -1.0, s.Offset())
	assert.Equal(t, 10.0, s.MinIn())
	assert.Equal(t, 20.0, s.MaxIn())
	assert.Equal(t, sigflow.Ampere, s.Unit())
	assert.Equal(t, 5.0, s.Convert(12))
}

func TestScalableInput_source(t *testing.T) {
	s := hal.NewScalableInput("ain1", 0.01, -5.0, 0.0, 1000.0, sigflow.Ampere)
	src := s.Source(func() (float64, sigflow.Timestamp) {
		return 700, 4
	})

	var got float64
	var at sigflow.Timestamp
	snk := blocks.NewSink("probe", sigflow.Ampere, func(v float64, ts sigflow.Timestamp) {
		got, at = v, ts
	})
	require.NoError(t, sigflow.Connect(snk.In(), src.Out()))
	sigtest.RunN(t, 1, src, snk)

	assert.InDelta(t, 2.0, got, 1e-9)
	assert.Equal(t, sigflow.Timestamp(4), at)
}

const cfg = `
channels:
  - id: motorCurrent
    kind: AnalogIn
    scale: 0.01
    offset: -5.0
    min: 0.0
    max: 4095.0
    unit: A
  - id: estop
    kind: DigIn
`

func TestLoadConfig(t *testing.T) {
	c, err := hal.LoadConfig(strings.NewReader(cfg))
	require.NoError(t, err)
	require.Len(t, c.Channels, 2)

	ch := c.Channels[0]
	assert.Equal(t, "motorCurrent", ch.ID)
	assert.Equal(t, "AnalogIn", ch.Kind)
	assert.Equal(t, 0.01, ch.Scale)

	s, err := ch.Scalable()
	require.NoError(t, err)
	assert.Equal(t, sigflow.Ampere, s.Unit())
	assert.InDelta(t, 2.0, s.Convert(700), 1e-9)

	// logic channels have no scaling constraints
	assert.Equal(t, "estop", c.Channels[1].ID)
}

func TestLoadConfig_invalid(t *testing.T) {
	td := []struct {
		name string
		yml  string
	}{
		{"unknown kind", "channels:\n  - id: a\n    kind: Uart\n"},
		{"unknown unit", "channels:\n  - id: a\n    kind: AnalogIn\n    scale: 1\n    min: 0\n    max: 1\n    unit: lb\n"},
		{"zero scale", "channels:\n  - id: a\n    kind: AnalogIn\n    min: 0\n    max: 1\n"},
		{"empty range", "channels:\n  - id: a\n    kind: AnalogIn\n    scale: 1\n    min: 2\n    max: 1\n"},
		{"empty id", "channels:\n  - kind: DigIn\n"},
		{"unknown field", "channels:\n  - id: a\n    kind: DigIn\n    speed: 9600\n"},
	}
	for _, test := range td {
		t.Run(test.name, func(t *testing.T) {
			_, err := hal.LoadConfig(strings.NewReader(test.yml))
			assert.Error(t, err)
		})
	}
}

func TestChannelConfig_scalableDirection(t *testing.T) {
	ch := hal.ChannelConfig{ID: "out0", Kind: "AnalogOut", Scale: 1, Min: 0, Max: 1}
	_, err := ch.Scalable()
	assert.Error(t, err)
}
