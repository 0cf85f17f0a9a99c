package sigflow_test

import (
	"strings"
	"testing"

	sf "github.com/db47h/sigflow"
)

type namedBlock struct{ name string }

func (b *namedBlock) Name() string { return b.name }
func (b *namedBlock) Run()         {}

func TestSignal_clear(t *testing.T) {
	var s sf.Signal[float64]
	s.Set(3.5, 42)
	s.Clear()
	if s.Value() != 0 || s.Time() != 0 {
		t.Errorf("after Clear: value %g, time %d", s.Value(), s.Time())
	}
}

func TestSignal_idempotentReads(t *testing.T) {
	var s sf.Signal[float64]
	s.Set(1.25, 7)
	for i := 0; i < 3; i++ {
		if s.Value() != 1.25 || s.Time() != 7 {
			t.Fatalf("read %d: value %g, time %d", i, s.Value(), s.Time())
		}
	}
}

func TestPort_setOwnerOnce(t *testing.T) {
	in := sf.NewInput[float64](sf.Watt)
	in.SetOwner(&namedBlock{"a"})
	defer func() {
		f, ok := recover().(*sf.StructuralFault)
		if !ok {
			t.Fatal("second SetOwner did not raise a StructuralFault")
		}
		if f.Block != "b" {
			t.Errorf("fault names block %q", f.Block)
		}
	}()
	in.SetOwner(&namedBlock{"b"})
}

func TestConnect(t *testing.T) {
	in := sf.NewInput[float64](sf.Watt)
	out := sf.NewOutput[float64](sf.Watt)
	in.SetOwner(&namedBlock{"load"})
	out.SetOwner(&namedBlock{"supply"})

	if err := sf.Connect(&in, &out); err != nil {
		t.Fatal(err)
	}
	if !in.Connected() || in.Source() != &out {
		t.Error("input not connected to its source")
	}

	// reads through the input observe the output's signal
	out.Signal().Set(42, 9)
	if v, ts := in.Signal().Value(), in.Signal().Time(); v != 42 || ts != 9 {
		t.Errorf("read through input: %g at t=%d", v, ts)
	}

	// reconnecting is an error
	out2 := sf.NewOutput[float64](sf.Watt)
	if err := sf.Connect(&in, &out2); err == nil {
		t.Error("reconnection accepted")
	}
}

func TestConnect_unitMismatch(t *testing.T) {
	in := sf.NewInput[float64](sf.Volt)
	out := sf.NewOutput[float64](sf.Watt)
	in.SetOwner(&namedBlock{"load"})
	out.SetOwner(&namedBlock{"supply"})

	err := sf.Connect(&in, &out)
	f, ok := err.(*sf.ConfigurationFault)
	if !ok {
		t.Fatalf("got %T, want *ConfigurationFault", err)
	}
	if f.Want != sf.Volt || f.Got != sf.Watt {
		t.Errorf("fault units: want %v, got %v", f.Want, f.Got)
	}
	for _, s := range []string{"load", "supply", sf.Volt.String(), sf.Watt.String()} {
		if !strings.Contains(f.Error(), s) {
			t.Errorf("fault message %q misses %q", f.Error(), s)
		}
	}
	if in.Connected() {
		t.Error("input connected despite fault")
	}
}

func TestInput_unconnectedFallback(t *testing.T) {
	in := sf.NewInput[float64](sf.Dimensionless)
	in.SetOwner(&namedBlock{"probe"})
	in.Signal().Set(5, 3)
	if v, ts := in.Signal().Value(), in.Signal().Time(); v != 5 || ts != 3 {
		t.Errorf("own signal read: %g at t=%d", v, ts)
	}
}
