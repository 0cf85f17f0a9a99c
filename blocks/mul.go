// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocks

import "github.com/db47h/sigflow"

// A Mul multiplies its two input values into one output value.
//
// The two inputs are direct ports with individually declared units, so
// they are addressed by name (In1, In2), not by index. The output unit is
// declared by the caller; it is never derived from the input units —
// declare the composite unit as a constant instead.
//
// The output timestamp is taken from the first input, which is the
// designated primary input.
//
type Mul[T Number] struct {
	*sigflow.BlockIO[T, T]
	in1, in2 sigflow.Input[T]
}

// NewMul returns a multiplier with dimensionless inputs and output.
//
func NewMul[T Number](name string) *Mul[T] {
	u := sigflow.Dimensionless
	return NewMulUnits[T](name, u, u, u)
}

// NewMulUnits returns a multiplier with the given input and output units.
//
func NewMulUnits[T Number](name string, u1, u2, uout sigflow.Unit) *Mul[T] {
	m := &Mul[T]{
		BlockIO: must(sigflow.NewBlockIO[T, T](name, 0, 1, nil, []sigflow.Unit{uout}, nil)),
		in1:     sigflow.NewInput[T](u1),
		in2:     sigflow.NewInput[T](u2),
	}
	m.in1.SetOwner(m)
	m.in2.SetOwner(m)
	return m
}

// Run writes the product of the two inputs; the timestamp is propagated
// from the first input.
//
func (m *Mul[T]) Run() {
	s1, s2 := m.in1.Signal(), m.in2.Signal()
	m.Out().Signal().Set(s1.Value()*s2.Value(), s1.Time())
}

// In1 returns the first (primary) input.
//
func (m *Mul[T]) In1() *sigflow.Input[T] { return &m.in1 }

// In2 returns the second input.
//
func (m *Mul[T]) In2() *sigflow.Input[T] { return &m.in2 }

// Verify extends the base check with the two direct inputs.
//
func (m *Mul[T]) Verify() error {
	if err := m.BlockIO.Verify(); err != nil {
		return err
	}
	if err := m.in1.Check(); err != nil {
		return err
	}
	return m.in2.Check()
}
