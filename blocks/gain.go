// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocks

import "github.com/db47h/sigflow"

// A Gain scales its input by a constant factor. One input, one output,
// both of the same unit; the gain itself is a tuning parameter, not a
// signal, and may be changed between cycles.
//
type Gain[T Number] struct {
	*sigflow.BlockIO[T, T]
	k T
}

// NewGain returns a gain block with factor k operating on the given unit.
//
func NewGain[T Number](name string, k T, unit sigflow.Unit) *Gain[T] {
	us := []sigflow.Unit{unit}
	return &Gain[T]{
		BlockIO: must(sigflow.NewBlockIO[T, T](name, 1, 1, us, us, nil)),
		k:       k,
	}
}

// Run writes k times the input value; the timestamp is propagated from
// the input.
//
func (g *Gain[T]) Run() {
	in := g.In().Signal()
	g.Out().Signal().Set(g.k*in.Value(), in.Time())
}

// K returns the gain factor.
//
func (g *Gain[T]) K() T { return g.k }

// SetK sets the gain factor.
//
func (g *Gain[T]) SetK(k T) { g.k = k }
