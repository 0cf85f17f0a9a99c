// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocks

import (
	"github.com/db47h/sigflow"
)

// A Source feeds values produced by a function into the graph. It has no
// inputs and one output; each cycle it writes the function's value and
// timestamp to the output signal. Hardware boundaries enter a graph
// through a Source, see hal.ScalableInput.
//
type Source[T any] struct {
	*sigflow.BlockIO[T, T]
	fn func() (T, sigflow.Timestamp)
}

// NewSource returns a source block producing values of the given unit.
//
func NewSource[T any](name string, unit sigflow.Unit, fn func() (T, sigflow.Timestamp)) *Source[T] {
	return &Source[T]{
		BlockIO: must(sigflow.NewBlockIO[T, T](name, 0, 1, nil, []sigflow.Unit{unit}, nil)),
		fn:      fn,
	}
}

// Run reads the function and writes the output signal.
//
func (s *Source[T]) Run() {
	v, ts := s.fn()
	s.Out().Signal().Set(v, ts)
}

// A Sink hands each cycle's input signal to a function. It has one input
// and no outputs; the function typically drives an actuator channel or a
// probe.
//
type Sink[T any] struct {
	*sigflow.BlockIO[T, T]
	fn func(T, sigflow.Timestamp)
}

// NewSink returns a sink block consuming values of the given unit.
//
func NewSink[T any](name string, unit sigflow.Unit, fn func(T, sigflow.Timestamp)) *Sink[T] {
	return &Sink[T]{
		BlockIO: must(sigflow.NewBlockIO[T, T](name, 1, 0, []sigflow.Unit{unit}, nil, nil)),
		fn:      fn,
	}
}

// Run reads the input signal and hands it to the function.
//
func (s *Sink[T]) Run() {
	sig := s.In().Signal()
	s.fn(sig.Value(), sig.Time())
}
