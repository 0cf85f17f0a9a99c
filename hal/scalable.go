// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hal

import (
	"golang.org/x/exp/constraints"

	"github.com/db47h/sigflow"
	"github.com/db47h/sigflow/blocks"
)

// A ScalableInput converts raw readings of one hardware input channel
// into engineering units through the affine transform raw*scale+offset,
// and tags the result with a physical unit.
//
// The [minIn, maxIn] range is advisory metadata for the HAL backend: raw
// readings are expected to be validated against it before they reach the
// adapter, the adapter itself does not clamp.
//
// Unlike ports, all fields are operational tuning parameters, mutable
// after construction.
//
type ScalableInput[T constraints.Float] struct {
	id     string
	scale  T
	offset T
	minIn  T
	maxIn  T
	unit   sigflow.Unit
}

// NewScalableInput returns an adapter for the channel with the given id.
//
func NewScalableInput[T constraints.Float](id string, scale, offset, minIn, maxIn T, unit sigflow.Unit) *ScalableInput[T] {
	return &ScalableInput[T]{id: id, scale: scale, offset: offset, minIn: minIn, maxIn: maxIn, unit: unit}
}

// ID returns the channel id.
//
func (s *ScalableInput[T]) ID() string { return s.id }

// Convert applies the affine transform to a raw reading.
//
func (s *ScalableInput[T]) Convert(raw T) T { return raw*s.scale + s.offset }

// InRange reports whether a raw reading lies within the advisory valid
// range.
//
func (s *ScalableInput[T]) InRange(raw T) bool { return raw >= s.minIn && raw <= s.maxIn }

func (s *ScalableInput[T]) Scale() T               { return s.scale }
func (s *ScalableInput[T]) SetScale(v T)           { s.scale = v }
func (s *ScalableInput[T]) Offset() T              { return s.offset }
func (s *ScalableInput[T]) SetOffset(v T)          { s.offset = v }
func (s *ScalableInput[T]) MinIn() T               { return s.minIn }
func (s *ScalableInput[T]) SetMinIn(v T)           { s.minIn = v }
func (s *ScalableInput[T]) MaxIn() T               { return s.maxIn }
func (s *ScalableInput[T]) SetMaxIn(v T)           { s.maxIn = v }
func (s *ScalableInput[T]) Unit() sigflow.Unit     { return s.unit }
func (s *ScalableInput[T]) SetUnit(u sigflow.Unit) { s.unit = u }

// Source wraps a raw channel reader into a source block producing
// engineering units, the block through which this channel enters a
// control graph. The reader is expected to return pre-validated raw
// values, see InRange.
//
func (s *ScalableInput[T]) Source(read func() (T, sigflow.Timestamp)) *blocks.Source[T] {
	return blocks.NewSource(s.id, s.unit, func() (T, sigflow.Timestamp) {
		raw, ts := read()
		return s.Convert(raw), ts
	})
}
