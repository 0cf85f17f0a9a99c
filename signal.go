// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sigflow

// A Timestamp is the logical time at which a signal value was produced,
// in scheduler ticks. The zero value means "no timestamp".
//
type Timestamp int64

// A Signal is a timestamped value held by a port. It is owned by exactly
// one port and written wholesale by that port's owning block; everyone
// else must treat it as read-only.
//
type Signal[T any] struct {
	value T
	time  Timestamp
}

// Value returns the signal value.
//
func (s *Signal[T]) Value() T { return s.value }

// SetValue sets the signal value, leaving the timestamp untouched.
//
func (s *Signal[T]) SetValue(v T) { s.value = v }

// Time returns the signal timestamp.
//
func (s *Signal[T]) Time() Timestamp { return s.time }

// SetTime sets the signal timestamp.
//
func (s *Signal[T]) SetTime(ts Timestamp) { s.time = ts }

// Set sets value and timestamp in one write.
//
func (s *Signal[T]) Set(v T, ts Timestamp) {
	s.value = v
	s.time = ts
}

// Clear resets the value to the type's zero value and the timestamp to
// empty.
//
func (s *Signal[T]) Clear() {
	var zero T
	s.value = zero
	s.time = 0
}
