// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sigflow

import "github.com/pkg/errors"

// An Input is a typed port through which a block reads one signal. It is
// tagged with a Unit and holds a back-reference to its owning block, set
// exactly once at block construction.
//
// A connected Input resolves Signal to its upstream Output's signal, so a
// read always observes the last value written to that exact signal. An
// unconnected Input falls back to its own held signal; that is the slot an
// external feed (a hardware channel) writes into.
//
type Input[T any] struct {
	sig    Signal[T]
	unit   Unit
	owner  Block
	source *Output[T]
}

// NewInput returns an input port tagged with the given unit. Blocks create
// their ports at construction and never copy them afterwards.
//
func NewInput[T any](u Unit) Input[T] {
	return Input[T]{unit: u}
}

// Signal returns the signal read through this input: the upstream output's
// signal when connected, the input's own signal otherwise.
//
func (p *Input[T]) Signal() *Signal[T] {
	if p.source != nil {
		return &p.source.sig
	}
	return &p.sig
}

// Unit returns the declared unit of the port.
//
func (p *Input[T]) Unit() Unit { return p.unit }

// Owner returns the block owning this port.
//
func (p *Input[T]) Owner() Block { return p.owner }

// Source returns the upstream output feeding this input, or nil.
//
func (p *Input[T]) Source() *Output[T] { return p.source }

// Connected reports whether the input has an upstream source.
//
func (p *Input[T]) Connected() bool { return p.source != nil }

// SetOwner establishes the back-reference to the owning block. It is
// called by the owning block during its own construction, exactly once;
// a second call is a programming error and faults.
//
func (p *Input[T]) SetOwner(b Block) {
	if p.owner != nil {
		panic(&StructuralFault{Block: b.Name(), Op: "SetOwner", Reason: "port owner already set"})
	}
	p.owner = b
}

// Check verifies that the input is connected and that its unit equals its
// source's unit. The graph verification pass calls it on every input
// before the cycle loop starts.
//
func (p *Input[T]) Check() error {
	if p.source == nil {
		return &ConfigurationFault{Block: ownerName(p.owner), Reason: "input not connected to any output"}
	}
	if p.unit != p.source.unit {
		return &ConfigurationFault{
			Block:  ownerName(p.owner),
			Reason: "unit mismatch on connection to block '" + ownerName(p.source.owner) + "'",
			Want:   p.unit,
			Got:    p.source.unit,
		}
	}
	return nil
}

// An Output is a typed port through which a block writes one signal. Like
// an Input it carries a Unit tag and a back-reference to its owner, set
// once at construction.
//
type Output[T any] struct {
	sig   Signal[T]
	unit  Unit
	owner Block
}

// NewOutput returns an output port tagged with the given unit.
//
func NewOutput[T any](u Unit) Output[T] {
	return Output[T]{unit: u}
}

// Signal returns the signal held by this output.
//
func (p *Output[T]) Signal() *Signal[T] { return &p.sig }

// Unit returns the declared unit of the port.
//
func (p *Output[T]) Unit() Unit { return p.unit }

// Owner returns the block owning this port.
//
func (p *Output[T]) Owner() Block { return p.owner }

// SetOwner establishes the back-reference to the owning block. Same
// contract as Input.SetOwner.
//
func (p *Output[T]) SetOwner(b Block) {
	if p.owner != nil {
		panic(&StructuralFault{Block: b.Name(), Op: "SetOwner", Reason: "port owner already set"})
	}
	p.owner = b
}

// Connect wires in to read from out. Value type equality is enforced by
// the compiler; unit equality is checked here and a mismatch is a
// ConfigurationFault. Connecting an already connected input is an error.
//
func Connect[T any](in *Input[T], out *Output[T]) error {
	if in.source != nil {
		return errors.Errorf("input of block '%s' already connected", ownerName(in.owner))
	}
	if in.unit != out.unit {
		return &ConfigurationFault{
			Block:  ownerName(in.owner),
			Reason: "unit mismatch on connection to block '" + ownerName(out.owner) + "'",
			Want:   in.unit,
			Got:    out.unit,
		}
	}
	in.source = out
	return nil
}

func ownerName(b Block) string {
	if b == nil {
		return "?"
	}
	return b.Name()
}
