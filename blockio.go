// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sigflow

import "fmt"

// A BlockIO is the generic base for blocks with N inputs and M outputs.
//
// N and M each fall into one of three cardinality classes which determine
// the storage shape of that side, not just the count:
//
//	none (0)    no storage, no accessor
//	single (1)  the port itself; access with In / Out
//	many (>1)   a fixed set of ports; access with InAt / OutAt when all
//	            declared units are equal (homogeneous), with InFixed /
//	            OutFixed otherwise
//
// The shape is selected once, at construction, and the per-cycle accessors
// neither branch on it nor allocate.
//
// Embed a BlockIO and shadow Run to implement an algorithm, or hand a
// closure to NewBlockIO for simple one-off blocks:
//
//	var b *sigflow.BlockIO[float64, float64]
//	b, err := sigflow.NewBlockIO[float64, float64]("twice", 1, 1, nil, nil, func() {
//		in := b.In().Signal()
//		b.Out().Signal().Set(2*in.Value(), in.Time())
//	})
//
type BlockIO[Tin, Tout any] struct {
	block
	run func()
	in  inSet[Tin]
	out outSet[Tout]
}

// NewBlockIO constructs a block base with nin inputs and nout outputs.
//
// uin and uout declare the per-port units in port order; nil or empty
// means all dimensionless. A slice whose length is neither zero nor the
// port count is a ConfigurationFault. run is the algorithm executed each
// cycle; nil stores a no-op, for subtypes that shadow Run instead.
//
// All ports get their owner back-reference set here, and every output
// signal is cleared before the first cycle.
//
func NewBlockIO[Tin, Tout any](name string, nin, nout int, uin, uout []Unit, run func()) (*BlockIO[Tin, Tout], error) {
	in, err := newInSet[Tin](name, nin, uin)
	if err != nil {
		return nil, err
	}
	out, err := newOutSet[Tout](name, nout, uout)
	if err != nil {
		return nil, err
	}
	if run == nil {
		run = func() {}
	}
	b := &BlockIO[Tin, Tout]{block: block{name: name}, run: run, in: in, out: out}
	b.in.each(func(p *Input[Tin]) {
		p.SetOwner(b)
	})
	b.out.each(func(p *Output[Tout]) {
		p.SetOwner(b)
		p.Signal().Clear()
	})
	return b, nil
}

// Run executes the stored algorithm.
//
func (b *BlockIO[Tin, Tout]) Run() { b.run() }

// In returns the single input. Valid only for blocks with exactly one
// input; any other cardinality faults.
//
func (b *BlockIO[Tin, Tout]) In() *Input[Tin] { return b.in.single() }

// InAt returns input i, selected at run time. Valid only for blocks with
// more than one input, all of the same unit. An index outside [0,NumIn)
// raises an IndexOutOfBoundsFault naming the block.
//
func (b *BlockIO[Tin, Tout]) InAt(i int) *Input[Tin] { return b.in.at(i) }

// InFixed returns input i for a fixed, compile-time-known wiring index.
// Valid only for blocks with more than one input. For homogeneous inputs
// it returns the same port as InAt(i); for inputs with distinct units it
// is the only accessor. An out-of-range index is an immediate
// StructuralFault, it is a defect in the wiring code itself.
//
func (b *BlockIO[Tin, Tout]) InFixed(i int) *Input[Tin] { return b.in.fixed(i) }

// NumIn returns the number of inputs.
//
func (b *BlockIO[Tin, Tout]) NumIn() int { return b.in.len() }

// InUnits returns the declared input units in port order.
//
func (b *BlockIO[Tin, Tout]) InUnits() []Unit {
	us := make([]Unit, 0, b.in.len())
	b.in.each(func(p *Input[Tin]) { us = append(us, p.Unit()) })
	return us
}

// Out returns the single output. Valid only for blocks with exactly one
// output; any other cardinality faults.
//
func (b *BlockIO[Tin, Tout]) Out() *Output[Tout] { return b.out.single() }

// OutAt returns output i, selected at run time. Same contract as InAt.
//
func (b *BlockIO[Tin, Tout]) OutAt(i int) *Output[Tout] { return b.out.at(i) }

// OutFixed returns output i for a fixed wiring index. Same contract as
// InFixed.
//
func (b *BlockIO[Tin, Tout]) OutFixed(i int) *Output[Tout] { return b.out.fixed(i) }

// NumOut returns the number of outputs.
//
func (b *BlockIO[Tin, Tout]) NumOut() int { return b.out.len() }

// OutUnits returns the declared output units in port order.
//
func (b *BlockIO[Tin, Tout]) OutUnits() []Unit {
	us := make([]Unit, 0, b.out.len())
	b.out.each(func(p *Output[Tout]) { us = append(us, p.Unit()) })
	return us
}

// Verify checks every input for a connected, unit-matching source. See
// the package level Verify.
//
func (b *BlockIO[Tin, Tout]) Verify() error {
	var err error
	b.in.each(func(p *Input[Tin]) {
		if err == nil {
			err = p.Check()
		}
	})
	return err
}

// cardinality of one side of a block's port set.
type cardinality int

const (
	cardNone cardinality = iota
	cardSingle
	cardMany
)

func cardinalityOf(n int) cardinality {
	switch {
	case n == 0:
		return cardNone
	case n == 1:
		return cardSingle
	}
	return cardMany
}

// homogeneous reports whether all declared units equal the first. An empty
// declaration is homogeneous: every port defaults to dimensionless.
func homogeneous(units []Unit) bool {
	for _, u := range units {
		if u != units[0] {
			return false
		}
	}
	return true
}

func checkSide(block, side string, n int, units []Unit) error {
	if n < 0 {
		return &ConfigurationFault{Block: block, Reason: fmt.Sprintf("negative %s count %d", side, n)}
	}
	if len(units) != 0 && len(units) != n {
		return &ConfigurationFault{
			Block:  block,
			Reason: fmt.Sprintf("%d %s units declared for %d %ss", len(units), side, n, side),
		}
	}
	return nil
}

// inSet is the storage strategy for a block's input side. Exactly one of
// the four implementations is selected at construction: empty, single,
// homogeneous many or heterogeneous many. Each implements the full access
// surface and faults on the accessors that are invalid for its shape.
type inSet[T any] interface {
	single() *Input[T]
	at(i int) *Input[T]
	fixed(i int) *Input[T]
	len() int
	each(fn func(*Input[T]))
}

func newInSet[T any](block string, n int, units []Unit) (inSet[T], error) {
	if err := checkSide(block, "input", n, units); err != nil {
		return nil, err
	}
	unitAt := func(i int) Unit {
		if len(units) == 0 {
			return Dimensionless
		}
		return units[i]
	}
	switch cardinalityOf(n) {
	case cardNone:
		return emptyIn[T]{block: block}, nil
	case cardSingle:
		return &singleIn[T]{block: block, port: NewInput[T](unitAt(0))}, nil
	}
	ports := make([]Input[T], n)
	for i := range ports {
		ports[i] = NewInput[T](unitAt(i))
	}
	if homogeneous(units) {
		return &homIn[T]{block: block, ports: ports}, nil
	}
	return &hetIn[T]{block: block, ports: ports}, nil
}

type emptyIn[T any] struct{ block string }

func (s emptyIn[T]) single() *Input[T] {
	panic(&StructuralFault{Block: s.block, Op: "In", Reason: "block has no inputs"})
}
func (s emptyIn[T]) at(int) *Input[T] {
	panic(&StructuralFault{Block: s.block, Op: "InAt", Reason: "block has no inputs"})
}
func (s emptyIn[T]) fixed(int) *Input[T] {
	panic(&StructuralFault{Block: s.block, Op: "InFixed", Reason: "block has no inputs"})
}
func (s emptyIn[T]) len() int              { return 0 }
func (s emptyIn[T]) each(func(*Input[T])) {}

type singleIn[T any] struct {
	block string
	port  Input[T]
}

func (s *singleIn[T]) single() *Input[T] { return &s.port }
func (s *singleIn[T]) at(int) *Input[T] {
	panic(&StructuralFault{Block: s.block, Op: "InAt", Reason: "single input, use In"})
}
func (s *singleIn[T]) fixed(int) *Input[T] {
	panic(&StructuralFault{Block: s.block, Op: "InFixed", Reason: "single input, use In"})
}
func (s *singleIn[T]) len() int                 { return 1 }
func (s *singleIn[T]) each(fn func(*Input[T])) { fn(&s.port) }

type homIn[T any] struct {
	block string
	ports []Input[T]
}

func (s *homIn[T]) single() *Input[T] {
	panic(&StructuralFault{Block: s.block, Op: "In", Reason: "multiple inputs, use InAt"})
}
func (s *homIn[T]) at(i int) *Input[T] {
	if i < 0 || i >= len(s.ports) {
		panic(&IndexOutOfBoundsFault{Block: s.block, Side: "input", Index: i, Len: len(s.ports)})
	}
	return &s.ports[i]
}
func (s *homIn[T]) fixed(i int) *Input[T] {
	if i < 0 || i >= len(s.ports) {
		panic(&StructuralFault{Block: s.block, Op: "InFixed",
			Reason: fmt.Sprintf("fixed index %d outside the %d declared inputs", i, len(s.ports))})
	}
	return &s.ports[i]
}
func (s *homIn[T]) len() int { return len(s.ports) }
func (s *homIn[T]) each(fn func(*Input[T])) {
	for i := range s.ports {
		fn(&s.ports[i])
	}
}

type hetIn[T any] struct {
	block string
	ports []Input[T]
}

func (s *hetIn[T]) single() *Input[T] {
	panic(&StructuralFault{Block: s.block, Op: "In", Reason: "multiple inputs, use InFixed"})
}
func (s *hetIn[T]) at(int) *Input[T] {
	panic(&StructuralFault{Block: s.block, Op: "InAt",
		Reason: "runtime indexing into inputs with distinct units, use InFixed"})
}
func (s *hetIn[T]) fixed(i int) *Input[T] {
	if i < 0 || i >= len(s.ports) {
		panic(&StructuralFault{Block: s.block, Op: "InFixed",
			Reason: fmt.Sprintf("fixed index %d outside the %d declared inputs", i, len(s.ports))})
	}
	return &s.ports[i]
}
func (s *hetIn[T]) len() int { return len(s.ports) }
func (s *hetIn[T]) each(fn func(*Input[T])) {
	for i := range s.ports {
		fn(&s.ports[i])
	}
}

// outSet mirrors inSet for the output side.
type outSet[T any] interface {
	single() *Output[T]
	at(i int) *Output[T]
	fixed(i int) *Output[T]
	len() int
	each(fn func(*Output[T]))
}

func newOutSet[T any](block string, n int, units []Unit) (outSet[T], error) {
	if err := checkSide(block, "output", n, units); err != nil {
		return nil, err
	}
	unitAt := func(i int) Unit {
		if len(units) == 0 {
			return Dimensionless
		}
		return units[i]
	}
	switch cardinalityOf(n) {
	case cardNone:
		return emptyOut[T]{block: block}, nil
	case cardSingle:
		return &singleOut[T]{block: block, port: NewOutput[T](unitAt(0))}, nil
	}
	ports := make([]Output[T], n)
	for i := range ports {
		ports[i] = NewOutput[T](unitAt(i))
	}
	if homogeneous(units) {
		return &homOut[T]{block: block, ports: ports}, nil
	}
	return &hetOut[T]{block: block, ports: ports}, nil
}

type emptyOut[T any] struct{ block string }

func (s emptyOut[T]) single() *Output[T] {
	panic(&StructuralFault{Block: s.block, Op: "Out", Reason: "block has no outputs"})
}
func (s emptyOut[T]) at(int) *Output[T] {
	panic(&StructuralFault{Block: s.block, Op: "OutAt", Reason: "block has no outputs"})
}
func (s emptyOut[T]) fixed(int) *Output[T] {
	panic(&StructuralFault{Block: s.block, Op: "OutFixed", Reason: "block has no outputs"})
}
func (s emptyOut[T]) len() int               { return 0 }
func (s emptyOut[T]) each(func(*Output[T])) {}

type singleOut[T any] struct {
	block string
	port  Output[T]
}

func (s *singleOut[T]) single() *Output[T] { return &s.port }
func (s *singleOut[T]) at(int) *Output[T] {
	panic(&StructuralFault{Block: s.block, Op: "OutAt", Reason: "single output, use Out"})
}
func (s *singleOut[T]) fixed(int) *Output[T] {
	panic(&StructuralFault{Block: s.block, Op: "OutFixed", Reason: "single output, use Out"})
}
func (s *singleOut[T]) len() int                  { return 1 }
func (s *singleOut[T]) each(fn func(*Output[T])) { fn(&s.port) }

type homOut[T any] struct {
	block string
	ports []Output[T]
}

func (s *homOut[T]) single() *Output[T] {
	panic(&StructuralFault{Block: s.block, Op: "Out", Reason: "multiple outputs, use OutAt"})
}
func (s *homOut[T]) at(i int) *Output[T] {
	if i < 0 || i >= len(s.ports) {
		panic(&IndexOutOfBoundsFault{Block: s.block, Side: "output", Index: i, Len: len(s.ports)})
	}
	return &s.ports[i]
}
func (s *homOut[T]) fixed(i int) *Output[T] {
	if i < 0 || i >= len(s.ports) {
		panic(&StructuralFault{Block: s.block, Op: "OutFixed",
			Reason: fmt.Sprintf("fixed index %d outside the %d declared outputs", i, len(s.ports))})
	}
	return &s.ports[i]
}
func (s *homOut[T]) len() int { return len(s.ports) }
func (s *homOut[T]) each(fn func(*Output[T])) {
	for i := range s.ports {
		fn(&s.ports[i])
	}
}

type hetOut[T any] struct {
	block string
	ports []Output[T]
}

func (s *hetOut[T]) single() *Output[T] {
	panic(&StructuralFault{Block: s.block, Op: "Out", Reason: "multiple outputs, use OutFixed"})
}
func (s *hetOut[T]) at(int) *Output[T] {
	panic(&StructuralFault{Block: s.block, Op: "OutAt",
		Reason: "runtime indexing into outputs with distinct units, use OutFixed"})
}
func (s *hetOut[T]) fixed(i int) *Output[T] {
	if i < 0 || i >= len(s.ports) {
		panic(&StructuralFault{Block: s.block, Op: "OutFixed",
			Reason: fmt.Sprintf("fixed index %d outside the %d declared outputs", i, len(s.ports))})
	}
	return &s.ports[i]
}
func (s *hetOut[T]) len() int { return len(s.ports) }
func (s *hetOut[T]) each(fn func(*Output[T])) {
	for i := range s.ports {
		fn(&s.ports[i])
	}
}
