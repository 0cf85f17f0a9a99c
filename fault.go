package sigflow

import "fmt"

// A ConfigurationFault reports a wiring or block declaration defect found
// at graph build time: a unit slice whose length disagrees with the port
// count, a connection between ports of unequal units, or an input left
// unconnected. It always surfaces before the cycle loop starts.
//
type ConfigurationFault struct {
	Block  string
	Reason string
	Want   Unit // expected unit, when the fault is a unit mismatch
	Got    Unit // actual unit, when the fault is a unit mismatch
}

func (f *ConfigurationFault) Error() string {
	s := "block '" + f.Block + "': " + f.Reason
	if f.Want != f.Got {
		s += fmt.Sprintf(" (want %s, got %s)", f.Want, f.Got)
	}
	return s
}

// An IndexOutOfBoundsFault reports a runtime-indexed port access with an
// index outside the block's declared port count. It indicates a wiring
// defect to fix, not to retry; port state is never touched by the
// offending access.
//
type IndexOutOfBoundsFault struct {
	Block string
	Side  string // "input" or "output"
	Index int
	Len   int
}

func (f *IndexOutOfBoundsFault) Error() string {
	return fmt.Sprintf("trying to get inexistent %s %d in block '%s' (have %d)",
		f.Side, f.Index, f.Block, f.Len)
}

// A StructuralFault reports use of a port accessor that is not valid for
// the block's cardinality or homogeneity: single access on a many-port
// side, runtime indexing into ports with distinct units, any access on a
// zero-arity side, or setting a port's owner twice.
//
type StructuralFault struct {
	Block  string
	Op     string
	Reason string
}

func (f *StructuralFault) Error() string {
	return fmt.Sprintf("block '%s': %s: %s", f.Block, f.Op, f.Reason)
}

// RunCycle invokes one cycle on b. Faults raised by port accessors during
// the cycle are returned as errors; the caller decides whether to abort
// the cycle or the whole run. Any other panic propagates unchanged.
//
func RunCycle(b Block) (err error) {
	defer func() {
		switch f := recover().(type) {
		case nil:
		case *IndexOutOfBoundsFault:
			err = f
		case *StructuralFault:
			err = f
		case *ConfigurationFault:
			err = f
		default:
			panic(f)
		}
	}()
	b.Run()
	return nil
}
