package sigflow

import "github.com/pkg/errors"

// A verifier is a block able to check its own wiring. BlockIO implements
// it; leaf blocks owning extra ports extend it.
type verifier interface {
	Verify() error
}

// Verify checks the wiring of a fully built graph: every input of every
// given block must be connected to an output of equal unit. Value types
// already match, Connect only wires ports of the same type.
//
// Go cannot carry a unit inside a port's type, so this pass is mandatory:
// run it once, after wiring and before the first cycle. It never needs to
// run again, the checked state is fixed at construction and connection
// time.
//
func Verify(blocks ...Block) error {
	for _, b := range blocks {
		v, ok := b.(verifier)
		if !ok {
			return errors.Errorf("block '%s' does not expose its ports for verification", b.Name())
		}
		if err := v.Verify(); err != nil {
			return err
		}
	}
	return nil
}
