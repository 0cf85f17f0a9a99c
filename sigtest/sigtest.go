// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package sigtest provides utility functions for testing control blocks.
//
package sigtest

import (
	"testing"

	"github.com/db47h/sigflow"
	"github.com/db47h/sigflow/blocks"
)

// Constant returns a source block producing the same value and timestamp
// every cycle. Tests use it to feed fixed stimuli into a block under
// test.
//
func Constant[T any](name string, unit sigflow.Unit, v T, ts sigflow.Timestamp) *blocks.Source[T] {
	return blocks.NewSource(name, unit, func() (T, sigflow.Timestamp) {
		return v, ts
	})
}

// RunN verifies the wiring of the given blocks, then runs n cycles over
// them in the given order, failing the test on any fault. The order
// stands in for the topological order a scheduler would compute.
//
func RunN(t *testing.T, n int, bs ...sigflow.Block) {
	t.Helper()
	if err := sigflow.Verify(bs...); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for _, b := range bs {
			if err := sigflow.RunCycle(b); err != nil {
				t.Fatalf("cycle %d, block '%s': %v", i, b.Name(), err)
			}
		}
	}
}
