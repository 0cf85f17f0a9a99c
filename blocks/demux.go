// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blocks

import (
	"fmt"

	"github.com/db47h/sigflow"
)

// A DeMux splits one vector-valued input into n scalar outputs. All ports
// share one unit, so the outputs form a homogeneous set addressable at
// run time. Each cycle, output i receives element i of the input vector
// and the input's timestamp.
//
// If the input vector is shorter than n, only the covered outputs are
// written; the rest keep their previous signal. The cycle stays bounded
// and allocation free either way.
//
type DeMux[T any] struct {
	*sigflow.BlockIO[[]T, T]
	n int
}

// NewDeMux returns a demultiplexer with n scalar outputs. n must be at
// least 2, a single output needs no demultiplexer.
//
func NewDeMux[T any](name string, n int, unit sigflow.Unit) (*DeMux[T], error) {
	if n < 2 {
		return nil, &sigflow.ConfigurationFault{
			Block:  name,
			Reason: fmt.Sprintf("demultiplexer needs at least 2 outputs, got %d", n),
		}
	}
	uout := make([]sigflow.Unit, n)
	for i := range uout {
		uout[i] = unit
	}
	bio, err := sigflow.NewBlockIO[[]T, T](name, 1, n, []sigflow.Unit{unit}, uout, nil)
	if err != nil {
		return nil, err
	}
	return &DeMux[T]{BlockIO: bio, n: n}, nil
}

// Run distributes the input vector over the outputs.
//
func (d *DeMux[T]) Run() {
	in := d.In().Signal()
	v, ts := in.Value(), in.Time()
	n := d.n
	if len(v) < n {
		n = len(v)
	}
	for i := 0; i < n; i++ {
		d.OutAt(i).Signal().Set(v[i], ts)
	}
}
