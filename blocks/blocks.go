// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package blocks provides a small library of leaf control blocks built on
// the sigflow block base.
//
package blocks

import "golang.org/x/exp/constraints"

// A Number is any value type the arithmetic blocks operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// must unwraps block base construction for blocks whose declared arities
// are statically valid.
func must[B any](b B, err error) B {
	if err != nil {
		panic(err)
	}
	return b
}
