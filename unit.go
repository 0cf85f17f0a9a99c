// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sigflow

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Unit describes a physical dimension as the exponents of the seven SI
// base units plus a radian flag. A length exponent of 2 and a time exponent
// of -1 reads as "metre squared per second". The radian flag marks angular
// quantities, which are otherwise dimensionless.
//
// Units are immutable values. The only ways to obtain one are the NewUnit
// constructor and the package's named constants. Two Units are equal iff
// all eight fields are equal; the == operator implements exactly that.
//
type Unit struct {
	length      int
	mass        int
	time        int
	current     int
	temperature int
	substance   int
	intensity   int
	radian      bool
}

// Derived units used throughout control graphs. Composite units are
// declared here as constants; they are never computed from operand units
// at run time.
var (
	Dimensionless = Unit{}
	Metre         = MustUnit(1, 0, 0, 0, 0, 0, 0, false)
	Kilogram      = MustUnit(0, 1, 0, 0, 0, 0, 0, false)
	Second        = MustUnit(0, 0, 1, 0, 0, 0, 0, false)
	Ampere        = MustUnit(0, 0, 0, 1, 0, 0, 0, false)
	Kelvin        = MustUnit(0, 0, 0, 0, 1, 0, 0, false)
	Watt          = MustUnit(2, 1, -3, 0, 0, 0, 0, false)
	Newton        = MustUnit(1, 1, -2, 0, 0, 0, 0, false)
	Joule         = MustUnit(2, 1, -2, 0, 0, 0, 0, false)
	Volt          = MustUnit(2, 1, -3, -1, 0, 0, 0, false)
	Radian        = MustUnit(0, 0, 0, 0, 0, 0, 0, true)
)

// NewUnit returns the Unit with the given base unit exponents, in SI order:
// length, mass, time, electric current, thermodynamic temperature, amount
// of substance, luminous intensity.
//
// It rejects illegal combinations. The only rule enforced at present is
// that a radian-flagged unit must have all-zero exponents; further legality
// rules may be added here without touching any call site.
//
func NewUnit(length, mass, time, current, temperature, substance, intensity int, radian bool) (Unit, error) {
	if radian && (length != 0 || mass != 0 || time != 0 || current != 0 ||
		temperature != 0 || substance != 0 || intensity != 0) {
		return Unit{}, errors.New("invalid unit: radian combined with base unit exponents")
	}
	return Unit{length, mass, time, current, temperature, substance, intensity, radian}, nil
}

// MustUnit is like NewUnit but panics on an illegal combination. Use it to
// declare unit constants.
//
func MustUnit(length, mass, time, current, temperature, substance, intensity int, radian bool) Unit {
	u, err := NewUnit(length, mass, time, current, temperature, substance, intensity, radian)
	if err != nil {
		panic(err)
	}
	return u
}

// Exponents returns the seven base unit exponents in SI order.
//
func (u Unit) Exponents() [7]int {
	return [7]int{u.length, u.mass, u.time, u.current, u.temperature, u.substance, u.intensity}
}

// IsRadian reports whether u is flagged as an angular quantity.
//
func (u Unit) IsRadian() bool { return u.radian }

// IsDimensionless reports whether all exponents are zero and the radian
// flag is unset.
//
func (u Unit) IsDimensionless() bool { return u == Dimensionless }

// Compare returns -1, 0 or 1 depending on the lexicographic order of the
// eight fields of u and v, exponents first in SI order, radian last with
// false before true. The resulting order is total and consistent with ==.
//
func (u Unit) Compare(v Unit) int {
	a, b := u.Exponents(), v.Exponents()
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case u.radian == v.radian:
		return 0
	case v.radian:
		return -1
	}
	return 1
}

// Less reports whether u orders before v. See Compare.
//
func (u Unit) Less(v Unit) bool { return u.Compare(v) < 0 }

var baseSymbols = [7]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// String renders u with SI base unit symbols, e.g. "m^2·kg·s^-3".
// The dimensionless unit renders as "1" and the radian flag as "rad".
//
func (u Unit) String() string {
	var b strings.Builder
	for i, e := range u.Exponents() {
		if e == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteRune('·')
		}
		b.WriteString(baseSymbols[i])
		if e != 1 {
			b.WriteRune('^')
			b.WriteString(strconv.Itoa(e))
		}
	}
	if u.radian {
		if b.Len() > 0 {
			b.WriteRune('·')
		}
		b.WriteString("rad")
	}
	if b.Len() == 0 {
		return "1"
	}
	return b.String()
}
