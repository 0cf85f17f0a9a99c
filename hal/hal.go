// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hal holds the narrow contract between control graphs and the
// hardware abstraction layer: per-channel metadata (direction, value
// kind, physical unit) and the ScalableInput adapter converting raw
// channel readings into engineering units.
//
// The package performs no I/O. Reading and writing channels, clamping
// against the valid range and scheduling are the HAL backend's job.
//
package hal

import (
	"github.com/pkg/errors"

	"github.com/db47h/sigflow"
)

// Direction tells whether a channel kind reads from or writes to
// hardware.
type Direction int

const (
	In Direction = iota
	Out
)

// ChannelType tells whether a channel kind carries logic levels or real
// values.
type ChannelType int

const (
	Logic ChannelType = iota
	Real
)

// DirectionOfChannel maps the known channel kinds to their direction.
var DirectionOfChannel = map[string]Direction{
	"DigIn":     In,
	"DigOut":    Out,
	"AnalogOut": Out,
	"AnalogIn":  In,
	"Pwm":       Out,
	"Watchdog":  In,
	"Fqd":       In,
}

// TypeOfChannel maps the known channel kinds to their value type.
var TypeOfChannel = map[string]ChannelType{
	"DigIn":     Logic,
	"DigOut":    Logic,
	"AnalogOut": Real,
	"AnalogIn":  Real,
	"Pwm":       Real,
	"Watchdog":  Logic,
	"Fqd":       Real,
}

// UnitByName maps short unit names, as used in channel configurations, to
// their sigflow constants.
var UnitByName = map[string]sigflow.Unit{
	"1":   sigflow.Dimensionless,
	"m":   sigflow.Metre,
	"kg":  sigflow.Kilogram,
	"s":   sigflow.Second,
	"A":   sigflow.Ampere,
	"K":   sigflow.Kelvin,
	"W":   sigflow.Watt,
	"N":   sigflow.Newton,
	"J":   sigflow.Joule,
	"V":   sigflow.Volt,
	"rad": sigflow.Radian,
}

// LookupUnit resolves a short unit name to its Unit constant.
//
func LookupUnit(name string) (sigflow.Unit, error) {
	u, ok := UnitByName[name]
	if !ok {
		return sigflow.Unit{}, errors.Errorf("unknown unit %q", name)
	}
	return u, nil
}
