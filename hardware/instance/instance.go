// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package instance defines those parts of the emulation that might change from
// instance to instance of the GameBoy type, but is not actually the GameBoy
// itself.
//
// Particularly useful when more than one instance of the console is created
// in the same process. The disassembler for example creates a throwaway
// console that should not write to the central log.
package instance

import (
	"github.com/jetsetilly/gopherboy/hardware/preferences"
)

// Label indicates the context of the instance.
type Label string

// List of value Label values.
const (
	Main        Label = ""
	Disassembly Label = "disassembly"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the GameBoy type, but is not actually the
// GameBoy itself.
type Instance struct {
	Label Label

	// the prefrences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil and a new prefs instance will be created.
// Providing a non-nil value allows the preferences of more than one instance
// to be synchronised.
func NewInstance(prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the instance is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() {
	ins.Prefs.SetDefaults()
	ins.Prefs.Reseed(1)
}

// AllowLogging implements the logger.Permission interface.
func (ins *Instance) AllowLogging() bool {
	if ins == nil {
		return true
	}
	return ins.Label != Disassembly
}
