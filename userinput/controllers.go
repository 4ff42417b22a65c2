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

package userinput

import (
	"github.com/jetsetilly/gopherboy/hardware/input"
)

// HandleInput conceptualises the buttons of the console.
type HandleInput interface {
	Press(b input.Button)
	Release(b input.Button)
}

// SpeedUp is implemented by types that can run the emulation at an
// uncapped rate.
type SpeedUp interface {
	SpeedUp() bool
}

// keys mapped to joypad buttons
var joypadKeys = map[string]input.Button{
	"Up":     input.Up,
	"Down":   input.Down,
	"Left":   input.Left,
	"Right":  input.Right,
	"Return": input.Start,
	"Space":  input.Select,
	"A":      input.B,
	"X":      input.A,
}

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	// the speed up toggle is ignored if SpeedUp is nil
	SpeedUp SpeedUp

	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation as an input
	LastKeyHandled bool

	// is true if the last event was a request to pause or unpause
	TogglePause bool
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) bool {
	c.LastKeyHandled = false
	c.TogglePause = false

	if ev.Repeat || ev.Mod != KeyModNone {
		return false
	}

	if b, ok := joypadKeys[ev.Key]; ok {
		if ev.Down {
			handle.Press(b)
		} else {
			handle.Release(b)
		}
		c.LastKeyHandled = true
		return false
	}

	if !ev.Down {
		return false
	}

	switch ev.Key {
	case "Escape":
		return true
	case "Tab":
		if c.SpeedUp != nil {
			c.SpeedUp.SpeedUp()
		}
	case "P":
		c.TogglePause = true
	}

	return false
}

// HandleUserInput deciphers the Event and forwards the input to the console
// buttons. Returns true if the event is a request to quit.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) bool {
	switch ev := ev.(type) {
	case EventQuit:
		return true
	case EventKeyboard:
		return c.keyboard(ev, handle)
	}
	return false
}
