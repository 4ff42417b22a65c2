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

package input

import (
	"strings"
	"sync/atomic"
)

// Button is one of the eight joypad buttons.
type Button int

// List of valid Button values.
const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

func (b Button) String() string {
	switch b {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "Select"
	case Start:
		return "Start"
	}
	return "unknown button"
}

// the bit in the held mask for the button. the d-pad occupies the lower
// nibble and the other buttons the upper nibble. in each nibble the bit
// positions are the same as in the P1 register
func (b Button) bit() uint32 {
	return 0x01 << b
}

// Input is the state of the joypad.
type Input struct {
	// bits are set for buttons that are held
	held atomic.Uint32

	// a button has been pressed since the last call to NewPress()
	newPress atomic.Bool
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() *Input {
	return &Input{}
}

func (inp *Input) String() string {
	held := inp.held.Load()
	if held == 0 {
		return "no buttons held"
	}

	s := strings.Builder{}
	for b := range Start + 1 {
		if held&b.bit() != 0 {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(b.String())
		}
	}
	return s.String()
}

// Press a button. Safe to call from any goroutine.
func (inp *Input) Press(b Button) {
	for {
		old := inp.held.Load()
		if inp.held.CompareAndSwap(old, old|b.bit()) {
			if old&b.bit() == 0 {
				inp.newPress.Store(true)
			}
			return
		}
	}
}

// Release a button. Safe to call from any goroutine.
func (inp *Input) Release(b Button) {
	for {
		old := inp.held.Load()
		if inp.held.CompareAndSwap(old, old&^b.bit()) {
			return
		}
	}
}

// Reset releases all buttons.
func (inp *Input) Reset() {
	inp.held.Store(0)
	inp.newPress.Store(false)
}

// DPad returns the state of the direction buttons. A zero bit indicates that
// the button is held.
func (inp *Input) DPad() uint8 {
	return ^uint8(inp.held.Load()) & 0x0f
}

// Buttons returns the state of the A, B, Select and Start buttons. A zero bit
// indicates that the button is held.
func (inp *Input) Buttons() uint8 {
	return ^uint8(inp.held.Load()>>4) & 0x0f
}

// NewPress returns true if a button has been pressed since the previous call
// to NewPress().
func (inp *Input) NewPress() bool {
	return inp.newPress.Swap(false)
}
