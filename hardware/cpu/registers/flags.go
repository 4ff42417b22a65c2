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

package registers

import "strings"

// Flags is the special purpose register that stores the flags of the CPU.
// In the AF pair the flags occupy the upper nibble of the low byte.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Label returns the canonical name for the flags register.
func (fl Flags) Label() string {
	return "F"
}

func (fl Flags) String() string {
	s := strings.Builder{}
	if fl.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if fl.Subtract {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if fl.HalfCarry {
		s.WriteRune('H')
	} else {
		s.WriteRune('h')
	}
	if fl.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	return s.String()
}

// Value returns the flags as they appear in the low byte of the AF pair.
// The lower nibble is always zero.
func (fl Flags) Value() uint8 {
	var v uint8
	if fl.Zero {
		v |= 0x80
	}
	if fl.Subtract {
		v |= 0x40
	}
	if fl.HalfCarry {
		v |= 0x20
	}
	if fl.Carry {
		v |= 0x10
	}
	return v
}

// Load sets the flags from the low byte of the AF pair. The lower nibble is
// discarded.
func (fl *Flags) Load(v uint8) {
	fl.Zero = v&0x80 == 0x80
	fl.Subtract = v&0x40 == 0x40
	fl.HalfCarry = v&0x20 == 0x20
	fl.Carry = v&0x10 == 0x10
}
