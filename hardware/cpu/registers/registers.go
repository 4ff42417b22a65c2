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

import "fmt"

// File contains the general purpose registers and the flags.
type File struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	F Flags
}

func (r File) String() string {
	return fmt.Sprintf("A=%02x F=%s BC=%04x DE=%04x HL=%04x", r.A, r.F, r.BC(), r.DE(), r.HL())
}

// Reset all registers and flags to zero.
func (r *File) Reset() {
	*r = File{}
}

func pair(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

func split(v uint16) (uint8, uint8) {
	return uint8(v >> 8), uint8(v)
}

// AF returns the value of the A register and the flags as a 16-bit value.
func (r File) AF() uint16 {
	return pair(r.A, r.F.Value())
}

// SetAF loads the A register and the flags. The lower nibble of the low
// byte is discarded.
func (r *File) SetAF(v uint16) {
	var f uint8
	r.A, f = split(v)
	r.F.Load(f)
}

func (r File) BC() uint16 {
	return pair(r.B, r.C)
}

func (r *File) SetBC(v uint16) {
	r.B, r.C = split(v)
}

func (r File) DE() uint16 {
	return pair(r.D, r.E)
}

func (r *File) SetDE(v uint16) {
	r.D, r.E = split(v)
}

func (r File) HL() uint16 {
	return pair(r.H, r.L)
}

func (r *File) SetHL(v uint16) {
	r.H, r.L = split(v)
}
