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

// Package interrupt defines the five interrupt sources of the console. The
// Interrupt Flag register (IF) and the Interrupt Enable register (IE) both use
// the bit assignments returned by Source.Bit().
package interrupt

// Source is one of the five interrupt sources. The numeric value is also the
// priority of the source, with lower values having higher priority.
type Source int

// List of valid Source values in priority order.
const (
	VBlank Source = iota
	STAT
	Timer
	Serial
	Joypad
)

// NumSources is the number of interrupt sources.
const NumSources = 5

// Mask covers the bits in the IF and IE registers that have meaning.
const Mask = 0x1f

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case STAT:
		return "STAT"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "unknown interrupt"
}

// Bit returns the bit in the IF and IE registers for the source.
func (s Source) Bit() uint8 {
	return 0x01 << s
}

// Vector returns the address the CPU jumps to when the interrupt is
// dispatched.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*0x08
}

// Highest returns the highest priority source in the pending bits. Pending
// is normally IE & IF. Returns false if no source is pending.
func Highest(pending uint8) (Source, bool) {
	for s := range Source(NumSources) {
		if pending&s.Bit() != 0 {
			return s, true
		}
	}
	return 0, false
}
