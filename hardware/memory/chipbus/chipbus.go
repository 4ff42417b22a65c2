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

// Package chipbus defines the interface between the memory bus and the chips
// (PPU and timer) that update hardware registers.
package chipbus

import "github.com/jetsetilly/gopherboy/hardware/interrupt"

// Memory defines the operations for the memory system when accessed from the
// console's chips.
type Memory interface {
	// ChipRead reads the data from memory without triggering any of the side
	// effects of a CPU read
	ChipRead(address uint16) uint8

	// ChipWrite writes the data to memory without triggering any of the side
	// effects of a CPU write. For example, writing to DIV or LY with
	// ChipWrite() stores the value rather than resetting or ignoring it
	ChipWrite(address uint16, data uint8)

	// RequestInterrupt sets the bit for the source in the IF register
	RequestInterrupt(source interrupt.Source)
}
