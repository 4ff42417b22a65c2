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

// Package cpubus defines the interface between the CPU and the memory bus.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. All addresses in the 64KB address space are valid. Reads and writes may
// have side effects depending on the address.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}
