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

// Package memory implements the memory model of the console. The addresses,
// memorymap, cpubus and chipbus sub-packages help with this.
//
// It is important to understand that memory is viewed differently by different
// parts of the console. To help with this, the emulation uses what has been
// called memory busses. These busses have nothing to do with the real
// hardware; they are purely conceptual and are implemented through Go
// interfaces.
//
// The following ASCII diagram tries to show how the different components of
// the console are connected to the memory.
//
//	                        JOYPAD / SERIAL LINK
//
//	                             |
//	                             |
//	                             \/
//
//	    CPU ---- cpu bus ---- MEMORY ---- chip bus ---- PPU
//	                                                \
//	                             |                   \
//	                             |                    \---- TIMER
//
//	                         Cartridge
//
// Reads and writes on the cpu bus have side effects. For example, writing to
// the DIV register resets it, writing to DMA starts a copy of data into OAM
// and writing to the ROM area selects banks in the cartridge. The chip bus
// reads and writes the registers directly, without any side effects.
//
// Areas of memory that are not otherwise handled (work RAM, video RAM, OAM,
// high RAM and the echo area) are held in a flat array of 64KB.
package memory
