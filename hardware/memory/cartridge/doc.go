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

// Package cartridge fully implements loading of mapping of cartridge memory.
//
// The memory bank controller is chosen once, from the cartridge type byte in
// the ROM header. Three families are supported: cartridges with no banking,
// MBC1 and MBC3 (with or without the real-time clock).
//
// Writes to the ROM area of the address space are decoded by the Cartridge
// type and forwarded to the mapper as bank selection requests:
//
//	0x0000 to 0x1fff	RAM enable (not emulated, RAM is always enabled)
//	0x2000 to 0x3fff	SelectROMBank()
//	0x4000 to 0x5fff	SelectRAMBank()
//	0x6000 to 0x7fff	SelectBankingMode()
//
// Battery-backed external RAM is loaded from the save file when the cartridge
// is attached and is written to disk with Save().
package cartridge
