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

// Package hardware is the base package for the console emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The GameBoy type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can either be
// started to run continuously (with optional callback to check for
// continuation) or it can be stepped instruction by instruction.
//
// Each step is ordered: the joypad edge is turned into an interrupt request,
// the CPU executes one instruction, the timer and then the PPU are advanced
// by the number of clocks consumed, and finally the serial link delivers any
// bytes that have arrived.
package hardware
