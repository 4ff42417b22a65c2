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

// Package registers implements the register file of the SM83 processor.
//
// The eight-bit registers A, B, C, D, E, H and L are fields of the File type.
// The flags are held separately in the Flags type and are combined with the A
// register to form the AF pair. The BC, DE and HL pairs are views of the
// eight-bit registers and are accessed with the BC(), SetBC() etc. functions.
//
// The program counter and the stack pointer are not part of the File. They are
// held by the CPU.
package registers
