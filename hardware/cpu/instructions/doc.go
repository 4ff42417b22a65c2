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

// Package instructions defines the instruction set of the SM83 processor.
//
// There are two tables of 256 entries. The base table is indexed by the first
// byte of an instruction. The prefixed table is indexed by the byte following
// the 0xcb prefix. Every entry has an Operator and up to two Operands which
// together are enough for the CPU to execute the instruction without looking
// at the mnemonic.
//
// Opcodes that are not defined by the processor have an entry in the base
// table with the Unmapped operator.
//
// Cycle counts are given in machine cycles (M-cycles). One machine cycle is
// four system clock cycles.
package instructions
