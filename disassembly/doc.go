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

// Package disassembly coordinates the disassembly of cartridges.
//
// The disassembly is linear. Each bank of the cartridge is decoded from its
// first address, with every entry following on directly from the previous
// one. Data in the ROM is therefore also shown as instructions.
//
// Instructions are decoded by a CPU that is connected to a memory that
// ignores writes. The CPU belongs to an instance labelled as a disassembly
// instance so that decoding anomalies are not written to the central log.
package disassembly
