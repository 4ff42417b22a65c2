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

// Package cpu emulates the SM83 processor found in the DMG console. Like all
// 8-bit processors of the era, the SM83 executes instructions according to
// the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the instruction
// table. The instruction definition for that opcode is then used to move
// execution of the program forward. The 0xcb opcode is a prefix and selects
// a second table indexed by the following byte.
//
// The instance of the CPU type requires an implementation of cpubus.Memory.
// The CPU reads the interrupt registers (IE and IF) through the same
// interface.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Every call executes exactly one instruction, dispatches one interrupt, or
// idles for one machine cycle while the processor is halted. The number of
// machine cycles consumed is found in the LastResult field.
//
//	mc := cpu.NewCPU(instance, mem)
//	mc.Reset()
//
//	for {
//		err := mc.ExecuteInstruction()
//		if err != nil {
//			return err
//		}
//		clocks := mc.LastResult.Cycles * 4
//	}
//
// The console uses the number of cycles to drive the timer and the PPU. See
// the hardware package.
package cpu
