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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
)

// read8 returns the eight-bit value of the operand. the data argument is the
// operand bytes of the instruction
func (mc *CPU) read8(o instructions.Operand, data uint16) uint8 {
	switch o {
	case instructions.A:
		return mc.Reg.A
	case instructions.B:
		return mc.Reg.B
	case instructions.C:
		return mc.Reg.C
	case instructions.D:
		return mc.Reg.D
	case instructions.E:
		return mc.Reg.E
	case instructions.H:
		return mc.Reg.H
	case instructions.L:
		return mc.Reg.L
	case instructions.IndirectHL:
		return mc.mem.Read(mc.Reg.HL())
	case instructions.IndirectHLI:
		hl := mc.Reg.HL()
		mc.Reg.SetHL(hl + 1)
		return mc.mem.Read(hl)
	case instructions.IndirectHLD:
		hl := mc.Reg.HL()
		mc.Reg.SetHL(hl - 1)
		return mc.mem.Read(hl)
	case instructions.IndirectBC:
		return mc.mem.Read(mc.Reg.BC())
	case instructions.IndirectDE:
		return mc.mem.Read(mc.Reg.DE())
	case instructions.Imm8:
		return uint8(data)
	case instructions.IndirectImm16:
		return mc.mem.Read(data)
	case instructions.HighImm8:
		return mc.mem.Read(0xff00 | data&0x00ff)
	case instructions.HighC:
		return mc.mem.Read(0xff00 | uint16(mc.Reg.C))
	}
	panic(fmt.Sprintf("cpu: %s is not an eight-bit source", o))
}

// write8 stores the value in the operand
func (mc *CPU) write8(o instructions.Operand, data uint16, v uint8) {
	switch o {
	case instructions.A:
		mc.Reg.A = v
	case instructions.B:
		mc.Reg.B = v
	case instructions.C:
		mc.Reg.C = v
	case instructions.D:
		mc.Reg.D = v
	case instructions.E:
		mc.Reg.E = v
	case instructions.H:
		mc.Reg.H = v
	case instructions.L:
		mc.Reg.L = v
	case instructions.IndirectHL:
		mc.mem.Write(mc.Reg.HL(), v)
	case instructions.IndirectHLI:
		hl := mc.Reg.HL()
		mc.Reg.SetHL(hl + 1)
		mc.mem.Write(hl, v)
	case instructions.IndirectHLD:
		hl := mc.Reg.HL()
		mc.Reg.SetHL(hl - 1)
		mc.mem.Write(hl, v)
	case instructions.IndirectBC:
		mc.mem.Write(mc.Reg.BC(), v)
	case instructions.IndirectDE:
		mc.mem.Write(mc.Reg.DE(), v)
	case instructions.IndirectImm16:
		mc.mem.Write(data, v)
	case instructions.HighImm8:
		mc.mem.Write(0xff00|data&0x00ff, v)
	case instructions.HighC:
		mc.mem.Write(0xff00|uint16(mc.Reg.C), v)
	default:
		panic(fmt.Sprintf("cpu: %s is not an eight-bit destination", o))
	}
}

func (mc *CPU) read16(o instructions.Operand, data uint16) uint16 {
	switch o {
	case instructions.BC:
		return mc.Reg.BC()
	case instructions.DE:
		return mc.Reg.DE()
	case instructions.HL:
		return mc.Reg.HL()
	case instructions.SP:
		return mc.SP
	case instructions.AF:
		return mc.Reg.AF()
	case instructions.Imm16:
		return data
	}
	panic(fmt.Sprintf("cpu: %s is not a sixteen-bit source", o))
}

func (mc *CPU) write16(o instructions.Operand, v uint16) {
	switch o {
	case instructions.BC:
		mc.Reg.SetBC(v)
	case instructions.DE:
		mc.Reg.SetDE(v)
	case instructions.HL:
		mc.Reg.SetHL(v)
	case instructions.SP:
		mc.SP = v
	case instructions.AF:
		mc.Reg.SetAF(v)
	default:
		panic(fmt.Sprintf("cpu: %s is not a sixteen-bit destination", o))
	}
}
