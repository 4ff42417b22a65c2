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
	"github.com/jetsetilly/gopherboy/hardware/cpu/alu"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/logger"
)

// execute the instruction. the program counter has already advanced past the
// instruction and LastResult.Cycles holds the base cost
func (mc *CPU) execute(defn *instructions.Definition, data uint16) error {
	switch defn.Operator {
	case instructions.Unmapped:
		return mc.unmapped(defn)

	case instructions.NOP:

	case instructions.STOP:
		logger.Log(mc.instance, "cpu", "STOP treated as NOP")

	case instructions.HALT:
		// the halt bug. with IME off and an interrupt already pending the CPU
		// does not halt and the next opcode is read twice
		if !mc.IME && mc.pending() != 0 {
			mc.haltBug = true
		} else {
			mc.Halted = true
		}

	case instructions.DI:
		mc.IME = false
		mc.imeScheduled = false

	case instructions.EI:
		mc.imeScheduled = true

	case instructions.LD:
		mc.load(defn, data)

	case instructions.PUSH:
		mc.push16(mc.read16(defn.Dst, data))

	case instructions.POP:
		mc.write16(defn.Dst, mc.pop16())

	case instructions.INC:
		if defn.Dst.Is16Bit() {
			mc.write16(defn.Dst, mc.read16(defn.Dst, data)+1)
			break // switch
		}
		v := mc.read8(defn.Dst, data)
		r := mc.alu.AddU8(v, 1)
		mc.Reg.F.Zero = r == 0
		mc.Reg.F.Subtract = false
		mc.Reg.F.HalfCarry = alu.CarryAt(uint16(v), 1, 3)
		mc.write8(defn.Dst, data, r)

	case instructions.DEC:
		if defn.Dst.Is16Bit() {
			mc.write16(defn.Dst, mc.read16(defn.Dst, data)-1)
			break // switch
		}
		v := mc.read8(defn.Dst, data)
		r := mc.alu.SubU8(v, 1)
		mc.Reg.F.Zero = r == 0
		mc.Reg.F.Subtract = true
		mc.Reg.F.HalfCarry = alu.BorrowAt(uint16(v), 1, 3)
		mc.write8(defn.Dst, data, r)

	case instructions.ADD:
		switch defn.Dst {
		case instructions.HL:
			v := mc.Reg.HL()
			s := mc.read16(defn.Src, data)
			r := mc.alu.AddU16(v, s)
			mc.Reg.F.Subtract = false
			mc.Reg.F.HalfCarry = alu.CarryAt(v, s, 11)
			mc.Reg.F.Carry = mc.alu.Overflow
			mc.Reg.SetHL(r)
		case instructions.SP:
			mc.SP = mc.offsetSP(data)
		default:
			mc.Reg.A = mc.add8(mc.read8(defn.Src, data), false)
		}

	case instructions.ADC:
		mc.Reg.A = mc.add8(mc.read8(defn.Src, data), mc.Reg.F.Carry)

	case instructions.SUB:
		mc.Reg.A = mc.sub8(mc.read8(defn.Src, data), false)

	case instructions.SBC:
		mc.Reg.A = mc.sub8(mc.read8(defn.Src, data), mc.Reg.F.Carry)

	case instructions.CP:
		_ = mc.sub8(mc.read8(defn.Src, data), false)

	case instructions.AND:
		mc.Reg.A = mc.alu.And(mc.Reg.A, mc.read8(defn.Src, data))
		mc.logicFlags()
		mc.Reg.F.HalfCarry = true

	case instructions.XOR:
		mc.Reg.A = mc.alu.Xor(mc.Reg.A, mc.read8(defn.Src, data))
		mc.logicFlags()

	case instructions.OR:
		mc.Reg.A = mc.alu.Or(mc.Reg.A, mc.read8(defn.Src, data))
		mc.logicFlags()

	case instructions.RLCA:
		mc.Reg.A = mc.alu.RotateLeftCircular(mc.Reg.A)
		mc.rotateFlags(false)

	case instructions.RRCA:
		mc.Reg.A = mc.alu.RotateRightCircular(mc.Reg.A)
		mc.rotateFlags(false)

	case instructions.RLA:
		mc.Reg.A = mc.alu.RotateLeft(mc.Reg.A, mc.Reg.F.Carry)
		mc.rotateFlags(false)

	case instructions.RRA:
		mc.Reg.A = mc.alu.RotateRight(mc.Reg.A, mc.Reg.F.Carry)
		mc.rotateFlags(false)

	case instructions.DAA:
		mc.daa()

	case instructions.CPL:
		mc.Reg.A = mc.alu.Not(mc.Reg.A)
		mc.Reg.F.Subtract = true
		mc.Reg.F.HalfCarry = true

	case instructions.SCF:
		mc.Reg.F.Subtract = false
		mc.Reg.F.HalfCarry = false
		mc.Reg.F.Carry = true

	case instructions.CCF:
		mc.Reg.F.Subtract = false
		mc.Reg.F.HalfCarry = false
		mc.Reg.F.Carry = !mc.Reg.F.Carry

	case instructions.JP:
		if mc.branch(defn) {
			if defn.Src == instructions.HL {
				mc.PC = mc.Reg.HL()
			} else {
				mc.PC = data
			}
		}

	case instructions.JR:
		if mc.branch(defn) {
			mc.PC = mc.alu.AddSigned(mc.PC, uint8(data))
		}

	case instructions.CALL:
		if mc.branch(defn) {
			mc.push16(mc.PC)
			mc.PC = data
		}

	case instructions.RET:
		if mc.branch(defn) {
			mc.PC = mc.pop16()
		}

	case instructions.RETI:
		mc.PC = mc.pop16()
		mc.IME = true

	case instructions.RST:
		mc.push16(mc.PC)
		mc.PC = defn.Vector

	case instructions.RLC, instructions.RRC, instructions.RL, instructions.RR,
		instructions.SLA, instructions.SRA, instructions.SWAP, instructions.SRL:
		v := mc.read8(defn.Dst, data)
		var r uint8
		switch defn.Operator {
		case instructions.RLC:
			r = mc.alu.RotateLeftCircular(v)
		case instructions.RRC:
			r = mc.alu.RotateRightCircular(v)
		case instructions.RL:
			r = mc.alu.RotateLeft(v, mc.Reg.F.Carry)
		case instructions.RR:
			r = mc.alu.RotateRight(v, mc.Reg.F.Carry)
		case instructions.SLA:
			r = mc.alu.ShiftLeftArithmetic(v)
		case instructions.SRA:
			r = mc.alu.ShiftRightArithmetic(v)
		case instructions.SWAP:
			r = mc.alu.Swap(v)
		case instructions.SRL:
			r = mc.alu.ShiftRightLogical(v)
		}
		mc.Reg.F.Zero = r == 0
		mc.rotateFlags(true)
		mc.write8(defn.Dst, data, r)

	case instructions.BIT:
		mc.Reg.F.Zero = !mc.alu.TestBit(mc.read8(defn.Dst, data), defn.Bit)
		mc.Reg.F.Subtract = false
		mc.Reg.F.HalfCarry = true

	case instructions.RES:
		mc.write8(defn.Dst, data, mc.alu.ResetBit(mc.read8(defn.Dst, data), defn.Bit))

	case instructions.SET:
		mc.write8(defn.Dst, data, mc.alu.SetBit(mc.read8(defn.Dst, data), defn.Bit))
	}

	return nil
}

func (mc *CPU) load(defn *instructions.Definition, data uint16) {
	switch {
	case defn.Dst == instructions.IndirectImm16 && defn.Src == instructions.SP:
		mc.mem.Write(data, uint8(mc.SP))
		mc.mem.Write(data+1, uint8(mc.SP>>8))
	case defn.Src == instructions.SPSigned8:
		mc.Reg.SetHL(mc.offsetSP(data))
	case defn.Dst.Is16Bit():
		mc.write16(defn.Dst, mc.read16(defn.Src, data))
	default:
		mc.write8(defn.Dst, data, mc.read8(defn.Src, data))
	}
}

// branch returns true if the condition of the instruction is met. the cycle
// count is adjusted for conditional instructions that are taken
func (mc *CPU) branch(defn *instructions.Definition) bool {
	var taken bool
	switch defn.Cond {
	case instructions.Always:
		return true
	case instructions.NZ:
		taken = !mc.Reg.F.Zero
	case instructions.Z:
		taken = mc.Reg.F.Zero
	case instructions.NC:
		taken = !mc.Reg.F.Carry
	case instructions.CY:
		taken = mc.Reg.F.Carry
	}

	if taken {
		mc.LastResult.BranchTaken = true
		mc.LastResult.Cycles = defn.TakenCycles
	}

	return taken
}

// add8 adds v and the carry to the A register and returns the result. flags
// are set accordingly
func (mc *CPU) add8(v uint8, carry bool) uint8 {
	a := mc.Reg.A
	r := mc.alu.AddU8(a, v)
	c := mc.alu.Overflow
	h := alu.CarryAt(uint16(a), uint16(v), 3)

	if carry {
		h = h || alu.CarryAt(uint16(r), 1, 3)
		r = mc.alu.AddU8(r, 1)
		c = c || mc.alu.Overflow
	}

	mc.Reg.F.Zero = r == 0
	mc.Reg.F.Subtract = false
	mc.Reg.F.HalfCarry = h
	mc.Reg.F.Carry = c

	return r
}

// sub8 subtracts v and the carry from the A register and returns the
// result. flags are set accordingly
func (mc *CPU) sub8(v uint8, carry bool) uint8 {
	a := mc.Reg.A
	r := mc.alu.SubU8(a, v)
	c := mc.alu.Overflow
	h := alu.BorrowAt(uint16(a), uint16(v), 3)

	if carry {
		h = h || alu.BorrowAt(uint16(r), 1, 3)
		r = mc.alu.SubU8(r, 1)
		c = c || mc.alu.Overflow
	}

	mc.Reg.F.Zero = r == 0
	mc.Reg.F.Subtract = true
	mc.Reg.F.HalfCarry = h
	mc.Reg.F.Carry = c

	return r
}

// offsetSP returns the stack pointer plus the signed offset in data. used by
// ADD SP,e and LD HL,SP+e. the half-carry and carry flags come from the
// unsigned addition of the low byte
func (mc *CPU) offsetSP(data uint16) uint16 {
	e := data & 0x00ff
	lo := mc.SP & 0x00ff

	mc.Reg.F.Zero = false
	mc.Reg.F.Subtract = false
	mc.Reg.F.HalfCarry = alu.CarryAt(lo, e, 3)
	mc.Reg.F.Carry = alu.CarryAt(lo, e, 7)

	return mc.alu.AddSigned(mc.SP, uint8(e))
}

func (mc *CPU) logicFlags() {
	mc.Reg.F.Zero = mc.Reg.A == 0
	mc.Reg.F.Subtract = false
	mc.Reg.F.HalfCarry = false
	mc.Reg.F.Carry = false
}

// rotateFlags sets the flags after a rotation or shift. the accumulator forms
// always clear the zero flag. the prefixed forms set it from the result
// before calling this function
func (mc *CPU) rotateFlags(prefixed bool) {
	if !prefixed {
		mc.Reg.F.Zero = false
	}
	mc.Reg.F.Subtract = false
	mc.Reg.F.HalfCarry = false
	mc.Reg.F.Carry = mc.alu.Overflow
}

// decimal adjust of the A register after a BCD addition or subtraction
func (mc *CPU) daa() {
	a := mc.Reg.A
	if !mc.Reg.F.Subtract {
		if mc.Reg.F.Carry || a > 0x99 {
			a += 0x60
			mc.Reg.F.Carry = true
		}
		if mc.Reg.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if mc.Reg.F.Carry {
			a -= 0x60
		}
		if mc.Reg.F.HalfCarry {
			a -= 0x06
		}
	}
	mc.Reg.A = a
	mc.Reg.F.Zero = a == 0
	mc.Reg.F.HalfCarry = false
}
