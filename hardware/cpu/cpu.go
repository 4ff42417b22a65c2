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

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu/alu"
	"github.com/jetsetilly/gopherboy/hardware/cpu/execution"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/interrupt"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherboy/logger"
)

// UnmappedOpcode is returned by ExecuteInstruction() when an undefined opcode
// is encountered and the strict decode preference is set.
const UnmappedOpcode = "cpu: unmapped opcode %#02x at %#04x"

// CPU implements the SM83 as found in the DMG console. General purpose
// register logic is implemented by the File type in the registers
// sub-package.
type CPU struct {
	instance *instance.Instance

	PC  uint16
	SP  uint16
	Reg registers.File

	// the interrupt master enable flag
	IME bool

	// the CPU is halted and waiting for an interrupt
	Halted bool

	// EI sets IME after the following instruction has completed
	imeScheduled bool

	// the next opcode fetch will not advance the program counter
	haltBug bool

	alu alu.ALU

	mem      cpubus.Memory
	base     *instructions.Table
	prefixed *instructions.Table

	// last result. the address field is guaranteed to be always valid except
	// when the CPU has just been reset
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// instance argument can be nil.
func NewCPU(instance *instance.Instance, mem cpubus.Memory) *CPU {
	mc := &CPU{
		instance: instance,
		mem:      mem,
	}
	mc.base, mc.prefixed = instructions.GetDefinitions()
	mc.Reset()
	return mc
}

// Plumb a new memory into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x %s IME=%v", mc.PC, mc.SP, mc.Reg, mc.IME)
}

// Reset reinitialises all registers to the state they are in after the boot
// ROM has finished.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC = addresses.Entry
	mc.SP = 0xfffe
	mc.Reg.A = 0x01
	mc.Reg.F.Load(0xb0)
	mc.Reg.SetBC(0x0013)
	mc.Reg.SetDE(0x00d8)
	mc.Reg.SetHL(0x014d)
	mc.IME = false
	mc.Halted = false
	mc.imeScheduled = false
	mc.haltBug = false
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return !mc.LastResult.Final
}

// pending returns the interrupts that are both requested and enabled
func (mc *CPU) pending() uint8 {
	return mc.mem.Read(addresses.IE) & mc.mem.Read(addresses.IF) & interrupt.Mask
}

// ExecuteInstruction executes a single instruction, dispatches a single
// interrupt or idles for one cycle if the CPU is halted. The result of the
// step is in the LastResult field.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC

	pending := mc.pending()

	var woken bool
	if mc.Halted {
		// a pending interrupt always ends the halt. if IME is set then it is
		// dispatched in the same step
		if pending == 0 || !mc.IME {
			mc.Halted = pending == 0
			mc.LastResult.Halted = true
			mc.LastResult.Cycles = 1
			mc.LastResult.Final = true
			return nil
		}
		woken = true
	}

	if mc.IME && pending != 0 {
		mc.dispatch(pending)
		if woken {
			mc.LastResult.Cycles++
		}
		mc.LastResult.Final = true
		return nil
	}

	// the state of the EI delay before the instruction is executed
	scheduled := mc.imeScheduled
	mc.imeScheduled = false

	defn := mc.base[mc.fetchOpcode()]
	mc.LastResult.ByteCount = 1
	if defn.Operator == instructions.Prefix {
		defn = mc.prefixed[mc.fetch8()]
		mc.LastResult.ByteCount++
	}
	mc.LastResult.Defn = defn

	var data uint16
	switch defn.OperandBytes() {
	case 1:
		data = uint16(mc.fetch8())
	case 2:
		data = mc.fetch16()
	}
	mc.LastResult.InstructionData = data
	mc.LastResult.ByteCount += defn.OperandBytes()
	mc.LastResult.Cycles = defn.Cycles

	err := mc.execute(defn, data)

	// DI cancels a scheduled EI
	if scheduled && defn.Operator != instructions.DI {
		mc.IME = true
	}

	mc.LastResult.Final = true

	return err
}

func (mc *CPU) dispatch(pending uint8) {
	src, _ := interrupt.Highest(pending)

	mc.Halted = false
	mc.IME = false
	mc.mem.Write(addresses.IF, mc.mem.Read(addresses.IF)&^src.Bit())
	mc.push16(mc.PC)
	mc.PC = src.Vector()

	mc.LastResult.Interrupt = src.Vector()
	mc.LastResult.Cycles = 5
}

func (mc *CPU) fetchOpcode() uint8 {
	v := mc.mem.Read(mc.PC)
	if mc.haltBug {
		mc.haltBug = false
		mc.LastResult.HaltBug = true
	} else {
		mc.PC++
	}
	return v
}

func (mc *CPU) fetch8() uint8 {
	v := mc.mem.Read(mc.PC)
	mc.PC++
	return v
}

func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch8()
	hi := mc.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) push16(v uint16) {
	mc.SP--
	mc.mem.Write(mc.SP, uint8(v>>8))
	mc.SP--
	mc.mem.Write(mc.SP, uint8(v))
}

func (mc *CPU) pop16() uint16 {
	lo := mc.mem.Read(mc.SP)
	mc.SP++
	hi := mc.mem.Read(mc.SP)
	mc.SP++
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) unmapped(defn *instructions.Definition) error {
	if mc.instance != nil && mc.instance.Prefs.StrictDecode.Get().(bool) {
		return curated.Errorf(UnmappedOpcode, defn.OpCode, mc.LastResult.Address)
	}
	logger.Logf(mc.instance, "cpu", "unmapped opcode %#02x at %#04x", defn.OpCode, mc.LastResult.Address)
	return nil
}
