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

package instructions

import (
	"fmt"
	"strings"
)

// Operator is the operation performed by an instruction.
type Operator int

// List of valid Operator values.
const (
	Unmapped Operator = iota
	Prefix

	NOP
	STOP
	HALT
	DI
	EI

	LD
	PUSH
	POP

	INC
	DEC
	ADD
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP

	RLCA
	RRCA
	RLA
	RRA
	DAA
	CPL
	SCF
	CCF

	JP
	JR
	CALL
	RET
	RETI
	RST

	// prefixed operators
	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
	BIT
	RES
	SET
)

var operatorNames = [...]string{
	Unmapped: "??",
	Prefix:   "PREFIX",
	NOP:      "NOP", STOP: "STOP", HALT: "HALT", DI: "DI", EI: "EI",
	LD: "LD", PUSH: "PUSH", POP: "POP",
	INC: "INC", DEC: "DEC", ADD: "ADD", ADC: "ADC", SUB: "SUB", SBC: "SBC",
	AND: "AND", XOR: "XOR", OR: "OR", CP: "CP",
	RLCA: "RLCA", RRCA: "RRCA", RLA: "RLA", RRA: "RRA",
	DAA: "DAA", CPL: "CPL", SCF: "SCF", CCF: "CCF",
	JP: "JP", JR: "JR", CALL: "CALL", RET: "RET", RETI: "RETI", RST: "RST",
	RLC: "RLC", RRC: "RRC", RL: "RL", RR: "RR",
	SLA: "SLA", SRA: "SRA", SWAP: "SWAP", SRL: "SRL",
	BIT: "BIT", RES: "RES", SET: "SET",
}

func (op Operator) String() string {
	if int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return "?"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode   uint8
	Prefixed bool
	Mnemonic string

	Operator Operator
	Dst      Operand
	Src      Operand
	Cond     Condition

	// bit number for BIT, RES and SET
	Bit uint8

	// jump address for RST
	Vector uint16

	// number of bytes including the opcode and any prefix
	Bytes int

	// number of machine cycles. if the instruction is conditional then Cycles
	// is the cost when the condition fails and TakenCycles is the cost when
	// the condition succeeds
	Cycles      int
	TakenCycles int
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Operator == Unmapped {
		return fmt.Sprintf("%02x undefined instruction", defn.OpCode)
	}
	if defn.Prefixed {
		return fmt.Sprintf("cb%02x %s +%dbytes (%d cycles)", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles)", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles)
}

// OperandBytes returns the number of bytes following the opcode.
func (defn Definition) OperandBytes() int {
	if defn.Prefixed {
		return defn.Bytes - 2
	}
	return defn.Bytes - 1
}

// IsConditional returns true if the cost of the instruction depends on the
// state of the flags.
func (defn Definition) IsConditional() bool {
	return defn.Cond != Always
}

// IsFlow returns true if the instruction can change the program counter
// other than by advancing past the instruction.
func (defn Definition) IsFlow() bool {
	switch defn.Operator {
	case JP, JR, CALL, RET, RETI, RST:
		return true
	}
	return false
}

// accumulator operations where the A register is implied in the mnemonic
func impliedA(op Operator) bool {
	switch op {
	case SUB, AND, XOR, OR, CP:
		return true
	}
	return false
}

// Format returns the mnemonic with the immediate data substituted. The data
// argument is the operand bytes in little-endian order.
func (defn Definition) Format(data uint16) string {
	return defn.describe(func(o Operand) string {
		switch o {
		case Imm8:
			return fmt.Sprintf("$%02x", uint8(data))
		case Imm16:
			return fmt.Sprintf("$%04x", data)
		case IndirectImm16:
			return fmt.Sprintf("($%04x)", data)
		case HighImm8:
			return fmt.Sprintf("($ff%02x)", uint8(data))
		case Signed8:
			return fmt.Sprintf("%+d", int8(data))
		case SPSigned8:
			return fmt.Sprintf("SP%+d", int8(data))
		}
		return o.String()
	})
}

func (defn Definition) describe(operand func(Operand) string) string {
	name := defn.Operator.String()
	if defn.Operator == LD && (defn.Dst == HighImm8 || defn.Src == HighImm8) {
		name = "LDH"
	}

	var args []string
	switch defn.Operator {
	case BIT, RES, SET:
		args = append(args, fmt.Sprintf("%d", defn.Bit))
	case RST:
		args = append(args, fmt.Sprintf("$%02x", defn.Vector))
	case STOP:
		return name
	}

	if defn.Cond != Always {
		args = append(args, defn.Cond.String())
	}
	if defn.Dst != None && !(impliedA(defn.Operator) && defn.Dst == A) {
		args = append(args, operand(defn.Dst))
	}
	if defn.Src != None {
		args = append(args, operand(defn.Src))
	}

	if len(args) == 0 {
		return name
	}
	return fmt.Sprintf("%s %s", name, strings.Join(args, ","))
}
