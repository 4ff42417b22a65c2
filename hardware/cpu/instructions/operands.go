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

// Operand describes where the data for an instruction comes from or is
// written to.
type Operand int

// List of valid Operand values.
const (
	None Operand = iota

	// eight-bit registers
	A
	B
	C
	D
	E
	H
	L

	// memory addressed by a register pair. IndirectHLI and IndirectHLD
	// increment or decrement HL after the access
	IndirectHL
	IndirectHLI
	IndirectHLD
	IndirectBC
	IndirectDE

	// sixteen-bit register pairs
	BC
	DE
	HL
	SP
	AF

	// immediate data following the opcode
	Imm8
	Imm16

	// memory addressed by the immediate sixteen-bit value
	IndirectImm16

	// memory at 0xff00 plus the immediate eight-bit value or the C register
	HighImm8
	HighC

	// two's complement offset following the opcode. used by relative jumps
	// and by stack pointer arithmetic
	Signed8

	// stack pointer plus the two's complement offset following the opcode
	SPSigned8
)

var operandNames = [...]string{
	None:          "",
	A:             "A",
	B:             "B",
	C:             "C",
	D:             "D",
	E:             "E",
	H:             "H",
	L:             "L",
	IndirectHL:    "(HL)",
	IndirectHLI:   "(HL+)",
	IndirectHLD:   "(HL-)",
	IndirectBC:    "(BC)",
	IndirectDE:    "(DE)",
	BC:            "BC",
	DE:            "DE",
	HL:            "HL",
	SP:            "SP",
	AF:            "AF",
	Imm8:          "n",
	Imm16:         "nn",
	IndirectImm16: "(nn)",
	HighImm8:      "(n)",
	HighC:         "(C)",
	Signed8:       "e",
	SPSigned8:     "SP+e",
}

func (o Operand) String() string {
	if int(o) < len(operandNames) {
		return operandNames[o]
	}
	return "?"
}

// IsMemory returns true if the operand refers to a memory location rather
// than a register or immediate value.
func (o Operand) IsMemory() bool {
	switch o {
	case IndirectHL, IndirectHLI, IndirectHLD, IndirectBC, IndirectDE, IndirectImm16, HighImm8, HighC:
		return true
	}
	return false
}

// Is16Bit returns true if the operand is a sixteen-bit register pair or value.
func (o Operand) Is16Bit() bool {
	switch o {
	case BC, DE, HL, SP, AF, Imm16, SPSigned8:
		return true
	}
	return false
}

// Condition is the flag test made by a conditional jump, call or return.
type Condition int

// List of valid Condition values.
const (
	Always Condition = iota
	NZ
	Z
	NC
	CY
)

func (c Condition) String() string {
	switch c {
	case NZ:
		return "NZ"
	case Z:
		return "Z"
	case NC:
		return "NC"
	case CY:
		return "C"
	}
	return ""
}
