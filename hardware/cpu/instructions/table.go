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

// Table is a complete set of 256 definitions indexed by opcode.
type Table [256]*Definition

var (
	base     Table
	prefixed Table
)

func init() {
	for i := range 256 {
		base[i] = decodeBase(uint8(i))
		base[i].Mnemonic = base[i].describe(Operand.String)
		prefixed[i] = decodePrefixed(uint8(i))
		prefixed[i].Mnemonic = prefixed[i].describe(Operand.String)
	}
	base[0xcb].Mnemonic = "PREFIX CB"
}

// GetDefinitions returns the base and the prefixed instruction tables. The
// tables are shared and must not be altered.
func GetDefinitions() (*Table, *Table) {
	return &base, &prefixed
}

// the opcode space is decoded by splitting the opcode into three fields:
//
//	x = bits 7-6, y = bits 5-3, z = bits 2-0
//
// with y further split into p = bits 5-4 and q = bit 3

var (
	tableR   = [8]Operand{B, C, D, E, H, L, IndirectHL, A}
	tableRP  = [4]Operand{BC, DE, HL, SP}
	tableRP2 = [4]Operand{BC, DE, HL, AF}
	tableCC  = [4]Condition{NZ, Z, NC, CY}
	tableALU = [8]Operator{ADD, ADC, SUB, SBC, AND, XOR, OR, CP}
	tableROT = [8]Operator{RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL}
	tableAcc = [8]Operator{RLCA, RRCA, RLA, RRA, DAA, CPL, SCF, CCF}

	// indirect forms of LD A for z == 2 in the first quarter of the table
	tableIndirect = [4]Operand{IndirectBC, IndirectDE, IndirectHLI, IndirectHLD}
)

// cost of an eight-bit operand. register is the cost when the operand is a
// register and memory is the cost when it is (HL)
func cost(o Operand, register int, memory int) int {
	if o == IndirectHL {
		return memory
	}
	return register
}

func decodeBase(opcode uint8) *Definition {
	x := opcode >> 6
	y := (opcode >> 3) & 0x07
	z := opcode & 0x07
	p := y >> 1
	q := y & 0x01

	d := &Definition{OpCode: opcode, Bytes: 1, Cycles: 1}

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				d.Operator = NOP
			case 1:
				d.Operator, d.Dst, d.Src = LD, IndirectImm16, SP
				d.Bytes, d.Cycles = 3, 5
			case 2:
				d.Operator = STOP
				d.Bytes = 2
			case 3:
				d.Operator, d.Src = JR, Signed8
				d.Bytes, d.Cycles = 2, 3
			default:
				d.Operator, d.Src, d.Cond = JR, Signed8, tableCC[y-4]
				d.Bytes, d.Cycles, d.TakenCycles = 2, 2, 3
			}
		case 1:
			if q == 0 {
				d.Operator, d.Dst, d.Src = LD, tableRP[p], Imm16
				d.Bytes, d.Cycles = 3, 3
			} else {
				d.Operator, d.Dst, d.Src = ADD, HL, tableRP[p]
				d.Cycles = 2
			}
		case 2:
			d.Operator, d.Cycles = LD, 2
			if q == 0 {
				d.Dst, d.Src = tableIndirect[p], A
			} else {
				d.Dst, d.Src = A, tableIndirect[p]
			}
		case 3:
			d.Operator, d.Dst, d.Cycles = INC, tableRP[p], 2
			if q == 1 {
				d.Operator = DEC
			}
		case 4:
			d.Operator, d.Dst, d.Cycles = INC, tableR[y], cost(tableR[y], 1, 3)
		case 5:
			d.Operator, d.Dst, d.Cycles = DEC, tableR[y], cost(tableR[y], 1, 3)
		case 6:
			d.Operator, d.Dst, d.Src = LD, tableR[y], Imm8
			d.Bytes, d.Cycles = 2, cost(tableR[y], 2, 3)
		case 7:
			d.Operator = tableAcc[y]
		}

	case 1:
		if z == 6 && y == 6 {
			d.Operator = HALT
		} else {
			d.Operator, d.Dst, d.Src = LD, tableR[y], tableR[z]
			d.Cycles = cost(tableR[y], cost(tableR[z], 1, 2), 2)
		}

	case 2:
		d.Operator, d.Dst, d.Src = tableALU[y], A, tableR[z]
		d.Cycles = cost(tableR[z], 1, 2)

	case 3:
		switch z {
		case 0:
			switch y {
			case 4:
				d.Operator, d.Dst, d.Src = LD, HighImm8, A
				d.Bytes, d.Cycles = 2, 3
			case 5:
				d.Operator, d.Dst, d.Src = ADD, SP, Signed8
				d.Bytes, d.Cycles = 2, 4
			case 6:
				d.Operator, d.Dst, d.Src = LD, A, HighImm8
				d.Bytes, d.Cycles = 2, 3
			case 7:
				d.Operator, d.Dst, d.Src = LD, HL, SPSigned8
				d.Bytes, d.Cycles = 2, 3
			default:
				d.Operator, d.Cond = RET, tableCC[y]
				d.Cycles, d.TakenCycles = 2, 5
			}
		case 1:
			if q == 0 {
				d.Operator, d.Dst, d.Cycles = POP, tableRP2[p], 3
			} else {
				switch p {
				case 0:
					d.Operator, d.Cycles = RET, 4
				case 1:
					d.Operator, d.Cycles = RETI, 4
				case 2:
					d.Operator, d.Src = JP, HL
				case 3:
					d.Operator, d.Dst, d.Src, d.Cycles = LD, SP, HL, 2
				}
			}
		case 2:
			switch y {
			case 4:
				d.Operator, d.Dst, d.Src, d.Cycles = LD, HighC, A, 2
			case 5:
				d.Operator, d.Dst, d.Src = LD, IndirectImm16, A
				d.Bytes, d.Cycles = 3, 4
			case 6:
				d.Operator, d.Dst, d.Src, d.Cycles = LD, A, HighC, 2
			case 7:
				d.Operator, d.Dst, d.Src = LD, A, IndirectImm16
				d.Bytes, d.Cycles = 3, 4
			default:
				d.Operator, d.Src, d.Cond = JP, Imm16, tableCC[y]
				d.Bytes, d.Cycles, d.TakenCycles = 3, 3, 4
			}
		case 3:
			switch y {
			case 0:
				d.Operator, d.Src = JP, Imm16
				d.Bytes, d.Cycles = 3, 4
			case 1:
				d.Operator = Prefix
			case 6:
				d.Operator = DI
			case 7:
				d.Operator = EI
			}
		case 4:
			if y < 4 {
				d.Operator, d.Src, d.Cond = CALL, Imm16, tableCC[y]
				d.Bytes, d.Cycles, d.TakenCycles = 3, 3, 6
			}
		case 5:
			if q == 0 {
				d.Operator, d.Dst, d.Cycles = PUSH, tableRP2[p], 4
			} else if p == 0 {
				d.Operator, d.Src = CALL, Imm16
				d.Bytes, d.Cycles = 3, 6
			}
		case 6:
			d.Operator, d.Dst, d.Src = tableALU[y], A, Imm8
			d.Bytes, d.Cycles = 2, 2
		case 7:
			d.Operator, d.Vector, d.Cycles = RST, uint16(y)*8, 4
		}
	}

	return d
}

func decodePrefixed(opcode uint8) *Definition {
	x := opcode >> 6
	y := (opcode >> 3) & 0x07
	z := opcode & 0x07

	d := &Definition{
		OpCode:   opcode,
		Prefixed: true,
		Dst:      tableR[z],
		Bytes:    2,
		Cycles:   cost(tableR[z], 2, 4),
	}

	switch x {
	case 0:
		d.Operator = tableROT[y]
	case 1:
		d.Operator, d.Bit = BIT, y
		d.Cycles = cost(tableR[z], 2, 3)
	case 2:
		d.Operator, d.Bit = RES, y
	case 3:
		d.Operator, d.Bit = SET, y
	}

	return d
}
