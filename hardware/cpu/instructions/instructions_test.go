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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/test"
)

func TestUnmapped(t *testing.T) {
	base, _ := instructions.GetDefinitions()

	unmapped := map[uint8]bool{
		0xd3: true, 0xdb: true, 0xdd: true, 0xe3: true, 0xe4: true, 0xeb: true,
		0xec: true, 0xed: true, 0xf4: true, 0xfc: true, 0xfd: true,
	}

	for i, defn := range base {
		test.ExpectEquality(t, defn.OpCode, uint8(i))
		test.ExpectEquality(t, defn.Operator == instructions.Unmapped, unmapped[uint8(i)], defn)
	}
}

func TestMnemonics(t *testing.T) {
	base, prefixed := instructions.GetDefinitions()

	test.ExpectEquality(t, base[0x00].Mnemonic, "NOP")
	test.ExpectEquality(t, base[0x08].Mnemonic, "LD (nn),SP")
	test.ExpectEquality(t, base[0x20].Mnemonic, "JR NZ,e")
	test.ExpectEquality(t, base[0x22].Mnemonic, "LD (HL+),A")
	test.ExpectEquality(t, base[0x3e].Mnemonic, "LD A,n")
	test.ExpectEquality(t, base[0x46].Mnemonic, "LD B,(HL)")
	test.ExpectEquality(t, base[0x76].Mnemonic, "HALT")
	test.ExpectEquality(t, base[0x8e].Mnemonic, "ADC A,(HL)")
	test.ExpectEquality(t, base[0x90].Mnemonic, "SUB B")
	test.ExpectEquality(t, base[0xc2].Mnemonic, "JP NZ,nn")
	test.ExpectEquality(t, base[0xcb].Mnemonic, "PREFIX CB")
	test.ExpectEquality(t, base[0xe0].Mnemonic, "LDH (n),A")
	test.ExpectEquality(t, base[0xe2].Mnemonic, "LD (C),A")
	test.ExpectEquality(t, base[0xf1].Mnemonic, "POP AF")
	test.ExpectEquality(t, base[0xf8].Mnemonic, "LD HL,SP+e")
	test.ExpectEquality(t, base[0xff].Mnemonic, "RST $38")

	test.ExpectEquality(t, prefixed[0x37].Mnemonic, "SWAP A")
	test.ExpectEquality(t, prefixed[0x7e].Mnemonic, "BIT 7,(HL)")
	test.ExpectEquality(t, prefixed[0xc0].Mnemonic, "SET 0,B")
}

func TestFormat(t *testing.T) {
	base, _ := instructions.GetDefinitions()

	test.ExpectEquality(t, base[0xc3].Format(0x0150), "JP $0150")
	test.ExpectEquality(t, base[0x18].Format(0xfe), "JR -2")
	test.ExpectEquality(t, base[0xf0].Format(0x44), "LDH A,($ff44)")
	test.ExpectEquality(t, base[0xea].Format(0xc000), "LD ($c000),A")
	test.ExpectEquality(t, base[0xe8].Format(0x05), "ADD SP,+5")
}

func TestCycles(t *testing.T) {
	base, prefixed := instructions.GetDefinitions()

	type expectation struct {
		opcode uint8
		bytes  int
		cycles int
		taken  int
	}

	for _, e := range []expectation{
		{0x00, 1, 1, 0},
		{0x01, 3, 3, 0},
		{0x08, 3, 5, 0},
		{0x10, 2, 1, 0},
		{0x18, 2, 3, 0},
		{0x20, 2, 2, 3},
		{0x34, 1, 3, 0},
		{0x36, 2, 3, 0},
		{0x41, 1, 1, 0},
		{0x46, 1, 2, 0},
		{0x70, 1, 2, 0},
		{0x86, 1, 2, 0},
		{0xc0, 1, 2, 5},
		{0xc1, 1, 3, 0},
		{0xc2, 3, 3, 4},
		{0xc3, 3, 4, 0},
		{0xc4, 3, 3, 6},
		{0xc5, 1, 4, 0},
		{0xc9, 1, 4, 0},
		{0xcd, 3, 6, 0},
		{0xd9, 1, 4, 0},
		{0xe8, 2, 4, 0},
		{0xe9, 1, 1, 0},
		{0xf8, 2, 3, 0},
		{0xf9, 1, 2, 0},
		{0xfa, 3, 4, 0},
	} {
		defn := base[e.opcode]
		test.ExpectEquality(t, defn.Bytes, e.bytes, defn)
		test.ExpectEquality(t, defn.Cycles, e.cycles, defn)
		test.ExpectEquality(t, defn.TakenCycles, e.taken, defn)
	}

	for i, defn := range prefixed {
		test.ExpectEquality(t, defn.Bytes, 2, defn)
		test.ExpectEquality(t, defn.OperandBytes(), 0, defn)
		switch {
		case i&0x07 != 0x06:
			test.ExpectEquality(t, defn.Cycles, 2, defn)
		case i >= 0x40 && i < 0x80:
			test.ExpectEquality(t, defn.Cycles, 3, defn)
		default:
			test.ExpectEquality(t, defn.Cycles, 4, defn)
		}
	}
}
