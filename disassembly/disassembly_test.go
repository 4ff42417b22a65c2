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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/disassembly"
	"github.com/jetsetilly/gopherboy/test"
)

func makeROM() []uint8 {
	data := make([]uint8, 0x10000)
	copy(data[0x100:], []uint8{
		0x00,             // NOP
		0xc3, 0x50, 0x01, // JP $0150
		0xcb, 0x7c, // BIT 7,H
		0x3e, 0x41, // LD A,$41
		0xd3,       // unmapped
		0x76,       // HALT
		0x18, 0xfe, // JR -2
	})
	copy(data[0x134:], "DISASM")
	data[0x147] = 0x01
	data[0x148] = 0x01

	// first instruction of bank 3
	copy(data[0xc000:], []uint8{0xea, 0x00, 0xc0}) // LD ($c000),A
	return data
}

func TestDisassembly(t *testing.T) {
	dsm, err := disassembly.FromMemory(nil, makeROM())
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, dsm.Header.Title, "DISASM")
	test.ExpectEquality(t, dsm.NumBanks(), 4)

	expected := []struct {
		address  uint16
		bytecode string
		operator string
		operand  string
	}{
		{0x100, "00", "NOP", ""},
		{0x101, "c3 50 01", "JP", "$0150"},
		{0x104, "cb 7c", "BIT", "7,H"},
		{0x106, "3e 41", "LD", "A,$41"},
		{0x108, "d3", "??", ""},
		{0x109, "76", "HALT", ""},
		{0x10a, "18 fe", "JR", "-2"},
	}

	for _, x := range expected {
		e, ok := dsm.GetEntryByAddress(0, x.address)
		test.DemandSuccess(t, ok, x.address)
		test.ExpectEquality(t, e.Bytecode, x.bytecode)
		test.ExpectEquality(t, e.Operator, x.operator)
		test.ExpectEquality(t, e.Operand, x.operand)
	}

	// the middle of an instruction is not an entry
	_, ok := dsm.GetEntryByAddress(0, 0x102)
	test.ExpectFailure(t, ok)

	e, ok := dsm.GetEntryByAddress(0, 0x101)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "0101  c3 50 01  JP $0150")

	e, ok = dsm.GetEntryByAddress(3, 0x4000)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "4000  ea 00 c0  LD ($c000),A")

	// a zeroed bank is nothing but NOPs
	test.ExpectEquality(t, len(dsm.Entries(1)), 0x4000)
	test.ExpectEquality(t, len(dsm.Entries(4)), 0)

	_, ok = dsm.GetEntryByAddress(5, 0x4000)
	test.ExpectFailure(t, ok)
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.FromMemory(nil, makeROM())
	test.DemandSuccess(t, err)

	var w strings.Builder
	test.DemandSuccess(t, dsm.Write(&w))

	s := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "--- bank 0 ---\n0000  00        NOP\n"))
	test.ExpectSuccess(t, strings.Contains(s, "\n0109  76        HALT\n"))
	test.ExpectSuccess(t, strings.Contains(s, "--- bank 3 ---\n4000  ea 00 c0  LD ($c000),A\n"))
}

func TestErrors(t *testing.T) {
	_, err := disassembly.FromMemory(nil, make([]uint8, 0x100))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, disassembly.DisasmError))

	_, err = disassembly.FromCartridge(cartridgeloader.NewLoader("does-not-exist.gb"))
	test.ExpectSuccess(t, curated.Is(err, disassembly.DisasmError))
}

func TestWriteBank(t *testing.T) {
	dsm, err := disassembly.FromMemory(nil, makeROM())
	test.DemandSuccess(t, err)

	var w strings.Builder
	test.DemandSuccess(t, dsm.WriteBank(&w, 3))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "--- bank 3 ---\n4000  ea 00 c0  LD ($c000),A\n"))
	test.ExpectFailure(t, strings.Contains(w.String(), "bank 0"))

	err = dsm.WriteBank(&w, dsm.NumBanks())
	test.ExpectSuccess(t, curated.Is(err, disassembly.DisasmError))
}
