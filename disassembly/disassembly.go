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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

// DisasmError is the pattern for all errors returned by the disassembly
// package.
const DisasmError = "disassembly: %v"

// the size of each ROM bank and the address at which the switchable bank
// starts
const (
	bankSize   = 0x4000
	bankOrigin = 0x4000
)

// Disassembly represents the disassembly of a cartridge.
type Disassembly struct {
	Header cartridge.Header

	// entries for each bank in address order
	entries [][]Entry

	// indexed by bank and then by address. the value is the index into the
	// entries slice for that bank
	reference []map[uint16]int
}

// disasmMemory is a read-only view of a single ROM bank as seen by the CPU.
// bank zero is always visible in the lower half of the address space. like
// the banking controllers, selecting bank zero for the upper half selects
// bank one. writes are ignored.
type disasmMemory struct {
	data []uint8
	bank int
}

func (mem *disasmMemory) Read(address uint16) uint8 {
	var idx int
	switch {
	case address < bankOrigin:
		idx = int(address)
	case address <= memorymap.MemtopROM:
		idx = max(mem.bank, 1)*bankSize + int(address-bankOrigin)
	default:
		return 0
	}
	if idx >= len(mem.data) {
		return 0xff
	}
	return mem.data[idx]
}

func (mem *disasmMemory) Write(_ uint16, _ uint8) {
}

// FromCartridge loads the cartridge data and returns the disassembly.
// Useful for one-shot disassemblies, like the gopherboy "disasm" mode.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	err := cartload.Load()
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	ins, err := instance.NewInstance(nil)
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}
	ins.Label = instance.Disassembly
	ins.Normalise()

	return FromMemory(ins, cartload.Data)
}

// FromMemory disassembles the ROM data. The instance argument can be nil.
func FromMemory(ins *instance.Instance, data []uint8) (*Disassembly, error) {
	hdr, err := cartridge.ReadHeader(data)
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	numBanks := max((len(data)+bankSize-1)/bankSize, 2)

	dsm := &Disassembly{
		Header:    hdr,
		entries:   make([][]Entry, numBanks),
		reference: make([]map[uint16]int, numBanks),
	}

	mem := &disasmMemory{data: data}
	mc := cpu.NewCPU(ins, mem)

	for bank := range numBanks {
		origin := bankOrigin
		if bank == 0 {
			origin = 0
		}
		mem.bank = bank
		dsm.reference[bank] = make(map[uint16]int)

		address := origin
		for address < origin+bankSize {
			mc.PC = uint16(address)
			mc.Halted = false

			err := mc.ExecuteInstruction()
			if err != nil {
				return nil, curated.Errorf(DisasmError, err)
			}

			r := mc.LastResult
			bytecode := make([]uint8, r.ByteCount)
			for i := range bytecode {
				bytecode[i] = mem.Read(r.Address + uint16(i))
			}

			dsm.reference[bank][r.Address] = len(dsm.entries[bank])
			dsm.entries[bank] = append(dsm.entries[bank], newEntry(bank, r, bytecode))

			address += r.ByteCount
		}
	}

	return dsm, nil
}

// NumBanks returns the number of banks in the disassembly. Bank zero is
// always at the start of the address space.
func (dsm *Disassembly) NumBanks() int {
	return len(dsm.entries)
}

// Entries returns the entries for the bank in address order.
func (dsm *Disassembly) Entries(bank int) []Entry {
	if bank < 0 || bank >= len(dsm.entries) {
		return nil
	}
	return dsm.entries[bank]
}

// GetEntryByAddress returns the disassembly entry at the specified
// bank/address. Returns false if no entry starts at that address.
func (dsm *Disassembly) GetEntryByAddress(bank int, address uint16) (Entry, bool) {
	if bank < 0 || bank >= len(dsm.reference) {
		return Entry{}, false
	}
	idx, ok := dsm.reference[bank][address]
	if !ok {
		return Entry{}, false
	}
	return dsm.entries[bank][idx], true
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer) error {
	for bank := range dsm.entries {
		if err := dsm.WriteBank(output, bank); err != nil {
			return err
		}
	}
	return nil
}

// WriteBank writes the disassembly of a single bank to io.Writer.
func (dsm *Disassembly) WriteBank(output io.Writer, bank int) error {
	if bank < 0 || bank >= len(dsm.entries) {
		return curated.Errorf(DisasmError, fmt.Sprintf("no bank %d in cartridge", bank))
	}
	if _, err := fmt.Fprintf(output, "--- bank %d ---\n", bank); err != nil {
		return curated.Errorf(DisasmError, err)
	}
	for _, e := range dsm.entries[bank] {
		if _, err := fmt.Fprintln(output, e); err != nil {
			return curated.Errorf(DisasmError, err)
		}
	}
	return nil
}
