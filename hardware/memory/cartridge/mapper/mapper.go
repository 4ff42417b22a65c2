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

// Package mapper contains the CartMapper interface that is implemented by
// every cartridge memory bank controller, along with types that help describe
// the state of a mapper.
package mapper

import "fmt"

// CartMapper implementations hold the actual data from the loaded ROM and
// keep track of which banks are mapped to the cartridge address windows.
//
// ROM addresses are in the range 0x0000 to 0x7fff. RAM addresses are
// normalised to the range 0x0000 to 0x1fff.
type CartMapper interface {
	ID() string
	MappedBanks() string

	// reset the bank registers to their power-on state
	Reset()

	ReadROM(address uint16) uint8
	ReadRAM(address uint16) uint8

	// writes to RAM are ignored if the cartridge has no RAM
	WriteRAM(address uint16, data uint8)

	// the three bank control registers. the value is the data written by the
	// CPU. controllers that do not support a register ignore the write
	SelectROMBank(data uint8)
	SelectRAMBank(data uint8)
	SelectBankingMode(data uint8)

	// the address for GetBank() is a bus address in either the ROM or the
	// external RAM area
	GetBank(address uint16) BankInfo
}

// CartRAM is implemented by mappers that have external RAM. The slice
// returned by RAM() is the live RAM buffer.
type CartRAM interface {
	RAM() []uint8
}

// BankInfo is used to identify the bank mapped to an address.
type BankInfo struct {
	Number int

	// bank is in external RAM
	IsRAM bool

	// the bank is a clock register and not RAM or ROM
	IsClock bool
}

func (b BankInfo) String() string {
	if b.IsClock {
		return fmt.Sprintf("%dC", b.Number)
	}
	if b.IsRAM {
		return fmt.Sprintf("%dR", b.Number)
	}
	return fmt.Sprintf("%d", b.Number)
}
