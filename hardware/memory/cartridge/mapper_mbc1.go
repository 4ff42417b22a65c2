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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge/mapper"
)

const (
	romBankSize = 0x4000
	ramBankSize = 0x2000

	// the largest ROM addressable by the MBC1 and MBC3 controllers
	mbcMaxSize = 0x200000
)

// mbc1 implements the mapper.CartMapper interface for the MBC1 controller.
//
// The controller has a five bit ROM bank register and a two bit secondary
// register. How the secondary register is used depends on the banking mode:
//
//	mode 0: the secondary register selects the RAM bank
//	mode 1: the secondary register supplies bits 5 and 6 of the ROM bank
//		and also banks the 0x0000 to 0x3fff region
type mbc1 struct {
	data     []uint8
	numBanks int

	// nil if the cartridge has no external RAM
	ram []uint8

	lo   uint8
	hi   uint8
	mode uint8
}

func newMBC1(data []uint8, hasRAM bool) (mapper.CartMapper, error) {
	if len(data) > mbcMaxSize {
		return nil, curated.Errorf(ROMTooLarge, "MBC1", len(data))
	}

	cart := &mbc1{
		data:     data,
		numBanks: max((len(data)+romBankSize-1)/romBankSize, 1),
	}
	if hasRAM {
		cart.ram = make([]uint8, externalRAMSize)
	}
	cart.Reset()

	return cart, nil
}

// ID implements the mapper.CartMapper interface.
func (cart *mbc1) ID() string {
	return "MBC1"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *mbc1) MappedBanks() string {
	return fmt.Sprintf("Bank: %d RAM: %d Mode: %d", cart.romBank(), cart.ramBank(), cart.mode)
}

// Reset implements the mapper.CartMapper interface.
func (cart *mbc1) Reset() {
	cart.lo = 1
	cart.hi = 0
	cart.mode = 0
}

// RAM implements the mapper.CartRAM interface.
func (cart *mbc1) RAM() []uint8 {
	return cart.ram
}

// bank selected for the 0x4000 to 0x7fff region
func (cart *mbc1) romBank() int {
	bank := int(cart.lo)
	if cart.mode == 1 {
		bank |= int(cart.hi) << 5
	}
	return bank % cart.numBanks
}

// bank selected for the 0x0000 to 0x3fff region
func (cart *mbc1) lowBank() int {
	if cart.mode == 1 {
		return (int(cart.hi) << 5) % cart.numBanks
	}
	return 0
}

func (cart *mbc1) ramBank() int {
	if cart.mode == 1 {
		return 0
	}
	return int(cart.hi)
}

// ReadROM implements the mapper.CartMapper interface.
func (cart *mbc1) ReadROM(address uint16) uint8 {
	var idx int
	if address < romBankSize {
		idx = cart.lowBank()*romBankSize + int(address)
	} else {
		idx = cart.romBank()*romBankSize + int(address-romBankSize)
	}
	if idx >= len(cart.data) {
		return 0xff
	}
	return cart.data[idx]
}

// ReadRAM implements the mapper.CartMapper interface.
func (cart *mbc1) ReadRAM(address uint16) uint8 {
	if cart.ram == nil {
		return 0xff
	}
	return cart.ram[cart.ramBank()*ramBankSize+int(address)]
}

// WriteRAM implements the mapper.CartMapper interface.
func (cart *mbc1) WriteRAM(address uint16, data uint8) {
	if cart.ram == nil {
		return
	}
	cart.ram[cart.ramBank()*ramBankSize+int(address)] = data
}

// SelectROMBank implements the mapper.CartMapper interface.
func (cart *mbc1) SelectROMBank(data uint8) {
	cart.lo = data & 0x1f
	if cart.lo == 0 {
		cart.lo = 1
	}
}

// SelectRAMBank implements the mapper.CartMapper interface.
func (cart *mbc1) SelectRAMBank(data uint8) {
	cart.hi = data & 0x03
}

// SelectBankingMode implements the mapper.CartMapper interface.
func (cart *mbc1) SelectBankingMode(data uint8) {
	cart.mode = data & 0x01
}

// GetBank implements the mapper.CartMapper interface.
func (cart *mbc1) GetBank(address uint16) mapper.BankInfo {
	switch {
	case address < romBankSize:
		return mapper.BankInfo{Number: cart.lowBank()}
	case address <= 0x7fff:
		return mapper.BankInfo{Number: cart.romBank()}
	}
	return mapper.BankInfo{Number: cart.ramBank(), IsRAM: true}
}
