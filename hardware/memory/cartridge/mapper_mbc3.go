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
	"time"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge/mapper"
)

// values written to the RAM bank register that select a clock register
// rather than a bank of RAM
const (
	clockSeconds = 0x08
	clockMinutes = 0x09
	clockHours   = 0x0a
	clockDays    = 0x0b
	clockControl = 0x0c
)

// mbc3 implements the mapper.CartMapper interface for the MBC3 controller,
// with or without the real-time clock.
//
// The clock registers report the wall clock of the host. Latching and halting
// of the clock is not emulated and writes to the clock registers are ignored.
type mbc3 struct {
	data     []uint8
	numBanks int

	// nil if the cartridge has no external RAM
	ram []uint8

	romBank uint8
	ramBank uint8

	hasClock bool

	// the clock register selected with SelectRAMBank(). zero if a RAM bank
	// is selected
	clock uint8

	// source of the current time. replaced during testing
	now func() time.Time
}

func newMBC3(data []uint8, hasRAM bool, hasClock bool) (mapper.CartMapper, error) {
	if len(data) > mbcMaxSize {
		return nil, curated.Errorf(ROMTooLarge, "MBC3", len(data))
	}

	cart := &mbc3{
		data:     data,
		numBanks: max((len(data)+romBankSize-1)/romBankSize, 1),
		hasClock: hasClock,
		now:      time.Now,
	}
	if hasRAM {
		cart.ram = make([]uint8, externalRAMSize)
	}
	cart.Reset()

	return cart, nil
}

// ID implements the mapper.CartMapper interface.
func (cart *mbc3) ID() string {
	if cart.hasClock {
		return "MBC3+RTC"
	}
	return "MBC3"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *mbc3) MappedBanks() string {
	if cart.clock != 0 {
		return fmt.Sprintf("Bank: %d Clock: %#02x", cart.effectiveBank(), cart.clock)
	}
	return fmt.Sprintf("Bank: %d RAM: %d", cart.effectiveBank(), cart.ramBank)
}

// Reset implements the mapper.CartMapper interface.
func (cart *mbc3) Reset() {
	cart.romBank = 1
	cart.ramBank = 0
	cart.clock = 0
}

// RAM implements the mapper.CartRAM interface.
func (cart *mbc3) RAM() []uint8 {
	return cart.ram
}

// bank zero cannot be selected for the 0x4000 to 0x7fff region. selecting
// it maps bank one instead
func (cart *mbc3) effectiveBank() int {
	return max(int(cart.romBank), 1) % cart.numBanks
}

// ReadROM implements the mapper.CartMapper interface.
func (cart *mbc3) ReadROM(address uint16) uint8 {
	idx := int(address)
	if address >= romBankSize {
		idx = cart.effectiveBank()*romBankSize + int(address-romBankSize)
	}
	if idx >= len(cart.data) {
		return 0xff
	}
	return cart.data[idx]
}

func (cart *mbc3) readClock() uint8 {
	t := cart.now().Unix()
	switch cart.clock {
	case clockSeconds:
		return uint8(t % 60)
	case clockMinutes:
		return uint8((t / 60) % 60)
	case clockHours:
		return uint8((t / 3600) % 24)
	case clockDays:
		return uint8((t / 86400) % 256)
	}
	return 0
}

// ReadRAM implements the mapper.CartMapper interface.
func (cart *mbc3) ReadRAM(address uint16) uint8 {
	if cart.clock != 0 {
		return cart.readClock()
	}
	if cart.ram == nil {
		return 0xff
	}
	return cart.ram[int(cart.ramBank)*ramBankSize+int(address)]
}

// WriteRAM implements the mapper.CartMapper interface.
func (cart *mbc3) WriteRAM(address uint16, data uint8) {
	if cart.clock != 0 || cart.ram == nil {
		return
	}
	cart.ram[int(cart.ramBank)*ramBankSize+int(address)] = data
}

// SelectROMBank implements the mapper.CartMapper interface.
func (cart *mbc3) SelectROMBank(data uint8) {
	cart.romBank = data & 0x7f
}

// SelectRAMBank implements the mapper.CartMapper interface.
func (cart *mbc3) SelectRAMBank(data uint8) {
	if cart.hasClock && data >= clockSeconds && data <= clockControl {
		cart.clock = data
		return
	}
	cart.clock = 0
	cart.ramBank = data & 0x03
}

// SelectBankingMode implements the mapper.CartMapper interface. On the MBC3
// this register latches the clock, which is not emulated.
func (cart *mbc3) SelectBankingMode(_ uint8) {
}

// GetBank implements the mapper.CartMapper interface.
func (cart *mbc3) GetBank(address uint16) mapper.BankInfo {
	switch {
	case address < romBankSize:
		return mapper.BankInfo{Number: 0}
	case address <= 0x7fff:
		return mapper.BankInfo{Number: cart.effectiveBank()}
	}
	if cart.clock != 0 {
		return mapper.BankInfo{Number: int(cart.clock), IsClock: true}
	}
	return mapper.BankInfo{Number: int(cart.ramBank), IsRAM: true}
}
