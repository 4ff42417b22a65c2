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
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge/mapper"
)

// ejected implements the mapper.CartMapper interface.
type ejected struct{}

func newEjected() *ejected {
	return &ejected{}
}

// ID implements the mapper.CartMapper interface.
func (cart *ejected) ID() string {
	return "-"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *ejected) MappedBanks() string {
	return "ejected"
}

// Reset implements the mapper.CartMapper interface.
func (cart *ejected) Reset() {
}

// ReadROM implements the mapper.CartMapper interface.
func (cart *ejected) ReadROM(_ uint16) uint8 {
	return 0xff
}

// ReadRAM implements the mapper.CartMapper interface.
func (cart *ejected) ReadRAM(_ uint16) uint8 {
	return 0xff
}

// WriteRAM implements the mapper.CartMapper interface.
func (cart *ejected) WriteRAM(_ uint16, _ uint8) {
}

// SelectROMBank implements the mapper.CartMapper interface.
func (cart *ejected) SelectROMBank(_ uint8) {
}

// SelectRAMBank implements the mapper.CartMapper interface.
func (cart *ejected) SelectRAMBank(_ uint8) {
}

// SelectBankingMode implements the mapper.CartMapper interface.
func (cart *ejected) SelectBankingMode(_ uint8) {
}

// GetBank implements the mapper.CartMapper interface.
func (cart *ejected) GetBank(_ uint16) mapper.BankInfo {
	return mapper.BankInfo{}
}
