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
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge/mapper"
)

// cartridges with no memory bank controller map the whole of the ROM area
// directly and have no external RAM.
const noBankingMaxSize = 0x8000

type noBanking struct {
	data []uint8
}

func newNoBanking(data []uint8) (mapper.CartMapper, error) {
	if len(data) > noBankingMaxSize {
		return nil, curated.Errorf(ROMTooLarge, "ROM", len(data))
	}
	return &noBanking{data: data}, nil
}

// ID implements the mapper.CartMapper interface.
func (cart *noBanking) ID() string {
	return "ROM"
}

// MappedBanks implements the mapper.CartMapper interface.
func (cart *noBanking) MappedBanks() string {
	return "Bank: 0"
}

// Reset implements the mapper.CartMapper interface.
func (cart *noBanking) Reset() {
}

// ReadROM implements the mapper.CartMapper interface.
func (cart *noBanking) ReadROM(address uint16) uint8 {
	if int(address) >= len(cart.data) {
		return 0xff
	}
	return cart.data[address]
}

// ReadRAM implements the mapper.CartMapper interface.
func (cart *noBanking) ReadRAM(_ uint16) uint8 {
	return 0xff
}

// WriteRAM implements the mapper.CartMapper interface.
func (cart *noBanking) WriteRAM(_ uint16, _ uint8) {
}

// SelectROMBank implements the mapper.CartMapper interface.
func (cart *noBanking) SelectROMBank(_ uint8) {
}

// SelectRAMBank implements the mapper.CartMapper interface.
func (cart *noBanking) SelectRAMBank(_ uint8) {
}

// SelectBankingMode implements the mapper.CartMapper interface.
func (cart *noBanking) SelectBankingMode(_ uint8) {
}

// GetBank implements the mapper.CartMapper interface.
func (cart *noBanking) GetBank(_ uint16) mapper.BankInfo {
	return mapper.BankInfo{}
}
