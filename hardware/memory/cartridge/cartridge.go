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

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/logger"
)

// Error patterns returned by Attach(). Use curated.Is() to check for them.
const (
	UnsupportedType = "cartridge: unsupported cartridge type (%#02x)"
	ROMTooSmall     = "cartridge: rom is smaller than the header (%d bytes)"
	ROMTooLarge     = "cartridge: rom is too large for %s (%d bytes)"
)

// SaveError is returned by Save() when the external RAM could not be
// written to disk.
const SaveError = "cartridge: save: %v"

// size of the external RAM buffer. the same size is allocated for every
// cartridge with RAM regardless of what the header says
const externalRAMSize = 0x8000

const (
	ejectedName = "ejected"
	ejectedHash = "nohash"
)

// Cartridge defines the information and operations for a DMG cartridge.
type Cartridge struct {
	instance *instance.Instance

	Filename string
	Hash     string

	// the name of the cartridge as used for the save file
	Name string

	Header Header

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper mapper.CartMapper

	// external RAM should be persisted to disk
	battery bool
}

// NewCartridge is the preferred method of initialisation for the cartridge
// type. The instance argument can be nil.
func NewCartridge(instance *instance.Instance) *Cartridge {
	cart := &Cartridge{instance: instance}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return cart.Summary()
}

// Summary returns brief information about the cartridge. Two lines: first line
// is the path to the cartridge and the second line is information about the
// mapper, including bank information.
func (cart *Cartridge) Summary() string {
	return fmt.Sprintf("%s\n%s [%s]", cart.Filename, cart.ID(), cart.MappedBanks())
}

// ID returns the cartridge mapper ID.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// MappedBanks returns a string summarising the current bank selection.
func (cart *Cartridge) MappedBanks() string {
	return cart.mapper.MappedBanks()
}

// GetBank returns the bank information for the specified address. The
// address should be a full bus address in the ROM or external RAM area.
func (cart *Cartridge) GetBank(address uint16) mapper.BankInfo {
	return cart.mapper.GetBank(address)
}

// HasBattery returns true if the external RAM of the cartridge is persisted
// between sessions.
func (cart *Cartridge) HasBattery() bool {
	return cart.battery
}

// Eject removes memory from cartridge space and unlike the real hardware,
// attaches a bank of empty memory.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Name = ejectedName
	cart.Hash = ejectedHash
	cart.Header = Header{}
	cart.battery = false
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.Hash == ejectedHash
}

// Reset the bank registers of the mapper.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Attach the cartridge loader to the console and make available the data to
// the memory bus. The memory bank controller is chosen from the cartridge type
// byte in the header.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return err
	}

	cart.Eject()

	hdr, err := ReadHeader(cartload.Data)
	if err != nil {
		return err
	}

	t, ok := cartTypes[hdr.Type]
	if !ok {
		return curated.Errorf(UnsupportedType, hdr.Type)
	}

	var m mapper.CartMapper

	switch t.family {
	case "ROM":
		m, err = newNoBanking(cartload.Data)
	case "MBC1":
		m, err = newMBC1(cartload.Data, t.ram)
	case "MBC3":
		m, err = newMBC3(cartload.Data, t.ram, t.clock)
	}
	if err != nil {
		return err
	}

	cart.mapper = m
	cart.Filename = cartload.Filename
	cart.Name = cartload.Name()
	cart.Hash = cartload.Hash
	cart.Header = hdr
	cart.battery = t.battery

	logger.Logf(cart.instance, "cartridge", "attached %s", hdr)

	if cart.battery {
		cart.LoadSave()
	}

	return nil
}

// ReadROM returns the value at the address in the ROM area, taking into
// account the current bank selection.
func (cart *Cartridge) ReadROM(address uint16) uint8 {
	return cart.mapper.ReadROM(address)
}

// WriteROM decodes writes to the ROM area into memory bank controller
// requests.
func (cart *Cartridge) WriteROM(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		// RAM enable. external RAM is always enabled
	case address < 0x4000:
		cart.mapper.SelectROMBank(data)
	case address < 0x6000:
		cart.mapper.SelectRAMBank(data)
	case address <= memorymap.MemtopROM:
		cart.mapper.SelectBankingMode(data)
	}
}

// ReadRAM returns the value at the address in the external RAM area. The
// address should be a full bus address.
func (cart *Cartridge) ReadRAM(address uint16) uint8 {
	return cart.mapper.ReadRAM(address - memorymap.OriginExternalRAM)
}

// WriteRAM writes the value to the address in the external RAM area. The
// address should be a full bus address.
func (cart *Cartridge) WriteRAM(address uint16, data uint8) {
	cart.mapper.WriteRAM(address-memorymap.OriginExternalRAM, data)
}
