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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/test"
)

// makeROM creates ROM data of the specified number of banks. every byte in
// a bank (other than the header in bank zero) is the number of the bank
func makeROM(cartType uint8, banks int) []uint8 {
	data := make([]uint8, banks*romBankSize)
	for b := range banks {
		for i := range romBankSize {
			data[b*romBankSize+i] = uint8(b)
		}
	}
	copy(data[addresses.HeaderTitle:], "TESTCART")
	data[addresses.HeaderTitle+8] = 0x00
	data[addresses.HeaderCartridgeType] = cartType
	data[addresses.HeaderROMSize] = 0x00
	data[addresses.HeaderRAMSize] = 0x03
	return data
}

func attach(t *testing.T, data []uint8) *Cartridge {
	t.Helper()
	cart := NewCartridge(nil)
	err := cart.Attach(cartridgeloader.Loader{Filename: "test.gb", Data: data})
	test.DemandSuccess(t, err)
	return cart
}

func TestHeader(t *testing.T) {
	hdr, err := ReadHeader(makeROM(0x13, 2))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.Title, "TESTCART")
	test.ExpectEquality(t, hdr.Type, 0x13)
	test.ExpectEquality(t, hdr.ROMSize, 32*1024)
	test.ExpectEquality(t, hdr.RAMSize, 32*1024)
	test.ExpectEquality(t, hdr.TypeDescription(), "MBC3+RAM+BATTERY")

	_, err = ReadHeader(make([]uint8, 0x100))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, ROMTooSmall))
}

func TestLoadErrors(t *testing.T) {
	cart := NewCartridge(nil)

	err := cart.Attach(cartridgeloader.Loader{Filename: "test.gb", Data: makeROM(0x05, 2)})
	test.ExpectSuccess(t, curated.Is(err, UnsupportedType))
	test.ExpectSuccess(t, cart.IsEjected())

	err = cart.Attach(cartridgeloader.Loader{Filename: "test.gb", Data: makeROM(0x00, 4)})
	test.ExpectSuccess(t, curated.Is(err, ROMTooLarge))

	err = cart.Attach(cartridgeloader.Loader{Filename: "test.gb", Data: makeROM(0x01, 129)})
	test.ExpectSuccess(t, curated.Is(err, ROMTooLarge))

	err = cart.Attach(cartridgeloader.Loader{Filename: "test.gb", Data: make([]uint8, 0x14f)})
	test.ExpectSuccess(t, curated.Is(err, ROMTooSmall))
}

func TestNoBanking(t *testing.T) {
	cart := attach(t, makeROM(0x00, 2))
	test.ExpectEquality(t, cart.ID(), "ROM")
	test.ExpectEquality(t, cart.ReadROM(0x0000), 0x00)
	test.ExpectEquality(t, cart.ReadROM(0x4000), 0x01)

	// bank selection has no effect
	cart.WriteROM(0x2000, 0x05)
	test.ExpectEquality(t, cart.ReadROM(0x7fff), 0x01)

	// no external RAM
	cart.WriteRAM(0xa000, 0x12)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 0xff)
}

func TestMBC1ROMBanking(t *testing.T) {
	cart := attach(t, makeROM(0x01, 64))
	test.ExpectEquality(t, cart.ID(), "MBC1")

	// bank one is selected on reset
	test.ExpectEquality(t, cart.ReadROM(0x4000), 0x01)

	cart.WriteROM(0x2000, 0x02)
	test.ExpectEquality(t, cart.ReadROM(0x4000), 0x02)
	test.ExpectEquality(t, cart.ReadROM(0x0000), 0x00)

	// bank zero selects bank one
	cart.WriteROM(0x3fff, 0x00)
	test.ExpectEquality(t, cart.ReadROM(0x4000), 0x01)

	// only the lower five bits are used
	cart.WriteROM(0x2000, 0xe3)
	test.ExpectEquality(t, cart.ReadROM(0x4000), 0x03)

	// mode 1 with the secondary register extending the bank number and
	// banking the lower region
	cart.WriteROM(0x2000, 0x02)
	cart.WriteROM(0x4000, 0x01)
	cart.WriteROM(0x6000, 0x01)
	test.ExpectEquality(t, cart.ReadROM(0x4000), 34)
	test.ExpectEquality(t, cart.ReadROM(0x0000), 32)
	test.ExpectEquality(t, cart.GetBank(0x4000).Number, 34)

	// back to mode 0
	cart.WriteROM(0x6000, 0x00)
	test.ExpectEquality(t, cart.ReadROM(0x4000), 0x02)
	test.ExpectEquality(t, cart.ReadROM(0x0000), 0x00)
}

func TestMBC1RAMBanking(t *testing.T) {
	cart := attach(t, makeROM(0x02, 4))

	cart.WriteRAM(0xa000, 0x10)
	cart.WriteROM(0x4000, 0x01)
	test.ExpectEquality(t, cart.GetBank(0xa000).String(), "1R")
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 0x00)
	cart.WriteRAM(0xa000, 0x11)

	cart.WriteROM(0x4000, 0x00)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 0x10)

	// RAM bank 0 is always used in mode 1
	cart.WriteROM(0x4000, 0x01)
	cart.WriteROM(0x6000, 0x01)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 0x10)
}

func TestMBC3(t *testing.T) {
	cart := attach(t, makeROM(0x11, 8))
	test.ExpectEquality(t, cart.ID(), "MBC3")

	test.ExpectEquality(t, cart.ReadROM(0x4000), 0x01)
	cart.WriteROM(0x2000, 0x00)
	test.ExpectEquality(t, cart.ReadROM(0x4000), 0x01)
	cart.WriteROM(0x2000, 0x05)
	test.ExpectEquality(t, cart.ReadROM(0x4000), 0x05)
	test.ExpectEquality(t, cart.ReadROM(0x0000), 0x00)

	// no clock and no RAM
	cart.WriteROM(0x4000, 0x08)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 0xff)
	test.ExpectEquality(t, cart.GetBank(0xa000).IsClock, false)
}

func TestMBC3Clock(t *testing.T) {
	cart := attach(t, makeROM(0x10, 4))
	test.ExpectEquality(t, cart.ID(), "MBC3+RTC")

	m := cart.mapper.(*mbc3)
	m.now = func() time.Time {
		return time.Unix(3*86400+5*3600+7*60+9, 0)
	}

	cart.WriteRAM(0xa000, 0x42)

	cart.WriteROM(0x4000, clockSeconds)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 9)
	test.ExpectEquality(t, cart.GetBank(0xa000).String(), "8C")
	cart.WriteROM(0x4000, clockMinutes)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 7)
	cart.WriteROM(0x4000, clockHours)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 5)
	cart.WriteROM(0x4000, clockDays)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 3)
	cart.WriteROM(0x4000, clockControl)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 0)

	// writes to clock registers are ignored
	cart.WriteRAM(0xa000, 0x99)

	cart.WriteROM(0x4000, 0x00)
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 0x42)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	cart := attach(t, makeROM(0x03, 4))
	test.ExpectSuccess(t, cart.HasBattery())
	cart.WriteRAM(0xa000, 0x12)
	cart.WriteRAM(0xbfff, 0x34)
	test.DemandSuccess(t, cart.Save())

	cart = attach(t, makeROM(0x03, 4))
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 0x12)
	test.ExpectEquality(t, cart.ReadRAM(0xbfff), 0x34)

	// a save file of the wrong size is ignored
	fn, err := cart.saveFilename()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.WriteFile(fn, []uint8{0x01, 0x02}, 0600))
	cart = attach(t, makeROM(0x03, 4))
	test.ExpectEquality(t, cart.ReadRAM(0xa000), 0x00)

	// cartridges without a battery are never saved
	cart = NewCartridge(nil)
	err = cart.Attach(cartridgeloader.Loader{Filename: "nobattery.gb", Data: makeROM(0x02, 4)})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cart.Save())
	_, err = os.Stat(filepath.Join(filepath.Dir(fn), "nobattery.sav"))
	test.ExpectFailure(t, err)
}
