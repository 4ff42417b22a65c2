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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case VRAM:
		return "VRAM"
	case ExternalRAM:
		return "External RAM"
	case WRAM:
		return "WRAM"
	case Echo:
		return "Echo"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case InterruptEnable:
		return "IE"
	}

	return "undefined"
}

// The different memory areas of the console
const (
	Undefined Area = iota
	ROM
	VRAM
	ExternalRAM
	WRAM
	Echo
	OAM
	Unusable
	IO
	HRAM
	InterruptEnable
)

// The origin and memory top for each area of memory.
const (
	OriginROM         = uint16(0x0000)
	MemtopROM         = uint16(0x7fff)
	OriginVRAM        = uint16(0x8000)
	MemtopVRAM        = uint16(0x9fff)
	OriginExternalRAM = uint16(0xa000)
	MemtopExternalRAM = uint16(0xbfff)
	OriginWRAM        = uint16(0xc000)
	MemtopWRAM        = uint16(0xdfff)
	OriginEcho        = uint16(0xe000)
	MemtopEcho        = uint16(0xfdff)
	OriginOAM         = uint16(0xfe00)
	MemtopOAM         = uint16(0xfe9f)
	OriginUnusable    = uint16(0xfea0)
	MemtopUnusable    = uint16(0xfeff)
	OriginIO          = uint16(0xff00)
	MemtopIO          = uint16(0xff7f)
	OriginHRAM        = uint16(0xff80)
	MemtopHRAM        = uint16(0xfffe)
)

// The ROM area is split into the fixed bank and the switchable bank.
const (
	OriginROMBank0 = uint16(0x0000)
	MemtopROMBank0 = uint16(0x3fff)
	OriginROMBankN = uint16(0x4000)
	MemtopROMBankN = uint16(0x7fff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// MapAddress translates the address argument to the area it belongs to and
// the address relative to the origin of that area.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopROM:
		return address, ROM
	case address <= MemtopVRAM:
		return address - OriginVRAM, VRAM
	case address <= MemtopExternalRAM:
		return address - OriginExternalRAM, ExternalRAM
	case address <= MemtopWRAM:
		return address - OriginWRAM, WRAM
	case address <= MemtopEcho:
		return address - OriginEcho, Echo
	case address <= MemtopOAM:
		return address - OriginOAM, OAM
	case address <= MemtopUnusable:
		return address - OriginUnusable, Unusable
	case address <= MemtopIO:
		return address - OriginIO, IO
	case address <= MemtopHRAM:
		return address - OriginHRAM, HRAM
	}
	return 0, InterruptEnable
}

// IsArea returns true if the address is in the specificied area
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
