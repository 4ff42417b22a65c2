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

package addresses

// Entry is the address where execution starts after the boot ROM has
// finished. The boot ROM is not emulated.
const Entry = uint16(0x0100)

// Cartridge header locations.
const (
	HeaderTitle         = uint16(0x0134)
	HeaderTitleEnd      = uint16(0x0143)
	HeaderCartridgeType = uint16(0x0147)
	HeaderROMSize       = uint16(0x0148)
	HeaderRAMSize       = uint16(0x0149)
	HeaderEnd           = uint16(0x014f)
)

// Hardware registers.
const (
	P1   = uint16(0xff00)
	SB   = uint16(0xff01)
	SC   = uint16(0xff02)
	DIV  = uint16(0xff04)
	TIMA = uint16(0xff05)
	TMA  = uint16(0xff06)
	TAC  = uint16(0xff07)
	IF   = uint16(0xff0f)
	LCDC = uint16(0xff40)
	STAT = uint16(0xff41)
	SCY  = uint16(0xff42)
	SCX  = uint16(0xff43)
	LY   = uint16(0xff44)
	LYC  = uint16(0xff45)
	DMA  = uint16(0xff46)
	BGP  = uint16(0xff47)
	OBP0 = uint16(0xff48)
	OBP1 = uint16(0xff49)
	WY   = uint16(0xff4a)
	WX   = uint16(0xff4b)
	IE   = uint16(0xffff)
)

// Canonical lists all the hardware registers along with the canonical names
// for those addresses. Not used by the emulation itself because the map
// structure introduces an overhead that we'd like to avoid.
var Canonical = map[uint16]string{
	P1:   "P1",
	SB:   "SB",
	SC:   "SC",
	DIV:  "DIV",
	TIMA: "TIMA",
	TMA:  "TMA",
	TAC:  "TAC",
	IF:   "IF",
	LCDC: "LCDC",
	STAT: "STAT",
	SCY:  "SCY",
	SCX:  "SCX",
	LY:   "LY",
	LYC:  "LYC",
	DMA:  "DMA",
	BGP:  "BGP",
	OBP0: "OBP0",
	OBP1: "OBP1",
	WY:   "WY",
	WX:   "WX",
	IE:   "IE",
}
