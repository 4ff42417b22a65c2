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
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// Header contains the information in the cartridge header that is relevant
// to the emulation.
type Header struct {
	Title   string
	Type    uint8
	ROMSize int
	RAMSize int
}

// header type byte values and what they imply about the hardware on the
// cartridge
type cartType struct {
	family  string
	ram     bool
	battery bool
	clock   bool
}

var cartTypes = map[uint8]cartType{
	0x00: {family: "ROM"},
	0x01: {family: "MBC1"},
	0x02: {family: "MBC1", ram: true},
	0x03: {family: "MBC1", ram: true, battery: true},
	0x0f: {family: "MBC3", battery: true, clock: true},
	0x10: {family: "MBC3", ram: true, battery: true, clock: true},
	0x11: {family: "MBC3"},
	0x12: {family: "MBC3", ram: true},
	0x13: {family: "MBC3", ram: true, battery: true},
}

func (t cartType) String() string {
	s := strings.Builder{}
	s.WriteString(t.family)
	if t.clock {
		s.WriteString("+TIMER")
	}
	if t.ram {
		s.WriteString("+RAM")
	}
	if t.battery {
		s.WriteString("+BATTERY")
	}
	return s.String()
}

// ram size byte in the header
var ramSizes = map[uint8]int{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// ReadHeader returns the header information from the ROM data. The data must
// be at least as long as the header.
func ReadHeader(data []uint8) (Header, error) {
	if len(data) <= int(addresses.HeaderEnd) {
		return Header{}, curated.Errorf(ROMTooSmall, len(data))
	}

	h := Header{
		Type:    data[addresses.HeaderCartridgeType],
		ROMSize: (32 * 1024) << (data[addresses.HeaderROMSize] & 0x0f),
		RAMSize: ramSizes[data[addresses.HeaderRAMSize]],
	}

	title := string(data[addresses.HeaderTitle : addresses.HeaderTitleEnd+1])
	if i := strings.IndexByte(title, 0x00); i >= 0 {
		title = title[:i]
	}
	h.Title = strings.TrimSpace(strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, title))

	return h, nil
}

// TypeDescription returns the name of the cartridge type in the header.
func (h Header) TypeDescription() string {
	if t, ok := cartTypes[h.Type]; ok {
		return t.String()
	}
	return fmt.Sprintf("unsupported (%#02x)", h.Type)
}

func (h Header) String() string {
	return fmt.Sprintf("%s [%s] ROM %dKB RAM %dKB", h.Title, h.TypeDescription(), h.ROMSize/1024, h.RAMSize/1024)
}
