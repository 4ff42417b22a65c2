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

package ppu

import "strings"

// LCDControl is the decoded value of the LCDC register.
type LCDControl struct {
	Enable           bool
	WindowTileMap    bool
	WindowEnable     bool
	UnsignedTileData bool
	BGTileMap        bool
	LargeSprites     bool
	SpriteEnable     bool
	BGEnable         bool
}

// Load decodes the LCDC register value.
func (lc *LCDControl) Load(v uint8) {
	lc.Enable = v&0x80 == 0x80
	lc.WindowTileMap = v&0x40 == 0x40
	lc.WindowEnable = v&0x20 == 0x20
	lc.UnsignedTileData = v&0x10 == 0x10
	lc.BGTileMap = v&0x08 == 0x08
	lc.LargeSprites = v&0x04 == 0x04
	lc.SpriteEnable = v&0x02 == 0x02
	lc.BGEnable = v&0x01 == 0x01
}

func (lc LCDControl) String() string {
	s := strings.Builder{}
	if !lc.Enable {
		return "LCD off"
	}
	s.WriteString("LCD on")
	if lc.BGEnable {
		s.WriteString(" BG")
		if lc.BGTileMap {
			s.WriteString("(9c00)")
		} else {
			s.WriteString("(9800)")
		}
	}
	if lc.WindowEnable {
		s.WriteString(" WIN")
		if lc.WindowTileMap {
			s.WriteString("(9c00)")
		} else {
			s.WriteString("(9800)")
		}
	}
	if lc.SpriteEnable {
		if lc.LargeSprites {
			s.WriteString(" OBJ(8x16)")
		} else {
			s.WriteString(" OBJ(8x8)")
		}
	}
	if lc.UnsignedTileData {
		s.WriteString(" DATA(8000)")
	} else {
		s.WriteString(" DATA(8800)")
	}
	return s.String()
}
