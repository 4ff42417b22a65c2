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

import (
	"slices"

	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

const (
	// number of entries in OAM
	oamEntries = 40

	// maximum number of sprites displayed on a single scanline
	maxSprites = 10
)

// sprite attribute bits
const (
	attrBehindBG = 0x80
	attrFlipY    = 0x40
	attrFlipX    = 0x20
	attrPalette  = 0x10
)

type sprite struct {
	// index of the sprite in OAM
	index int

	// position as stored in OAM. the top-left corner of the sprite is at
	// (x-8, y-16)
	y uint8
	x uint8

	tile   uint8
	attr   uint8
	pixels [8]uint8
}

// scanSprites selects the first sprites in OAM that cover the current
// scanline
func (p *PPU) scanSprites() {
	height := 8
	if p.lcdc.LargeSprites {
		height = 16
	}

	p.sprites = p.sprites[:0]

	for i := range oamEntries {
		if len(p.sprites) >= maxSprites {
			break // for loop
		}

		addr := memorymap.OriginOAM + uint16(i*4)
		y := p.mem.ChipRead(addr)

		top := int(y) - 16
		if p.Scanline < top || p.Scanline >= top+height {
			continue // for loop
		}

		s := sprite{
			index: i,
			y:     y,
			x:     p.mem.ChipRead(addr + 1),
			tile:  p.mem.ChipRead(addr + 2),
			attr:  p.mem.ChipRead(addr + 3),
		}

		// the row of the sprite on this scanline. vertical flipping is
		// across the whole height of the sprite
		row := p.Scanline - top
		if s.attr&attrFlipY == attrFlipY {
			row = height - 1 - row
		}

		tile := s.tile
		if height == 16 {
			if row >= 8 {
				tile |= 0x01
				row -= 8
			} else {
				tile &= 0xfe
			}
		}

		addr = TileAddress(tile, true) + uint16(row*2)
		s.pixels = DecodeTileRow(p.mem.ChipRead(addr), p.mem.ChipRead(addr+1))

		p.sprites = append(p.sprites, s)
	}

	// sprites are drawn in reverse order of priority. the sprite with the
	// lowest x position has the highest priority and where x positions are
	// equal the sprite earliest in OAM has priority
	slices.SortFunc(p.sprites, func(a, b sprite) int {
		if a.x != b.x {
			return int(b.x) - int(a.x)
		}
		return b.index - a.index
	})
}

// renderSprites draws the selected sprites into the sprite line
func (p *PPU) renderSprites() {
	for i := range p.obj {
		p.obj[i] = transparent
	}

	if !p.lcdc.SpriteEnable {
		return
	}

	obp0 := p.mem.ChipRead(regOBP0)
	obp1 := p.mem.ChipRead(regOBP1)

	for _, s := range p.sprites {
		pal := obp0
		if s.attr&attrPalette == attrPalette {
			pal = obp1
		}

		var mask uint8
		if s.attr&attrBehindBG == attrBehindBG {
			mask = behindBG
		}

		for i := range 8 {
			col := int(s.x) - 8 + i
			if col < 0 || col >= ScreenWidth {
				continue // for loop
			}

			px := s.pixels[i]
			if s.attr&attrFlipX == attrFlipX {
				px = s.pixels[7-i]
			}

			// colour zero is transparent for sprites
			if px == 0 {
				continue // for loop
			}

			p.obj[col] = palette(pal, px) | mask
		}
	}
}
