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

// tile map and tile data locations in video RAM
const (
	tileMap0       = uint16(0x9800)
	tileMap1       = uint16(0x9c00)
	tileDataBlock0 = uint16(0x8000)
	tileDataBlock2 = uint16(0x9000)
)

// number of bytes used by each tile. two bytes for each of the eight rows
const tileSize = 16

// DecodeTileRow decodes the two bytes of a tile row into eight colour indexes.
// The first byte holds the low bit of each pixel and the second byte the
// high bit. The leftmost pixel is in the most significant bit.
func DecodeTileRow(lo uint8, hi uint8) [8]uint8 {
	var row [8]uint8
	for i := range 8 {
		b := uint(7 - i)
		row[i] = (hi>>b&0x01)<<1 | lo>>b&0x01
	}
	return row
}

// TileAddress returns the address of the tile data for the tile index. In
// unsigned mode indexes are relative to 0x8000. In signed mode indexes 0 to
// 127 are relative to 0x9000 and indexes 128 to 255 are relative to 0x8800.
func TileAddress(idx uint8, unsigned bool) uint16 {
	if unsigned {
		return tileDataBlock0 + uint16(idx)*tileSize
	}
	return uint16(int(tileDataBlock2) + int(int8(idx))*tileSize)
}

// palette returns the value in the palette register for the colour index
func palette(reg uint8, idx uint8) uint8 {
	return (reg >> (idx * 2)) & 0x03
}
