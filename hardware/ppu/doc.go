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

// Package ppu implements the pixel processing unit of the console. The PPU
// is stepped by the console with the number of clock cycles consumed by each
// CPU instruction and produces one scanline of pixels at a time.
//
// The mode of the PPU is decided by the current scanline and the dot counter
// (the number of clock cycles into the scanline):
//
//	scanline > 143              Mode 1 (VBlank)
//	dot < 80                    Mode 2 (OAM scan)
//	dot < 256                   Mode 3 (pixel transfer)
//	otherwise                   Mode 0 (HBlank)
//
// Work is done once, on entry to each mode. Sprites are selected on entry to
// Mode 2 and the scanline is rendered and handed to the Display on entry to
// Mode 3. Pixel timing within a scanline is not emulated.
//
// Pixels handed to the display are two-bit palette values. Sprite pixels that
// are drawn behind the background are marked by setting the upper nibble of
// the pixel. Displays should mask the pixel with 0x0f before using it.
package ppu
