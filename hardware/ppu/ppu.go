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
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/interrupt"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/chipbus"
)

// Screen dimensions and timing.
const (
	ScreenWidth     = 160
	ScreenHeight    = 144
	DotsPerLine     = 456
	LinesPerFrame   = 154
	DotsPerFrame    = DotsPerLine * LinesPerFrame
	lastVisibleLine = ScreenHeight - 1
)

// dot counter boundaries of the modes in a visible scanline
const (
	oamScanDots       = 80
	pixelTransferDots = 256
)

// register aliases
const (
	regLCDC = addresses.LCDC
	regSTAT = addresses.STAT
	regSCY  = addresses.SCY
	regSCX  = addresses.SCX
	regLY   = addresses.LY
	regLYC  = addresses.LYC
	regBGP  = addresses.BGP
	regOBP0 = addresses.OBP0
	regOBP1 = addresses.OBP1
	regWY   = addresses.WY
	regWX   = addresses.WX
)

// STAT register bits
const (
	statCoincidence    = 0x04
	statHBlankSource   = 0x08
	statVBlankSource   = 0x10
	statOAMScanSource  = 0x20
	statCoincidenceSrc = 0x40
)

// markers in the sprite line
const (
	transparent = 0xff
	behindBG    = 0xf0
)

// Mode is the current mode of the PPU. The numeric value is the value stored
// in the lower bits of the STAT register.
type Mode int

// List of valid Mode values.
const (
	HBlank Mode = iota
	VBlank
	OAMScan
	PixelTransfer
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAMScan:
		return "OAM scan"
	case PixelTransfer:
		return "pixel transfer"
	}
	return "unknown mode"
}

// Display receives rendered scanlines from the PPU.
type Display interface {
	DrawLine(scanline int, pixels [ScreenWidth]uint8)
}

// PPU implements the pixel processing unit.
type PPU struct {
	mem     chipbus.Memory
	display Display

	Scanline int
	Dot      int
	Mode     Mode

	// the number of times VBlank has been entered
	Frames int

	// decoded LCDC register. only decoded when the raw value changes
	rawLCDC uint8
	lcdc    LCDControl

	// the LY == LYC interrupt has been requested for the current scanline
	coincidence bool

	// sprites selected for the current scanline
	sprites []sprite

	// scratch buffers for the scanline. bgIdx holds the colour index of the
	// background before the palette is applied
	bg    [ScreenWidth]uint8
	bgIdx [ScreenWidth]uint8
	obj   [ScreenWidth]uint8
	line  [ScreenWidth]uint8
}

// NewPPU is the preferred method of initialisation for the PPU type. The
// display argument can be nil.
func NewPPU(mem chipbus.Memory, display Display) *PPU {
	p := &PPU{
		mem:     mem,
		display: display,
		sprites: make([]sprite, 0, maxSprites),
	}
	p.Reset()
	return p
}

// Reset the PPU to the start of the frame.
func (p *PPU) Reset() {
	p.Scanline = 0
	p.Dot = 0

	// the first step of the frame will be an entry into OAMScan mode
	p.Mode = VBlank
	p.Frames = 0
	p.coincidence = false
	p.sprites = p.sprites[:0]
	p.rawLCDC = p.mem.ChipRead(regLCDC)
	p.lcdc.Load(p.rawLCDC)
	p.mem.ChipWrite(regLY, 0)
}

// Plumb a new display into the PPU.
func (p *PPU) Plumb(display Display) {
	p.display = display
}

func (p *PPU) String() string {
	return fmt.Sprintf("LY=%03d dot=%03d %s [%s]", p.Scanline, p.Dot, p.Mode, p.lcdc)
}

// LCDControl returns the decoded value of the LCDC register.
func (p *PPU) LCDControl() LCDControl {
	return p.lcdc
}

func (p *PPU) refreshLCDC() {
	v := p.mem.ChipRead(regLCDC)
	if v != p.rawLCDC {
		p.rawLCDC = v
		p.lcdc.Load(v)
	}
}

func (p *PPU) currentMode() Mode {
	switch {
	case p.Scanline > lastVisibleLine:
		return VBlank
	case p.Dot < oamScanDots:
		return OAMScan
	case p.Dot < pixelTransferDots:
		return PixelTransfer
	}
	return HBlank
}

// Step the PPU by the number of clock cycles.
func (p *PPU) Step(cycles int) {
	p.Dot += cycles

	if !p.lcdc.Enable {
		p.refreshLCDC()
		if !p.lcdc.Enable {
			p.Dot %= DotsPerLine
			return
		}
	}

	mode := p.currentMode()
	if mode != p.Mode {
		p.Mode = mode
		p.updateSTAT(true)
		p.refreshLCDC()

		switch p.Mode {
		case VBlank:
			p.Frames++
			p.mem.RequestInterrupt(interrupt.VBlank)
		case OAMScan:
			p.scanSprites()
		case PixelTransfer:
			p.renderLine()
		}
	}

	if p.Dot >= DotsPerLine {
		p.Dot %= DotsPerLine
		p.coincidence = false
		p.Scanline++
		if p.Scanline >= LinesPerFrame {
			p.Scanline = 0
		}
		p.mem.ChipWrite(regLY, uint8(p.Scanline))
		p.updateSTAT(false)
		p.refreshLCDC()
	}
}

// updateSTAT writes the coincidence and mode bits of the STAT register and
// requests the STAT interrupt if any of the enabled sources is active. mode
// sources are only considered when a mode has just been entered
func (p *PPU) updateSTAT(entered bool) {
	stat := p.mem.ChipRead(regSTAT)
	ly := p.mem.ChipRead(regLY)
	lyc := p.mem.ChipRead(regLYC)

	var trigger bool

	if ly == lyc && stat&statCoincidenceSrc == statCoincidenceSrc && !p.coincidence {
		p.coincidence = true
		trigger = true
	}

	if entered {
		switch p.Mode {
		case HBlank:
			trigger = trigger || stat&statHBlankSource == statHBlankSource
		case VBlank:
			trigger = trigger || stat&statVBlankSource == statVBlankSource
		case OAMScan:
			trigger = trigger || stat&statOAMScanSource == statOAMScanSource
		}
	}

	stat = stat&0xf8 | uint8(p.Mode)
	if ly == lyc {
		stat |= statCoincidence
	}
	p.mem.ChipWrite(regSTAT, stat)

	if trigger {
		p.mem.RequestInterrupt(interrupt.STAT)
	}
}

// renderLine composes the background and sprite lines and sends the result
// to the display
func (p *PPU) renderLine() {
	p.renderBackground()
	p.renderSprites()

	for i := range ScreenWidth {
		o := p.obj[i]
		switch {
		case o != transparent && o&behindBG == behindBG && p.bgIdx[i] != 0:
			p.line[i] = p.bg[i]
		case o != transparent:
			p.line[i] = o
		default:
			p.line[i] = p.bg[i]
		}
	}

	if p.display != nil {
		p.display.DrawLine(p.Scanline, p.line)
	}
}

// renderBackground draws the background, including the window, for the
// current scanline
func (p *PPU) renderBackground() {
	if !p.lcdc.BGEnable {
		clear(p.bg[:])
		clear(p.bgIdx[:])
		return
	}

	bgp := p.mem.ChipRead(regBGP)
	scx := p.mem.ChipRead(regSCX)
	scy := p.mem.ChipRead(regSCY)

	bgMap := tileMap0
	if p.lcdc.BGTileMap {
		bgMap = tileMap1
	}
	winMap := tileMap0
	if p.lcdc.WindowTileMap {
		winMap = tileMap1
	}

	// the window is visible from column winX onwards. winX is equal to
	// ScreenWidth if the window is not visible on this scanline
	winX := ScreenWidth
	winY := int(p.mem.ChipRead(regWY))
	if p.lcdc.WindowEnable && p.Scanline >= winY {
		winX = max(int(p.mem.ChipRead(regWX))-7, 0)
	}

	// the most recently fetched tile row. consecutive pixels usually come
	// from the same row
	var row [8]uint8
	rowAddr := uint16(0)

	for i := range ScreenWidth {
		var mapAddr uint16
		var x, y int

		if i >= winX {
			x = i - winX
			y = p.Scanline - winY
			mapAddr = winMap
		} else {
			x = (i + int(scx)) & 0xff
			y = (p.Scanline + int(scy)) & 0xff
			mapAddr = bgMap
		}

		tile := p.mem.ChipRead(mapAddr + uint16((y/8)*32+x/8))
		addr := TileAddress(tile, p.lcdc.UnsignedTileData) + uint16((y%8)*2)
		if addr != rowAddr {
			rowAddr = addr
			row = DecodeTileRow(p.mem.ChipRead(addr), p.mem.ChipRead(addr+1))
		}

		p.bgIdx[i] = row[x%8]
		p.bg[i] = palette(bgp, row[x%8])
	}
}
