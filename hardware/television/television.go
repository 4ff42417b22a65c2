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

// Package television converts the scanlines produced by the PPU into frames
// of RGBA pixels and hands complete frames to the registered FrameRenderer
// implementations. The television also paces the emulation with the limiter
// sub-package.
package television

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
	"github.com/jetsetilly/gopherboy/hardware/television/limiter"
	"github.com/jetsetilly/gopherboy/logger"
)

// RefreshRate is the refresh rate of the LCD. One frame takes 70224 clock
// cycles of the 4194304Hz clock.
const RefreshRate float32 = 4194304.0 / ppu.DotsPerFrame

// Palette is the four shades of green used by the LCD, from lightest to
// darkest.
var Palette = [4]color.RGBA{
	{R: 232, G: 252, B: 204, A: 255},
	{R: 172, G: 212, B: 144, A: 255},
	{R: 84, G: 140, B: 112, A: 255},
	{R: 20, G: 44, B: 56, A: 255},
}

// FrameRenderer implementations display, or otherwise work with, the frames
// produced by the television.
type FrameRenderer interface {
	// NewFrame is called when a frame is complete. The frame should not be
	// retained after the function returns
	NewFrame(frameNum int, frame *image.RGBA) error

	// EndRendering is called when the television is ended
	EndRendering() error
}

// Television implements the ppu.Display interface.
type Television struct {
	instance *instance.Instance

	frame    *image.RGBA
	frameNum int

	renderers []FrameRenderer

	// limiter is active if the FPS cap preference is set and speed up mode
	// is off
	Limiter *limiter.Limiter
	speedUp bool
}

// NewTelevision is the preferred method of initialisation for the Television
// type. The instance argument can be nil.
func NewTelevision(instance *instance.Instance) *Television {
	return &Television{
		instance: instance,
		frame:    image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight)),
		Limiter:  limiter.NewLimiter(RefreshRate),
	}
}

func (tv *Television) String() string {
	return fmt.Sprintf("frame=%d fps=%.2f", tv.frameNum, tv.Limiter.Measured.Load().(float32))
}

// AddFrameRenderer registers an (additional) implementation of FrameRenderer.
func (tv *Television) AddFrameRenderer(r FrameRenderer) {
	tv.renderers = append(tv.renderers, r)
}

// Reset the television to an initial state.
func (tv *Television) Reset() {
	tv.frameNum = 0
	draw := tv.frame.Pix
	for i := 0; i < len(draw); i += 4 {
		draw[i] = Palette[0].R
		draw[i+1] = Palette[0].G
		draw[i+2] = Palette[0].B
		draw[i+3] = Palette[0].A
	}
}

// End the television, calling EndRendering() on every FrameRenderer.
func (tv *Television) End() error {
	tv.Limiter.Stop()

	var err error
	for _, r := range tv.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// SpeedUp toggles the speed up mode. The limiter is inactive while speed up
// mode is on.
func (tv *Television) SpeedUp() bool {
	tv.speedUp = !tv.speedUp
	return tv.speedUp
}

// FrameNum returns the number of frames completed since the last reset.
func (tv *Television) FrameNum() int {
	return tv.frameNum
}

// Frame returns the frame as it is currently drawn.
func (tv *Television) Frame() *image.RGBA {
	return tv.frame
}

// DrawLine implements the ppu.Display interface.
func (tv *Television) DrawLine(scanline int, pixels [ppu.ScreenWidth]uint8) {
	if scanline < 0 || scanline >= ppu.ScreenHeight {
		return
	}

	row := tv.frame.Pix[scanline*tv.frame.Stride:]
	for x, p := range pixels {
		// the upper nibble of the pixel is a marker used by the PPU and is
		// ignored
		c := Palette[p&0x03]
		row[x*4] = c.R
		row[x*4+1] = c.G
		row[x*4+2] = c.B
		row[x*4+3] = c.A
	}

	if scanline == ppu.ScreenHeight-1 {
		tv.endFrame()
	}
}

func (tv *Television) endFrame() {
	tv.frameNum++

	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.frameNum, tv.frame); err != nil {
			logger.Logf(tv.instance, "television", "%v", err)
		}
	}

	fpsCap := true
	if tv.instance != nil {
		fpsCap = tv.instance.Prefs.FPSCap.Get().(bool)
	}
	tv.Limiter.Active.Store(fpsCap && !tv.speedUp)

	tv.Limiter.CheckFrame()
	tv.Limiter.MeasureActual()
}
