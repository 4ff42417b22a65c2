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

package sdlplay

import (
	"fmt"
	"image"
	"sync"

	"github.com/faiface/mainthread"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
	"github.com/jetsetilly/gopherboy/hardware/television"
	"github.com/jetsetilly/gopherboy/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is returned by NewSdlPlay() and by the FrameRenderer functions
// when SDL reports a problem.
const SDLError = "sdl: %v"

const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the television.FrameRenderer
// interface.
type SdlPlay struct {
	tv *television.Television

	// connects the SDL event loop with the emulation
	events chan userinput.Event

	// stops the event service goroutine
	done     chan bool
	doneOnce sync.Once

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the amount of scaling applied to each pixel
	scale int32

	// the window is shown when the first frame is ready
	showOnNextFrame bool
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The
// SdlPlay instance is added to the television as a FrameRenderer.
func NewSdlPlay(tv *television.Television, title string, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{
		tv:              tv,
		events:          make(chan userinput.Event, 64),
		done:            make(chan bool),
		scale:           int32(max(scale, 1)),
		showOnNextFrame: true,
	}

	err := mainthread.CallErr(func() error {
		return scr.create(title)
	})
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	tv.AddFrameRenderer(scr)
	tv.Limiter.SetDisplay(scr)

	// gui events are serviced by a separate goroutine
	go scr.guiLoop()

	return scr, nil
}

func (scr *SdlPlay) create(title string) error {
	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	// window is hidden until the first frame
	scr.window, err = sdl.CreateWindow(fmt.Sprintf("Gopherboy - %s", title),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		ppu.ScreenWidth*scr.scale, ppu.ScreenHeight*scr.scale,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return err
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		return err
	}

	// texture is the same size as the frame. the renderer stretches it to
	// fill the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		ppu.ScreenWidth, ppu.ScreenHeight)
	if err != nil {
		scr.renderer.Destroy()
		scr.window.Destroy()
		return err
	}

	return nil
}

// Events returns the channel on which user input is sent.
func (scr *SdlPlay) Events() <-chan userinput.Event {
	return scr.events
}

// DisplayRefreshRate implements the limiter.Display interface.
func (scr *SdlPlay) DisplayRefreshRate() (float32, bool) {
	var hz float32
	mainthread.Call(func() {
		idx, err := scr.window.GetDisplayIndex()
		if err != nil {
			return
		}
		mode, err := sdl.GetCurrentDisplayMode(idx)
		if err != nil {
			return
		}
		hz = float32(mode.RefreshRate)
	})
	return hz, hz > 0
}

// NewFrame implements the television.FrameRenderer interface.
func (scr *SdlPlay) NewFrame(_ int, frame *image.RGBA) error {
	err := mainthread.CallErr(func() error {
		if scr.showOnNextFrame {
			scr.window.Show()
			scr.showOnNextFrame = false
		}

		pixels, pitch, err := scr.texture.Lock(nil)
		if err != nil {
			return err
		}
		for y := range ppu.ScreenHeight {
			copy(pixels[y*pitch:y*pitch+ppu.ScreenWidth*pixelDepth], frame.Pix[y*frame.Stride:])
		}
		scr.texture.Unlock()

		err = scr.renderer.Copy(scr.texture, nil, nil)
		if err != nil {
			return err
		}
		scr.renderer.Present()

		return nil
	})
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// EndRendering implements the television.FrameRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	scr.doneOnce.Do(func() {
		close(scr.done)
	})

	mainthread.Call(func() {
		scr.texture.Destroy()
		scr.renderer.Destroy()
		scr.window.Destroy()
		sdl.Quit()
	})

	return nil
}
