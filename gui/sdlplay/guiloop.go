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
	"time"

	"github.com/faiface/mainthread"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// how often the SDL event queue is serviced
const servicePeriod = 10 * time.Millisecond

// guiLoop services the SDL event queue until EndRendering() is called. SDL
// events can only be retrieved on the main thread.
func (scr *SdlPlay) guiLoop() {
	tck := time.NewTicker(servicePeriod)
	defer tck.Stop()

	for {
		select {
		case <-scr.done:
			return
		case <-tck.C:
			mainthread.Call(scr.service)
		}
	}
}

func keyMod() userinput.KeyMod {
	mod := sdl.GetModState()
	if mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
		return userinput.KeyModAlt
	}
	if mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		return userinput.KeyModShift
	}
	if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

// service drains the SDL event queue. must be called on the main thread.
func (scr *SdlPlay) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.send(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			scr.send(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
				Mod:    keyMod(),
			})
		}
	}
}

func (scr *SdlPlay) send(ev userinput.Event) {
	select {
	case scr.events <- ev:
	default:
		logger.Logf(logger.Allow, "sdlplay", "dropped user input event: %v", ev)
	}
}
