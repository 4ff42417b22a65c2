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

package termplay

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
	"github.com/jetsetilly/gopherboy/hardware/television"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/userinput"
)

// TerminalError is returned by NewTermPlay() if the terminal cannot be put
// into cbreak mode.
const TerminalError = "termplay: %v"

// how long after a key press the release event is sent
const releaseDelay = 150 * time.Millisecond

// only every nth frame is drawn
const frameSkip = 3

// control sequences
const (
	csiHome       = "\033[H"
	csiClear      = "\033[2J"
	csiHideCursor = "\033[?25l"
	csiShowCursor = "\033[?25h"
	csiNormal     = "\033[0m"
	halfBlock     = "▀"
)

// TermPlay draws frames to the terminal and reads key presses from it.
type TermPlay struct {
	term terminal

	out *bufio.Writer

	// connects the terminal input with the emulation
	events chan userinput.Event

	endOnce sync.Once
}

// NewTermPlay is the preferred method of initialisation for TermPlay. The
// TermPlay instance is added to the television as a FrameRenderer.
func NewTermPlay(tv *television.Television, input, output *os.File) (*TermPlay, error) {
	scr := &TermPlay{
		out:    bufio.NewWriter(output),
		events: make(chan userinput.Event, 64),
	}

	err := scr.term.initialise(input, output)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	err = scr.term.cbreakMode()
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	scr.out.WriteString(csiClear)
	scr.out.WriteString(csiHideCursor)
	scr.out.Flush()

	tv.AddFrameRenderer(scr)

	go scr.readInput()

	return scr, nil
}

// Events returns the channel on which user input is sent.
func (scr *TermPlay) Events() <-chan userinput.Event {
	return scr.events
}

func (scr *TermPlay) readInput() {
	b := make([]byte, 8)
	for {
		n, err := scr.term.input.Read(b)
		if err != nil {
			if err != io.EOF {
				logger.Logf(logger.Allow, "termplay", "%v", err)
			}
			return
		}

		key, ok := translate(b[:n])
		if !ok {
			continue
		}

		scr.send(userinput.EventKeyboard{Key: key, Down: true})
		time.AfterFunc(releaseDelay, func() {
			scr.send(userinput.EventKeyboard{Key: key, Down: false})
		})
	}
}

func (scr *TermPlay) send(ev userinput.Event) {
	select {
	case scr.events <- ev:
	default:
	}
}

// NewFrame implements the television.FrameRenderer interface.
func (scr *TermPlay) NewFrame(frameNum int, frame *image.RGBA) error {
	if frameNum%frameSkip != 0 {
		return nil
	}
	scr.out.WriteString(csiHome)
	drawFrame(scr.out, frame)
	return scr.out.Flush()
}

// EndRendering implements the television.FrameRenderer interface. The
// terminal is returned to canonical mode.
func (scr *TermPlay) EndRendering() error {
	var err error
	scr.endOnce.Do(func() {
		scr.out.WriteString(csiNormal)
		scr.out.WriteString(csiShowCursor)
		scr.out.WriteString("\n")
		scr.out.Flush()
		err = scr.term.canonicalMode()
	})
	return err
}

// drawFrame writes the frame as rows of half block characters. each
// character covers two pixels horizontally and four vertically. the top-left
// pixel of each half is used for the colour
func drawFrame(w io.Writer, frame *image.RGBA) {
	for y := 0; y < ppu.ScreenHeight; y += 4 {
		for x := 0; x < ppu.ScreenWidth; x += 2 {
			top := frame.RGBAAt(x, y)
			bottom := frame.RGBAAt(x, y+2)
			fmt.Fprintf(w, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm%s",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B, halfBlock)
		}
		fmt.Fprintf(w, "%s\r\n", csiNormal)
	}
}
