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

package playmode_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/television"
	"github.com/jetsetilly/gopherboy/playmode"
	"github.com/jetsetilly/gopherboy/test"
	"github.com/jetsetilly/gopherboy/userinput"
)

func newLoopingGameBoy(t *testing.T) (*hardware.GameBoy, *television.Television) {
	t.Helper()

	// JR -2 at the entry point
	data := make([]uint8, 0x8000)
	data[0x100] = 0x18
	data[0x101] = 0xfe

	tv := television.NewTelevision(nil)
	tv.SpeedUp()
	gb := hardware.NewGameBoy(nil, tv)
	err := gb.AttachCartridge(cartridgeloader.Loader{Filename: "loop.gb", Data: data})
	test.DemandSuccess(t, err)

	return gb, tv
}

func TestQuit(t *testing.T) {
	gb, tv := newLoopingGameBoy(t)

	events := make(chan userinput.Event, 10)
	events <- userinput.EventKeyboard{Key: "Down", Down: true}
	events <- userinput.EventKeyboard{Key: "P", Down: true}
	events <- userinput.EventKeyboard{Key: "Up", Down: true}
	events <- userinput.EventKeyboard{Key: "P", Down: true}
	events <- userinput.EventKeyboard{Key: "Tab", Down: true}
	events <- userinput.EventQuit{}

	err := playmode.Play(gb, tv, events)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, gb.Input.DPad(), 0b0011)
	test.ExpectEquality(t, gb.CPU.PC, 0x100)

	// the television was in speed up mode before Play() was called. the Tab
	// key toggled it back
	test.ExpectSuccess(t, tv.SpeedUp())
}

func TestClosedChannel(t *testing.T) {
	gb, _ := newLoopingGameBoy(t)

	events := make(chan userinput.Event)
	close(events)

	err := playmode.Play(gb, nil, events)
	test.ExpectSuccess(t, err)
}
