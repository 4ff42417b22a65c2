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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/input"
	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/interrupt"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
	"github.com/jetsetilly/gopherboy/hardware/serial"
	"github.com/jetsetilly/gopherboy/hardware/timer"
)

// the CPU reports machine cycles. the timer and the PPU are clocked by the
// system clock
const clocksPerCycle = 4

// GameBoy struct is the main container for the emulated components of the
// console.
type GameBoy struct {
	Instance *instance.Instance

	CPU   *cpu.CPU
	Mem   *memory.Memory
	PPU   *ppu.PPU
	Timer *timer.Timer
	Input *input.Input

	// the display is not part of the console but is attached to it
	TV ppu.Display

	// the serial link is never nil. it is the Disconnected type if nothing
	// else is attached
	Link serial.Link

	// if not empty a graph of the CPU is written to this file when a panic
	// is recovered by Run()
	CrashDump string
}

// NewGameBoy creates a new console and everything associated with the
// hardware. The instance argument can be nil.
func NewGameBoy(instance *instance.Instance, tv ppu.Display) *GameBoy {
	gb := &GameBoy{
		Instance: instance,
		TV:       tv,
		Input:    input.NewInput(),
	}

	gb.Mem = memory.NewMemory(instance)
	gb.Mem.AttachJoypad(gb.Input)
	gb.CPU = cpu.NewCPU(instance, gb.Mem)
	gb.PPU = ppu.NewPPU(gb.Mem, tv)
	gb.Timer = timer.NewTimer(gb.Mem)

	gb.AttachLink(serial.NewDisconnected())

	return gb
}

func (gb *GameBoy) String() string {
	return fmt.Sprintf("%s\n%s\n%s\n%s", gb.CPU, gb.Mem, gb.PPU, gb.Timer)
}

// AttachCartridge to the console and reset. An empty filename ejects the
// cartridge.
func (gb *GameBoy) AttachCartridge(cartload cartridgeloader.Loader) error {
	if cartload.Filename == "" && !cartload.HasLoaded() {
		gb.Mem.Cart.Eject()
	} else {
		err := gb.Mem.Cart.Attach(cartload)
		if err != nil {
			return err
		}
	}
	gb.Reset()
	return nil
}

// AttachLink connects the serial port to the link. A nil link disconnects
// the serial port. Any previously attached link is not closed.
func (gb *GameBoy) AttachLink(link serial.Link) {
	if link == nil {
		link = serial.NewDisconnected()
	}
	gb.Link = link
	gb.Link.SetReceiver(gb.Mem.SerialReceive)
	gb.Mem.AttachLink(gb.Link)
}

// Reset emulates the state of the console after the boot ROM has run.
func (gb *GameBoy) Reset() {
	gb.Mem.Reset()
	gb.CPU.Reset()
	gb.PPU.Reset()
	gb.Timer.Reset()
	gb.Input.Reset()
}

// Save writes the external RAM of a battery-backed cartridge to disk.
func (gb *GameBoy) Save() error {
	return gb.Mem.Cart.Save()
}

// Step the console forward by one CPU instruction (or one interrupt dispatch
// or one halted cycle). The timer and PPU are advanced by the same amount of
// time afterwards.
func (gb *GameBoy) Step() error {
	if gb.Input.NewPress() {
		gb.Mem.RequestInterrupt(interrupt.Joypad)
	}

	err := gb.CPU.ExecuteInstruction()
	if err != nil {
		return err
	}

	clocks := gb.CPU.LastResult.Cycles * clocksPerCycle
	gb.Timer.Step(clocks)
	gb.PPU.Step(clocks)

	gb.Link.Service()

	return nil
}
