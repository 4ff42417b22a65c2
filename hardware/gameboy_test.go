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

package hardware_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/govern"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/input"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
	"github.com/jetsetilly/gopherboy/hardware/serial"
	"github.com/jetsetilly/gopherboy/hardware/television"
	"github.com/jetsetilly/gopherboy/test"
)

// the program in every test cartridge starts at this address. the entry
// point jumps over the header to it
const program = 0x0150

// makeCartridge returns a 32KB ROM-only cartridge with the program bytes
// placed at the program address
func makeCartridge(code ...uint8) cartridgeloader.Loader {
	data := make([]uint8, 0x8000)
	copy(data[addresses.Entry:], []uint8{0xc3, program & 0xff, program >> 8})
	copy(data[addresses.HeaderTitle:], "CONSOLE")
	copy(data[program:], code)
	return cartridgeloader.Loader{Filename: "console.gb", Data: data}
}

func newTestGameBoy(t *testing.T, code ...uint8) (*hardware.GameBoy, *television.Television) {
	t.Helper()
	tv := television.NewTelevision(nil)
	tv.SpeedUp()
	gb := hardware.NewGameBoy(nil, tv)
	err := gb.AttachCartridge(makeCartridge(code...))
	test.DemandSuccess(t, err)
	return gb, tv
}

func TestStepOrder(t *testing.T) {
	gb, _ := newTestGameBoy(t)

	// the jump to the program is four cycles. sixty NOPs later 256 clocks
	// have passed and DIV has incremented once
	test.DemandSuccess(t, gb.Step())
	test.ExpectEquality(t, gb.CPU.PC, program)
	test.ExpectEquality(t, gb.CPU.LastResult.Cycles, 4)
	test.ExpectEquality(t, gb.PPU.Dot, 16)

	for range 59 {
		test.DemandSuccess(t, gb.Step())
	}
	test.ExpectEquality(t, gb.Mem.Read(addresses.DIV), 0)
	test.DemandSuccess(t, gb.Step())
	test.ExpectEquality(t, gb.Mem.Read(addresses.DIV), 1)
}

func TestJoypadInterrupt(t *testing.T) {
	gb, _ := newTestGameBoy(t)
	test.DemandSuccess(t, gb.Step())

	gb.Mem.Write(addresses.IE, 0x10)
	gb.CPU.IME = true

	// no press, no interrupt
	test.DemandSuccess(t, gb.Step())
	test.ExpectEquality(t, gb.CPU.PC, program+1)

	gb.Input.Press(input.A)
	test.DemandSuccess(t, gb.Step())
	test.ExpectEquality(t, gb.CPU.PC, 0x0060)
	test.ExpectEquality(t, gb.CPU.LastResult.Cycles, 5)

	// the edge is consumed so holding the button does not request the
	// interrupt again
	gb.Mem.Write(addresses.IF, 0x00)
	test.DemandSuccess(t, gb.Step())
	test.ExpectEquality(t, gb.Mem.Read(addresses.IF)&0x10, 0)
}

func TestRunForFrameCount(t *testing.T) {
	// JR -2
	gb, tv := newTestGameBoy(t, 0x18, 0xfe)

	var frames []int
	err := gb.RunForFrameCount(2, func(frame int) (govern.State, error) {
		if len(frames) == 0 || frames[len(frames)-1] != frame {
			frames = append(frames, frame)
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, gb.PPU.Frames, 2)
	test.ExpectEquality(t, tv.FrameNum(), 2)
	test.ExpectEquality(t, len(frames), 3)
	test.ExpectEquality(t, gb.PPU.Mode, ppu.VBlank)
}

func TestRun(t *testing.T) {
	gb, _ := newTestGameBoy(t, 0x18, 0xfe)

	var steps int
	err := gb.Run(func() (govern.State, error) {
		steps++
		switch {
		case steps < 10:
			return govern.Running, nil
		case steps < 20:
			return govern.Paused, nil
		}
		return govern.Ending, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, steps, 20)

	// ten steps were taken. the first was the jump to the program and the
	// remainder were the JR instruction
	test.ExpectEquality(t, gb.CPU.PC, program)

	err = gb.Run(func() (govern.State, error) {
		return govern.State(-1), nil
	})
	test.ExpectSuccess(t, curated.Is(err, hardware.UnsupportedState))

	stop := errors.New("stop")
	err = gb.Run(func() (govern.State, error) {
		return govern.Running, stop
	})
	test.ExpectEquality(t, err, stop)
}

func TestSerialPrinter(t *testing.T) {
	gb, _ := newTestGameBoy(t,
		0x3e, 0x41, // LD A, 0x41
		0xe0, 0x01, // LDH (SB), A
		0x3e, 0x81, // LD A, 0x81
		0xe0, 0x02, // LDH (SC), A
		0x18, 0xfe, // JR -2
	)

	var out bytes.Buffer
	gb.AttachLink(serial.NewPrinter(&out))

	for range 5 {
		test.DemandSuccess(t, gb.Step())
	}

	test.ExpectEquality(t, out.String(), "A")
	test.ExpectEquality(t, gb.Mem.Read(addresses.SB), 0xff)
	test.ExpectEquality(t, gb.Mem.Read(addresses.SC)&0x80, 0)
	test.ExpectInequality(t, gb.Mem.Read(addresses.IF)&0x08, 0)
}

type panickingDisplay struct{}

func (panickingDisplay) DrawLine(_ int, _ [ppu.ScreenWidth]uint8) {
	panic("display failure")
}

func TestCrashDump(t *testing.T) {
	gb := hardware.NewGameBoy(nil, panickingDisplay{})
	test.DemandSuccess(t, gb.AttachCartridge(makeCartridge(0x18, 0xfe)))

	gb.CrashDump = filepath.Join(t.TempDir(), "crash.dot")

	func() {
		defer func() {
			r := recover()
			test.ExpectEquality(t, r, "display failure")
		}()
		_ = gb.Run(nil)
		t.Errorf("Run() should not return without panicking")
	}()

	dump, err := os.ReadFile(gb.CrashDump)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Contains(dump, []uint8("digraph")))
}

func TestEject(t *testing.T) {
	gb, _ := newTestGameBoy(t)
	test.ExpectSuccess(t, !gb.Mem.Cart.IsEjected())

	err := gb.AttachCartridge(cartridgeloader.Loader{})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, gb.Mem.Cart.IsEjected())
	test.ExpectEquality(t, gb.Mem.Read(addresses.Entry), 0xff)
	test.ExpectEquality(t, gb.CPU.PC, addresses.Entry)
}
