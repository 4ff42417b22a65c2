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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/govern"
	"github.com/jetsetilly/gopherboy/logger"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction it can still be expensive to do a full continue check every
// time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// UnsupportedState is returned by Run() when continueCheck() returns a state
// that the driving loop does not understand.
const UnsupportedState = "gameboy: unsupported emulation state (%d) in Run() function"

// Run sets the emulation running as quickly as possible. The television is
// responsible for pacing the emulation.
//
// A panic during the emulation is logged along with the CPU state and then
// raised again.
func (gb *GameBoy) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	defer gb.recoverPanic()

	var err error

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			err = gb.Step()
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets emulator running for the specified number of frames.
// Useful for FPS measurement and for running test ROMs.
func (gb *GameBoy) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	defer gb.recoverPanic()

	frameNum := gb.PPU.Frames
	targetFrame := frameNum + numFrames

	state := govern.Running
	for frameNum < targetFrame && state != govern.Ending {
		err := gb.Step()
		if err != nil {
			return err
		}

		frameNum = gb.PPU.Frames

		state, err = continueCheck(frameNum)
		if err != nil {
			return err
		}
	}

	return nil
}

func (gb *GameBoy) recoverPanic() {
	r := recover()
	if r == nil {
		return
	}

	logger.Logf(gb.Instance, "gameboy", "panic: %v", r)
	logger.Logf(gb.Instance, "gameboy", "%s", gb.CPU)
	logger.Logf(gb.Instance, "gameboy", "last instruction: %s", gb.CPU.LastResult)

	if gb.CrashDump != "" {
		if err := gb.writeCrashDump(); err != nil {
			logger.Logf(gb.Instance, "gameboy", "crash dump: %v", err)
		}
	}

	panic(r)
}

// writeCrashDump writes a graphviz description of the CPU to the file named
// in the CrashDump field.
func (gb *GameBoy) writeCrashDump() (rerr error) {
	f, err := os.Create(gb.CrashDump)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	memviz.Map(f, gb.CPU)
	fmt.Fprintln(f)

	logger.Logf(gb.Instance, "gameboy", "crash dump written to %s", gb.CrashDump)

	return nil
}
