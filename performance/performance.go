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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/govern"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/instance"
	"github.com/jetsetilly/gopherboy/hardware/television"
)

// PerformanceError is the pattern for all errors returned by the package.
const PerformanceError = "performance: %v"

// time to allow the frame rate to settle before measurement begins.
var leadtime = 2 * time.Second

// Check runs the cartridge for the specified duration and writes the measured
// frame rate to output.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	ins, err := instance.NewInstance(nil)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	err = ins.Prefs.FPSCap.Set(!uncapped)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	tv := television.NewTelevision(ins)
	defer tv.End()

	gb := hardware.NewGameBoy(ins, tv)
	err = gb.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	startFrame := tv.FrameNum()

	runner := func() error {
		// false is sent when the leadtime has elapsed. true is sent when the
		// measurement period has elapsed
		timerChan := make(chan bool, 1)
		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// checking the channel on every instruction is expensive
		performanceBrake := 0

		return gb.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, nil
				}
				startFrame = tv.FrameNum()
			default:
			}
			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	numFrames := tv.FrameNum() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	_, err = fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	return nil
}
