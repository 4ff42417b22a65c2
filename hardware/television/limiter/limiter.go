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

// Package limiter paces the emulation so that frames are produced at the
// refresh rate of the LCD. The limiter can be deactivated to run the emulation
// as quickly as possible.
package limiter

import (
	"sync/atomic"
	"time"
)

// Display is implemented by frontends that know the refresh rate of the
// monitor. A limit that is close to the refresh rate of the monitor is
// quantised to that rate.
type Display interface {
	DisplayRefreshRate() (float32, bool)
}

// Limiter waits in CheckFrame() until it is time for the next frame.
type Limiter struct {
	// whether to wait for fps limited each frame
	Active atomic.Bool

	// the refresh rate of the LCD
	RefreshRate atomic.Value // float32

	// the ideal number of frames per second if everything was working nicely
	IdealFPS atomic.Value // float32

	// the actual value sent to the SetLimit() function
	requestedFPS atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker will be set
	// when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// we don't want to wait on the pulse every frame because the resolution
	// of the ticker is not good enough. a simple counter is good enough for
	// this
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the FPS measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32

	// the display the limiter is working for
	display Display
}

// MatchRefreshRate can be used with SetLimit() to indicate that the limit
// should equal the refresh rate.
const MatchRefreshRate float32 = -1.0

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The limited rate is set to match the refresh rate.
func NewLimiter(refreshRate float32) *Limiter {
	lmtr := &Limiter{}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float32(0.0))
	lmtr.RefreshRate.Store(refreshRate)

	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)

	lmtr.SetLimit(MatchRefreshRate)

	return lmtr
}

// SetDisplay sets the display interface for the limiter.
func (lmtr *Limiter) SetDisplay(display Display) {
	lmtr.display = display
	lmtr.SetLimit(lmtr.requestedFPS.Load().(float32))
}

// SetLimit sets the frame limit. Use a value of MatchRefreshRate to indicate
// that the limiter should equal the refresh rate.
func (lmtr *Limiter) SetLimit(fps float32) {
	// the actual fps value passed to the function
	lmtr.requestedFPS.Store(fps)

	if fps <= 0.0 {
		fps = lmtr.RefreshRate.Load().(float32)
	}

	// quantise refresh rate based on refresh rate of the display
	if lmtr.display != nil {
		hz, quantise := lmtr.display.DisplayRefreshRate()
		if quantise {
			if fps >= hz*0.96 && fps <= hz*1.04 {
				fps = hz
			}
		}
	}

	// the ideal fps rate including quantisation
	lmtr.IdealFPS.Store(fps)

	// set scale and duration to wait according to requested FPS rate
	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Stop()
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))

	// restart actual FPS rate measurement values
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if lmtr.Active.Load() {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual measures frame rate on every tick of the measuring pulse.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		// reset time and count ready for next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the tickers used by the limiter.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
