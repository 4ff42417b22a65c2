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

package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/govern"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/userinput"
)

// UserInterrupt is returned by Play() when the emulation has been stopped by
// an interrupt signal (ctrl-c).
const UserInterrupt = "playmode: user interrupt"

type playmode struct {
	gb          *hardware.GameBoy
	controllers userinput.Controllers

	events  <-chan userinput.Event
	intChan chan os.Signal

	state govern.State

	// events are only checked every PerformanceBrake instructions
	performanceFilter int

	// error that caused the emulation to end
	err error
}

// Play sets the emulation running until the user quits or the interrupt
// signal is received. The save file for the cartridge is written when the
// emulation ends.
//
// The speedUp argument can be nil.
func Play(gb *hardware.GameBoy, speedUp userinput.SpeedUp, events <-chan userinput.Event) error {
	pl := &playmode{
		gb:      gb,
		events:  events,
		intChan: make(chan os.Signal, 1),
		state:   govern.Running,
	}
	pl.controllers.SpeedUp = speedUp

	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	err := gb.Run(pl.eventHandler)
	if err == nil {
		err = pl.err
	}

	if serr := gb.Save(); serr != nil {
		logger.Log(gb.Instance, "playmode", serr)
		if err == nil {
			err = serr
		}
	}

	if err != nil && !curated.Is(err, UserInterrupt) {
		return curated.Errorf("playmode: %v", err)
	}

	return err
}

func (pl *playmode) userInputHandler(ev userinput.Event) {
	if pl.controllers.HandleUserInput(ev, pl.gb.Input) {
		pl.state = govern.Ending
		return
	}

	if pl.controllers.TogglePause {
		if pl.state == govern.Paused {
			pl.state = govern.Running
		} else {
			pl.state = govern.Paused
		}
		logger.Logf(pl.gb.Instance, "playmode", "emulation %s", pl.state)
	}
}

func (pl *playmode) interrupt() {
	pl.state = govern.Ending
	pl.err = curated.Errorf(UserInterrupt)
}

func (pl *playmode) eventHandler() (govern.State, error) {
	// a paused emulation waits for the next event
	if pl.state == govern.Paused {
		select {
		case <-pl.intChan:
			pl.interrupt()
		case ev, ok := <-pl.events:
			if !ok {
				return govern.Ending, nil
			}
			pl.userInputHandler(ev)
		}
		return pl.state, nil
	}

	pl.performanceFilter++
	if pl.performanceFilter < hardware.PerformanceBrake {
		return pl.state, nil
	}
	pl.performanceFilter = 0

	done := false
	for !done && pl.state == govern.Running {
		select {
		case <-pl.intChan:
			pl.interrupt()
		case ev, ok := <-pl.events:
			if !ok {
				pl.state = govern.Ending
				break // select
			}
			pl.userInputHandler(ev)
		default:
			done = true
		}
	}

	return pl.state, nil
}
