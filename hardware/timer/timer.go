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

// Package timer implements the DIV and TIMA counters of the console.
package timer

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/interrupt"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/chipbus"
)

// Interval indicates how often (in clock cycles) the TIMA counter increases.
type Interval int

// List of valid Interval values. The order of the list is the same as the
// order of the clock select bits in the TAC register.
const (
	Hz4096   Interval = 1024
	Hz262144 Interval = 16
	Hz65536  Interval = 64
	Hz16384  Interval = 256
)

var intervals = [4]Interval{Hz4096, Hz262144, Hz65536, Hz16384}

func (in Interval) String() string {
	switch in {
	case Hz4096:
		return "4096Hz"
	case Hz262144:
		return "262144Hz"
	case Hz65536:
		return "65536Hz"
	case Hz16384:
		return "16384Hz"
	}
	panic("unknown timer interval")
}

// the DIV register increases every divPeriod clock cycles
const divPeriod = 256

// the TAC bit that enables the TIMA counter
const tacEnable = 0x04

// Timer implements the DIV and TIMA counters.
type Timer struct {
	mem chipbus.Memory

	// the interval selected by the most recent TAC value
	Interval Interval

	// raw TAC value that Interval was decoded from
	tac uint8

	// clock cycles accumulated since the most recent increase of the DIV and
	// TIMA registers
	divTicks     int
	counterTicks int
}

// NewTimer is the preferred method of initialisation of the Timer type.
func NewTimer(mem chipbus.Memory) *Timer {
	tmr := &Timer{
		mem: mem,
	}
	tmr.Reset()
	return tmr
}

// Reset the timer registers and counters.
func (tmr *Timer) Reset() {
	tmr.divTicks = 0
	tmr.counterTicks = 0
	tmr.tac = 0
	tmr.Interval = intervals[0]
	tmr.mem.ChipWrite(addresses.DIV, 0)
	tmr.mem.ChipWrite(addresses.TIMA, 0)
	tmr.mem.ChipWrite(addresses.TMA, 0)
	tmr.mem.ChipWrite(addresses.TAC, 0)
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%#02x TIMA=%#02x TMA=%#02x intv=%s enabled=%v",
		tmr.mem.ChipRead(addresses.DIV),
		tmr.mem.ChipRead(addresses.TIMA),
		tmr.mem.ChipRead(addresses.TMA),
		tmr.Interval,
		tmr.tac&tacEnable == tacEnable,
	)
}

// Step timer forward by the number of clock cycles.
func (tmr *Timer) Step(cycles int) {
	tmr.divTicks += cycles
	if tmr.divTicks >= divPeriod {
		div := tmr.mem.ChipRead(addresses.DIV)
		for tmr.divTicks >= divPeriod {
			tmr.divTicks -= divPeriod
			div++
		}
		tmr.mem.ChipWrite(addresses.DIV, div)
	}

	tac := tmr.mem.ChipRead(addresses.TAC)
	if tac != tmr.tac {
		tmr.tac = tac
		tmr.Interval = intervals[tac&0x03]
	}

	if tac&tacEnable != tacEnable {
		return
	}

	tmr.counterTicks += cycles
	for tmr.counterTicks >= int(tmr.Interval) {
		tmr.counterTicks -= int(tmr.Interval)

		tima := tmr.mem.ChipRead(addresses.TIMA) + 1
		if tima == 0 {
			tima = tmr.mem.ChipRead(addresses.TMA)
			tmr.mem.RequestInterrupt(interrupt.Timer)
		}
		tmr.mem.ChipWrite(addresses.TIMA, tima)
	}
}
