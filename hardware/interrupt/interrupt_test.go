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

package interrupt_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/interrupt"
	"github.com/jetsetilly/gopherboy/test"
)

func TestVectors(t *testing.T) {
	test.ExpectEquality(t, interrupt.VBlank.Vector(), 0x0040)
	test.ExpectEquality(t, interrupt.STAT.Vector(), 0x0048)
	test.ExpectEquality(t, interrupt.Timer.Vector(), 0x0050)
	test.ExpectEquality(t, interrupt.Serial.Vector(), 0x0058)
	test.ExpectEquality(t, interrupt.Joypad.Vector(), 0x0060)
	test.ExpectEquality(t, interrupt.Joypad.Bit(), 0x10)
}

func TestPriority(t *testing.T) {
	s, ok := interrupt.Highest(0x00)
	test.ExpectFailure(t, ok)

	s, ok = interrupt.Highest(0x1f)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, interrupt.VBlank)

	s, ok = interrupt.Highest(0x14)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, interrupt.Timer)

	// bits above the fifth are ignored
	_, ok = interrupt.Highest(0xe0)
	test.ExpectFailure(t, ok)
}
