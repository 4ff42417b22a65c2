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

package input_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/input"
	"github.com/jetsetilly/gopherboy/test"
)

func TestButtons(t *testing.T) {
	inp := input.NewInput()
	test.ExpectEquality(t, inp.DPad(), 0x0f)
	test.ExpectEquality(t, inp.Buttons(), 0x0f)
	test.ExpectEquality(t, inp.NewPress(), false)

	for _, c := range []struct {
		button input.Button
		dpad   uint8
		other  uint8
	}{
		{button: input.Down, dpad: 0b0111, other: 0x0f},
		{button: input.Up, dpad: 0b1011, other: 0x0f},
		{button: input.Left, dpad: 0b1101, other: 0x0f},
		{button: input.Right, dpad: 0b1110, other: 0x0f},
		{button: input.Start, dpad: 0x0f, other: 0b0111},
		{button: input.Select, dpad: 0x0f, other: 0b1011},
		{button: input.B, dpad: 0x0f, other: 0b1101},
		{button: input.A, dpad: 0x0f, other: 0b1110},
	} {
		inp.Press(c.button)
		test.ExpectEquality(t, inp.DPad(), c.dpad, c.button)
		test.ExpectEquality(t, inp.Buttons(), c.other, c.button)
		test.ExpectEquality(t, inp.NewPress(), true, c.button)
		test.ExpectEquality(t, inp.NewPress(), false, c.button)
		inp.Release(c.button)
	}

	// held buttons combine
	inp.Press(input.Up)
	inp.Press(input.Right)
	inp.Press(input.A)
	test.ExpectEquality(t, inp.DPad(), 0b1010)
	test.ExpectEquality(t, inp.Buttons(), 0b1110)
	test.ExpectEquality(t, inp.String(), "Right Up A")

	// pressing a held button is not a new press
	inp.NewPress()
	inp.Press(input.Up)
	test.ExpectEquality(t, inp.NewPress(), false)

	inp.Reset()
	test.ExpectEquality(t, inp.DPad(), 0x0f)
	test.ExpectEquality(t, inp.String(), "no buttons held")
}

func TestConcurrentPresses(t *testing.T) {
	inp := input.NewInput()

	var wg sync.WaitGroup
	for b := range input.Start + 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				inp.Press(b)
				inp.Release(b)
			}
			inp.Press(b)
		}()
	}
	wg.Wait()

	test.ExpectEquality(t, inp.DPad(), 0x00)
	test.ExpectEquality(t, inp.Buttons(), 0x00)
}
