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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherboy/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("unsupported cartridge"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, 456, 80+172+204)
	test.ExpectEquality(t, uint8(0x91), 0x91)
	test.ExpectInequality(t, uint16(0x0150), 0x0100)
	test.ExpectInequality(t, "VBlank", "HBlank")
	test.DemandEquality(t, 4194304/4, 1048576)
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 59.73, 59.7275, 0.001)
	test.ExpectApproximate(t, 70224, 70000, 0.01)
}
