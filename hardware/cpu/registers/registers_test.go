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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
	"github.com/jetsetilly/gopherboy/test"
)

func TestPairs(t *testing.T) {
	var r registers.File

	r.SetBC(0x1234)
	test.ExpectEquality(t, r.B, 0x12)
	test.ExpectEquality(t, r.C, 0x34)
	test.ExpectEquality(t, r.BC(), 0x1234)

	r.D = 0xab
	r.E = 0xcd
	test.ExpectEquality(t, r.DE(), 0xabcd)

	r.SetHL(0xc000)
	test.ExpectEquality(t, r.H, 0xc0)
	test.ExpectEquality(t, r.L, 0x00)
}

func TestAF(t *testing.T) {
	var r registers.File

	// lower nibble of F is never stored
	r.SetAF(0x12ff)
	test.ExpectEquality(t, r.A, 0x12)
	test.ExpectEquality(t, r.AF(), 0x12f0)
	test.ExpectSuccess(t, r.F.Zero)
	test.ExpectSuccess(t, r.F.Subtract)
	test.ExpectSuccess(t, r.F.HalfCarry)
	test.ExpectSuccess(t, r.F.Carry)

	r.SetAF(0x0080)
	test.ExpectEquality(t, r.F.String(), "Znhc")
	test.ExpectEquality(t, r.F.Value(), 0x80)

	r.F.Carry = true
	test.ExpectEquality(t, r.AF(), 0x0090)

	r.Reset()
	test.ExpectEquality(t, r.AF(), 0x0000)
}
