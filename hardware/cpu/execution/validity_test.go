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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/cpu/execution"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/test"
)

func TestValidity(t *testing.T) {
	base, _ := instructions.GetDefinitions()

	var r execution.Result
	test.ExpectFailure(t, r.IsValid())

	// JP NZ,nn
	r = execution.Result{Defn: base[0xc2], ByteCount: 3, Cycles: 3, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.BranchTaken = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())

	// NOP with wrong byte count
	r = execution.Result{Defn: base[0x00], ByteCount: 2, Cycles: 1, Final: true}
	test.ExpectFailure(t, r.IsValid())

	r = execution.Result{Interrupt: 0x40, Cycles: 5, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	r = execution.Result{Halted: true, Cycles: 1, Final: true}
	test.ExpectSuccess(t, r.IsValid())
}
