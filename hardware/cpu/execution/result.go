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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
)

// Result records the state and outcome of the most recent CPU step.
type Result struct {
	// address of the opcode. for interrupt dispatch it is the address that
	// was pushed onto the stack
	Address uint16

	// the definition of the instruction. nil for steps that did not execute
	// an instruction (a halted tick or an interrupt dispatch)
	Defn *instructions.Definition

	// operand bytes following the opcode in little-endian order
	InstructionData uint16

	// the number of bytes read during decode, including any prefix
	ByteCount int

	// the number of machine cycles consumed by the step
	Cycles int

	// whether a conditional instruction took the branch
	BranchTaken bool

	// non-zero if an interrupt was dispatched. the value is the vector
	// address
	Interrupt uint16

	// the step was a halted tick
	Halted bool

	// the halt bug was triggered by this instruction
	HaltBug bool

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	switch {
	case r.Interrupt != 0:
		return fmt.Sprintf("interrupt %#04x from %#04x (%d cycles)", r.Interrupt, r.Address, r.Cycles)
	case r.Halted:
		return fmt.Sprintf("halted at %#04x", r.Address)
	case r.Defn == nil:
		return "no instruction"
	}
	return fmt.Sprintf("%#04x %s (%d cycles)", r.Address, r.Defn.Format(r.InstructionData), r.Cycles)
}
