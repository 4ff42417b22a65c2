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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/hardware/cpu/execution"
)

// Entry is a disassembled instruction.
type Entry struct {
	// the bank this entry belongs to
	Bank int

	// copy of the CPU execution used to decode the entry
	Result execution.Result

	// string representations of information in execution.Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

func newEntry(bank int, result execution.Result, bytecode []uint8) Entry {
	e := Entry{
		Bank:    bank,
		Result:  result,
		Address: fmt.Sprintf("%04x", result.Address),
	}

	s := strings.Builder{}
	for i, b := range bytecode {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	e.Bytecode = s.String()

	if result.Defn != nil {
		e.Operator, e.Operand, _ = strings.Cut(result.Defn.Format(result.InstructionData), " ")
	}

	return e
}

func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s  %-8s  %s", e.Address, e.Bytecode, e.Operator)
	}
	return fmt.Sprintf("%s  %-8s  %s %s", e.Address, e.Bytecode, e.Operator, e.Operand)
}
