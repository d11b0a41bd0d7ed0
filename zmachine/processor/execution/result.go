// This file is part of Gruesome.
//
// Gruesome is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gruesome is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gruesome.  If not, see <https://www.gnu.org/licenses/>.

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gruesome/zmachine/processor/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// the address of the first byte of the instruction
	Address uint32

	Defn instructions.Definition

	// the resolved operand values the instruction was executed with
	Operands []uint16

	// the value of the program counter after execution
	PC uint32

	// whether the instruction changed the program counter. true for a taken
	// conditional branch and for an unconditional jump
	BranchTaken bool

	// the opcode is recognised but has no implementation. the instruction
	// had no effect
	Unimplemented bool

	// the instruction asked for the machine to stop
	Halt bool

	// whether execution completed. the other fields are undefined if Final
	// is false
	Final bool
}

func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%05x %s", r.Address, r.Defn.Mnemonic))
	for _, o := range r.Operands {
		s.WriteString(fmt.Sprintf(" #%04x", o))
	}
	if r.BranchTaken {
		s.WriteString(fmt.Sprintf(" [-> 0x%05x]", r.PC))
	}
	if r.Unimplemented {
		s.WriteString(" [unimplemented]")
	}
	if r.Halt {
		s.WriteString(" [halt]")
	}
	return s.String()
}
