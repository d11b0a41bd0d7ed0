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

package instructions

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gruesome/zmachine/memory"
)

// OperandType is the encoding of a single operand.
type OperandType int

// List of operand types.
const (
	LargeConstant OperandType = iota
	SmallConstant
	VariableOperand
)

// Operand is an operand as it was encoded in the instruction.
type Operand struct {
	Type  OperandType
	Value uint16
}

func (o Operand) String() string {
	switch o.Type {
	case SmallConstant:
		return fmt.Sprintf("#%02x", o.Value)
	case VariableOperand:
		return memory.Variable(o.Value).String()
	}
	return fmt.Sprintf("#%04x", o.Value)
}

// Branch descriptor of a conditional instruction.
type Branch struct {
	// the raw 16-bit displacement. the signed value of the displacement is
	// added to the program counter, less two, when the branch is taken
	Displacement uint16

	// branch if the condition is true. if false the branch is taken when the
	// condition is false
	OnTrue bool
}

func (b Branch) String() string {
	s := "?"
	if !b.OnTrue {
		s = "?~"
	}
	return fmt.Sprintf("%s(%+d)", s, int16(b.Displacement))
}

// Instruction is a fully decoded instruction.
type Instruction struct {
	Defn Definition

	// the address of the first byte of the instruction
	Address uint32

	// the number of bytes in the instruction's encoding
	Length int

	// the operand values. variable operands have been read from the
	// variable they refer to
	Operands []uint16

	// the operands as encoded. may be empty for instructions that have been
	// constructed rather than decoded
	Encoded []Operand

	// the inline text of a print instruction
	Text string

	// valid only if Defn.Branch is true
	Branch Branch

	// valid only if Defn.Store is true
	Store memory.Variable
}

// String returns the instruction in assembler-like form.
func (ins Instruction) String() string {
	s := strings.Builder{}
	s.WriteString(ins.Defn.Mnemonic)

	if len(ins.Encoded) > 0 {
		for _, o := range ins.Encoded {
			s.WriteString(" ")
			s.WriteString(o.String())
		}
	} else {
		for _, o := range ins.Operands {
			s.WriteString(fmt.Sprintf(" #%04x", o))
		}
	}

	if ins.Defn.Text {
		s.WriteString(fmt.Sprintf(" %q", ins.Text))
	}
	if ins.Defn.Store {
		s.WriteString(" -> ")
		s.WriteString(ins.Store.String())
	}
	if ins.Defn.Branch {
		s.WriteString(" ")
		s.WriteString(ins.Branch.String())
	}

	return s.String()
}
