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

package decoder

import (
	"github.com/jetsetilly/gruesome/zmachine/processor/instructions"
)

// operand count of an opcode, as implied by the instruction form.
type operandCount int

const (
	op0 operandCount = iota
	op1
	op2
	opVar
	opExt
)

func (c operandCount) String() string {
	switch c {
	case op0:
		return "0OP"
	case op1:
		return "1OP"
	case op2:
		return "2OP"
	case opVar:
		return "VAR"
	case opExt:
		return "EXT"
	}
	return "???"
}

// opcode numbers for each operand count.
var opcodes = map[operandCount]map[uint8]instructions.Opcode{
	op2: {
		1:  instructions.Je,
		2:  instructions.Jl,
		3:  instructions.Jg,
		6:  instructions.Jin,
		8:  instructions.Or,
		9:  instructions.And,
		13: instructions.Store,
		20: instructions.Add,
		21: instructions.Sub,
		22: instructions.Mul,
		23: instructions.Div,
		24: instructions.Mod,
	},
	op1: {
		7:  instructions.PrintAddr,
		12: instructions.Jump,
		15: instructions.Not,
	},
	op0: {
		2:  instructions.Print,
		4:  instructions.Nop,
		10: instructions.Quit,
		11: instructions.NewLine,
	},
	opVar: {
		1: instructions.Storew,
		2: instructions.Storeb,
		5: instructions.PrintChar,
	},
}

// the encoding of an operand type in the type byte and in short form
// instructions.
const (
	typeLarge    = 0b00
	typeSmall    = 0b01
	typeVariable = 0b10
	typeOmitted  = 0b11
)

func operandType(bits uint8) instructions.OperandType {
	switch bits {
	case typeSmall:
		return instructions.SmallConstant
	case typeVariable:
		return instructions.VariableOperand
	}
	return instructions.LargeConstant
}
