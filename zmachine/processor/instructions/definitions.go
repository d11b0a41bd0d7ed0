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

import "fmt"

// Opcode identifies the operation an instruction performs.
type Opcode int

// List of opcodes.
const (
	Nop Opcode = iota
	Jump
	Je
	Jg
	Jl
	Jin
	Print
	PrintAddr
	PrintChar
	NewLine
	Add
	Sub
	Mul
	Div
	Mod
	Not
	Or
	And
	Store
	Storeb
	Storew
	Quit

	// NumOpcodes is the number of entries in the enumeration. It is not an
	// opcode
	NumOpcodes
)

// Definition describes each opcode in the instruction set.
type Definition struct {
	Opcode   Opcode
	Mnemonic string
	Effect   Category

	// the number of operands the processor uses. the decoder does not check
	// this. -1 indicates a variable number of operands
	Operands int

	// the instruction is followed by a store variable
	Store bool

	// the instruction is followed by a branch descriptor
	Branch bool

	// the instruction is followed by inline text
	Text bool
}

// String returns the definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undefined instruction"
	}
	return fmt.Sprintf("%s [effect=%s store=%t branch=%t]", defn.Mnemonic, defn.Effect, defn.Store, defn.Branch)
}

// IsBranch returns true if instruction is a conditional branch.
func (defn Definition) IsBranch() bool {
	return defn.Branch && defn.Effect == Flow
}

var definitions = [NumOpcodes]Definition{
	Nop:       {Opcode: Nop, Mnemonic: "nop", Effect: Control},
	Jump:      {Opcode: Jump, Mnemonic: "jump", Effect: Flow, Operands: 1},
	Je:        {Opcode: Je, Mnemonic: "je", Effect: Flow, Operands: -1, Branch: true},
	Jg:        {Opcode: Jg, Mnemonic: "jg", Effect: Flow, Operands: 2, Branch: true},
	Jl:        {Opcode: Jl, Mnemonic: "jl", Effect: Flow, Operands: 2, Branch: true},
	Jin:       {Opcode: Jin, Mnemonic: "jin", Effect: Flow, Operands: 2, Branch: true},
	Print:     {Opcode: Print, Mnemonic: "print", Effect: Output, Text: true},
	PrintAddr: {Opcode: PrintAddr, Mnemonic: "print_addr", Effect: Output, Operands: 1},
	PrintChar: {Opcode: PrintChar, Mnemonic: "print_char", Effect: Output, Operands: 1},
	NewLine:   {Opcode: NewLine, Mnemonic: "new_line", Effect: Output},
	Add:       {Opcode: Add, Mnemonic: "add", Effect: Compute, Operands: 2, Store: true},
	Sub:       {Opcode: Sub, Mnemonic: "sub", Effect: Compute, Operands: 2, Store: true},
	Mul:       {Opcode: Mul, Mnemonic: "mul", Effect: Compute, Operands: 2, Store: true},
	Div:       {Opcode: Div, Mnemonic: "div", Effect: Compute, Operands: 2, Store: true},
	Mod:       {Opcode: Mod, Mnemonic: "mod", Effect: Compute, Operands: 2, Store: true},
	Not:       {Opcode: Not, Mnemonic: "not", Effect: Compute, Operands: 1, Store: true},
	Or:        {Opcode: Or, Mnemonic: "or", Effect: Compute, Operands: 2, Store: true},
	And:       {Opcode: And, Mnemonic: "and", Effect: Compute, Operands: 2, Store: true},
	Store:     {Opcode: Store, Mnemonic: "store", Effect: Write, Operands: 2},
	Storeb:    {Opcode: Storeb, Mnemonic: "storeb", Effect: Write, Operands: 3},
	Storew:    {Opcode: Storew, Mnemonic: "storew", Effect: Write, Operands: 3},
	Quit:      {Opcode: Quit, Mnemonic: "quit", Effect: Control},
}

// Lookup returns the definition for the opcode. The bool return value is
// false if the opcode is not in the enumeration.
func Lookup(op Opcode) (Definition, bool) {
	if op < 0 || op >= NumOpcodes {
		return Definition{}, false
	}
	return definitions[op], true
}

func (op Opcode) String() string {
	if defn, ok := Lookup(op); ok {
		return defn.Mnemonic
	}
	return fmt.Sprintf("opcode(%d)", int(op))
}
