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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gruesome/zmachine/memory"
	"github.com/jetsetilly/gruesome/zmachine/processor/instructions"
)

// Entry is a disassembled instruction.
type Entry struct {
	Instruction instructions.Instruction

	// string representations of information in the instruction
	Address  string
	Bytecode string
	Operator string
	Operands string
}

func newEntry(mem *memory.Memory, ins instructions.Instruction) Entry {
	e := Entry{
		Instruction: ins,
		Address:     fmt.Sprintf("0x%05x", ins.Address),
		Operator:    ins.Defn.Mnemonic,
	}

	b := strings.Builder{}
	for i := 0; i < ins.Length; i++ {
		v, err := mem.Read(ins.Address + uint32(i))
		if err != nil {
			break
		}
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%02x", v))
	}
	e.Bytecode = b.String()

	// the operands are everything in the instruction's string after the
	// mnemonic
	e.Operands = strings.TrimSpace(strings.TrimPrefix(ins.String(), ins.Defn.Mnemonic))

	return e
}

func (e Entry) String() string {
	if e.Operands == "" {
		return fmt.Sprintf("%s %s", e.Address, e.Operator)
	}
	return fmt.Sprintf("%s %s %s", e.Address, e.Operator, e.Operands)
}
