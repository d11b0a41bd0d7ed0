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
	"github.com/jetsetilly/gruesome/curated"
	"github.com/jetsetilly/gruesome/zmachine/memory"
	"github.com/jetsetilly/gruesome/zmachine/processor/instructions"
	"github.com/jetsetilly/gruesome/zmachine/zscii"
)

// UnsupportedOpcode is returned when the instruction at an address cannot be
// decoded.
const UnsupportedOpcode = "decoder: unsupported opcode (%s %d at 0x%05x)"

// the form byte of extended instructions in version 5 and later.
const extended = 0xbe

// Decode the instruction at the program counter. Variable operands are
// resolved and the program counter is moved to the next instruction.
//
// Memory is unchanged if an error is returned. Values popped from the stack
// while resolving operands are pushed back.
func Decode(mem *memory.Memory) (instructions.Instruction, error) {
	ins, err := decode(mem, mem.PC.Address())
	if err != nil {
		return ins, err
	}

	// values popped from the stack in the order they were popped
	var popped []uint16

	ins.Operands = make([]uint16, len(ins.Encoded))
	for i, o := range ins.Encoded {
		if o.Type != instructions.VariableOperand {
			ins.Operands[i] = o.Value
			continue
		}

		v := memory.Variable(o.Value)
		ins.Operands[i], err = mem.ReadVariable(v)
		if err != nil {
			for j := len(popped) - 1; j >= 0; j-- {
				mem.Push(popped[j])
			}
			return ins, curated.Errorf("decoder: %v", err)
		}
		if v == memory.StackTop {
			popped = append(popped, ins.Operands[i])
		}
	}

	mem.PC.Load(ins.Address + uint32(ins.Length))

	return ins, nil
}

// Peek decodes the instruction at address. Memory is not changed and
// operands are not resolved.
func Peek(mem *memory.Memory, address uint32) (instructions.Instruction, error) {
	return decode(mem, address)
}

// cursor reads consecutive bytes from memory.
type cursor struct {
	mem     *memory.Memory
	address uint32
}

func (c *cursor) byte() (uint8, error) {
	v, err := c.mem.Read(c.address)
	if err != nil {
		return 0, err
	}
	c.address++
	return v, nil
}

func (c *cursor) word() (uint16, error) {
	v, err := c.mem.ReadWord(c.address)
	if err != nil {
		return 0, err
	}
	c.address += 2
	return v, nil
}

func decode(mem *memory.Memory, address uint32) (instructions.Instruction, error) {
	ins, err := decodeForm(mem, address)
	if err != nil {
		if curated.Is(err, UnsupportedOpcode) {
			return ins, err
		}
		return ins, curated.Errorf("decoder: %v", err)
	}
	return ins, nil
}

func decodeForm(mem *memory.Memory, address uint32) (instructions.Instruction, error) {
	ins := instructions.Instruction{Address: address}
	c := &cursor{mem: mem, address: address}

	b, err := c.byte()
	if err != nil {
		return ins, err
	}

	var count operandCount
	var number uint8

	// operand types in the order they appear. the number of types is the
	// number of operands
	var types []uint8

	switch {
	case b == extended && mem.Header().Version() >= 5:
		number, err = c.byte()
		if err != nil {
			return ins, err
		}
		return ins, curated.Errorf(UnsupportedOpcode, opExt, number, address)

	case b&0xc0 == 0xc0:
		// variable form
		number = b & 0x1f
		count = op2
		if b&0x20 == 0x20 {
			count = opVar
		}

		tb, err := c.byte()
		if err != nil {
			return ins, err
		}
		for i := 6; i >= 0; i -= 2 {
			t := (tb >> i) & 0x03
			if t == typeOmitted {
				break
			}
			types = append(types, t)
		}

	case b&0xc0 == 0x80:
		// short form
		number = b & 0x0f
		t := (b >> 4) & 0x03
		if t == typeOmitted {
			count = op0
		} else {
			count = op1
			types = append(types, t)
		}

	default:
		// long form. the type bits are zero for a small constant and one for
		// a variable
		number = b & 0x1f
		count = op2
		types = append(types, typeSmall, typeSmall)
		if b&0x40 == 0x40 {
			types[0] = typeVariable
		}
		if b&0x20 == 0x20 {
			types[1] = typeVariable
		}
	}

	op, ok := opcodes[count][number]
	if !ok {
		return ins, curated.Errorf(UnsupportedOpcode, count, number, address)
	}
	ins.Defn, _ = instructions.Lookup(op)

	for _, t := range types {
		o := instructions.Operand{Type: operandType(t)}
		if t == typeLarge {
			o.Value, err = c.word()
		} else {
			var v uint8
			v, err = c.byte()
			o.Value = uint16(v)
		}
		if err != nil {
			return ins, err
		}
		ins.Encoded = append(ins.Encoded, o)
	}

	if ins.Defn.Store {
		v, err := c.byte()
		if err != nil {
			return ins, err
		}
		ins.Store = memory.Variable(v)
	}

	if ins.Defn.Branch {
		ins.Branch, err = branch(c)
		if err != nil {
			return ins, err
		}
	}

	if ins.Defn.Text {
		n, units, err := mem.ReadEncodedString(c.address, 0)
		if err != nil {
			return ins, err
		}
		c.address += uint32(n)
		ins.Text = zscii.Translate(zscii.A0, mem.Header().Version(), units)
	}

	ins.Length = int(c.address - address)

	return ins, nil
}

// branch reads the branch descriptor. The descriptor is one or two bytes
// long. Bit 7 of the first byte is the polarity and bit 6 indicates the short
// form. The short form is a 6-bit unsigned displacement and the long form is
// a 14-bit signed displacement.
func branch(c *cursor) (instructions.Branch, error) {
	b, err := c.byte()
	if err != nil {
		return instructions.Branch{}, err
	}

	br := instructions.Branch{OnTrue: b&0x80 == 0x80}

	if b&0x40 == 0x40 {
		br.Displacement = uint16(b & 0x3f)
		return br, nil
	}

	lo, err := c.byte()
	if err != nil {
		return instructions.Branch{}, err
	}

	br.Displacement = uint16(b&0x3f)<<8 | uint16(lo)
	if br.Displacement&0x2000 == 0x2000 {
		br.Displacement |= 0xc000
	}

	return br, nil
}
