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

package decoder_test

import (
	"testing"

	"github.com/jetsetilly/gruesome/curated"
	"github.com/jetsetilly/gruesome/test"
	"github.com/jetsetilly/gruesome/zmachine/decoder"
	"github.com/jetsetilly/gruesome/zmachine/memory"
	"github.com/jetsetilly/gruesome/zmachine/processor/instructions"
)

const (
	imageSize = 0x400
	globals   = 0x100
	initialPC = 0x200
)

// newMemory returns memory with the program bytes at initialPC
func newMemory(t *testing.T, version uint8, program ...uint8) *memory.Memory {
	t.Helper()

	img := make([]uint8, imageSize)
	img[0x00] = version
	img[0x06], img[0x07] = initialPC>>8, initialPC&0xff
	img[0x0c], img[0x0d] = globals>>8, globals&0xff
	copy(img[initialPC:], program)

	mem, err := memory.NewMemory(img)
	test.DemandSuccess(t, err)
	return mem
}

func decode(t *testing.T, mem *memory.Memory, op instructions.Opcode, length int) instructions.Instruction {
	t.Helper()
	pc := mem.PC.Address()
	ins, err := decoder.Decode(mem)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.Defn.Opcode, op)
	test.ExpectEquality(t, ins.Address, pc)
	test.ExpectEquality(t, ins.Length, length, op)
	test.ExpectEquality(t, mem.PC.Address(), pc+uint32(length), op)
	return ins
}

func TestForms(t *testing.T) {
	mem := newMemory(t, 3,
		// long form: add #02 #03 -> G00
		0x14, 0x02, 0x03, 0x10,

		// long form with a variable operand: je G00 #05 ?(+6)
		0x41, 0x10, 0x05, 0xc6,

		// variable form 2OP: je #05 #03 #05 ?~(-2)
		0xc1, 0x57, 0x05, 0x03, 0x05, 0x3f, 0xfe,

		// short form 1OP: jump #000a
		0x8c, 0x00, 0x0a,

		// short form 0OP: print "hi"
		0xb2, 0xb5, 0xc5,

		// variable form VAR: storew #0300 #01 #05
		0xe1, 0x17, 0x03, 0x00, 0x01, 0x05,

		// quit
		0xba,
	)
	test.DemandSuccess(t, mem.StoreVariable(0x10, 5))

	ins := decode(t, mem, instructions.Add, 4)
	test.ExpectEquality(t, len(ins.Operands), 2)
	test.ExpectEquality(t, ins.Operands[0], 2)
	test.ExpectEquality(t, ins.Operands[1], 3)
	test.ExpectEquality(t, ins.Store, 0x10)

	ins = decode(t, mem, instructions.Je, 4)
	test.ExpectEquality(t, ins.Operands[0], 5)
	test.ExpectEquality(t, ins.Encoded[0].Type, instructions.VariableOperand)
	test.ExpectEquality(t, ins.Branch.Displacement, 6)
	test.ExpectSuccess(t, ins.Branch.OnTrue)

	ins = decode(t, mem, instructions.Je, 7)
	test.ExpectEquality(t, len(ins.Operands), 3)
	test.ExpectEquality(t, ins.Branch.Displacement, 0xfffe)
	test.ExpectFailure(t, ins.Branch.OnTrue)

	ins = decode(t, mem, instructions.Jump, 3)
	test.ExpectEquality(t, ins.Operands[0], 0x000a)
	test.ExpectEquality(t, ins.Encoded[0].Type, instructions.LargeConstant)

	ins = decode(t, mem, instructions.Print, 3)
	test.ExpectEquality(t, ins.Text, "hi")
	test.ExpectEquality(t, len(ins.Operands), 0)

	ins = decode(t, mem, instructions.Storew, 6)
	test.ExpectEquality(t, len(ins.Operands), 3)
	test.ExpectEquality(t, ins.Operands[0], 0x0300)
	test.ExpectEquality(t, ins.Operands[1], 0x01)
	test.ExpectEquality(t, ins.Operands[2], 0x05)

	decode(t, mem, instructions.Quit, 1)
}

func TestBranchDisplacement(t *testing.T) {
	// long branch with a positive 14-bit displacement
	mem := newMemory(t, 3, 0x03, 0x04, 0x03, 0x81, 0x00)
	ins := decode(t, mem, instructions.Jg, 5)
	test.ExpectEquality(t, ins.Branch.Displacement, 0x0100)
	test.ExpectSuccess(t, ins.Branch.OnTrue)

	// most negative 14-bit displacement
	mem = newMemory(t, 3, 0x03, 0x04, 0x03, 0x20, 0x00)
	ins = decode(t, mem, instructions.Jg, 5)
	test.ExpectEquality(t, ins.Branch.Displacement, 0xe000)
	test.ExpectFailure(t, ins.Branch.OnTrue)
}

func TestStackOperands(t *testing.T) {
	// sub sp sp -> sp
	mem := newMemory(t, 3, 0x75, 0x00, 0x00, 0x00)
	mem.Push(10)
	mem.Push(3)

	ins := decode(t, mem, instructions.Sub, 4)
	test.ExpectEquality(t, ins.Operands[0], 3)
	test.ExpectEquality(t, ins.Operands[1], 10)
	test.ExpectEquality(t, mem.StackDepth(), 0)

	// the stack is now empty
	mem.PC.Load(initialPC)
	_, err := decoder.Decode(mem)
	test.ExpectSuccess(t, curated.Has(err, memory.StackUnderflow))
}

func TestStackRestoredOnError(t *testing.T) {
	// sub sp sp -> sp with only one value on the stack
	mem := newMemory(t, 3, 0x75, 0x00, 0x00, 0x00)
	mem.Push(7)

	_, err := decoder.Decode(mem)
	test.ExpectSuccess(t, curated.Has(err, memory.StackUnderflow))

	// the value popped for the first operand is back on the stack
	test.DemandEquality(t, mem.StackDepth(), 1)
	v, err := mem.Pop()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 7)
	test.ExpectEquality(t, mem.PC.Address(), initialPC)
}

func TestPeek(t *testing.T) {
	mem := newMemory(t, 3, 0x75, 0x00, 0x00, 0x00)
	mem.Push(1)

	ins, err := decoder.Peek(mem, initialPC)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.Defn.Opcode, instructions.Sub)
	test.ExpectEquality(t, ins.Length, 4)
	test.ExpectEquality(t, len(ins.Operands), 0)
	test.ExpectEquality(t, ins.String(), "sub sp sp -> sp")

	test.ExpectEquality(t, mem.PC.Address(), initialPC)
	test.ExpectEquality(t, mem.StackDepth(), 1)
}

func TestUnsupported(t *testing.T) {
	// call is not supported
	mem := newMemory(t, 3, 0xe0, 0x3f, 0x12, 0x34, 0x00)
	_, err := decoder.Decode(mem)
	test.ExpectSuccess(t, curated.Is(err, decoder.UnsupportedOpcode))
	test.ExpectEquality(t, err.Error(), "decoder: unsupported opcode (VAR 0 at 0x00200)")
	test.ExpectEquality(t, mem.PC.Address(), initialPC)

	// extended form in version 5
	mem = newMemory(t, 5, 0xbe, 0x02, 0xff)
	_, err = decoder.Decode(mem)
	test.ExpectSuccess(t, curated.Is(err, decoder.UnsupportedOpcode))

	// 0xbe in version 3 is the short form 0OP opcode 14
	mem = newMemory(t, 3, 0xbe)
	_, err = decoder.Decode(mem)
	test.ExpectSuccess(t, curated.Is(err, decoder.UnsupportedOpcode))
	test.ExpectEquality(t, err.Error(), "decoder: unsupported opcode (0OP 14 at 0x00200)")

	// an instruction that runs off the end of memory
	mem = newMemory(t, 3)
	mem.PC.Load(imageSize - 1)
	test.DemandSuccess(t, mem.Write(imageSize-1, 0x14))
	_, err = decoder.Decode(mem)
	test.ExpectSuccess(t, curated.Has(err, memory.OutOfBounds))
}
