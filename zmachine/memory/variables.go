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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gruesome/curated"
)

// StackUnderflow is returned when a value is taken from an empty stack.
const StackUnderflow = "memory: stack underflow"

// MaxLocals is the number of local variables in a routine frame.
const MaxLocals = 15

// Variable is a reference to the stack, a local variable or a global
// variable.
type Variable uint8

// StackTop is the variable that refers to the top of the evaluation stack.
const StackTop Variable = 0x00

const firstGlobal Variable = 0x10

func (v Variable) String() string {
	switch {
	case v == StackTop:
		return "sp"
	case v < firstGlobal:
		return fmt.Sprintf("L%02x", uint8(v-1))
	}
	return fmt.Sprintf("G%02x", uint8(v-firstGlobal))
}

// IsLocal returns true if the variable refers to a local variable.
func (v Variable) IsLocal() bool {
	return v != StackTop && v < firstGlobal
}

// IsGlobal returns true if the variable refers to a global variable.
func (v Variable) IsGlobal() bool {
	return v >= firstGlobal
}

func (mem *Memory) globalAddress(v Variable) uint32 {
	return uint32(mem.hdr.Globals()) + 2*uint32(v-firstGlobal)
}

// ReadVariable returns the value of the variable. Reading the stack pops the
// value.
func (mem *Memory) ReadVariable(v Variable) (uint16, error) {
	switch {
	case v == StackTop:
		return mem.Pop()
	case v.IsLocal():
		return mem.locals[v-1], nil
	}
	return mem.ReadWord(mem.globalAddress(v))
}

// PeekVariable returns the value of the variable without popping the stack.
func (mem *Memory) PeekVariable(v Variable) (uint16, error) {
	if v == StackTop {
		if len(mem.stack) == 0 {
			return 0, curated.Errorf(StackUnderflow)
		}
		return mem.stack[len(mem.stack)-1], nil
	}
	return mem.ReadVariable(v)
}

// StoreVariable writes a value to the variable. Storing to the stack pushes
// the value.
func (mem *Memory) StoreVariable(v Variable, value uint16) error {
	switch {
	case v == StackTop:
		mem.Push(value)
		return nil
	case v.IsLocal():
		mem.locals[v-1] = value
		return nil
	}
	return mem.WriteWord(mem.globalAddress(v), value)
}

// StoreIndirect writes a value to the variable. Unlike StoreVariable() the
// stack is not pushed and the value replaces the top of the stack. This is
// how variables that are named by an operand value are written to.
func (mem *Memory) StoreIndirect(v Variable, value uint16) error {
	if v == StackTop {
		if len(mem.stack) == 0 {
			return curated.Errorf(StackUnderflow)
		}
		mem.stack[len(mem.stack)-1] = value
		return nil
	}
	return mem.StoreVariable(v, value)
}

// Push a value onto the evaluation stack.
func (mem *Memory) Push(value uint16) {
	mem.stack = append(mem.stack, value)
}

// Pop a value from the evaluation stack.
func (mem *Memory) Pop() (uint16, error) {
	if len(mem.stack) == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	v := mem.stack[len(mem.stack)-1]
	mem.stack = mem.stack[:len(mem.stack)-1]
	return v, nil
}

// StackDepth returns the number of values on the evaluation stack.
func (mem *Memory) StackDepth() int {
	return len(mem.stack)
}
