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

// Package decoder reads instructions from memory. Decode() reads the
// instruction at the program counter, resolves the values of its operands and
// advances the program counter past the instruction. The result is ready to
// be passed to the processor.
//
// Peek() decodes an instruction at any address without changing memory. The
// operands are not resolved because reading a variable may pop the stack.
// Peek() is used by the disassembly package.
//
// The long, short and variable instruction forms of versions 1 to 4 are
// understood. Only the opcodes in the instructions package can be decoded.
// Any other opcode results in an UnsupportedOpcode error.
package decoder
