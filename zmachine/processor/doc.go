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

// Package processor executes decoded instructions. The Execute() function
// performs the effect of a single instruction against memory and is the only
// part of the machine that changes memory in response to the story's code.
//
// Execute() is stateless. Memory and the output writer are passed with every
// call so that the processor can be exercised in isolation with synthetic
// memory:
//
//	mem, _ := memory.NewMemory(image)
//	ins, _ := decoder.Decode(mem)
//	res, err := processor.Execute(mem, os.Stdout, ins)
//
// Execute() assumes that the program counter has already been advanced past
// the instruction by the decoder. Branches are relative to that address and
// the displacement is corrected by two when a branch is taken.
//
// Values are 16-bit. Arithmetic instructions treat their operands as
// two's-complement signed values and truncate the result to 16 bits before
// it is stored. Logic instructions treat their operands as unsigned. See the
// Signed(), Unsigned(), Quotient(), Remainder() and Complement() functions.
//
// The jin instruction needs the object tree, which is not implemented. The
// instruction is accepted but has no effect, and the Unimplemented field of
// the returned execution.Result is set.
package processor
