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

import "fmt"

// ProgramCounter holds the address of the next byte to fetch.
type ProgramCounter struct {
	value uint32
}

// Label returns an identifying string for the program counter.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("0x%05x", pc.value)
}

// Address returns the current value of the PC.
func (pc *ProgramCounter) Address() uint32 {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint32) {
	pc.value = val
}

// Add a signed value to the PC. There is no check that the result is a valid
// address. An invalid address will be caught when the next instruction is
// fetched.
func (pc *ProgramCounter) Add(val int) {
	pc.value = uint32(int64(pc.value) + int64(val))
}
