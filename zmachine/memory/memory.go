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
	"github.com/jetsetilly/gruesome/curated"
	"github.com/jetsetilly/gruesome/zmachine/memory/header"
)

// OutOfBounds is returned when an address lies outside of the memory image.
const OutOfBounds = "memory: address out of bounds (0x%05x)"

// Memory is the entire address space of the Z-machine along with the program
// counter and variable storage.
type Memory struct {
	data []uint8
	hdr  header.Header

	// the address of the next byte to be fetched
	PC ProgramCounter

	stack  []uint16
	locals []uint16
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The image is copied and the program counter is set to the initial value
// given in the header.
func NewMemory(image []uint8) (*Memory, error) {
	mem := &Memory{
		data:   make([]uint8, len(image)),
		stack:  make([]uint16, 0, 64),
		locals: make([]uint16, MaxLocals),
	}
	copy(mem.data, image)

	var err error
	mem.hdr, err = header.New(mem)
	if err != nil {
		return nil, curated.Errorf("memory: %v", err)
	}

	mem.PC.Load(uint32(mem.hdr.InitialPC()))

	return mem, nil
}

// Header returns a view of the header region of memory.
func (mem *Memory) Header() header.Header {
	return mem.hdr
}

// Size returns the number of bytes in the memory image.
func (mem *Memory) Size() int {
	return len(mem.data)
}

// Read a single byte from memory.
func (mem *Memory) Read(address uint32) (uint8, error) {
	if address >= uint32(len(mem.data)) {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return mem.data[address], nil
}

// ReadWord reads the big-endian word at address.
func (mem *Memory) ReadWord(address uint32) (uint16, error) {
	if address >= uint32(len(mem.data)) || address+1 >= uint32(len(mem.data)) {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return uint16(mem.data[address])<<8 | uint16(mem.data[address+1]), nil
}

// Write a single byte to memory.
func (mem *Memory) Write(address uint32, data uint8) error {
	if address >= uint32(len(mem.data)) {
		return curated.Errorf(OutOfBounds, address)
	}
	mem.data[address] = data
	return nil
}

// WriteWord writes a big-endian word at address. Neither byte is written if
// any part of the word lies outside of memory.
func (mem *Memory) WriteWord(address uint32, data uint16) error {
	if address >= uint32(len(mem.data)) || address+1 >= uint32(len(mem.data)) {
		return curated.Errorf(OutOfBounds, address)
	}
	mem.data[address] = uint8(data >> 8)
	mem.data[address+1] = uint8(data)
	return nil
}
