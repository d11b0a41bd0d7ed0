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

// Package header is a read-only view of the fixed header region at the start
// of a story file. Values are read from memory every time they are asked for
// so a Header never reports stale data.
package header

import (
	"fmt"

	"github.com/jetsetilly/gruesome/curated"
)

// InvalidHeader is returned by New() when the header region cannot be
// interpreted.
const InvalidHeader = "header: %v"

// Size is the number of bytes in the header region.
const Size = 0x40

// List of header field addresses.
const (
	addrVersion       = 0x00
	addrRelease       = 0x02
	addrHighBase      = 0x04
	addrInitialPC     = 0x06
	addrDictionary    = 0x08
	addrObjectTable   = 0x0a
	addrGlobals       = 0x0c
	addrStaticBase    = 0x0e
	addrSerial        = 0x12
	addrAbbreviations = 0x18
	addrFileLength    = 0x1a
	addrChecksum      = 0x1c
)

// Reader is the memory access required by Header.
type Reader interface {
	Read(address uint32) (uint8, error)
	ReadWord(address uint32) (uint16, error)
}

// Header gives access to the fields of the story file header.
type Header struct {
	mem Reader
}

// New is the preferred method of initialisation for the Header type. The
// memory must be large enough to contain the header region and the version
// number must be between 1 and 8.
func New(mem Reader) (Header, error) {
	hdr := Header{mem: mem}

	if _, err := mem.Read(Size - 1); err != nil {
		return Header{}, curated.Errorf(InvalidHeader, err)
	}

	if v := hdr.Version(); v < 1 || v > 8 {
		return Header{}, curated.Errorf(InvalidHeader, fmt.Sprintf("unsupported version (%d)", v))
	}

	return hdr, nil
}

// the header region has been checked by New() so errors from the Reader are
// not possible for the addresses used by the field functions
func (hdr Header) byte(address uint32) uint8 {
	v, _ := hdr.mem.Read(address)
	return v
}

func (hdr Header) word(address uint32) uint16 {
	v, _ := hdr.mem.ReadWord(address)
	return v
}

// Version of the story file format.
func (hdr Header) Version() uint8 {
	return hdr.byte(addrVersion)
}

// Release number of the story.
func (hdr Header) Release() uint16 {
	return hdr.word(addrRelease)
}

// HighBase is the byte address of the start of high memory.
func (hdr Header) HighBase() uint16 {
	return hdr.word(addrHighBase)
}

// InitialPC is the address of the first instruction to execute.
func (hdr Header) InitialPC() uint16 {
	return hdr.word(addrInitialPC)
}

// Dictionary is the byte address of the dictionary.
func (hdr Header) Dictionary() uint16 {
	return hdr.word(addrDictionary)
}

// ObjectTable is the byte address of the object table.
func (hdr Header) ObjectTable() uint16 {
	return hdr.word(addrObjectTable)
}

// Globals is the byte address of the table of global variables.
func (hdr Header) Globals() uint16 {
	return hdr.word(addrGlobals)
}

// StaticBase is the byte address of the first byte of static memory.
func (hdr Header) StaticBase() uint16 {
	return hdr.word(addrStaticBase)
}

// Abbreviations is the byte address of the abbreviations table.
func (hdr Header) Abbreviations() uint16 {
	return hdr.word(addrAbbreviations)
}

// FileLength is the length of the story file in bytes. The header stores the
// length divided by a constant that depends on the version. Some early story
// files have a zero in this field.
func (hdr Header) FileLength() uint32 {
	l := uint32(hdr.word(addrFileLength))
	switch v := hdr.Version(); {
	case v <= 3:
		return l * 2
	case v <= 5:
		return l * 4
	}
	return l * 8
}

// Checksum of the story file.
func (hdr Header) Checksum() uint16 {
	return hdr.word(addrChecksum)
}

// Serial is the six character serial code. It is usually the compilation
// date of the story in the form YYMMDD.
func (hdr Header) Serial() string {
	s := make([]byte, 6)
	for i := range s {
		s[i] = hdr.byte(addrSerial + uint32(i))
	}
	return string(s)
}

// String returns a one line summary of the header.
func (hdr Header) String() string {
	return fmt.Sprintf("v%d release %d serial %s", hdr.Version(), hdr.Release(), hdr.Serial())
}
