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
	"github.com/jetsetilly/gruesome/zmachine/zscii"
)

// ReadEncodedString reads the string at address and returns the number of
// bytes in the encoded string along with the symbol units it contains.
// Abbreviations in the string are expanded.
//
// The resume argument is the number of words at the start of the string to
// skip. The bytes skipped are not counted in the returned length.
func (mem *Memory) ReadEncodedString(address uint32, resume int) (int, []uint16, error) {
	start := address + 2*uint32(resume)

	n, units, err := mem.readUnits(start)
	if err != nil {
		return 0, nil, err
	}

	units, err = zscii.Expand(mem.hdr.Version(), units, mem.abbreviation)
	if err != nil {
		return 0, nil, err
	}

	return n, units, nil
}

// readUnits unpacks the words of a string until the word with the terminator
// bit is found.
func (mem *Memory) readUnits(address uint32) (int, []uint16, error) {
	units := make([]uint16, 0, 24)

	a := address
	for {
		w, err := mem.ReadWord(a)
		if err != nil {
			return 0, nil, err
		}
		a += 2

		units = append(units, (w>>10)&0x1f, (w>>5)&0x1f, w&0x1f)
		if w&0x8000 == 0x8000 {
			break
		}
	}

	return int(a - address), units, nil
}

// abbreviation returns the units of entry index in the abbreviations table.
// Entries in the table are word addresses.
func (mem *Memory) abbreviation(index int) ([]uint16, error) {
	entry := uint32(mem.hdr.Abbreviations()) + 2*uint32(index)

	w, err := mem.ReadWord(entry)
	if err != nil {
		return nil, curated.Errorf("memory: abbreviation %d: %v", index, err)
	}

	_, units, err := mem.readUnits(2 * uint32(w))
	if err != nil {
		return nil, curated.Errorf("memory: abbreviation %d: %v", index, err)
	}

	return units, nil
}
