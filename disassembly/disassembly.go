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
	"github.com/jetsetilly/gruesome/curated"
	"github.com/jetsetilly/gruesome/zmachine/decoder"
	"github.com/jetsetilly/gruesome/zmachine/memory"
)

// Linear decodes count instructions starting at the start address. The
// entries decoded before any error are returned along with the error.
func Linear(mem *memory.Memory, start uint32, count int) ([]Entry, error) {
	entries := make([]Entry, 0, count)

	address := start
	for range count {
		ins, err := decoder.Peek(mem, address)
		if err != nil {
			return entries, curated.Errorf("disassembly: %v", err)
		}

		entries = append(entries, newEntry(mem, ins))
		address += uint32(ins.Length)
	}

	return entries, nil
}
