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

package zscii

import (
	"strings"
)

// Translate converts a list of symbol units into printable text. The alphabet
// argument is the alphabet that is active at the start of the list and
// version is the version of the story file, which changes the meaning of the
// special units.
//
// Units of 32 or more are not symbol units at all and are treated as literal
// ZSCII codes. Abbreviation references are skipped. See Expand().
func Translate(alphabet int, version uint8, units []uint16) string {
	var s strings.Builder

	w := newWalker(alphabet, version)
	for _, u := range units {
		ev, v := w.step(u)
		switch ev {
		case eventRune:
			s.WriteRune(rune(v))
		case eventZSCII:
			if r, ok := Rune(v); ok {
				s.WriteRune(r)
			}
		}
	}

	return s.String()
}

// AbbreviationLookup returns the symbol units of the abbreviation at index
// in the abbreviation table.
type AbbreviationLookup func(index int) ([]uint16, error)

// Expand returns a copy of units with every abbreviation reference replaced
// by the units returned by lookup. Version 1 story files do not have
// abbreviations and the list is returned unchanged.
//
// The units returned by lookup are not themselves expanded. Abbreviations
// may not contain abbreviations.
func Expand(version uint8, units []uint16, lookup AbbreviationLookup) ([]uint16, error) {
	if version == 1 {
		return units, nil
	}

	out := make([]uint16, 0, len(units))

	w := newWalker(A0, version)
	for _, u := range units {
		ev, v := w.step(u)
		switch {
		case ev == eventAbbreviation:
			a, err := lookup(int(v))
			if err != nil {
				return nil, err
			}
			out = append(out, settled(version, a)...)
		case w.bank != 0:
			// first unit of an abbreviation reference. the reference is
			// replaced in its entirety once the second unit is seen
		default:
			out = append(out, u)
		}
	}

	return out, nil
}

// settled returns units without the trailing units that only change the
// walker state. Abbreviations are padded with shift units and these must not
// affect the text that follows the abbreviation.
func settled(version uint8, units []uint16) []uint16 {
	n := 0

	w := newWalker(A0, version)
	for i, u := range units {
		if ev, _ := w.step(u); ev != eventNone {
			n = i + 1
		}
	}

	return units[:n]
}
