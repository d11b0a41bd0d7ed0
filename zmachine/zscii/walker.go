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

// the result of feeding a single unit to the walker.
type event int

const (
	// the unit changed the walker state but produced nothing
	eventNone event = iota

	// value is a rune ready for printing
	eventRune

	// value is a ZSCII code
	eventZSCII

	// value is an index into the abbreviation table
	eventAbbreviation
)

// walker is the state machine that interprets a stream of symbol units.
// Translate() and Expand() both use it so that they agree on which units are
// characters and which are part of an escape or an abbreviation reference.
type walker struct {
	version uint8

	// the locked alphabet. only ever changes from the starting alphabet in
	// versions 1 and 2
	lock int

	// a one-shot alphabet shift. -1 if no shift is pending
	shift int

	// number of units remaining in a 10-bit escape sequence
	escape  int
	escaped uint16

	// pending abbreviation bank (1 to 3). zero if no abbreviation is pending
	bank uint16
}

func newWalker(alphabet int, version uint8) *walker {
	if alphabet < A0 || alphabet > A2 {
		alphabet = A0
	}
	return &walker{
		version: version,
		lock:    alphabet,
		shift:   -1,
	}
}

func (w *walker) step(u uint16) (event, uint16) {
	if w.escape == 2 {
		w.escaped = (u & 0x1f) << 5
		w.escape = 1
		return eventNone, 0
	}
	if w.escape == 1 {
		w.escape = 0
		return eventZSCII, w.escaped | (u & 0x1f)
	}

	if w.bank != 0 {
		idx := 32*(w.bank-1) + (u & 0x1f)
		w.bank = 0
		return eventAbbreviation, idx
	}

	// units outside of the 5-bit range are literal ZSCII codes
	if u >= 32 {
		return eventZSCII, u
	}

	alphabet := w.lock
	if w.shift != -1 {
		alphabet = w.shift
		w.shift = -1
	}

	switch u {
	case 0:
		return eventRune, ' '
	case 1:
		if w.version == 1 {
			return eventRune, '\n'
		}
		w.bank = 1
		return eventNone, 0
	case 2, 3:
		if w.version <= 2 {
			w.shift = (w.lock + int(u) - 1) % 3
			return eventNone, 0
		}
		w.bank = u
		return eventNone, 0
	case 4, 5:
		if w.version <= 2 {
			w.lock = (w.lock + int(u) - 3) % 3
			return eventNone, 0
		}
		w.shift = int(u) - 3
		return eventNone, 0
	}

	if alphabet == A2 && u == 6 {
		w.escape = 2
		return eventNone, 0
	}

	return eventRune, uint16(alphabetTable(alphabet, w.version)[u-6])
}
