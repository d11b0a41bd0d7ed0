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

// List of alphabet selectors. The alphabet argument to Translate() should be
// one of these values.
const (
	A0 = iota
	A1
	A2
)

// the alphabet tables are indexed by symbol unit minus six. the first entry
// of A2 is never used because unit 6 in A2 is the 10-bit escape
var (
	alphabetA0   = []rune("abcdefghijklmnopqrstuvwxyz")
	alphabetA1   = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	alphabetA2v1 = []rune(" 0123456789.,!?_#'\"/\\<-:()")
	alphabetA2   = []rune(" \n0123456789.,!?_#'\"/\\-:()")
)

func alphabetTable(alphabet int, version uint8) []rune {
	switch alphabet {
	case A1:
		return alphabetA1
	case A2:
		if version == 1 {
			return alphabetA2v1
		}
		return alphabetA2
	}
	return alphabetA0
}

// the default unicode translation of ZSCII codes 155 to 223
var extraCharacters = []rune("äöüÄÖÜß»«ëïÿËÏáéíóúýÁÉÍÓÚÝàèìòùÀÈÌÒÙâêîôûÂÊÎÔÛåÅøØãñõÃÑÕæÆçÇþðÞÐ£œŒ¡¿")

// Unknown is the rune used for ZSCII codes that have no printable
// representation.
const Unknown = '?'

// Rune returns the printable rune for a ZSCII code. The bool return value is
// false if nothing should be printed for the code (ZSCII zero).
func Rune(code uint16) (rune, bool) {
	switch {
	case code == 0:
		return 0, false
	case code == 13:
		return '\n', true
	case code >= 32 && code <= 126:
		return rune(code), true
	case code >= 155 && int(code-155) < len(extraCharacters):
		return extraCharacters[code-155], true
	}
	return Unknown, true
}
