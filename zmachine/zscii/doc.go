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

// Package zscii is the text codec. Strings in a story file are stored as a
// sequence of 16-bit words, each word holding three 5-bit symbol units (the
// top bit of the last word is set). The memory package unpacks the words and
// this package turns the resulting units into printable text.
//
// A symbol unit selects a character from one of three alphabets. Alphabet A0
// holds the lower case letters, A1 the upper case letters and A2 digits and
// punctuation. Units 0 to 5 are special and their meaning changes with the
// version of the story file:
//
//	unit   version 1     version 2     version 3+
//	0      space         space         space
//	1      newline       abbreviation  abbreviation
//	2      shift up      shift up      abbreviation
//	3      shift down    shift down    abbreviation
//	4      lock up       lock up       shift to A1
//	5      lock down     lock down     shift to A2
//
// Unit 6 in A2 introduces a 10-bit ZSCII character built from the next two
// units.
//
// Translate() is a pure function of its arguments. Abbreviations are not
// resolved by Translate() because that requires access to memory. Use
// Expand() to splice abbreviations into a list of units before translation.
package zscii
