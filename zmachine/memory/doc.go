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

// Package memory implements the memory of the Z-machine. The story file is
// loaded into memory wholesale and every address used by an instruction is a
// byte offset into the loaded image.
//
// In addition to the byte image, the Memory type holds the program counter,
// the evaluation stack and the local variables of the current routine. These
// are not part of the addressable memory but they are reached through the
// variable functions, which is how instructions use them.
//
// Variable numbers are interpreted as follows:
//
//	0x00        top of the evaluation stack
//	0x01-0x0f   local variables of the current routine
//	0x10-0xff   global variables
//
// The global variables are stored in memory in the table pointed to by the
// header.
//
// ReadEncodedString() reads the packed representation of a string and returns
// the symbol units ready for the zscii package to translate. Abbreviations
// are expanded as the string is read.
package memory
