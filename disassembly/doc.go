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

// Package disassembly produces a listing of the instructions in a story file.
//
// Linear() decodes a fixed number of instructions from a start address,
// treating each instruction as following directly from the previous one. No
// attempt is made to follow the flow of the program so the disassembly of
// data or of code following an unconditional jump will be nonsense.
// Disassembly stops at the first address that cannot be decoded.
//
// Decoding does not change the state of memory. The entries can be written
// with the Write() function.
package disassembly
