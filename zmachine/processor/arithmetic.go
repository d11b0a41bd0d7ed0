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

package processor

// Signed reinterprets a 16-bit value as a two's-complement signed value.
func Signed(v uint16) int {
	return int(int16(v))
}

// Unsigned truncates a value to 16 bits.
func Unsigned(v int) uint16 {
	return uint16(v)
}

// Quotient of a and b truncated toward zero. Panics if b is zero.
func Quotient(a, b int) int {
	return a / b
}

// Remainder of a divided by b. The sign of the result is the sign of a.
// Panics if b is zero.
func Remainder(a, b int) int {
	return a % b
}

// Complement is the 16-bit one's complement of v.
func Complement(v uint16) uint16 {
	return ^v
}

// offset returns the base address plus a signed delta. A negative result
// wraps to an address that is certain to be out of bounds.
func offset(base uint16, delta int) uint32 {
	return uint32(int64(base) + int64(delta))
}
