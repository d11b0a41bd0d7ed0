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

package processor_test

import (
	"testing"

	"github.com/jetsetilly/gruesome/test"
	"github.com/jetsetilly/gruesome/zmachine/processor"
)

func TestSignedRoundTrip(t *testing.T) {
	for v := 0; v <= 0xffff; v++ {
		s := processor.Signed(uint16(v))
		if !test.ExpectEquality(t, processor.Signed(processor.Unsigned(s)), s, v) {
			return
		}
	}

	test.ExpectEquality(t, processor.Signed(0x7fff), 32767)
	test.ExpectEquality(t, processor.Signed(0x8000), -32768)
	test.ExpectEquality(t, processor.Signed(0xffff), -1)
	test.ExpectEquality(t, processor.Unsigned(-1), 0xffff)
	test.ExpectEquality(t, processor.Unsigned(0x10001), 0x0001)
}

func TestQuotient(t *testing.T) {
	test.ExpectEquality(t, processor.Quotient(7, 2), 3)
	test.ExpectEquality(t, processor.Quotient(-7, 2), -3)
	test.ExpectEquality(t, processor.Quotient(7, -2), -3)
	test.ExpectEquality(t, processor.Quotient(-7, -2), 3)
}

func TestRemainder(t *testing.T) {
	test.ExpectEquality(t, processor.Remainder(7, 2), 1)
	test.ExpectEquality(t, processor.Remainder(-7, 2), -1)
	test.ExpectEquality(t, processor.Remainder(7, -2), 1)
	test.ExpectEquality(t, processor.Remainder(-7, -2), -1)
}

func TestComplement(t *testing.T) {
	test.ExpectEquality(t, processor.Complement(0x00ff), 0xff00)
	test.ExpectEquality(t, processor.Complement(0x0000), 0xffff)
	test.ExpectEquality(t, processor.Complement(0xffff), 0x0000)
}
