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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that are tested for in this way should be stored
// as exported const strings in the package that raises them. For example, the
// memory package defines:
//
//	const OutOfBounds = "memory: address out of bounds (%#05x)"
//
// and a caller can test for it with:
//
//	if curated.Is(err, memory.OutOfBounds) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(memory.OutOfBounds, 0x12345)
//	f := curated.Errorf("processor: %v", e)
//
//	curated.Has(f, memory.OutOfBounds)  // true
//	curated.Is(f, memory.OutOfBounds)   // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is 'expected'
// and false if the error is 'unexpected'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, wrapping an error that begins
// "processor: " with the pattern "processor: %v" results in the message
//
//	processor: division by zero
//
// and not:
//
//	processor: processor: division by zero
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': '.
package curated
