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

// Package test bundles functions that remove common boilerplate from tests.
//
// The Expect*() functions report failure with t.Errorf() and the test
// continues. The Demand*() functions report failure with t.Fatalf() and the
// test stops. Use a Demand*() function when later parts of a test depend on
// the value being correct, for example when a decoded instruction is about to
// be executed.
//
// Success and failure are defined by the type of the value being tested:
//
//	bool  -> true is success, false is failure
//	error -> nil is success, non-nil is failure
//	nil   -> success
//
// The nil type is considered a success because that is how errors usually
// work in Go.
//
// The CompareWriter and CappedWriter types are implementations of
// io.Writer that capture output. They are useful as output sinks for the
// zmachine and for the logger.
package test
