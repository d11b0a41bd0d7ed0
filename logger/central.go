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

// Package logger is the central log for the interpreter. Log entries are
// short, single line messages prefixed by a tag naming the part of the system
// that produced it, for example:
//
//	processor: unimplemented opcode (jin at 0x004f2)
//
// Identical adjacent entries are collapsed into a single entry with a repeat
// count. This matters for an interpreter because a program stuck in a loop
// will tend to log the same thing many thousands of times.
//
// The central log is bounded. Only the most recent entries are kept.
//
// Every logging call takes a Permission argument. Use logger.Allow when
// logging should always happen. Components that may be run in a context where
// logging is unwanted (disassembly for example) can pass an implementation of
// Permission that says no.
package logger

import (
	"io"
)

// MaxCentral is the maximum number of entries kept by the central logger.
const MaxCentral = 256

var central *Logger

func init() {
	central = NewLogger(MaxCentral)
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new entries to io.Writer as they are added. A nil
// io.Writer turns echoing off.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries.
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}
