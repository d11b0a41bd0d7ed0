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

// Package trace records the instructions executed by a machine. The Recorder
// type writes one CBOR record per instruction to an io.Writer. Records are
// written in canonical form so the trace of the same story with the same
// input is always identical.
//
// The Recorder is attached to a machine with the AttachTracer() function:
//
//	f, _ := os.Create("story.trace")
//	m.AttachTracer(trace.NewRecorder(f))
//
// A trace can be read back with the Read() function.
package trace
