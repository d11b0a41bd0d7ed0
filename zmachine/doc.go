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

// Package zmachine ties together memory, the decoder and the processor. The
// Machine type executes a story file one instruction at a time with Step()
// or continuously with Run().
//
//	m, err := zmachine.NewMachine(image, os.Stdout)
//	if err != nil {
//		return err
//	}
//	err = m.Run(nil)
//
// Run() stops when the story executes the quit instruction, when the
// continue check returns govern.Ending or when an error occurs. A machine that
// has executed quit cannot be stepped any further.
package zmachine
