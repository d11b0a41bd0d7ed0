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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a method of handling program modes and allows
// different flags for each mode.
//
// Arguments are first given to NewArgs() and then parsed with Parse(). This
// is so that modes can be parsed in layers. The gruesome command uses the
// package like this:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM", "TRACE")
//	p, err := md.Parse()
//
// After parsing, md.Mode() returns the selected mode (or the default mode,
// which is the first mode in the list). Each mode then calls NewMode(), adds
// its own flags and calls Parse() again. Non-flag arguments are returned by
// RemainingArgs() or GetArg().
//
// Mode comparisons are case insensitive. Help messages are produced
// automatically in response to the -help flag and include the list of
// available sub-modes.
package modalflag
