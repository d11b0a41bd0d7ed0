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

// Package govern defines the states the machine can be in while it is being
// run. The continue check function passed to zmachine.Machine.Run() returns
// one of these states.
package govern

// State indicates the machine's state.
type State int

// List of possible machine states.
//
// Initialising is the state before the first instruction has been executed.
// Paused causes the run loop to stop executing instructions while continuing
// to call the continue check.
const (
	Initialising State = iota
	Running
	Paused
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "Initialising"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Ending:
		return "Ending"
	}
	return ""
}
