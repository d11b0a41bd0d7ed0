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

package instructions

// Category of an instruction describes its effect.
type Category int

// List of effect categories.
const (
	// flow instructions may change the program counter
	Flow Category = iota

	// output instructions write text to the output
	Output

	// compute instructions store the result of an arithmetic or logic
	// operation
	Compute

	// write instructions change a variable or memory location named by an
	// operand
	Write

	// control instructions affect the running of the machine itself
	Control
)

func (e Category) String() string {
	switch e {
	case Flow:
		return "Flow"
	case Output:
		return "Output"
	case Compute:
		return "Compute"
	case Write:
		return "Write"
	case Control:
		return "Control"
	}
	return "unknown effect"
}
