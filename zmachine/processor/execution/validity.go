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

package execution

import (
	"github.com/jetsetilly/gruesome/curated"
	"github.com/jetsetilly/gruesome/zmachine/processor/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("execution: result not finalised")
	}

	if r.Defn.Mnemonic == "" {
		return curated.Errorf("execution: result has no instruction definition")
	}

	if r.BranchTaken {
		if r.Defn.Effect != instructions.Flow {
			return curated.Errorf("execution: unexpected branch for %s", r.Defn.Mnemonic)
		}
		if !r.Defn.Branch && r.Defn.Opcode != instructions.Jump {
			return curated.Errorf("execution: unexpected branch for %s", r.Defn.Mnemonic)
		}
	}

	// an unimplemented instruction must not have had any effect
	if r.Unimplemented && (r.BranchTaken || r.Halt) {
		return curated.Errorf("execution: unimplemented %s had an effect", r.Defn.Mnemonic)
	}

	if r.Halt && r.Defn.Opcode != instructions.Quit {
		return curated.Errorf("execution: unexpected halt for %s", r.Defn.Mnemonic)
	}

	if r.Defn.Operands >= 0 && len(r.Operands) < r.Defn.Operands {
		return curated.Errorf("execution: %s executed with %d operands (expected %d)", r.Defn.Mnemonic, len(r.Operands), r.Defn.Operands)
	}

	return nil
}
