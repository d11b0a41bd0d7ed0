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

package processor

import (
	"io"

	"github.com/jetsetilly/gruesome/curated"
	"github.com/jetsetilly/gruesome/logger"
	"github.com/jetsetilly/gruesome/zmachine/memory"
	"github.com/jetsetilly/gruesome/zmachine/processor/execution"
	"github.com/jetsetilly/gruesome/zmachine/processor/instructions"
	"github.com/jetsetilly/gruesome/zmachine/zscii"
)

// Sentinel error patterns.
const (
	DivideByZero    = "processor: division by zero (%s at 0x%05x)"
	UnknownOpcode   = "processor: unknown opcode (%v)"
	MissingOperands = "processor: too few operands for %s at 0x%05x (%d)"
	InvalidVariable = "processor: invalid variable (0x%04x) for %s at 0x%05x"
)

// Execute the instruction. Text output is written to out.
//
// An error means that the instruction did not complete. In that case memory
// and the program counter are unchanged and the returned Result is not
// final.
func Execute(mem *memory.Memory, out io.Writer, ins instructions.Instruction) (execution.Result, error) {
	res := execution.Result{
		Address:  ins.Address,
		Defn:     ins.Defn,
		Operands: ins.Operands,
	}

	// a zero value Definition is not an instruction
	if ins.Defn.Mnemonic == "" {
		return res, curated.Errorf(UnknownOpcode, ins.Defn.Opcode)
	}

	if ins.Defn.Operands > 0 && len(ins.Operands) < ins.Defn.Operands {
		return res, curated.Errorf(MissingOperands, ins.Defn.Mnemonic, ins.Address, len(ins.Operands))
	}

	// je takes a variable number of operands but needs at least one
	if ins.Defn.Opcode == instructions.Je && len(ins.Operands) < 1 {
		return res, curated.Errorf(MissingOperands, ins.Defn.Mnemonic, ins.Address, len(ins.Operands))
	}

	ops := ins.Operands

	var err error

	switch ins.Defn.Opcode {
	case instructions.Nop:
		// does nothing

	case instructions.Jump:
		mem.PC.Add(Signed(ops[0]) - 2)
		res.BranchTaken = true

	case instructions.Je:
		cond := false
		for _, o := range ops[1:] {
			if o == ops[0] {
				cond = true
				break
			}
		}
		res.BranchTaken = branch(mem, ins.Branch, cond)

	case instructions.Jg:
		res.BranchTaken = branch(mem, ins.Branch, Signed(ops[0]) > Signed(ops[1]))

	case instructions.Jl:
		res.BranchTaken = branch(mem, ins.Branch, Signed(ops[0]) < Signed(ops[1]))

	case instructions.Jin:
		res.Unimplemented = true
		logger.Logf(logger.Allow, "processor", "%s at 0x%05x is not implemented", ins.Defn.Mnemonic, ins.Address)

	case instructions.Print:
		_, err = io.WriteString(out, ins.Text)

	case instructions.PrintAddr:
		var units []uint16
		_, units, err = mem.ReadEncodedString(uint32(ops[0]), 0)
		if err == nil {
			_, err = io.WriteString(out, zscii.Translate(zscii.A0, mem.Header().Version(), units))
		}

	case instructions.PrintChar:
		_, err = io.WriteString(out, zscii.Translate(zscii.A0, mem.Header().Version(), ops[:1]))

	case instructions.NewLine:
		_, err = io.WriteString(out, "\n")

	case instructions.Add:
		err = mem.StoreVariable(ins.Store, Unsigned(Signed(ops[0])+Signed(ops[1])))

	case instructions.Sub:
		err = mem.StoreVariable(ins.Store, Unsigned(Signed(ops[0])-Signed(ops[1])))

	case instructions.Mul:
		err = mem.StoreVariable(ins.Store, Unsigned(Signed(ops[0])*Signed(ops[1])))

	case instructions.Div:
		if ops[1] == 0 {
			return res, curated.Errorf(DivideByZero, ins.Defn.Mnemonic, ins.Address)
		}
		err = mem.StoreVariable(ins.Store, Unsigned(Quotient(Signed(ops[0]), Signed(ops[1]))))

	case instructions.Mod:
		if ops[1] == 0 {
			return res, curated.Errorf(DivideByZero, ins.Defn.Mnemonic, ins.Address)
		}
		err = mem.StoreVariable(ins.Store, Unsigned(Remainder(Signed(ops[0]), Signed(ops[1]))))

	case instructions.Not:
		err = mem.StoreVariable(ins.Store, Complement(ops[0]))

	case instructions.Or:
		err = mem.StoreVariable(ins.Store, ops[0]|ops[1])

	case instructions.And:
		err = mem.StoreVariable(ins.Store, ops[0]&ops[1])

	case instructions.Store:
		// variable numbers are a single byte
		if ops[0] > 0xff {
			return res, curated.Errorf(InvalidVariable, ops[0], ins.Defn.Mnemonic, ins.Address)
		}
		err = mem.StoreIndirect(memory.Variable(ops[0]), ops[1])

	case instructions.Storeb:
		err = mem.Write(offset(ops[0], Signed(ops[1])), uint8(ops[2]))

	case instructions.Storew:
		err = mem.WriteWord(offset(ops[0], 2*Signed(ops[1])), ops[2])

	case instructions.Quit:
		res.Halt = true

	default:
		return res, curated.Errorf(UnknownOpcode, ins.Defn.Opcode)
	}

	if err != nil {
		return res, curated.Errorf("processor: %v", err)
	}

	res.PC = mem.PC.Address()
	res.Final = true

	return res, nil
}

// branch moves the program counter if the condition matches the polarity of
// the branch. Returns true if the branch was taken.
func branch(mem *memory.Memory, b instructions.Branch, condition bool) bool {
	if condition != b.OnTrue {
		return false
	}
	mem.PC.Add(Signed(b.Displacement) - 2)
	return true
}
