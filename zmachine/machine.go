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

package zmachine

import (
	"io"

	"github.com/jetsetilly/gruesome/curated"
	"github.com/jetsetilly/gruesome/logger"
	"github.com/jetsetilly/gruesome/zmachine/memory"
	"github.com/jetsetilly/gruesome/zmachine/processor/execution"
)

// Halted is returned by Step() if the machine has executed the quit
// instruction.
const Halted = "zmachine: halted"

// Tracer is notified of every instruction executed by the machine.
type Tracer interface {
	Record(res execution.Result) error
}

// Machine is a complete Z-machine.
type Machine struct {
	Mem *memory.Memory

	// the result of the most recently executed instruction
	LastResult execution.Result

	// the number of instructions executed
	Count int

	out    io.Writer
	tracer Tracer
	halted bool
}

// NewMachine is the preferred method of initialisation for the Machine type.
// Text output by the story is written to out.
func NewMachine(image []uint8, out io.Writer) (*Machine, error) {
	mem, err := memory.NewMemory(image)
	if err != nil {
		return nil, curated.Errorf("zmachine: %v", err)
	}

	m := &Machine{
		Mem: mem,
		out: out,
	}

	logger.Logf(logger.Allow, "zmachine", "story %s", mem.Header())

	return m, nil
}

// AttachTracer adds a tracer to the machine. A nil argument removes the
// tracer.
func (m *Machine) AttachTracer(t Tracer) {
	m.tracer = t
}

// Halted returns true if the machine has executed the quit instruction.
func (m *Machine) Halted() bool {
	return m.halted
}
