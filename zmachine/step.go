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
	"github.com/jetsetilly/gruesome/curated"
	"github.com/jetsetilly/gruesome/logger"
	"github.com/jetsetilly/gruesome/zmachine/decoder"
	"github.com/jetsetilly/gruesome/zmachine/processor"
	"github.com/jetsetilly/gruesome/zmachine/processor/execution"
)

// Step decodes and executes the instruction at the program counter.
func (m *Machine) Step() (execution.Result, error) {
	if m.halted {
		return execution.Result{}, curated.Errorf(Halted)
	}

	ins, err := decoder.Decode(m.Mem)
	if err != nil {
		return execution.Result{}, curated.Errorf("zmachine: %v", err)
	}

	res, err := processor.Execute(m.Mem, m.out, ins)
	if err != nil {
		return res, curated.Errorf("zmachine: %v", err)
	}

	m.LastResult = res
	m.Count++

	if m.tracer != nil {
		if err := m.tracer.Record(res); err != nil {
			return res, curated.Errorf("zmachine: %v", err)
		}
	}

	if res.Halt {
		m.halted = true
		logger.Logf(logger.Allow, "zmachine", "quit at 0x%05x", res.Address)
	}

	return res, nil
}
