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
	"github.com/jetsetilly/gruesome/zmachine/govern"
)

// Run the machine until the story quits or the continue check returns
// govern.Ending. The continue check is called after every instruction. A nil
// continue check runs the machine until the story quits or an error occurs.
//
// Running a machine that has already halted is not an error. Run() returns
// immediately.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	if m.halted {
		return nil
	}

	logger.Logf(logger.Allow, "zmachine", "running from %s", m.Mem.PC)
	defer func() {
		logger.Logf(logger.Allow, "zmachine", "stopped after %d instructions", m.Count)
	}()

	var err error

	state := govern.Running

	for state != govern.Ending && !m.halted {
		switch state {
		case govern.Running:
			if _, err := m.Step(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("zmachine: unsupported state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
