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

package disassembly

import (
	"fmt"
	"io"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
}

// Write the entries to io.Writer. One entry per line.
func Write(output io.Writer, entries []Entry, attr WriteAttr) error {
	width := 0
	if attr.ByteCode {
		for _, e := range entries {
			width = max(width, len(e.Bytecode))
		}
	}

	for _, e := range entries {
		var err error
		if attr.ByteCode {
			_, err = fmt.Fprintf(output, "%s  %-*s  %s\n", e.Address, width, e.Bytecode, e.line())
		} else {
			_, err = fmt.Fprintf(output, "%s  %s\n", e.Address, e.line())
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (e Entry) line() string {
	if e.Operands == "" {
		return e.Operator
	}
	return fmt.Sprintf("%-10s %s", e.Operator, e.Operands)
}
