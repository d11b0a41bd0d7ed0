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

package test

import (
	"fmt"
)

// CappedWriter is an implementation of io.Writer that refuses to buffer more
// than a predefined number of bytes. Once the cap is reached every Write()
// returns an error. This is useful for stopping a runaway program whose only
// visible effect is output.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (c *CappedWriter) String() string {
	return string(c.buffer)
}

// Capped returns true if the writer has reached its cap.
func (c *CappedWriter) Capped() bool {
	return len(c.buffer) >= c.size
}

// Write implements io.Writer. As much of p as fits is buffered.
func (c *CappedWriter) Write(p []byte) (n int, err error) {
	remaining := c.size - len(c.buffer)
	if len(p) <= remaining {
		c.buffer = append(c.buffer, p...)
		return len(p), nil
	}

	c.buffer = append(c.buffer, p[:remaining]...)
	return remaining, fmt.Errorf("capped writer: %d byte limit reached", c.size)
}
