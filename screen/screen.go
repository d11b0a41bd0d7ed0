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

// Package screen is the output of a running story. The Screen type is an
// io.Writer that word-wraps text to the width of the terminal.
//
// Words are held back until the character following the word is seen, so
// Flush() should be called once the story has finished.
package screen

import (
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// Screen wraps output to a fixed number of columns.
type Screen struct {
	output io.Writer
	width  int

	column int
	spaces int
	word   []byte
}

// NewScreen is the preferred method of initialisation for the Screen type.
//
// A width of zero means the width of the terminal is used. If the output is
// not a terminal there is no wrapping. A negative width also means no
// wrapping.
func NewScreen(output io.Writer, width int) *Screen {
	scr := &Screen{
		output: output,
		width:  width,
	}

	if scr.width == 0 {
		scr.width = -1
		if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			if w, _, err := term.GetSize(int(f.Fd())); err == nil {
				scr.width = w
			}
		}
	}

	return scr
}

// Width returns the number of columns text is wrapped to. A negative value
// means text is not wrapped.
func (scr *Screen) Width() int {
	return scr.width
}

// Write implements the io.Writer interface.
func (scr *Screen) Write(p []byte) (int, error) {
	if scr.width <= 0 {
		return scr.output.Write(p)
	}

	for _, b := range p {
		switch b {
		case ' ':
			if err := scr.flushWord(); err != nil {
				return 0, err
			}
			scr.spaces++
		case '\n':
			if err := scr.flushWord(); err != nil {
				return 0, err
			}
			if err := scr.emitSpaces(); err != nil {
				return 0, err
			}
			if _, err := scr.output.Write([]byte{'\n'}); err != nil {
				return 0, err
			}
			scr.column = 0
		default:
			scr.word = append(scr.word, b)
		}
	}

	return len(p), nil
}

// Flush writes any text that is being held back.
func (scr *Screen) Flush() error {
	if err := scr.flushWord(); err != nil {
		return err
	}
	return scr.emitSpaces()
}

func (scr *Screen) flushWord() error {
	if len(scr.word) == 0 {
		return nil
	}

	n := utf8.RuneCount(scr.word)

	// words longer than the width of the screen are not broken
	if scr.column > 0 && scr.column+scr.spaces+n > scr.width {
		if _, err := scr.output.Write([]byte{'\n'}); err != nil {
			return err
		}
		scr.column = 0
		scr.spaces = 0
	}

	if err := scr.emitSpaces(); err != nil {
		return err
	}

	if _, err := scr.output.Write(scr.word); err != nil {
		return err
	}
	scr.column += n
	scr.word = scr.word[:0]

	return nil
}

func (scr *Screen) emitSpaces() error {
	for ; scr.spaces > 0; scr.spaces-- {
		if _, err := scr.output.Write([]byte{' '}); err != nil {
			return err
		}
		scr.column++
	}
	return nil
}
