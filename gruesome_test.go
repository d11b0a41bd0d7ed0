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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gruesome/test"
)

// a version 3 story that prints "hi", a newline and then "Y" before quitting.
// the jump over the print_char 'X' instruction is a branch on G00 > 4
func writeStory(t *testing.T) string {
	t.Helper()

	img := make([]uint8, 0x400)
	img[0x00] = 3
	img[0x06], img[0x07] = 0x02, 0x00
	img[0x0c], img[0x0d] = 0x01, 0x00

	copy(img[0x200:], []uint8{
		0x14, 0x02, 0x03, 0x10, // add #02 #03 -> G00
		0xb2, 0xb5, 0xc5, // print "hi"
		0xbb,                   // new_line
		0x43, 0x10, 0x04, 0xc5, // jg G00 #04 ?(+5)
		0xe5, 0x7f, 0x58, // print_char 'X'
		0xe5, 0x7f, 0x59, // print_char 'Y'
		0xba, // quit
	})

	fn := filepath.Join(t.TempDir(), "hello.z3")
	test.DemandSuccess(t, os.WriteFile(fn, img, 0o600))
	return fn
}

// run each test in an empty directory with a local resource directory so that
// the user's preferences are not used
func useLocalResources(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gruesome", 0o700))
}

func TestRun(t *testing.T) {
	useLocalResources(t)
	story := writeStory(t)

	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{story}, out), 0)
	test.ExpectSuccess(t, out.Compare("hi\nY"), out.String())

	out.Clear()
	test.ExpectEquality(t, launch([]string{"run", "-width", "-1", story}, out), 0)
	test.ExpectSuccess(t, out.Compare("hi\nY"), out.String())
}

func TestRunLimit(t *testing.T) {
	useLocalResources(t)
	story := writeStory(t)

	// stops after the print instruction
	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "-limit", "2", story}, out), 0)
	test.ExpectSuccess(t, out.Compare("hi"), out.String())

	// the same limit from the preferences
	out.Clear()
	test.ExpectEquality(t, launch([]string{"run", "-prefs", "run.limit::2", story}, out), 0)
	test.ExpectSuccess(t, out.Compare("hi"), out.String())
}

func TestSavePrefs(t *testing.T) {
	useLocalResources(t)
	story := writeStory(t)

	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "-limit", "2", "-saveprefs", story}, out), 0)

	data, err := os.ReadFile(filepath.Join(".gruesome", "preferences.toml"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "limit = 2"), string(data))

	// the saved limit is used by the next run
	out.Clear()
	test.ExpectEquality(t, launch([]string{story}, out), 0)
	test.ExpectSuccess(t, out.Compare("hi"), out.String())
}

func TestRunErrors(t *testing.T) {
	useLocalResources(t)

	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run"}, out), 20)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* error in RUN mode"), out.String())

	out.Clear()
	test.ExpectEquality(t, launch([]string{"run", "nosuchfile.z3"}, out), 20)

	out.Clear()
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, out), 20)
}

func TestTraceMode(t *testing.T) {
	useLocalResources(t)
	story := writeStory(t)
	trc := filepath.Join(t.TempDir(), "hello.cbor")

	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "-trace", trc, story}, out), 0)

	out.Clear()
	test.ExpectEquality(t, launch([]string{"trace", trc}, out), 0)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.DemandEquality(t, len(lines), 7)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "0x00200 add"), lines[0])
	test.ExpectSuccess(t, strings.Contains(lines[5], "[halt]"), lines[5])
	test.ExpectEquality(t, lines[6], "6 records")
}

func TestAutoTrace(t *testing.T) {
	useLocalResources(t)
	story := writeStory(t)

	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "-trace", autoTrace, story}, out), 0)

	matches, err := filepath.Glob(filepath.Join(".gruesome", "traces", "trace_hello_*.cbor"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(matches), 1)
}

func TestMemviz(t *testing.T) {
	useLocalResources(t)
	story := writeStory(t)

	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "-memviz", "machine.dot", story}, out), 0)

	data, err := os.ReadFile("machine.dot")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestDisasmMode(t *testing.T) {
	useLocalResources(t)
	story := writeStory(t)

	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"disasm", "-count", "3", story}, out), 0)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "0x00200"), lines[0])
	test.ExpectSuccess(t, strings.Contains(lines[0], "add"), lines[0])
	test.ExpectSuccess(t, strings.Contains(lines[1], "print"), lines[1])

	out.Clear()
	test.ExpectEquality(t, launch([]string{"disasm", "-at", "0x212", "-count", "1", story}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "quit"), out.String())

	out.Clear()
	test.ExpectEquality(t, launch([]string{"disasm", "-at", "foo", story}, out), 20)
}

func TestHelp(t *testing.T) {
	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-help"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "RUN, DISASM, TRACE, VERSION"), out.String())
}

func TestVersion(t *testing.T) {
	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"version"}, out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "Gruesome "), out.String())
}
