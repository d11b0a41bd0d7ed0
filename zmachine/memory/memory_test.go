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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gruesome/curated"
	"github.com/jetsetilly/gruesome/test"
	"github.com/jetsetilly/gruesome/zmachine/memory"
	"github.com/jetsetilly/gruesome/zmachine/memory/header"
	"github.com/jetsetilly/gruesome/zmachine/zscii"
)

const (
	imageSize     = 0x400
	abbreviations = 0x40
	globals       = 0x100
	initialPC     = 0x200
)

func putWord(img []uint8, address int, w uint16) {
	img[address] = uint8(w >> 8)
	img[address+1] = uint8(w)
}

// pack symbol units three to a word. the length of units must be a multiple
// of three
func pack(img []uint8, address int, units ...uint16) {
	for i := 0; i < len(units); i += 3 {
		w := units[i]<<10 | units[i+1]<<5 | units[i+2]
		if i+3 >= len(units) {
			w |= 0x8000
		}
		putWord(img, address+i/3*2, w)
	}
}

func newImage() []uint8 {
	img := make([]uint8, imageSize)
	img[0x00] = 3
	putWord(img, 0x06, initialPC)
	putWord(img, 0x0c, globals)
	putWord(img, 0x18, abbreviations)
	return img
}

func newMemory(t *testing.T, img []uint8) *memory.Memory {
	t.Helper()
	mem, err := memory.NewMemory(img)
	test.DemandSuccess(t, err)
	return mem
}

func TestNewMemory(t *testing.T) {
	mem := newMemory(t, newImage())
	test.ExpectEquality(t, mem.PC.Address(), initialPC)
	test.ExpectEquality(t, mem.Size(), imageSize)
	test.ExpectEquality(t, mem.Header().Version(), 3)

	_, err := memory.NewMemory(make([]uint8, header.Size-1))
	test.ExpectSuccess(t, curated.Has(err, header.InvalidHeader))

	// the image is copied
	img := newImage()
	mem = newMemory(t, img)
	img[0x300] = 0xff
	v, err := mem.Read(0x300)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0)
}

func TestHeaderFollowsWrites(t *testing.T) {
	mem := newMemory(t, newImage())
	hdr := mem.Header()
	test.DemandEquality(t, hdr.Version(), 3)

	// writes to the header region are seen by an existing Header and by a
	// new one
	test.DemandSuccess(t, mem.Write(0x00, 5))
	test.ExpectEquality(t, hdr.Version(), 5)
	test.ExpectEquality(t, mem.Header().Version(), 5)

	test.DemandSuccess(t, mem.WriteWord(0x06, 0x0345))
	test.ExpectEquality(t, hdr.InitialPC(), 0x0345)
	test.ExpectEquality(t, mem.Header().InitialPC(), 0x0345)

	// the version changes how the file length is scaled
	test.DemandSuccess(t, mem.WriteWord(0x1a, 0x100))
	test.ExpectEquality(t, mem.Header().FileLength(), 0x400)
}

func TestReadWrite(t *testing.T) {
	mem := newMemory(t, newImage())

	test.ExpectSuccess(t, mem.Write(0x300, 0x12))
	test.ExpectSuccess(t, mem.Write(0x301, 0x34))
	w, err := mem.ReadWord(0x300)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 0x1234)

	test.ExpectSuccess(t, mem.WriteWord(0x302, 0xabcd))
	b, err := mem.Read(0x302)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, 0xab)
	b, err = mem.Read(0x303)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, 0xcd)

	// last byte of memory
	test.ExpectSuccess(t, mem.Write(imageSize-1, 0x01))
}

func TestOutOfBounds(t *testing.T) {
	mem := newMemory(t, newImage())

	_, err := mem.Read(imageSize)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))

	err = mem.Write(imageSize, 0x00)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))

	// a word that straddles the end of memory
	_, err = mem.ReadWord(imageSize - 1)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))

	err = mem.WriteWord(imageSize-1, 0xffff)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))
	b, err := mem.Read(imageSize - 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, 0x00)

	// addresses that have wrapped around
	_, err = mem.ReadWord(0xffffffff)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))
}

func TestProgramCounter(t *testing.T) {
	var pc memory.ProgramCounter
	pc.Load(0x100)
	pc.Add(8)
	test.ExpectEquality(t, pc.Address(), 0x108)
	pc.Add(-0x10)
	test.ExpectEquality(t, pc.Address(), 0x0f8)
	test.ExpectEquality(t, pc.String(), "0x000f8")
	test.ExpectEquality(t, pc.Label(), "PC")
}

func TestStack(t *testing.T) {
	mem := newMemory(t, newImage())

	test.ExpectSuccess(t, mem.StoreVariable(memory.StackTop, 1))
	test.ExpectSuccess(t, mem.StoreVariable(memory.StackTop, 2))
	test.ExpectEquality(t, mem.StackDepth(), 2)

	v, err := mem.PeekVariable(memory.StackTop)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 2)
	test.ExpectEquality(t, mem.StackDepth(), 2)

	// indirect store replaces the top of the stack
	test.ExpectSuccess(t, mem.StoreIndirect(memory.StackTop, 3))
	test.ExpectEquality(t, mem.StackDepth(), 2)

	v, err = mem.ReadVariable(memory.StackTop)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 3)
	v, err = mem.ReadVariable(memory.StackTop)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 1)

	_, err = mem.ReadVariable(memory.StackTop)
	test.ExpectSuccess(t, curated.Is(err, memory.StackUnderflow))
	_, err = mem.PeekVariable(memory.StackTop)
	test.ExpectSuccess(t, curated.Is(err, memory.StackUnderflow))
	err = mem.StoreIndirect(memory.StackTop, 1)
	test.ExpectSuccess(t, curated.Is(err, memory.StackUnderflow))
}

func TestLocalsAndGlobals(t *testing.T) {
	mem := newMemory(t, newImage())

	for v := memory.Variable(1); v <= memory.MaxLocals; v++ {
		test.ExpectSuccess(t, mem.StoreVariable(v, uint16(v)*10))
	}
	for v := memory.Variable(1); v <= memory.MaxLocals; v++ {
		n, err := mem.ReadVariable(v)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, n, uint16(v)*10)
	}

	// globals live in memory
	test.ExpectSuccess(t, mem.StoreVariable(0x10, 0x1234))
	test.ExpectSuccess(t, mem.StoreIndirect(0x11, 0x5678))
	w, err := mem.ReadWord(globals)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 0x1234)
	w, err = mem.ReadWord(globals + 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 0x5678)

	w, err = mem.PeekVariable(0x11)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 0x5678)

	// the stack is untouched
	test.ExpectEquality(t, mem.StackDepth(), 0)
}

func TestVariableNames(t *testing.T) {
	test.ExpectEquality(t, memory.Variable(0x00).String(), "sp")
	test.ExpectEquality(t, memory.Variable(0x01).String(), "L00")
	test.ExpectEquality(t, memory.Variable(0x0f).String(), "L0e")
	test.ExpectEquality(t, memory.Variable(0x10).String(), "G00")
	test.ExpectEquality(t, memory.Variable(0xff).String(), "Gef")
	test.ExpectSuccess(t, memory.Variable(0x0f).IsLocal())
	test.ExpectFailure(t, memory.Variable(0x00).IsLocal())
	test.ExpectSuccess(t, memory.Variable(0x10).IsGlobal())
}

func TestReadEncodedString(t *testing.T) {
	img := newImage()

	// hello
	pack(img, 0x300, 13, 10, 17, 17, 20, 5)
	mem := newMemory(t, img)

	n, units, err := mem.ReadEncodedString(0x300, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, len(units), 6)
	test.ExpectEquality(t, zscii.Translate(zscii.A0, 3, units), "hello")

	n, units, err = mem.ReadEncodedString(0x300, 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, zscii.Translate(zscii.A0, 3, units), "lo")

	// a string that runs off the end of memory
	putWord(img, imageSize-2, 0x0000)
	mem = newMemory(t, img)
	_, _, err = mem.ReadEncodedString(imageSize-2, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))
}

func TestAbbreviations(t *testing.T) {
	img := newImage()

	// abbreviation 0 is "el" stored at byte address 0x380
	pack(img, 0x380, 10, 17, 5)
	putWord(img, abbreviations, 0x380/2)

	// h [abbreviation 0] i
	pack(img, 0x300, 13, 1, 0, 14, 5, 5)
	mem := newMemory(t, img)

	n, units, err := mem.ReadEncodedString(0x300, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, zscii.Translate(zscii.A0, 3, units), "heli")

	// abbreviation entry pointing outside of memory
	putWord(img, abbreviations+2, 0xffff)
	pack(img, 0x300, 13, 1, 1, 14, 5, 5)
	mem = newMemory(t, img)
	_, _, err = mem.ReadEncodedString(0x300, 0)
	test.ExpectSuccess(t, curated.Has(err, memory.OutOfBounds))
}
