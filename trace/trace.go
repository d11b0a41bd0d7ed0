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

package trace

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/jetsetilly/gruesome/curated"
	"github.com/jetsetilly/gruesome/zmachine/processor/execution"
)

// Record is the trace of a single executed instruction.
type Record struct {
	Address       uint32   `cbor:"1,keyasint"`
	Mnemonic      string   `cbor:"2,keyasint"`
	Operands      []uint16 `cbor:"3,keyasint,omitempty"`
	PC            uint32   `cbor:"4,keyasint"`
	BranchTaken   bool     `cbor:"5,keyasint,omitempty"`
	Unimplemented bool     `cbor:"6,keyasint,omitempty"`
	Halt          bool     `cbor:"7,keyasint,omitempty"`
}

func (r Record) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%05x %-10s", r.Address, r.Mnemonic))
	for _, o := range r.Operands {
		s.WriteString(fmt.Sprintf(" #%04x", o))
	}
	s.WriteString(fmt.Sprintf(" PC=0x%05x", r.PC))
	if r.BranchTaken {
		s.WriteString(" [branch]")
	}
	if r.Unimplemented {
		s.WriteString(" [unimplemented]")
	}
	if r.Halt {
		s.WriteString(" [halt]")
	}
	return s.String()
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("trace: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// Recorder writes a trace record for every execution.Result it is given.
type Recorder struct {
	enc   *cbor.Encoder
	count int
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{
		enc: encMode.NewEncoder(w),
	}
}

// Record implements the zmachine.Tracer interface.
func (rec *Recorder) Record(res execution.Result) error {
	r := Record{
		Address:       res.Address,
		Mnemonic:      res.Defn.Mnemonic,
		Operands:      res.Operands,
		PC:            res.PC,
		BranchTaken:   res.BranchTaken,
		Unimplemented: res.Unimplemented,
		Halt:          res.Halt,
	}
	if err := rec.enc.Encode(r); err != nil {
		return curated.Errorf("trace: %v", err)
	}
	rec.count++
	return nil
}

// Count returns the number of records written.
func (rec *Recorder) Count() int {
	return rec.count
}

// Read all records from a trace.
func Read(r io.Reader) ([]Record, error) {
	var records []Record

	dec := cbor.NewDecoder(r)
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return records, curated.Errorf("trace: record %d: %v", len(records), err)
		}
		records = append(records, rec)
	}

	return records, nil
}
