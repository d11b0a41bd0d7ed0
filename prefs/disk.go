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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jetsetilly/gruesome/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.toml"

// WarningBoilerPlate is written as a comment at the top of every preferences
// file.
const WarningBoilerPlate = "*** do not edit this file by hand while gruesome is running ***"

// List of error patterns returned by the Disk type.
const (
	NoPrefsFile  = "prefs: no preferences file (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
	KeyConflict  = "prefs: key %s is both a value and a table"
	DiskError    = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// values taken from the command line stack when the pref was added. these
	// take precedence over values loaded from the file
	override map[string]Value
}

func (dsk Disk) String() string {
	s := strings.Builder{}
	for _, k := range slices.Sorted(maps.Keys(dsk.entries)) {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "empty path")
	}

	return &Disk{
		path:     path,
		entries:  make(map[string]pref),
		override: make(map[string]Value),
	}, nil
}

// Add preference value to list of values to store/load from the disk. If
// the command line stack has a value for the key it is applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return curated.Errorf(DiskError, fmt.Sprintf("invalid key (%q)", key))
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}

	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
		dsk.override[key] = v
	}

	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// read the preferences file as a flat map of dotted keys.
func (dsk *Disk) read() (map[string]Value, error) {
	tree := make(map[string]any)

	_, err := toml.DecodeFile(dsk.path, &tree)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(DiskError, err)
	}

	flat := make(map[string]Value)
	flatten("", tree, flat)
	return flat, nil
}

// Save current preference values to disk. Values in the file that do not
// belong to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	flat, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		flat = make(map[string]Value)
	}

	for k, p := range dsk.entries {
		flat[k] = p.Get()
	}

	tree, err := unflatten(flat)
	if err != nil {
		return err
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if _, err := fmt.Fprintf(w, "# %s\n\n", WarningBoilerPlate); err != nil {
		return curated.Errorf(DiskError, err)
	}

	if err := toml.NewEncoder(w).Encode(tree); err != nil {
		return curated.Errorf(DiskError, err)
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. Returns an error with the NoPrefsFile
// pattern if the file does not exist. Callers will often want to ignore that
// error.
//
// Values that were taken from the command line stack are not changed by Load.
func (dsk *Disk) Load() error {
	flat, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if _, ok := dsk.override[k]; ok {
			continue
		}
		if v, ok := flat[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, fmt.Errorf("%s: %w", k, err))
			}
		}
	}

	return nil
}

// flatten a decoded TOML tree into dotted keys.
func flatten(prefix string, tree map[string]any, flat map[string]Value) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(key, sub, flat)
		} else {
			flat[key] = v
		}
	}
}

// unflatten dotted keys into a tree suitable for encoding as TOML. Every part
// of a key apart from the last becomes a table.
func unflatten(flat map[string]Value) (map[string]any, error) {
	tree := make(map[string]any)

	for _, k := range slices.Sorted(maps.Keys(flat)) {
		parts := strings.Split(k, ".")

		t := tree
		for _, p := range parts[:len(parts)-1] {
			switch sub := t[p].(type) {
			case nil:
				n := make(map[string]any)
				t[p] = n
				t = n
			case map[string]any:
				t = sub
			default:
				return nil, curated.Errorf(KeyConflict, k)
			}
		}

		last := parts[len(parts)-1]
		if _, ok := t[last].(map[string]any); ok {
			return nil, curated.Errorf(KeyConflict, k)
		}
		t[last] = flat[k]
	}

	return tree, nil
}
