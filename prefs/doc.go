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

// Package prefs facilitates the storage of preferences to disk. Preference
// values are added to a Disk instance with a key. Keys are dotted names, the
// part before the last dot being the TOML table that the value is stored
// under. For example:
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("screen.width", &width)
//	err = dsk.Load()
//
// The preferences file can be shared by more than one Disk instance. Saving
// the file will not remove values that have been saved by another Disk.
//
// Preference values can be overridden from the command line with the
// PushCommandLineStack() function. Values in the command line stack are
// applied when the preference is added to the Disk and they take precedence
// over the values loaded from the file.
package prefs
