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
	"io"

	"github.com/jetsetilly/gruesome/curated"
	"github.com/jetsetilly/gruesome/logger"
	"github.com/jetsetilly/gruesome/paths"
	"github.com/jetsetilly/gruesome/prefs"
)

// preferences used by the RUN mode.
type preferences struct {
	dsk *prefs.Disk

	// wrap width of the screen. zero means detect and a negative value means
	// no wrapping
	screenWidth prefs.Int

	// maximum number of instructions to execute. zero means no limit
	limit prefs.Int

	// echo log entries as they are added
	logEcho prefs.Bool
}

func (p *preferences) String() string {
	return p.dsk.String()
}

// newPreferences registers and loads the preferences. Log echoing is sent to
// the output writer.
func newPreferences(output io.Writer) (*preferences, error) {
	p := &preferences{}

	p.logEcho.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(output)
		} else {
			logger.SetEcho(nil)
		}
		return nil
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("screen.width", &p.screenWidth); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("run.limit", &p.limit); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("log.echo", &p.logEcho); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			logger.Logf(logger.Allow, "prefs", "%v", err)
			return nil, err
		}
	}

	return p, nil
}
