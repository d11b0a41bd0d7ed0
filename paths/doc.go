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

// Package paths contains functions to prepare paths to Gruesome resources.
//
// The ResourcePath() function returns the path to a resource file inside the
// Gruesome configuration directory, creating any missing directories along
// the way. For example, the following will return the path to the
// preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences.toml")
//
// If a directory named ".gruesome" exists in the current directory it is used
// as the configuration directory. Otherwise the user's config directory, as
// reported by os.UserConfigDir(), is used. On a modern Linux system the path
// returned in the example above will be:
//
//	/home/user/.config/gruesome/preferences.toml
package paths
