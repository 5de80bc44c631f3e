// This file is part of GopherJaguar.
//
// GopherJaguar is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherJaguar is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherJaguar.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the name of the application and the version
// information available in the binary's build information.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "GopherJaguar"

// Revision contains the vcs revision. If the source has been modified but
// has not been committed the string is suffixed with "+dirty".
//
// If Revision is "local" then the binary was built without vcs information,
// which can happen when building with "go run .".
var Revision string

func init() {
	Revision = "local"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision string
	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision != "" {
		Revision = revision
		if modified {
			Revision += "+dirty"
		}
	}
}
