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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first call NewArgs() with the array
// of arguments and then Parse() with no arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "debug", "version")
//	p, err := md.Parse()
//
// Once parsed, the selected mode is retrieved with Mode() and non-flag
// arguments with RemainingArgs() or GetArg(). To descend into a sub-mode
// with its own flags, call NewMode() and Parse() again.
package modalflag
