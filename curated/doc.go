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

// Package curated provides the error type used throughout the project. A
// curated error keeps the format pattern it was created with, meaning that
// errors can be compared against the pattern with the Is() and Has()
// functions without resorting to string searches of the formatted message.
//
// The Error() function normalises the message chain, removing adjacent
// duplicate parts. This keeps messages tidy when an error is wrapped by a
// function that adds the same prefix.
package curated
