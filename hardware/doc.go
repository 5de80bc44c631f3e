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

// Package hardware assembles the RISC side of the Jaguar console: the two
// processors and the address space they share. It does not attempt the
// 68000, the object processor or the blitter.
package hardware
