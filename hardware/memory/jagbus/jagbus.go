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

// Package jagbus defines the operations for the memory system as seen from
// the RISC processors. The address space is 24 bits wide and big-endian.
//
// None of the access functions return an error. There is no fault line on
// the real bus; what happens on an access to an unmapped address is the
// responsibility of the implementation, not of the processor making the
// access.
package jagbus

// Bus is the data access path to the memory system.
type Bus interface {
	ReadByte(address uint32) uint8
	ReadWord(address uint32) uint16
	ReadLong(address uint32) uint32
	WriteByte(address uint32, data uint8)
	WriteWord(address uint32, data uint16)
	WriteLong(address uint32, data uint32)
}

// Fetcher is the instruction fetch path, distinct from the data access
// path. The real processors fetch through an instruction buffer that does
// not disturb the data bus.
type Fetcher interface {
	FetchWord(address uint32) uint16
}

// Memory is the complete view of the memory system required by a RISC
// core.
type Memory interface {
	Bus
	Fetcher
}

// DebugBus is implemented by memory systems that allow inspection without
// the side effects of a normal bus access.
type DebugBus interface {
	Peek(address uint32) uint8
}
