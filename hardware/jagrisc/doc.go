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

// Package jagrisc implements the RISC processors found in the two custom
// chips of the Atari Jaguar: "Tom", which houses the GPU, and "Jerry",
// which houses the DSP. The two processors share an instruction set except
// for a handful of opcode slots and are implemented here as a single Core
// type parameterized by Variant.
//
// The core executes against a 24-bit big-endian address space provided by
// the jagbus.Memory implementation given to NewCore(). Timing is a
// single-cycle approximation - the real pipeline is not modelled.
//
// Quirks of the real hardware that running software relies on are
// reproduced deliberately:
//
//   - byte and word accesses inside the processor's internal RAM window are
//     widened to aligned 32-bit accesses
//
//   - a register bank switch takes effect between instructions and the
//     instruction immediately following a switch sees the old bank through
//     the JUMP instruction's source register
//
//   - the IMULTN instruction absorbs any immediately following IMACN
//     opcodes (and a closing RESMAC) into a single dispatch
package jagrisc
