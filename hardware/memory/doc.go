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

// Package memory implements the address space shared by the two RISC
// processors. Main DRAM and the internal SRAM of each processor are backed
// by byte slices in big-endian order. Accesses to the control register
// windows are routed to the owning processor through the ChipRegisters
// interface. Writes to the DSP's DAC transmit registers are forwarded to
// an attached AudioMixer.
//
// Accesses to unmapped addresses are logged and read as zero. There is no
// bus fault on the real machine.
package memory
