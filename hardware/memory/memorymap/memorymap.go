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

// Package memorymap defines the areas of the Jaguar's 24-bit address space
// that concern the RISC processors: main DRAM, the internal SRAM of each
// processor, the memory-mapped control registers and the DSP's DAC
// transmit registers.
package memorymap

// the canonical areas of the address space.
const (
	RAMOrigin uint32 = 0x000000
	RAMMemtop uint32 = 0x1fffff

	// Tom. control registers followed by 4k of internal SRAM
	GPUCtrlOrigin uint32 = 0xf02100
	GPUCtrlMemtop uint32 = 0xf02127
	GPURAMOrigin  uint32 = 0xf03000
	GPURAMMemtop  uint32 = 0xf03fff

	// Jerry. control registers followed by 8k of internal SRAM
	DSPCtrlOrigin uint32 = 0xf1a100
	DSPCtrlMemtop uint32 = 0xf1a127
	DSPRAMOrigin  uint32 = 0xf1b000
	DSPRAMMemtop  uint32 = 0xf1cfff

	// left and right DAC transmit registers
	LTXD uint32 = 0xf1a148
	RTXD uint32 = 0xf1a14c

	// the address space is 24 bits wide
	Memtop uint32 = 0xffffff
)
