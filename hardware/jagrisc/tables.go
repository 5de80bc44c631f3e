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

package jagrisc

import "sync"

// the lookup tables are shared by every Core instance of either variant.
// they are pure functions of fixed-width integers and are kept alive for
// the lifetime of the process once built.
var tablesOnce sync.Once

// conditionTable maps a 5-bit condition code and the low three bits of the
// flags register to a branch decision. indexed by code + (flags&7)<<5.
var conditionTable [8 * 32]bool

// mirrorTable maps a 16-bit value to its bit reversal. used by the DSP's
// MIRROR instruction, which the hardware implements with a similar ROM.
var mirrorTable [65536]uint16

// immediate operands of value zero encode the value 32.
var convertZero = [32]uint32{
	32, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
}

func initTables() {
	tablesOnce.Do(func() {
		for i := 0; i < 65536; i++ {
			mirrorTable[i] = uint16(((i >> 15) & 0x0001) | ((i >> 13) & 0x0002) |
				((i >> 11) & 0x0004) | ((i >> 9) & 0x0008) |
				((i >> 7) & 0x0010) | ((i >> 5) & 0x0020) |
				((i >> 3) & 0x0040) | ((i >> 1) & 0x0080) |
				((i << 1) & 0x0100) | ((i << 3) & 0x0200) |
				((i << 5) & 0x0400) | ((i << 7) & 0x0800) |
				((i << 9) & 0x1000) | ((i << 11) & 0x2000) |
				((i << 13) & 0x4000) | ((i << 15) & 0x8000))
		}

		// a condition fails if: code bit0 set and Z set; code bit1 set and Z
		// clear; code bit2 set and the selected carry-family bit set; code
		// bit3 set and that bit clear. code bit4 selects N instead of C for
		// the carry-family tests
		for i := 0; i < 8; i++ {
			for j := 0; j < 32; j++ {
				result := true
				if j&1 == 1 && i&ZFlag == ZFlag {
					result = false
				}
				if j&2 == 2 && i&ZFlag == 0 {
					result = false
				}
				if j&4 == 4 && i&(CFlag<<(j>>4)) != 0 {
					result = false
				}
				if j&8 == 8 && i&(CFlag<<(j>>4)) == 0 {
					result = false
				}
				conditionTable[i*32+j] = result
			}
		}
	})
}

// condition evaluates a 5-bit condition code against the current flags.
func (cor *Core) condition(code uint16) bool {
	return conditionTable[uint32(code&31)+cor.status.conditionBits()<<5]
}
