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

import (
	"github.com/jetsetilly/gopherjaguar/logger"
)

// CtrlRead returns the value of the numbered control register as seen from
// the memory-mapped window.
func (cor *Core) CtrlRead(offset uint32) uint32 {
	if offset >= NumCtrlRegisters {
		return 0
	}

	switch offset {
	case Flags:
		return cor.status.Value()
	case PC:
		return cor.pc
	case Control:
		// the version field reads back through bits 12-15
		return cor.ctrl[Control] | (cor.version&0xf)<<12
	}

	return cor.ctrl[offset]
}

// CtrlWrite updates the numbered control register. The mask selects which
// bits of the register are affected, allowing 16-bit bus accesses to reach
// either half of a register.
func (cor *Core) CtrlWrite(offset uint32, data uint32, mask uint32) {
	if offset >= NumCtrlRegisters {
		return
	}

	newval := (cor.ctrl[offset] &^ mask) | (data & mask)

	switch offset {
	case Flags:
		keep := uint32(ZFlag | CFlag | NFlag | EInt04Flags | RPageFlag)
		if cor.variant == DSP {
			keep |= EInt5Flag
		}

		flags := newval & keep

		// IMask can only be maintained, never set, through this register.
		// writing a zero to the bit dismisses the interrupt in progress
		if newval&IFlag == IFlag && cor.status.IMask {
			flags |= IFlag
		}
		cor.status.Load(flags)

		// writing a one to a CINT bit clears the corresponding latched
		// line in the control register
		cor.ctrl[Control] &^= (newval & CInt04Flags) >> 3
		if cor.variant == DSP {
			cor.ctrl[Control] &^= (newval & CInt5Flag) >> 1
		}

		cor.updateRegisterBanks()
		cor.checkIRQs()

	case MatrixControl, MatrixAddress, HiData, DivControl:
		cor.ctrl[offset] = newval

	case Endianness:
		cor.ctrl[offset] = newval
		if newval&7 != 7 {
			logger.Logf(cor.variant.String(), "endianness register set to little-endian! (%03b)", newval&7)
		}

	case PC:
		cor.pc = newval & 0xffffff

	case Control:
		cor.ctrl[offset] = newval

		// CPUINT. asserts the interrupt line to the host and clears itself
		if newval&0x02 == 0x02 {
			if cor.cpuInterrupt != nil {
				cor.cpuInterrupt(true)
			}
			cor.ctrl[offset] &^= 0x02
		}

		// FORCEINT0. latches line zero and clears itself
		if newval&0x04 == 0x04 {
			cor.ctrl[offset] |= 0x40
			cor.ctrl[offset] &^= 0x04
			cor.checkIRQs()
		}

		if newval&0x18 != 0 {
			logger.Logf(cor.variant.String(), "single stepping requested (not supported)")
		}
	}
}
