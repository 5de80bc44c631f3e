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

// SetLine latches or withdraws an interrupt request on the numbered line.
// Lines zero to four exist on both variants; line five only on the DSP.
// Latching a line triggers an immediate dispatch check.
func (cor *Core) SetLine(line int, state bool) {
	if line < 0 || line >= cor.levels {
		return
	}

	var mask uint32
	if line < 5 {
		mask = 0x40 << line
	} else {
		mask = 0x10000
	}

	cor.ctrl[Control] &^= mask
	if state {
		cor.ctrl[Control] |= mask
		cor.checkIRQs()
	}
}

// checkIRQs dispatches the highest numbered pending and enabled interrupt.
// Nothing happens while IMask is set; the hardware has no nested
// interrupts.
func (cor *Core) checkIRQs() {
	if cor.status.IMask {
		return
	}

	// gather the latched lines from the control register. the shift for
	// line five deliberately lands the bit in position five of the same
	// word as lines zero to four
	bits := (cor.ctrl[Control] >> 6) & 0x1f
	bits |= (cor.ctrl[Control] >> 10) & 0x20

	bits &= cor.status.interruptMask()
	if bits == 0 {
		return
	}

	// the highest numbered line wins
	which := 0
	for i := 0; i < cor.levels; i++ {
		if bits&(1<<i) != 0 {
			which = i
		}
	}

	cor.status.IMask = true
	cor.updateRegisterBanks()

	// push the return address. the pushed value is the address of the
	// instruction to resume, which at this point is pc-2
	cor.regs[31] -= 4
	cor.mem.WriteLong(cor.regs[31], cor.pc-2)

	cor.pc = cor.vectorBase + uint32(which)*0x10
}
