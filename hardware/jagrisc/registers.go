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

// updateRegisterBanks makes sure the active bank agrees with the RegPage
// flag. While IMask is set bank zero is forced regardless of RegPage; the
// real hardware does the same so that interrupt handlers always see bank
// zero.
//
// The swap is by contents so that regs is always the visible bank. The
// icount of the next instruction is recorded so that JUMP can reproduce
// the one-instruction lag in the visibility of the switch.
func (cor *Core) updateRegisterBanks() {
	required := uint32(0)
	if cor.status.RegPage {
		required = 1
	}
	if cor.status.IMask {
		required = 0
	}

	if required == cor.bank {
		return
	}

	cor.bankSwitchIcount = cor.icount - 1

	for i := range cor.regs {
		cor.regs[i], cor.alt[i] = cor.alt[i], cor.regs[i]
	}
	cor.bank = required
}
