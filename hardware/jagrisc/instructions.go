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

import "github.com/jetsetilly/gopherjaguar/logger"

// instruction implementations. in every opcode the destination register is
// in the low five bits and the source register, or quick immediate, in the
// five bits above that.
//
// byte and word load/store widen to an aligned long access when the
// address falls inside the processor's internal RAM. the SRAM has no byte
// enables and real software uses the behaviour as a feature.

func (cor *Core) internalRAM(address uint32) bool {
	return address >= cor.ramOrigin && address <= cor.ramMemtop
}

func (cor *Core) abs(op uint16) {
	dreg := op & 31
	res := cor.regs[dreg]
	cor.status.Carry = false
	cor.status.Negative = false
	if res&0x80000000 != 0 {
		res = -res
		cor.regs[dreg] = res
		cor.status.Carry = true
	}
	cor.status.Zero = res == 0
}

func (cor *Core) add(op uint16) {
	dreg := op & 31
	r1 := cor.regs[(op>>5)&31]
	r2 := cor.regs[dreg]
	res := r2 + r1
	cor.regs[dreg] = res
	cor.status.setZNCAdd(r2, r1, res)
}

func (cor *Core) addc(op uint16) {
	dreg := op & 31
	r1 := cor.regs[(op>>5)&31]
	r2 := cor.regs[dreg]
	var c uint32
	if cor.status.Carry {
		c = 1
	}
	res := r2 + r1 + c
	cor.regs[dreg] = res
	cor.status.setZNCAdd(r2, r1+c, res)
}

func (cor *Core) addq(op uint16) {
	dreg := op & 31
	r1 := convertZero[(op>>5)&31]
	r2 := cor.regs[dreg]
	res := r2 + r1
	cor.regs[dreg] = res
	cor.status.setZNCAdd(r2, r1, res)
}

// DSP only
func (cor *Core) addqmod(op uint16) {
	dreg := op & 31
	r1 := convertZero[(op>>5)&31]
	r2 := cor.regs[dreg]
	res := r2 + r1
	res = (res &^ cor.ctrl[Modulo]) | (r2 &^ cor.ctrl[Modulo])
	cor.regs[dreg] = res
	cor.status.setZNCAdd(r2, r1, res)
}

func (cor *Core) addqt(op uint16) {
	dreg := op & 31
	cor.regs[dreg] += convertZero[(op>>5)&31]
}

func (cor *Core) and(op uint16) {
	dreg := op & 31
	res := cor.regs[dreg] & cor.regs[(op>>5)&31]
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

func (cor *Core) bclr(op uint16) {
	dreg := op & 31
	res := cor.regs[dreg] &^ (1 << ((op >> 5) & 31))
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

func (cor *Core) bset(op uint16) {
	dreg := op & 31
	res := cor.regs[dreg] | 1<<((op>>5)&31)
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

func (cor *Core) btst(op uint16) {
	cor.status.Zero = cor.regs[op&31]&(1<<((op>>5)&31)) == 0
}

func (cor *Core) cmp(op uint16) {
	r1 := cor.regs[(op>>5)&31]
	r2 := cor.regs[op&31]
	cor.status.setZNCSub(r2, r1, r2-r1)
}

func (cor *Core) cmpq(op uint16) {
	// the immediate is sign extended from five bits
	r1 := uint32(int32(int8(uint8(op>>2))) >> 3)
	r2 := cor.regs[op&31]
	cor.status.setZNCSub(r2, r1, r2-r1)
}

func (cor *Core) div(op uint16) {
	dreg := op & 31
	r1 := cor.regs[(op>>5)&31]
	r2 := cor.regs[dreg]
	if r1 == 0 {
		cor.regs[dreg] = 0xffffffff
		return
	}
	if cor.ctrl[DivControl]&1 == 1 {
		// 16.16 fixed point division
		cor.regs[dreg] = uint32((uint64(r2) << 16) / uint64(r1))
		cor.ctrl[Remainder] = uint32((uint64(r2) << 16) % uint64(r1))
	} else {
		cor.regs[dreg] = r2 / r1
		cor.ctrl[Remainder] = r2 % r1
	}
}

func (cor *Core) illegal(op uint16) {
}

// imacn outside of an imultn chain does nothing useful. the accumulate
// still happens, matching the hardware's best effort.
func (cor *Core) imacn(op uint16) {
	r1 := cor.regs[(op>>5)&31]
	r2 := cor.regs[op&31]
	cor.acc += int64(int32(int16(r1)) * int32(int16(r2)))
	logger.Logf(cor.variant.String(), "unexpected IMACN instruction")
}

func (cor *Core) imult(op uint16) {
	dreg := op & 31
	r1 := cor.regs[(op>>5)&31]
	r2 := cor.regs[dreg]
	res := uint32(int32(int16(r1)) * int32(int16(r2)))
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

// imultn starts a multiply-accumulate chain. any IMACN opcodes that
// immediately follow are absorbed into this dispatch, as is a closing
// RESMAC. the absorbed opcodes cost no cycles of their own.
func (cor *Core) imultn(op uint16) {
	r1 := cor.regs[(op>>5)&31]
	r2 := cor.regs[op&31]
	res := uint32(int32(int16(r1)) * int32(int16(r2)))
	cor.acc = int64(int32(res))
	cor.status.setZN(res)

	op2 := cor.mem.FetchWord(cor.pc)
	for op2>>10 == 20 {
		r1 = cor.regs[(op2>>5)&31]
		r2 = cor.regs[op2&31]
		cor.acc += int64(int32(int16(r1)) * int32(int16(r2)))
		cor.pc += 2
		op2 = cor.mem.FetchWord(cor.pc)
	}
	if op2>>10 == 19 {
		cor.pc += 2
		cor.regs[op2&31] = uint32(cor.acc)
	}
}

func (cor *Core) jr(op uint16) {
	if cor.condition(op & 31) {
		offset := int32(int8(uint8(op>>2)&0xf8)) >> 2
		newpc := cor.pc + uint32(offset)

		// the instruction in the delay slot executes before the branch
		// takes effect
		op2 := cor.mem.FetchWord(cor.pc)
		cor.pc = newpc
		cor.table[op2>>10](cor, op2)

		// wait states
		cor.icount -= 3
	}
}

func (cor *Core) jump(op uint16) {
	if cor.condition(op & 31) {
		reg := (op >> 5) & 31

		// if a bank switch happened on the previous instruction the
		// target register is read from the old bank. interrupt handlers
		// in the wild depend on this
		var newpc uint32
		if cor.icount == cor.bankSwitchIcount {
			newpc = cor.alt[reg]
		} else {
			newpc = cor.regs[reg]
		}

		op2 := cor.mem.FetchWord(cor.pc)
		cor.pc = newpc
		cor.table[op2>>10](cor, op2)

		// wait states
		cor.icount -= 3
	}
}

func (cor *Core) load(op uint16) {
	cor.regs[op&31] = cor.mem.ReadLong(cor.regs[(op>>5)&31])
}

func (cor *Core) loadr14n(op uint16) {
	r1 := convertZero[(op>>5)&31]
	cor.regs[op&31] = cor.mem.ReadLong(cor.regs[14] + 4*r1)
}

func (cor *Core) loadr15n(op uint16) {
	r1 := convertZero[(op>>5)&31]
	cor.regs[op&31] = cor.mem.ReadLong(cor.regs[15] + 4*r1)
}

func (cor *Core) loadr14r(op uint16) {
	cor.regs[op&31] = cor.mem.ReadLong(cor.regs[14] + cor.regs[(op>>5)&31])
}

func (cor *Core) loadr15r(op uint16) {
	cor.regs[op&31] = cor.mem.ReadLong(cor.regs[15] + cor.regs[(op>>5)&31])
}

func (cor *Core) loadb(op uint16) {
	r1 := cor.regs[(op>>5)&31]
	if cor.internalRAM(r1) {
		cor.regs[op&31] = cor.mem.ReadLong(r1 &^ 3)
	} else {
		cor.regs[op&31] = uint32(cor.mem.ReadByte(r1))
	}
}

func (cor *Core) loadw(op uint16) {
	r1 := cor.regs[(op>>5)&31]
	if cor.internalRAM(r1) {
		cor.regs[op&31] = cor.mem.ReadLong(r1 &^ 3)
	} else {
		cor.regs[op&31] = uint32(cor.mem.ReadWord(r1))
	}
}

// GPU only. the high long lands in the HIDATA register.
func (cor *Core) loadp(op uint16) {
	r1 := cor.regs[(op>>5)&31]
	if cor.internalRAM(r1) {
		cor.regs[op&31] = cor.mem.ReadLong(r1 &^ 3)
	} else {
		cor.ctrl[HiData] = cor.mem.ReadLong(r1)
		cor.regs[op&31] = cor.mem.ReadLong(r1 + 4)
	}
}

// DSP only
func (cor *Core) mirror(op uint16) {
	dreg := op & 31
	r1 := cor.regs[dreg]
	res := uint32(mirrorTable[r1&0xffff])<<16 | uint32(mirrorTable[r1>>16])
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

// mmult walks a register file vector against a matrix in memory. the
// source registers always come from bank 1, whichever bank is active.
func (cor *Core) mmult(op uint16) {
	count := cor.ctrl[MatrixControl] & 15
	sreg := uint32((op >> 5) & 31)
	dreg := op & 31
	addr := cor.ctrl[MatrixAddress]
	var accum int64

	b1 := &cor.alt
	if cor.bank == 1 {
		b1 = &cor.regs
	}

	stride := uint32(2)
	if cor.ctrl[MatrixControl]&0x10 != 0 {
		stride = 2 * count
	}

	for i := uint32(0); i < count; i++ {
		element := int16(b1[(sreg+i/2)&31] >> (16 * ((i & 1) ^ 1)))
		accum += int64(int32(element) * int32(int16(cor.mem.ReadWord(addr))))
		addr += stride
	}

	res := uint32(accum)
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

func (cor *Core) move(op uint16) {
	cor.regs[op&31] = cor.regs[(op>>5)&31]
}

func (cor *Core) movepc(op uint16) {
	cor.regs[op&31] = cor.ppc
}

func (cor *Core) movefa(op uint16) {
	cor.regs[op&31] = cor.alt[(op>>5)&31]
}

func (cor *Core) movei(op uint16) {
	res := uint32(cor.mem.FetchWord(cor.pc)) | uint32(cor.mem.FetchWord(cor.pc+2))<<16
	cor.pc += 4
	cor.regs[op&31] = res
}

func (cor *Core) moveq(op uint16) {
	cor.regs[op&31] = uint32((op >> 5) & 31)
}

func (cor *Core) moveta(op uint16) {
	cor.alt[op&31] = cor.regs[(op>>5)&31]
}

func (cor *Core) mtoi(op uint16) {
	r1 := cor.regs[(op>>5)&31]
	cor.regs[op&31] = (uint32(int32(r1)>>8) & 0xff800000) | (r1 & 0x007fffff)
}

func (cor *Core) mult(op uint16) {
	dreg := op & 31
	res := uint32(uint16(cor.regs[(op>>5)&31])) * uint32(uint16(cor.regs[dreg]))
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

func (cor *Core) neg(op uint16) {
	dreg := op & 31
	r2 := cor.regs[dreg]
	res := -r2
	cor.regs[dreg] = res
	cor.status.setZNCSub(0, r2, res)
}

func (cor *Core) nop(op uint16) {
}

func (cor *Core) normi(op uint16) {
	r1 := cor.regs[(op>>5)&31]
	var res uint32
	if r1 != 0 {
		for r1&0xffc00000 == 0 {
			r1 <<= 1
			res--
		}
		for r1&0xff800000 != 0 {
			r1 >>= 1
			res++
		}
	}
	cor.regs[op&31] = res
	cor.status.setZN(res)
}

func (cor *Core) not(op uint16) {
	dreg := op & 31
	res := ^cor.regs[dreg]
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

func (cor *Core) or(op uint16) {
	dreg := op & 31
	res := cor.regs[dreg] | cor.regs[(op>>5)&31]
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

// GPU only. CRY pixel packing. a source field of zero packs, anything
// else unpacks.
func (cor *Core) pack(op uint16) {
	dreg := op & 31
	r2 := cor.regs[dreg]
	var res uint32
	if (op>>5)&31 == 0 {
		res = ((r2 >> 10) & 0xf000) | ((r2 >> 5) & 0x0f00) | (r2 & 0xff)
	} else {
		res = ((r2 & 0xf000) << 10) | ((r2 & 0x0f00) << 5) | (r2 & 0xff)
	}
	cor.regs[dreg] = res
}

func (cor *Core) resmac(op uint16) {
	cor.regs[op&31] = uint32(cor.acc)
}

func (cor *Core) ror(op uint16) {
	dreg := op & 31
	r1 := cor.regs[(op>>5)&31] & 31
	r2 := cor.regs[dreg]
	res := r2>>r1 | r2<<(32-r1)
	cor.regs[dreg] = res
	cor.status.setZN(res)
	cor.status.Carry = r2&0x80000000 != 0
}

func (cor *Core) rorq(op uint16) {
	dreg := op & 31
	r1 := convertZero[(op>>5)&31]
	r2 := cor.regs[dreg]
	res := r2>>r1 | r2<<(32-r1)
	cor.regs[dreg] = res
	cor.status.setZN(res)
	cor.status.Carry = r2&0x80000000 != 0
}

// GPU only
func (cor *Core) sat8(op uint16) {
	dreg := op & 31
	r2 := int32(cor.regs[dreg])
	var res uint32
	switch {
	case r2 < 0:
		res = 0
	case r2 > 255:
		res = 255
	default:
		res = uint32(r2)
	}
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

// GPU only
func (cor *Core) sat16(op uint16) {
	dreg := op & 31
	r2 := int32(cor.regs[dreg])
	var res uint32
	switch {
	case r2 < 0:
		res = 0
	case r2 > 65535:
		res = 65535
	default:
		res = uint32(r2)
	}
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

// DSP only
func (cor *Core) sat16s(op uint16) {
	dreg := op & 31
	r2 := int32(cor.regs[dreg])
	var res uint32
	switch {
	case r2 < -32768:
		res = 0xffff8000
	case r2 > 32767:
		res = 32767
	default:
		res = uint32(r2)
	}
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

// GPU only
func (cor *Core) sat24(op uint16) {
	dreg := op & 31
	r2 := int32(cor.regs[dreg])
	var res uint32
	switch {
	case r2 < 0:
		res = 0
	case r2 > 16777215:
		res = 16777215
	default:
		res = uint32(r2)
	}
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

// DSP only. saturates against the high half of the accumulator rather
// than the register value.
func (cor *Core) sat32s(op uint16) {
	dreg := op & 31
	r2 := cor.regs[dreg]
	temp := int32(cor.acc >> 32)
	var res uint32
	switch {
	case temp < -1:
		res = 0x80000000
	case temp > 0:
		res = 0x7fffffff
	default:
		res = r2
	}
	cor.regs[dreg] = res
	cor.status.setZN(res)
}

func (cor *Core) sh(op uint16) {
	dreg := op & 31
	r1 := int32(cor.regs[(op>>5)&31])
	r2 := cor.regs[dreg]
	var res uint32

	if r1 < 0 {
		if r1 > -32 {
			res = r2 << uint32(-r1)
		}
		cor.status.setZN(res)
		cor.status.Carry = r2&0x80000000 != 0
	} else {
		if r1 < 32 {
			res = r2 >> uint32(r1)
		}
		cor.status.setZN(res)
		cor.status.Carry = r2&1 == 1
	}
	cor.regs[dreg] = res
}

func (cor *Core) sha(op uint16) {
	dreg := op & 31
	r1 := int32(cor.regs[(op>>5)&31])
	r2 := cor.regs[dreg]
	var res uint32

	if r1 < 0 {
		if r1 > -32 {
			res = r2 << uint32(-r1)
		}
		cor.status.setZN(res)
		cor.status.Carry = r2&0x80000000 != 0
	} else {
		if r1 >= 32 {
			res = uint32(int32(r2) >> 31)
		} else {
			res = uint32(int32(r2) >> uint32(r1))
		}
		cor.status.setZN(res)
		cor.status.Carry = r2&1 == 1
	}
	cor.regs[dreg] = res
}

func (cor *Core) sharq(op uint16) {
	dreg := op & 31
	r1 := convertZero[(op>>5)&31]
	r2 := cor.regs[dreg]
	res := uint32(int32(r2) >> r1)
	cor.regs[dreg] = res
	cor.status.setZN(res)
	cor.status.Carry = r2&1 == 1
}

func (cor *Core) shlq(op uint16) {
	dreg := op & 31
	r1 := convertZero[(op>>5)&31]
	r2 := cor.regs[dreg]

	// the encoded value is the left shift subtracted from 32
	res := r2 << (32 - r1)
	cor.regs[dreg] = res
	cor.status.setZN(res)
	cor.status.Carry = r2&0x80000000 != 0
}

func (cor *Core) shrq(op uint16) {
	dreg := op & 31
	r1 := convertZero[(op>>5)&31]
	r2 := cor.regs[dreg]
	res := r2 >> r1
	cor.regs[dreg] = res
	cor.status.setZN(res)
	cor.status.Carry = r2&1 == 1
}

func (cor *Core) store(op uint16) {
	cor.mem.WriteLong(cor.regs[(op>>5)&31], cor.regs[op&31])
}

func (cor *Core) storer14n(op uint16) {
	r1 := convertZero[(op>>5)&31]
	cor.mem.WriteLong(cor.regs[14]+r1*4, cor.regs[op&31])
}

func (cor *Core) storer15n(op uint16) {
	r1 := convertZero[(op>>5)&31]
	cor.mem.WriteLong(cor.regs[15]+r1*4, cor.regs[op&31])
}

func (cor *Core) storer14r(op uint16) {
	cor.mem.WriteLong(cor.regs[14]+cor.regs[(op>>5)&31], cor.regs[op&31])
}

func (cor *Core) storer15r(op uint16) {
	cor.mem.WriteLong(cor.regs[15]+cor.regs[(op>>5)&31], cor.regs[op&31])
}

func (cor *Core) storeb(op uint16) {
	r1 := cor.regs[(op>>5)&31]
	if cor.internalRAM(r1) {
		cor.mem.WriteLong(r1&^3, cor.regs[op&31])
	} else {
		cor.mem.WriteByte(r1, uint8(cor.regs[op&31]))
	}
}

func (cor *Core) storew(op uint16) {
	r1 := cor.regs[(op>>5)&31]
	if cor.internalRAM(r1) {
		cor.mem.WriteLong(r1&^3, cor.regs[op&31])
	} else {
		cor.mem.WriteWord(r1, uint16(cor.regs[op&31]))
	}
}

// GPU only. the HIDATA register supplies the high long.
func (cor *Core) storep(op uint16) {
	r1 := cor.regs[(op>>5)&31]
	if cor.internalRAM(r1) {
		cor.mem.WriteLong(r1&^3, cor.regs[op&31])
	} else {
		cor.mem.WriteLong(r1, cor.ctrl[HiData])
		cor.mem.WriteLong(r1+4, cor.regs[op&31])
	}
}

func (cor *Core) sub(op uint16) {
	dreg := op & 31
	r1 := cor.regs[(op>>5)&31]
	r2 := cor.regs[dreg]
	res := r2 - r1
	cor.regs[dreg] = res
	cor.status.setZNCSub(r2, r1, res)
}

func (cor *Core) subc(op uint16) {
	dreg := op & 31
	r1 := cor.regs[(op>>5)&31]
	r2 := cor.regs[dreg]
	var c uint32
	if cor.status.Carry {
		c = 1
	}
	res := r2 - r1 - c
	cor.regs[dreg] = res
	cor.status.setZNCSub(r2, r1+c, res)
}

func (cor *Core) subq(op uint16) {
	dreg := op & 31
	r1 := convertZero[(op>>5)&31]
	r2 := cor.regs[dreg]
	res := r2 - r1
	cor.regs[dreg] = res
	cor.status.setZNCSub(r2, r1, res)
}

// DSP only
func (cor *Core) subqmod(op uint16) {
	dreg := op & 31
	r1 := convertZero[(op>>5)&31]
	r2 := cor.regs[dreg]
	res := r2 - r1
	res = (res &^ cor.ctrl[Modulo]) | (r2 &^ cor.ctrl[Modulo])
	cor.regs[dreg] = res
	cor.status.setZNCSub(r2, r1, res)
}

func (cor *Core) subqt(op uint16) {
	dreg := op & 31
	cor.regs[dreg] -= convertZero[(op>>5)&31]
}

func (cor *Core) xor(op uint16) {
	dreg := op & 31
	res := cor.regs[dreg] ^ cor.regs[(op>>5)&31]
	cor.regs[dreg] = res
	cor.status.setZN(res)
}
