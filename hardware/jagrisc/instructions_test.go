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

package jagrisc_test

import (
	"testing"

	"github.com/jetsetilly/gopherjaguar/hardware/jagrisc"
	"github.com/jetsetilly/gopherjaguar/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherjaguar/test"
)

// testMem is a sparse big-endian memory. the control window of an attached
// core is mapped so that programs can touch their own registers.
type testMem struct {
	data map[uint32]uint8
	chip *jagrisc.Core
}

func newTestMem() *testMem {
	return &testMem{data: make(map[uint32]uint8)}
}

func (m *testMem) ReadByte(address uint32) uint8 {
	return m.data[address]
}

func (m *testMem) ReadWord(address uint32) uint16 {
	return uint16(m.data[address])<<8 | uint16(m.data[address+1])
}

func (m *testMem) ReadLong(address uint32) uint32 {
	if m.chip != nil && address >= memorymap.GPUCtrlOrigin && address <= memorymap.GPUCtrlMemtop {
		return m.chip.CtrlRead((address - memorymap.GPUCtrlOrigin) / 4)
	}
	return uint32(m.ReadWord(address))<<16 | uint32(m.ReadWord(address+2))
}

func (m *testMem) WriteByte(address uint32, data uint8) {
	m.data[address] = data
}

func (m *testMem) WriteWord(address uint32, data uint16) {
	m.data[address] = uint8(data >> 8)
	m.data[address+1] = uint8(data)
}

func (m *testMem) WriteLong(address uint32, data uint32) {
	if m.chip != nil && address >= memorymap.GPUCtrlOrigin && address <= memorymap.GPUCtrlMemtop {
		m.chip.CtrlWrite((address-memorymap.GPUCtrlOrigin)/4, data, 0xffffffff)
		return
	}
	m.WriteWord(address, uint16(data>>16))
	m.WriteWord(address+2, uint16(data))
}

func (m *testMem) FetchWord(address uint32) uint16 {
	return m.ReadWord(address)
}

// enc builds an opcode from its three fields.
func enc(slot int, sreg int, dreg int) uint16 {
	return uint16(slot)<<10 | uint16(sreg)<<5 | uint16(dreg)
}

// movei builds the three words of a MOVEI instruction.
func movei(reg int, value uint32) []uint16 {
	return []uint16{enc(38, 0, reg), uint16(value), uint16(value >> 16)}
}

const origin = 0x1000

func newTestCore(t *testing.T, variant jagrisc.Variant) (*jagrisc.Core, *testMem) {
	t.Helper()

	mem := newTestMem()
	cor, err := jagrisc.NewCore(variant, mem)
	test.ExpectedSuccess(t, err)
	mem.chip = cor

	return cor, mem
}

func load(mem *testMem, words ...[]uint16) {
	addr := uint32(origin)
	for _, ws := range words {
		for _, w := range ws {
			mem.WriteWord(addr, w)
			addr += 2
		}
	}
}

func boot(cor *jagrisc.Core) {
	cor.CtrlWrite(jagrisc.PC, origin, 0xffffffff)
	cor.CtrlWrite(jagrisc.Control, 0x01, 0xffffffff)
}

func TestAddCarry(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		movei(1, 0xffffffff),
		[]uint16{enc(35, 1, 2)}, // moveq #1, r2
		[]uint16{enc(0, 1, 2)},  // add r1, r2
	)
	boot(cor)

	test.Equate(t, cor.Run(3), 3)
	test.Equate(t, cor.Register(2), 0)

	flags := cor.CtrlRead(jagrisc.Flags)
	test.Equate(t, flags&jagrisc.ZFlag, jagrisc.ZFlag)
	test.Equate(t, flags&jagrisc.CFlag, jagrisc.CFlag)
	test.Equate(t, flags&jagrisc.NFlag, 0)
}

func TestSubBorrow(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		movei(1, 5),
		[]uint16{enc(35, 3, 2)}, // moveq #3, r2
		[]uint16{enc(4, 1, 2)},  // sub r1, r2
	)
	boot(cor)

	test.Equate(t, cor.Run(3), 3)
	test.Equate(t, cor.Register(2), 0xfffffffe)

	flags := cor.CtrlRead(jagrisc.Flags)
	test.Equate(t, flags&jagrisc.CFlag, jagrisc.CFlag)
	test.Equate(t, flags&jagrisc.NFlag, jagrisc.NFlag)
}

func TestCmpqSignExtension(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		[]uint16{enc(35, 0, 2)},  // moveq #0, r2
		[]uint16{enc(31, 31, 2)}, // cmpq #-1, r2
	)
	boot(cor)

	test.Equate(t, cor.Run(2), 2)

	// 0 - (-1) carries out and is neither zero nor negative
	flags := cor.CtrlRead(jagrisc.Flags)
	test.Equate(t, flags&jagrisc.ZFlag, 0)
	test.Equate(t, flags&jagrisc.NFlag, 0)
	test.Equate(t, flags&jagrisc.CFlag, jagrisc.CFlag)
}

func TestMultiply(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		movei(1, 0xffff8000), // -32768 in the low half
		movei(2, 0x00007fff),
		[]uint16{enc(17, 1, 2)}, // imult r1, r2
		movei(3, 0xffff8000),
		movei(4, 0x00007fff),
		[]uint16{enc(16, 3, 4)}, // mult r3, r4
	)
	boot(cor)

	test.Equate(t, cor.Run(6), 6)
	test.Equate(t, cor.Register(2), 0xc0008000)
	test.Equate(t, cor.Register(4), 0x3fff8000)
}

func TestDivide(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		movei(1, 7),
		movei(2, 100),
		[]uint16{enc(21, 1, 2)}, // div r1, r2
	)
	boot(cor)

	test.Equate(t, cor.Run(3), 3)
	test.Equate(t, cor.Register(2), 14)
	test.Equate(t, cor.CtrlRead(jagrisc.Remainder), 2)
}

func TestDivideByZero(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		[]uint16{enc(35, 0, 1)}, // moveq #0, r1
		movei(2, 100),
		[]uint16{enc(21, 1, 2)}, // div r1, r2
	)
	boot(cor)

	test.Equate(t, cor.Run(3), 3)
	test.Equate(t, cor.Register(2), 0xffffffff)
	test.Equate(t, cor.CtrlRead(jagrisc.Remainder), 0)
}

func TestDivideFixedPoint(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		movei(1, 2),
		movei(2, 0x10000),
		[]uint16{enc(21, 1, 2)}, // div r1, r2
	)
	cor.CtrlWrite(jagrisc.DivControl, 1, 0xffffffff)
	boot(cor)

	test.Equate(t, cor.Run(3), 3)
	test.Equate(t, cor.Register(2), 0x80000000)
	test.Equate(t, cor.CtrlRead(jagrisc.Remainder), 0)
}

func TestShifts(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		movei(2, 0x80000000),
		[]uint16{enc(35, 4, 1)}, // moveq #4, r1
		[]uint16{enc(26, 1, 2)}, // sha r1, r2
		movei(3, 40),
		movei(4, 0x80000000),
		[]uint16{enc(26, 3, 4)}, // sha r3, r4 (count past the register width)
		movei(5, 17),
		[]uint16{enc(25, 4, 5)}, // shrq #4, r5
	)
	boot(cor)

	test.Equate(t, cor.Run(8), 8)
	test.Equate(t, cor.Register(2), 0xf8000000)
	test.Equate(t, cor.Register(4), 0xffffffff)
	test.Equate(t, cor.Register(5), 1)

	// the last shift dropped a one off the bottom
	test.Equate(t, cor.CtrlRead(jagrisc.Flags)&jagrisc.CFlag, jagrisc.CFlag)
}

func TestShlqEncoding(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	// the immediate holds 32 minus the shift distance
	load(mem,
		[]uint16{enc(35, 1, 2)},  // moveq #1, r2
		[]uint16{enc(24, 28, 2)}, // shlq #4, r2
	)
	boot(cor)

	test.Equate(t, cor.Run(2), 2)
	test.Equate(t, cor.Register(2), 16)
}

func TestMacChain(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		movei(1, 3),
		movei(2, 4),
		movei(3, 5),
		movei(4, 6),
		movei(5, 7),
		movei(6, 8),
		[]uint16{enc(18, 1, 2)}, // imultn r1, r2
		[]uint16{enc(20, 3, 4)}, // imacn r3, r4
		[]uint16{enc(20, 5, 6)}, // imacn r5, r6
		[]uint16{enc(19, 0, 7)}, // resmac r7
	)
	boot(cor)

	// the imacn and resmac opcodes are absorbed by the imultn dispatch and
	// cost nothing
	test.Equate(t, cor.Run(7), 7)
	test.Equate(t, cor.Register(7), 3*4+5*6+7*8)
	test.Equate(t, cor.PC(), uint32(origin+6*6+4*2))
}

func TestJrDelaySlot(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		[]uint16{enc(35, 1, 1)}, // moveq #1, r1
		[]uint16{enc(53, 2, 0)}, // jr +2 words (always)
		[]uint16{enc(35, 2, 2)}, // moveq #2, r2 (delay slot, executes)
		[]uint16{enc(35, 3, 3)}, // moveq #3, r3 (jumped over)
		[]uint16{enc(35, 4, 4)}, // moveq #4, r4
	)
	boot(cor)

	// the branch costs three wait states on top of its dispatch
	test.Equate(t, cor.Run(6), 6)
	test.Equate(t, cor.Register(1), 1)
	test.Equate(t, cor.Register(2), 2)
	test.Equate(t, cor.Register(3), 0)
	test.Equate(t, cor.Register(4), 4)
	test.Equate(t, cor.PC(), uint32(origin+10))
}

func TestInternalRAMWidening(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		movei(1, memorymap.GPURAMOrigin+0x12), // unaligned on purpose
		movei(2, 0x12345678),
		[]uint16{enc(45, 1, 2)}, // storeb r2, (r1)
		[]uint16{enc(39, 1, 3)}, // loadb (r1), r3
		movei(4, 0x2001),
		[]uint16{enc(45, 4, 2)}, // storeb r2, (r4)
		[]uint16{enc(39, 4, 5)}, // loadb (r4), r5
	)
	boot(cor)

	test.Equate(t, cor.Run(7), 7)

	// inside internal RAM the byte store became an aligned long store
	test.Equate(t, mem.ReadLong(memorymap.GPURAMOrigin+0x10), 0x12345678)
	test.Equate(t, cor.Register(3), 0x12345678)

	// outside internal RAM the store was a plain byte store
	test.Equate(t, mem.ReadByte(0x2001), 0x78)
	test.Equate(t, cor.Register(5), 0x78)
}

func TestMirrorInstruction(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.DSP)

	load(mem,
		movei(2, 0x12340001),
		[]uint16{enc(48, 0, 2)}, // mirror r2
	)
	boot(cor)

	test.Equate(t, cor.Run(2), 2)
	test.Equate(t, cor.Register(2), 0x80002c48)
}

func TestSaturate(t *testing.T) {
	// signed 16 bit saturation. DSP only
	cor, mem := newTestCore(t, jagrisc.DSP)

	load(mem,
		movei(2, 0xffff0000), // -65536
		[]uint16{enc(33, 0, 2)}, // sat16s r2
		movei(3, 100000),
		[]uint16{enc(33, 0, 3)}, // sat16s r3
		movei(4, 0xffffff9c), // -100
		[]uint16{enc(33, 0, 4)}, // sat16s r4
	)
	boot(cor)

	test.Equate(t, cor.Run(6), 6)
	test.Equate(t, cor.Register(2), 0xffff8000)
	test.Equate(t, cor.Register(3), 32767)
	test.Equate(t, cor.Register(4), 0xffffff9c)

	// the same slot on the GPU clamps to unsigned 16 bits
	cor, mem = newTestCore(t, jagrisc.GPU)

	load(mem,
		movei(2, 0xffff0000),
		[]uint16{enc(33, 0, 2)}, // sat16 r2
		movei(3, 100000),
		[]uint16{enc(33, 0, 3)}, // sat16 r3
	)
	boot(cor)

	test.Equate(t, cor.Run(4), 4)
	test.Equate(t, cor.Register(2), 0)
	test.Equate(t, cor.Register(3), 65535)
}

func TestPackUnpack(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		movei(2, 0xabcd),
		[]uint16{enc(63, 1, 2)}, // unpack r2
		[]uint16{enc(63, 0, 2)}, // pack r2
	)
	boot(cor)

	test.Equate(t, cor.Run(2), 2)
	test.Equate(t, cor.Register(2), 0x028160cd)

	test.Equate(t, cor.Run(1), 1)
	test.Equate(t, cor.Register(2), 0xabcd)
}

func TestHalted(t *testing.T) {
	cor, _ := newTestCore(t, jagrisc.GPU)

	// the GO bit is clear on a fresh core
	test.Equate(t, cor.Run(10), 0)
	test.Equate(t, cor.Running(), false)
}

func TestSelfHalt(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		movei(1, memorymap.GPUCtrlOrigin+jagrisc.Control*4),
		[]uint16{enc(35, 0, 2)}, // moveq #0, r2
		[]uint16{enc(47, 1, 2)}, // store r2, (r1)
	)
	boot(cor)

	// execution stops at the instruction that cleared the GO bit
	test.Equate(t, cor.Run(100), 3)
	test.Equate(t, cor.Running(), false)
}

func TestSnapshotPlumb(t *testing.T) {
	cor, mem := newTestCore(t, jagrisc.GPU)

	load(mem,
		[]uint16{enc(35, 5, 1)}, // moveq #5, r1
		[]uint16{enc(35, 9, 1)}, // moveq #9, r1
	)
	boot(cor)

	test.Equate(t, cor.Run(1), 1)
	test.Equate(t, cor.Register(1), 5)

	snap := cor.Snapshot()

	test.Equate(t, cor.Run(1), 1)
	test.Equate(t, cor.Register(1), 9)

	// the snapshot still sees the machine as it was
	test.Equate(t, snap.Register(1), 5)

	snap.Plumb(mem)
	test.Equate(t, snap.Run(1), 1)
	test.Equate(t, snap.Register(1), 9)
}

func TestControlRegisters(t *testing.T) {
	cor, _ := newTestCore(t, jagrisc.GPU)

	// the version field reads back through the control register
	test.Equate(t, cor.CtrlRead(jagrisc.Control)&0xf000, 0x2000)

	// arithmetic flags pass through the flags register
	cor.CtrlWrite(jagrisc.Flags, jagrisc.ZFlag|jagrisc.NFlag, 0xffffffff)
	test.Equate(t, cor.CtrlRead(jagrisc.Flags)&(jagrisc.ZFlag|jagrisc.NFlag), jagrisc.ZFlag|jagrisc.NFlag)

	// the interrupt mask cannot be raised from the bus
	cor.CtrlWrite(jagrisc.Flags, jagrisc.IFlag, 0xffffffff)
	test.Equate(t, cor.CtrlRead(jagrisc.Flags)&jagrisc.IFlag, 0)

	// the program counter register is truncated to the address space
	cor.CtrlWrite(jagrisc.PC, 0x12345678, 0xffffffff)
	test.Equate(t, cor.PC(), 0x345678)
}

func TestForcedInterrupt(t *testing.T) {
	cor, _ := newTestCore(t, jagrisc.GPU)

	cor.CtrlWrite(jagrisc.Flags, jagrisc.EInt0Flag, 0xffffffff)
	cor.CtrlWrite(jagrisc.PC, origin, 0xffffffff)

	// GO plus FORCEINT0. the force bit clears itself and the interrupt
	// dispatches immediately
	cor.CtrlWrite(jagrisc.Control, 0x05, 0xffffffff)

	test.Equate(t, cor.CtrlRead(jagrisc.Control)&0x04, 0)
	test.Equate(t, cor.CtrlRead(jagrisc.Control)&0x40, 0x40)
	test.Equate(t, cor.PC(), memorymap.GPURAMOrigin)
	test.Equate(t, cor.CtrlRead(jagrisc.Flags)&jagrisc.IFlag, jagrisc.IFlag)
}
