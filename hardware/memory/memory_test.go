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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherjaguar/hardware/memory"
	"github.com/jetsetilly/gopherjaguar/hardware/memory/jagbus"
	"github.com/jetsetilly/gopherjaguar/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherjaguar/test"
)

// mockChip records register accesses.
type mockChip struct {
	regs      [16]uint32
	lastData  uint32
	lastMask  uint32
	lastWrite uint32
}

func (ch *mockChip) CtrlRead(offset uint32) uint32 {
	return ch.regs[offset]
}

func (ch *mockChip) CtrlWrite(offset uint32, data uint32, mask uint32) {
	ch.lastWrite = offset
	ch.lastData = data
	ch.lastMask = mask
	ch.regs[offset] = (ch.regs[offset] &^ mask) | (data & mask)
}

// mockMixer records the last sample pair.
type mockMixer struct {
	left  int16
	right int16
	count int
}

func (mx *mockMixer) SetAudio(left int16, right int16) error {
	mx.left = left
	mx.right = right
	mx.count++
	return nil
}

func (mx *mockMixer) EndMixing() error {
	return nil
}

func TestByteOrder(t *testing.T) {
	mem := memory.NewMemory()

	mem.WriteLong(0x1000, 0x11223344)
	test.Equate(t, mem.ReadByte(0x1000), 0x11)
	test.Equate(t, mem.ReadByte(0x1003), 0x44)
	test.Equate(t, mem.ReadWord(0x1000), 0x1122)
	test.Equate(t, mem.ReadWord(0x1002), 0x3344)
	test.Equate(t, mem.ReadLong(0x1000), 0x11223344)

	mem.WriteWord(0x2000, 0xaabb)
	test.Equate(t, mem.ReadByte(0x2000), 0xaa)
	test.Equate(t, mem.ReadByte(0x2001), 0xbb)

	test.Equate(t, mem.FetchWord(0x1002), 0x3344)
}

func TestInternalRAMAreas(t *testing.T) {
	mem := memory.NewMemory()

	mem.WriteLong(memorymap.GPURAMOrigin, 0xdeadbeef)
	test.Equate(t, mem.ReadLong(memorymap.GPURAMOrigin), 0xdeadbeef)

	mem.WriteLong(memorymap.DSPRAMOrigin+0x20, 0xcafe0001)
	test.Equate(t, mem.ReadLong(memorymap.DSPRAMOrigin+0x20), 0xcafe0001)

	// the processors can fetch from their internal RAM
	test.Equate(t, mem.FetchWord(memorymap.GPURAMOrigin), 0xdead)
}

func TestUnmappedAccess(t *testing.T) {
	mem := memory.NewMemory()

	// somewhere between main RAM and the chip areas
	test.Equate(t, mem.ReadLong(0x800000), 0)
	test.Equate(t, mem.ReadByte(0x800000), 0)
	mem.WriteLong(0x800000, 0xffffffff)
	test.Equate(t, mem.ReadLong(0x800000), 0)
}

func TestControlRouting(t *testing.T) {
	mem := memory.NewMemory()

	gpu := &mockChip{}
	dsp := &mockChip{}
	mem.Plumb(gpu, dsp)

	// long accesses hit the whole register
	mem.WriteLong(memorymap.GPUCtrlOrigin+8, 0x12345678)
	test.Equate(t, gpu.lastWrite, 2)
	test.Equate(t, gpu.lastData, 0x12345678)
	test.Equate(t, gpu.lastMask, 0xffffffff)
	test.Equate(t, mem.ReadLong(memorymap.GPUCtrlOrigin+8), 0x12345678)

	// word accesses hit one half. low addresses are the high half
	mem.WriteWord(memorymap.GPUCtrlOrigin+8, 0xaaaa)
	test.Equate(t, gpu.lastMask, 0xffff0000)
	test.Equate(t, gpu.lastData, 0xaaaa0000)
	mem.WriteWord(memorymap.GPUCtrlOrigin+10, 0xbbbb)
	test.Equate(t, gpu.lastMask, 0x0000ffff)
	test.Equate(t, gpu.lastData, 0x0000bbbb)
	test.Equate(t, mem.ReadLong(memorymap.GPUCtrlOrigin+8), 0xaaaabbbb)
	test.Equate(t, mem.ReadWord(memorymap.GPUCtrlOrigin+8), 0xaaaa)
	test.Equate(t, mem.ReadWord(memorymap.GPUCtrlOrigin+10), 0xbbbb)

	// the two windows are distinct
	mem.WriteLong(memorymap.DSPCtrlOrigin+4, 0x55667788)
	test.Equate(t, dsp.lastWrite, 1)
	test.Equate(t, gpu.lastWrite, 2)

	// instruction fetch does not reach the control registers
	test.Equate(t, mem.FetchWord(memorymap.GPUCtrlOrigin+8), 0)
}

func TestDACForwarding(t *testing.T) {
	mem := memory.NewMemory()

	mx := &mockMixer{}
	mem.AttachMixer(mx)

	// the left sample latches. the write to RTXD emits the pair
	mem.WriteLong(memorymap.LTXD, 0x1234)
	test.Equate(t, mx.count, 0)

	mem.WriteLong(memorymap.RTXD, 0xffff8000)
	test.Equate(t, mx.count, 1)
	test.Equate(t, int(mx.left), 0x1234)
	test.Equate(t, int(mx.right), -32768)

	// word sized stores work too
	mem.WriteWord(memorymap.LTXD+2, 0x0101)
	mem.WriteWord(memorymap.RTXD+2, 0x0202)
	test.Equate(t, mx.count, 2)
	test.Equate(t, int(mx.left), 0x0101)
	test.Equate(t, int(mx.right), 0x0202)
}

func TestDebugBus(t *testing.T) {
	mem := memory.NewMemory()

	gpu := &mockChip{}
	gpu.regs[0] = 0xffffffff
	mem.Plumb(gpu, &mockChip{})

	mem.WriteLong(0x1000, 0x11223344)

	var bus jagbus.DebugBus = mem
	test.Equate(t, bus.Peek(0x1001), 0x22)

	// control registers may have read side effects and are never peeked
	test.Equate(t, bus.Peek(memorymap.GPUCtrlOrigin), 0)
}

func TestSnapshot(t *testing.T) {
	mem := memory.NewMemory()

	mem.WriteLong(0x1000, 0x11223344)
	snap := mem.Snapshot()

	mem.WriteLong(0x1000, 0x55667788)
	test.Equate(t, snap.ReadLong(0x1000), 0x11223344)
	test.Equate(t, mem.ReadLong(0x1000), 0x55667788)

	test.Equate(t, snap.Peek(0x1000), 0x11)
}
