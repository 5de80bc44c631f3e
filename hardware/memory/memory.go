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

package memory

import (
	"encoding/binary"

	"github.com/jetsetilly/gopherjaguar/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherjaguar/logger"
)

// ChipRegisters is the register surface of a RISC processor as seen from
// the bus. Offsets are in register units, not bytes. The mask on writes
// selects the affected bits, allowing 16-bit accesses to reach either half
// of a register.
type ChipRegisters interface {
	CtrlRead(offset uint32) uint32
	CtrlWrite(offset uint32, data uint32, mask uint32)
}

// AudioMixer receives the samples written to the DAC transmit registers.
type AudioMixer interface {
	SetAudio(left int16, right int16) error
	EndMixing() error
}

// Memory implements the 24-bit address space of the console as seen by the
// RISC processors.
type Memory struct {
	ram    []byte
	gpuRAM []byte
	dspRAM []byte

	gpu ChipRegisters
	dsp ChipRegisters

	mixer AudioMixer

	// the left sample is latched until the write to RTXD emits the pair
	ltxd int16
	rtxd int16
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The processor register surfaces are attached afterwards with Plumb().
func NewMemory() *Memory {
	return &Memory{
		ram:    make([]byte, memorymap.RAMMemtop-memorymap.RAMOrigin+1),
		gpuRAM: make([]byte, memorymap.GPURAMMemtop-memorymap.GPURAMOrigin+1),
		dspRAM: make([]byte, memorymap.DSPRAMMemtop-memorymap.DSPRAMOrigin+1),
	}
}

// Plumb the processor register surfaces into the address space.
func (mem *Memory) Plumb(gpu ChipRegisters, dsp ChipRegisters) {
	mem.gpu = gpu
	mem.dsp = dsp
}

// AttachMixer sets the receiver for samples written to the DAC transmit
// registers. A nil mixer detaches.
func (mem *Memory) AttachMixer(mixer AudioMixer) {
	mem.mixer = mixer
}

// Snapshot creates a copy of the Memory in its current state. The register
// surfaces and the mixer are not copied; use Plumb() and AttachMixer() on
// the copy.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.ram = make([]byte, len(mem.ram))
	copy(n.ram, mem.ram)
	n.gpuRAM = make([]byte, len(mem.gpuRAM))
	copy(n.gpuRAM, mem.gpuRAM)
	n.dspRAM = make([]byte, len(mem.dspRAM))
	copy(n.dspRAM, mem.dspRAM)
	n.gpu = nil
	n.dsp = nil
	n.mixer = nil
	return &n
}

// area returns the backing slice and the offset into it for a RAM address.
// the second return value is false for addresses not backed by RAM.
func (mem *Memory) area(address uint32) ([]byte, uint32, bool) {
	switch {
	case address <= memorymap.RAMMemtop:
		return mem.ram, address, true
	case address >= memorymap.GPURAMOrigin && address <= memorymap.GPURAMMemtop:
		return mem.gpuRAM, address - memorymap.GPURAMOrigin, true
	case address >= memorymap.DSPRAMOrigin && address <= memorymap.DSPRAMMemtop:
		return mem.dspRAM, address - memorymap.DSPRAMOrigin, true
	}
	return nil, 0, false
}

// ctrl returns the register surface and the register offset for an address
// in one of the control windows.
func (mem *Memory) ctrl(address uint32) (ChipRegisters, uint32, bool) {
	switch {
	case mem.gpu != nil && address >= memorymap.GPUCtrlOrigin && address <= memorymap.GPUCtrlMemtop:
		return mem.gpu, (address - memorymap.GPUCtrlOrigin) / 4, true
	case mem.dsp != nil && address >= memorymap.DSPCtrlOrigin && address <= memorymap.DSPCtrlMemtop:
		return mem.dsp, (address - memorymap.DSPCtrlOrigin) / 4, true
	}
	return nil, 0, false
}

func (mem *Memory) unmapped(event string, address uint32) {
	logger.Logf("memory", "%s of unmapped address %06x", event, address)
}

// ReadByte implements the jagbus.Bus interface.
func (mem *Memory) ReadByte(address uint32) uint8 {
	address &= memorymap.Memtop
	if area, idx, ok := mem.area(address); ok {
		return area[idx]
	}
	if chip, offset, ok := mem.ctrl(address &^ 3); ok {
		shift := (3 - (address & 3)) * 8
		return uint8(chip.CtrlRead(offset) >> shift)
	}
	mem.unmapped("byte read", address)
	return 0
}

// ReadWord implements the jagbus.Bus interface.
func (mem *Memory) ReadWord(address uint32) uint16 {
	address &= memorymap.Memtop &^ 1
	if area, idx, ok := mem.area(address); ok {
		return binary.BigEndian.Uint16(area[idx:])
	}
	if chip, offset, ok := mem.ctrl(address &^ 3); ok {
		if address&2 == 0 {
			return uint16(chip.CtrlRead(offset) >> 16)
		}
		return uint16(chip.CtrlRead(offset))
	}
	mem.unmapped("word read", address)
	return 0
}

// ReadLong implements the jagbus.Bus interface.
func (mem *Memory) ReadLong(address uint32) uint32 {
	address &= memorymap.Memtop &^ 3
	if area, idx, ok := mem.area(address); ok {
		return binary.BigEndian.Uint32(area[idx:])
	}
	if chip, offset, ok := mem.ctrl(address); ok {
		return chip.CtrlRead(offset)
	}
	mem.unmapped("long read", address)
	return 0
}

// WriteByte implements the jagbus.Bus interface.
func (mem *Memory) WriteByte(address uint32, data uint8) {
	address &= memorymap.Memtop
	if area, idx, ok := mem.area(address); ok {
		area[idx] = data
		return
	}
	if chip, offset, ok := mem.ctrl(address &^ 3); ok {
		shift := (3 - (address & 3)) * 8
		chip.CtrlWrite(offset, uint32(data)<<shift, 0xff<<shift)
		return
	}
	mem.unmapped("byte write", address)
}

// WriteWord implements the jagbus.Bus interface.
func (mem *Memory) WriteWord(address uint32, data uint16) {
	address &= memorymap.Memtop &^ 1
	if area, idx, ok := mem.area(address); ok {
		binary.BigEndian.PutUint16(area[idx:], data)
		return
	}
	if chip, offset, ok := mem.ctrl(address &^ 3); ok {
		if address&2 == 0 {
			chip.CtrlWrite(offset, uint32(data)<<16, 0xffff0000)
		} else {
			chip.CtrlWrite(offset, uint32(data), 0x0000ffff)
		}
		return
	}

	// 16-bit stores reach the DAC registers too. the sample is in the low
	// half of the register either way
	switch address &^ 3 {
	case memorymap.LTXD:
		mem.ltxd = int16(data)
		return
	case memorymap.RTXD:
		mem.rtxd = int16(data)
		if mem.mixer != nil {
			if err := mem.mixer.SetAudio(mem.ltxd, mem.rtxd); err != nil {
				logger.Logf("memory", "audio mixer: %v", err)
			}
		}
		return
	}

	mem.unmapped("word write", address)
}

// WriteLong implements the jagbus.Bus interface.
func (mem *Memory) WriteLong(address uint32, data uint32) {
	address &= memorymap.Memtop &^ 3
	if area, idx, ok := mem.area(address); ok {
		binary.BigEndian.PutUint32(area[idx:], data)
		return
	}
	if chip, offset, ok := mem.ctrl(address); ok {
		chip.CtrlWrite(offset, data, 0xffffffff)
		return
	}

	switch address {
	case memorymap.LTXD:
		mem.ltxd = int16(data)
		return
	case memorymap.RTXD:
		mem.rtxd = int16(data)
		if mem.mixer != nil {
			if err := mem.mixer.SetAudio(mem.ltxd, mem.rtxd); err != nil {
				logger.Logf("memory", "audio mixer: %v", err)
			}
		}
		return
	}

	mem.unmapped("long write", address)
}

// FetchWord implements the jagbus.Fetcher interface. The processors can
// only execute from RAM; a fetch from anywhere else is logged and decodes
// as an ADD R0,R0.
func (mem *Memory) FetchWord(address uint32) uint16 {
	address &= memorymap.Memtop &^ 1
	if area, idx, ok := mem.area(address); ok {
		return binary.BigEndian.Uint16(area[idx:])
	}
	mem.unmapped("instruction fetch", address)
	return 0
}

// Peek implements the jagbus.DebugBus interface. RAM only; control
// registers may have read side effects and are not peeked.
func (mem *Memory) Peek(address uint32) uint8 {
	address &= memorymap.Memtop
	if area, idx, ok := mem.area(address); ok {
		return area[idx]
	}
	return 0
}
