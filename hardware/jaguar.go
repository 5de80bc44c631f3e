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

package hardware

import (
	"github.com/jetsetilly/gopherjaguar/curated"
	"github.com/jetsetilly/gopherjaguar/hardware/jagrisc"
	"github.com/jetsetilly/gopherjaguar/hardware/memory"
	"github.com/jetsetilly/gopherjaguar/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherjaguar/logger"
)

// Jaguar is the RISC side of the console in a single instance.
type Jaguar struct {
	Mem *memory.Memory
	GPU *jagrisc.Core
	DSP *jagrisc.Core
}

// NewJaguar is the preferred method of initialisation for the Jaguar type.
func NewJaguar() (*Jaguar, error) {
	jag := &Jaguar{}

	jag.Mem = memory.NewMemory()

	var err error

	jag.GPU, err = jagrisc.NewCore(jagrisc.GPU, jag.Mem)
	if err != nil {
		return nil, curated.Errorf("jaguar: %v", err)
	}

	jag.DSP, err = jagrisc.NewCore(jagrisc.DSP, jag.Mem)
	if err != nil {
		return nil, curated.Errorf("jaguar: %v", err)
	}

	jag.Mem.Plumb(jag.GPU, jag.DSP)

	// there is no 68000 in this machine. note the assertion and move on
	jag.GPU.SetCPUInterrupt(func(state bool) {
		if state {
			logger.Logf("jaguar", "Tom asserted the CPU interrupt line")
		}
	})
	jag.DSP.SetCPUInterrupt(func(state bool) {
		if state {
			logger.Logf("jaguar", "Jerry asserted the CPU interrupt line")
		}
	})

	return jag, nil
}

// Reset both processors. Memory contents are left alone.
func (jag *Jaguar) Reset() {
	jag.GPU.Reset()
	jag.DSP.Reset()
}

// Snapshot creates a copy of the machine in its current state.
func (jag *Jaguar) Snapshot() *Jaguar {
	n := &Jaguar{
		Mem: jag.Mem.Snapshot(),
		GPU: jag.GPU.Snapshot(),
		DSP: jag.DSP.Snapshot(),
	}
	n.Plumb()
	return n
}

// Plumb reconnects the components of the machine after a Snapshot() has
// been restored.
func (jag *Jaguar) Plumb() {
	jag.GPU.Plumb(jag.Mem)
	jag.DSP.Plumb(jag.Mem)
	jag.Mem.Plumb(jag.GPU, jag.DSP)
}

// AttachMixer forwards DAC samples to the mixer.
func (jag *Jaguar) AttachMixer(mixer memory.AudioMixer) {
	jag.Mem.AttachMixer(mixer)
}

// LoadProgram copies a program image into the address space at the given
// origin. The image must fit inside a RAM area.
func (jag *Jaguar) LoadProgram(origin uint32, data []byte) error {
	if len(data) == 0 {
		return curated.Errorf("jaguar: %v", "empty program")
	}

	end := origin + uint32(len(data)) - 1
	ok := end <= memorymap.RAMMemtop ||
		(origin >= memorymap.GPURAMOrigin && end <= memorymap.GPURAMMemtop) ||
		(origin >= memorymap.DSPRAMOrigin && end <= memorymap.DSPRAMMemtop)
	if !ok {
		return curated.Errorf("jaguar: program does not fit at %06x", origin)
	}

	for i, b := range data {
		jag.Mem.WriteByte(origin+uint32(i), b)
	}

	return nil
}

// Boot points a processor at an address and sets it running.
func (jag *Jaguar) Boot(cor *jagrisc.Core, address uint32) {
	cor.CtrlWrite(jagrisc.PC, address, 0xffffffff)
	cor.CtrlWrite(jagrisc.Control, 0x01, 0xffffffff)
}

// Halt clears a processor's GO bit.
func (jag *Jaguar) Halt(cor *jagrisc.Core) {
	cor.CtrlWrite(jagrisc.Control, 0x00, 0x01)
}
