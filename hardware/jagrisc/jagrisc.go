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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherjaguar/curated"
	"github.com/jetsetilly/gopherjaguar/hardware/memory/jagbus"
	"github.com/jetsetilly/gopherjaguar/hardware/memory/memorymap"
)

// Variant selects which of the two RISC processors a Core emulates.
type Variant int

// the two variants. the GPU lives in the Tom chip, the DSP in Jerry.
const (
	GPU Variant = iota
	DSP
)

func (v Variant) String() string {
	switch v {
	case GPU:
		return "Tom"
	case DSP:
		return "Jerry"
	}
	return "unknown"
}

// indices into the control register file. offsets into the memory-mapped
// window are the index multiplied by four.
const (
	Flags         = 0
	MatrixControl = 1
	MatrixAddress = 2
	Endianness    = 3
	PC            = 4
	Control       = 5
	HiData        = 6
	DivControl    = 7
	MacHi         = 8
	Remainder     = 9

	NumCtrlRegisters = 10

	// the DSP names register six MOD; the bits double as the modulo mask
	// for ADDQMOD and SUBQMOD
	Modulo = HiData
)

// sentinel for "no bank switch in flight". far enough from any reachable
// icount that the comparison in Run() can never match by accident.
const noBankSwitch = -1000

// Core is a single RISC processor of either variant.
type Core struct {
	variant Variant
	mem     jagbus.Memory

	// regs is the active bank, alt the inactive one. the banks are swapped
	// by contents rather than by pointer so that regs[n] is always the
	// visible register n
	regs [32]uint32
	alt  [32]uint32

	// which bank regs currently holds
	bank uint32

	pc  uint32
	ppc uint32

	status Status
	ctrl   [NumCtrlRegisters]uint32

	// the multiply-accumulate chain runs at 64 bits internally
	acc int64

	// cycles remaining in the current Run() call. bankSwitchIcount records
	// the icount value of the instruction after a bank switch; while icount
	// equals it, JUMP reads its source register from the old bank
	icount           int
	bankSwitchIcount int

	table *[64]func(*Core, uint16)

	// geometry of this variant
	ramOrigin  uint32
	ramMemtop  uint32
	vectorBase uint32
	levels     int
	version    uint32

	// called when the processor raises an interrupt on the host CPU
	cpuInterrupt func(bool)
}

// NewCore is the preferred method of initialisation for the Core type.
func NewCore(variant Variant, mem jagbus.Memory) (*Core, error) {
	if mem == nil {
		return nil, curated.Errorf("jagrisc: %v", "memory bus is nil")
	}

	cor := &Core{
		variant: variant,
		mem:     mem,
		version: 2,
	}

	initTables()

	switch variant {
	case GPU:
		cor.ramOrigin = memorymap.GPURAMOrigin
		cor.ramMemtop = memorymap.GPURAMMemtop
		cor.vectorBase = memorymap.GPURAMOrigin
		cor.levels = 5
		cor.table = &gpuTable
	case DSP:
		cor.ramOrigin = memorymap.DSPRAMOrigin
		cor.ramMemtop = memorymap.DSPRAMMemtop
		cor.vectorBase = memorymap.DSPRAMOrigin
		cor.levels = 6
		cor.table = &dspTable
	default:
		return nil, curated.Errorf("jagrisc: unsupported variant [%d]", int(variant))
	}

	cor.Reset()

	return cor, nil
}

// Snapshot creates a copy of the Core in its current state. The returned
// copy shares nothing with the original except the memory bus.
func (cor *Core) Snapshot() *Core {
	n := *cor
	return &n
}

// Plumb a new memory bus into the Core. Useful after a Snapshot() has been
// restored into a rewound machine.
func (cor *Core) Plumb(mem jagbus.Memory) {
	cor.mem = mem
}

// Reset the Core to its power-on state. Execution is stopped, bank zero is
// selected and all registers are cleared.
func (cor *Core) Reset() {
	for i := range cor.regs {
		cor.regs[i] = 0
		cor.alt[i] = 0
	}
	cor.bank = 0
	cor.pc = 0
	cor.ppc = 0
	cor.status = Status{}
	for i := range cor.ctrl {
		cor.ctrl[i] = 0
	}
	cor.acc = 0
	cor.icount = 0
	cor.bankSwitchIcount = noBankSwitch
}

// Variant returns which processor this Core emulates.
func (cor *Core) Variant() Variant {
	return cor.variant
}

// Register returns the value of a register in the active bank.
func (cor *Core) Register(reg int) uint32 {
	return cor.regs[reg&31]
}

// AltRegister returns the value of a register in the inactive bank.
func (cor *Core) AltRegister(reg int) uint32 {
	return cor.alt[reg&31]
}

// PC returns the address of the next instruction to be fetched.
func (cor *Core) PC() uint32 {
	return cor.pc
}

// LastPC returns the address of the most recently executed instruction.
func (cor *Core) LastPC() uint32 {
	return cor.ppc
}

// Status returns a copy of the unpacked flags register.
func (cor *Core) Status() Status {
	return cor.status
}

// Running returns true if the processor's GO bit is set.
func (cor *Core) Running() bool {
	return cor.ctrl[Control]&0x01 == 0x01
}

// SetCPUInterrupt registers the function called when the processor asserts
// (or withdraws) its interrupt line to the host CPU.
func (cor *Core) SetCPUInterrupt(f func(bool)) {
	cor.cpuInterrupt = f
}

// Run executes instructions until the cycle budget is exhausted or the
// processor halts itself. It returns the number of cycles consumed.
//
// Timing is approximate. Every instruction costs one cycle except JUMP and
// JR, which cost four. The opcodes absorbed into an IMULTN chain cost
// nothing beyond the dispatching instruction.
func (cor *Core) Run(cycles int) int {
	cor.icount = cycles

	if !cor.Running() {
		return 0
	}

	cor.checkIRQs()

	cor.bankSwitchIcount = noBankSwitch

	for {
		cor.ppc = cor.pc
		opcode := cor.mem.FetchWord(cor.pc)
		cor.pc += 2
		cor.table[opcode>>10](cor, opcode)
		cor.icount--

		if cor.icount <= 0 && cor.icount != cor.bankSwitchIcount {
			break
		}
		if !cor.Running() {
			break
		}
	}

	return cycles - cor.icount
}

func (cor *Core) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: pc=%06x flags=%s bank=%d\n", cor.variant, cor.pc, cor.status, cor.bank))
	for i := 0; i < 32; i++ {
		s.WriteString(fmt.Sprintf("r%02d=%08x", i, cor.regs[i]))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}
	return s.String()
}
