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

package monitor

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherjaguar/curated"
	"github.com/jetsetilly/gopherjaguar/hardware"
	"github.com/jetsetilly/gopherjaguar/hardware/jagrisc"
	"github.com/jetsetilly/gopherjaguar/hardware/memory/jagbus"
	"github.com/jetsetilly/gopherjaguar/logger"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// the number of cycles given to each processor by the run command before
// control returns to the monitor.
const runCycles = 100000

// Monitor is an interactive, single-keypress front end to the emulated
// machine.
type Monitor struct {
	jag *hardware.Jaguar

	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewMonitor is the preferred method of initialisation for the Monitor
// type.
func NewMonitor(jag *hardware.Jaguar) (*Monitor, error) {
	mon := &Monitor{
		jag:    jag,
		input:  os.Stdin,
		output: os.Stdout,
	}

	if err := termios.Tcgetattr(mon.input.Fd(), &mon.canAttr); err != nil {
		return nil, curated.Errorf("monitor: %v", err)
	}

	termios.Cfmakecbreak(&mon.cbreakAttr)

	return mon, nil
}

func (mon *Monitor) cbreak() error {
	if err := termios.Tcsetattr(mon.input.Fd(), termios.TCIFLUSH, &mon.cbreakAttr); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	return nil
}

func (mon *Monitor) canonical() error {
	if err := termios.Tcsetattr(mon.input.Fd(), termios.TCIFLUSH, &mon.canAttr); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	return nil
}

func (mon *Monitor) print(s string, a ...interface{}) {
	fmt.Fprintf(mon.output, s, a...)
}

// Launch the monitor loop. The function returns when the user quits.
func (mon *Monitor) Launch() (rerr error) {
	if err := mon.cbreak(); err != nil {
		return err
	}
	defer func() {
		if err := mon.canonical(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	mon.print("gopherjaguar monitor. 'h' for help\n")

	buf := make([]byte, 1)
	for {
		if _, err := mon.input.Read(buf); err != nil {
			return curated.Errorf("monitor: %v", err)
		}

		switch buf[0] {
		case 'h':
			mon.print("s step    r run     g Tom state    d Jerry state\n")
			mon.print("x Tom mem    y Jerry mem    m dump    l log    q quit\n")

		case 's':
			mon.jag.Step()
			mon.printPCs()

		case 'r':
			gpu := mon.jag.GPU.Run(runCycles)
			dsp := mon.jag.DSP.Run(runCycles)
			mon.print("ran for %d (Tom) and %d (Jerry) cycles\n", gpu, dsp)
			mon.printPCs()

		case 'g':
			mon.print("%s\n", mon.jag.GPU.String())

		case 'd':
			mon.print("%s\n", mon.jag.DSP.String())

		case 'x':
			mon.peek(mon.jag.GPU)

		case 'y':
			mon.peek(mon.jag.DSP)

		case 'm':
			if err := mon.dump(); err != nil {
				mon.print("%v\n", err)
			}

		case 'l':
			logger.Tail(mon.output, 10)

		case 'q':
			return nil
		}
	}
}

// peek hex-dumps the memory around a processor's program counter. access
// is through the debugging bus so nothing on the real bus is disturbed.
func (mon *Monitor) peek(cor *jagrisc.Core) {
	var bus jagbus.DebugBus = mon.jag.Mem

	addr := cor.PC() &^ 0x0f
	for i := 0; i < 2; i++ {
		mon.print("%06x:", addr)
		for j := 0; j < 16; j++ {
			mon.print(" %02x", bus.Peek(addr))
			addr++
		}
		mon.print("\n")
	}
}

func (mon *Monitor) printPCs() {
	mon.print("Tom pc=%06x  Jerry pc=%06x\n", mon.jag.GPU.PC(), mon.jag.DSP.PC())
}

// dump writes a graphviz representation of the machine state to disk.
func (mon *Monitor) dump() error {
	const dumpFile = "machine_state.dot"

	f, err := os.Create(dumpFile)
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer f.Close()

	type state struct {
		GPUStatus jagrisc.Status
		DSPStatus jagrisc.Status
		GPUPC     uint32
		DSPPC     uint32
	}
	s := &state{
		GPUStatus: mon.jag.GPU.Status(),
		DSPStatus: mon.jag.DSP.Status(),
		GPUPC:     mon.jag.GPU.PC(),
		DSPPC:     mon.jag.DSP.PC(),
	}

	memviz.Map(f, s)
	mon.print("machine state written to %s\n", dumpFile)

	return nil
}
