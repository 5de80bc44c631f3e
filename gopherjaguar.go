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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopherjaguar/hardware"
	"github.com/jetsetilly/gopherjaguar/hardware/jagrisc"
	"github.com/jetsetilly/gopherjaguar/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherjaguar/logger"
	"github.com/jetsetilly/gopherjaguar/modalflag"
	"github.com/jetsetilly/gopherjaguar/monitor"
	"github.com/jetsetilly/gopherjaguar/statsview"
	"github.com/jetsetilly/gopherjaguar/version"
	"github.com/jetsetilly/gopherjaguar/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "MONITOR":
		err = mon(md)

	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Revision)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// prepare assembles a machine from the mode's common flags and loads the
// program named in the remaining arguments.
func prepare(md *modalflag.Modes, core *string, org *uint, wav *string) (*hardware.Jaguar, *jagrisc.Core, func() error, error) {
	cleanup := func() error { return nil }

	if len(md.RemainingArgs()) != 1 {
		return nil, nil, cleanup, fmt.Errorf("a program binary is required for %s mode", md)
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, nil, cleanup, err
	}

	jag, err := hardware.NewJaguar()
	if err != nil {
		return nil, nil, cleanup, err
	}

	var cor *jagrisc.Core
	switch strings.ToUpper(*core) {
	case "GPU", "TOM":
		cor = jag.GPU
	case "DSP", "JERRY":
		cor = jag.DSP
	default:
		return nil, nil, cleanup, fmt.Errorf("unrecognised processor [%s]", *core)
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return nil, nil, cleanup, err
		}
		jag.AttachMixer(aw)
		cleanup = aw.EndMixing
	}

	origin := uint32(*org)
	if err := jag.LoadProgram(origin, data); err != nil {
		return nil, nil, cleanup, err
	}
	jag.Boot(cor, origin)

	return jag, cor, cleanup, nil
}

func run(md *modalflag.Modes) (rerr error) {
	md.NewMode()

	core := md.AddString("processor", "GPU", "processor to boot: GPU, DSP")
	org := md.AddUint("org", uint(memorymap.GPURAMOrigin), "load address of the program binary")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, "launch statistics server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not supported in this build")
		}
	}

	jag, cor, cleanup, err := prepare(md, core, org, wav)
	defer func() {
		if err := cleanup(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	if err != nil {
		return err
	}

	// stop the emulation politely on ctrl-c
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	err = jag.Run(func() (bool, error) {
		select {
		case <-intChan:
			return false, nil
		default:
		}
		return true, nil
	})
	if err != nil {
		return err
	}

	fmt.Println(cor.String())

	return nil
}

func mon(md *modalflag.Modes) (rerr error) {
	md.NewMode()

	core := md.AddString("processor", "GPU", "processor to boot: GPU, DSP")
	org := md.AddUint("org", uint(memorymap.GPURAMOrigin), "load address of the program binary")
	wav := md.AddString("wav", "", "record audio to wav file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	jag, _, cleanup, err := prepare(md, core, org, wav)
	defer func() {
		if err := cleanup(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	if err != nil {
		return err
	}

	m, err := monitor.NewMonitor(jag)
	if err != nil {
		return err
	}

	return m.Launch()
}
