// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/debugger"
	"github.com/gopheradvance/gopheradvance/debugger/govern"
	"github.com/gopheradvance/gopheradvance/debugger/terminal"
	"github.com/gopheradvance/gopheradvance/debugger/terminal/colorterm"
	"github.com/gopheradvance/gopheradvance/debugger/terminal/plainterm"
	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/logger"
	"github.com/gopheradvance/gopheradvance/modalflag"
	"github.com/gopheradvance/gopheradvance/performance"
	"github.com/gopheradvance/gopheradvance/regression"
	"github.com/gopheradvance/gopheradvance/statsview"
	"github.com/gopheradvance/gopheradvance/version"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("DEBUG", "RUN", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "DEBUG":
		err = debug(md)
	case "RUN":
		err = run(md)
	case "REGRESS":
		err = regress(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "AUTO", "terminal type to use in debug mode: AUTO, PLAIN, COLOR")
	memvizFile := md.AddString("memviz", "", "file to write a graph of the machine to on break-into")
	profile := md.AddString("profile", "none", "run debugger through profiler: NONE, CPU, MEM, ALL")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stderr), false)
	} else {
		logger.SetEcho(nil, false)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("GA32 cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ga := hardware.NewGA32()

	err = ga.AttachCartridge(cartridgeloader.NewLoader(md.GetArg(0)))
	if err != nil {
		return err
	}

	var trm terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "AUTO":
		// color terminal unless stdout has been redirected
		if term.IsTerminal(int(os.Stdout.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = &plainterm.PlainTerminal{}
		}
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		trm = &plainterm.PlainTerminal{}
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.NewDebugger(ga, trm)
	if err != nil {
		return err
	}

	// the break-into handler dumps the machine as an object graph. a
	// stand-in for attaching a native debugger to the process
	if *memvizFile != "" {
		dbg.RegisterBreakInto(func() {
			f, err := os.Create(*memvizFile)
			if err != nil {
				logger.Logf(logger.Allow, "memviz", "%v", err)
				return
			}
			defer f.Close()
			memviz.Map(f, ga)
		})
	}

	err = performance.RunProfiler(prof, "debugger", dbg.Start)
	if err != nil {
		return err
	}

	// the end of input is not the end of the machine. continue running
	// without the debugger
	if dbg.State() == govern.Exiting {
		return runHeadless(ga)
	}

	return nil
}

// runHeadless continues a machine that has outlived its debugging session,
// honouring ctrl-c.
func runHeadless(ga *hardware.GA32) error {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	performanceBrake := 0
	return ga.Run(func() (govern.State, error) {
		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-intChan:
				return govern.Exiting, nil
			default:
			}
		}
		return govern.Running, nil
	})
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	profile := md.AddString("profile", "none", "run emulation through profiler: NONE, CPU, MEM, ALL")
	duration := md.AddString("duration", "", "emulation run time (eg. 10s). empty means until the program halts")
	uncapped := md.AddBool("uncapped", false, "run as fast as possible")
	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, false)
	} else {
		logger.SetEcho(nil, false)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview not supported in this build")
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("GA32 cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	return performance.Check(md.Output, prof, cartridgeloader.NewLoader(md.GetArg(0)), *duration, *uncapped, intChan)
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		err = regression.RegressRun(md.Output, *verbose, md.RemainingArgs())
		if err != nil {
			return err
		}

	case "LIST":
		md.NewMode()

		// no additional arguments

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			err := regression.RegressList(md.Output)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless the "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			err := regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", "STATE", "type of regression entry: STATE, LOG")
	notes := md.AddString("notes", "", "additional annotation for the database")
	instructions := md.AddInt("instructions", 1000, "number of instructions to run")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`The regression test to be added is the path to a GA32 cartridge file.

The STATE mode fingerprints the machine state after every instruction of the
run. The LOG mode fingerprints the debugging log produced by the run.

The -log flag instructs the program to echo the log to the console. Do not
confuse this with the LOG mode. Note that asking for log output will suppress
regression progress meters.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, false)
		md.Output = &nopWriter{}
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("GA32 cartridge required for %s mode", md)
	case 1:
		var reg regression.Regressor

		cartload := cartridgeloader.NewLoader(md.GetArg(0))

		switch strings.ToUpper(*mode) {
		case "STATE":
			reg = &regression.StateRegression{
				CartLoad:        cartload,
				NumInstructions: *instructions,
				Notes:           *notes,
			}
		case "LOG":
			reg = &regression.LogRegression{
				CartLoad:        cartload,
				NumInstructions: *instructions,
				Notes:           *notes,
			}
		default:
			return fmt.Errorf("unrecognised regression mode (%s)", *mode)
		}

		err := regression.RegressAdd(md.Output, reg)
		if err != nil {
			// using carriage return (without newline) at the beginning of
			// the error message because we want to overwrite the last output
			// from RegressAdd()
			return fmt.Errorf("\rerror adding regression test: %v", err)
		}
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s (%s)\n", version.ApplicationName, ver)
	if *revision {
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}

// nopWriter is an empty writer.
type nopWriter struct{}

func (*nopWriter) Write(p []byte) (n int, err error) {
	return 0, nil
}

// yesReader always returns 'y' when read.
type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}
