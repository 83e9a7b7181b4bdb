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

package debugger

import (
	"os"
	"os/signal"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/debugger/commandline"
	"github.com/gopheradvance/gopheradvance/debugger/govern"
	"github.com/gopheradvance/gopheradvance/debugger/terminal"
	"github.com/gopheradvance/gopheradvance/hardware"
)

// Debugger is the command line debugging frontend for the emulation. The
// debugger and the machine it is driving run in the same goroutine: when the
// machine is running the debugger is in its run loop, and when the machine
// is paused the debugger is at the terminal prompt.
type Debugger struct {
	ga   *hardware.GA32
	term terminal.Terminal

	// current state of the debugger. the zero value is Paused, which is the
	// state the debugger starts in
	state govern.State

	// events that can occur while the terminal is waiting for input. the
	// signal channel is also polled by the run loop so that an interrupt
	// pauses a running machine
	events *terminal.ReadEvents

	breakpoints *breakpoints
	watches     *watches

	// function registered with RegisterBreakInto(). called by the "x"
	// command to hand control to an external diagnostic
	breakInto func()
}

// the prompt presented by the input loop. the confirmation prompt used when
// quitting is built where it is needed.
var debuggerPrompt = terminal.Prompt{
	Type:    terminal.PromptTypeCommand,
	Content: "> ",
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The machine being debugged should already have its cartridge
// attached.
func NewDebugger(ga *hardware.GA32, term terminal.Terminal) (*Debugger, error) {
	if ga == nil {
		return nil, curated.Errorf("debugger: no hardware to debug")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: no terminal")
	}

	dbg := &Debugger{
		ga:   ga,
		term: term,
	}

	dbg.breakpoints = newBreakpoints(dbg)
	dbg.watches = newWatches(dbg)

	// interrupt signals received while reading terminal input surface as a
	// UserInterrupt error from TermRead(). signals received while the
	// machine is running are handled by checkEvents()
	dbg.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(_ os.Signal) error {
			return curated.Errorf(terminal.UserInterrupt)
		},
	}
	signal.Notify(dbg.events.Signal, os.Interrupt)

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(commandline.Commands))

	return dbg, nil
}

// State returns the debugger state at the time of the call. Once Start()
// has returned it distinguishes a debugger that has been quit (Shutdown)
// from one whose input was exhausted (Exiting): in the latter case the
// machine is still runnable.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// RegisterBreakInto supplies the function run by the "x" command. Without a
// registered function the command reports that no external diagnostic is
// attached.
func (dbg *Debugger) RegisterBreakInto(f func()) {
	dbg.breakInto = f
}

// Start the debugger. The debugger retains control of the machine until the
// user explicitly quits or terminal input is exhausted.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	err = dbg.run()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	return nil
}

// run is the outer loop of the debugger. it alternates between running the
// machine and the input loop, according to the current state.
func (dbg *Debugger) run() error {
	if dbg.state == govern.Exiting {
		dbg.state = govern.Running
	}

	for dbg.state < govern.Exiting {
		// how the machine is driven depends on whether there are any
		// breakpoints to check. the choice is fixed for the duration of one
		// spell in the Running state: a breakpoint added while the machine
		// is running is not checked until the next time the machine is set
		// running
		if dbg.breakpoints.isEmpty() {
			for dbg.state == govern.Running {
				dbg.step()
				dbg.checkEvents()
			}
		} else {
			for dbg.state == govern.Running {
				dbg.step()
				dbg.breakpoints.check()
				dbg.checkEvents()
			}
		}

		switch dbg.state {
		case govern.Paused:
			err := dbg.inputLoop()
			if err != nil {
				return err
			}
		case govern.Exiting, govern.Shutdown:
			return nil
		}
	}

	return nil
}

// step the CPU one instruction. errors from the CPU do not stop the
// debugging session, they pause the machine so the session can continue.
func (dbg *Debugger) step() {
	err := dbg.ga.CPU.Step()
	if err != nil {
		dbg.printLine(terminal.StyleError, "%s", err)
		dbg.state = govern.Paused
		return
	}

	if dbg.ga.CPU.Halted {
		dbg.printLine(terminal.StyleFeedback, "CPU halted")
		dbg.state = govern.Paused
		return
	}

	// a BKPT instruction pauses without comment. the status print on
	// entering the input loop says everything there is to say
	if dbg.ga.CPU.BreakRequest {
		dbg.state = govern.Paused
	}
}

// checkEvents polls the events that can pause a running machine. it never
// blocks.
func (dbg *Debugger) checkEvents() {
	select {
	case <-dbg.events.Signal:
		dbg.state = govern.Paused
	default:
	}

	// typed-ahead input pauses the machine so the input loop can deal with
	// it. terminals that cannot check for pending input always report false
	if dbg.term.TermReadCheck() {
		dbg.state = govern.Paused
	}
}
