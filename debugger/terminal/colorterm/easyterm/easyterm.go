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

//go:build !windows

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gopheradvance/gopheradvance/curated"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions (in characters) of the output terminal.
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control the window-resize signal handler
	endHandlerSig chan bool
	endHandlerAck chan bool

	// geometry is written to by the signal handler goroutine. access through
	// the Geometry() function
	crit     sync.Mutex
	geometry TermGeometry
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf("easyterm: input file required")
	}
	if outputFile == nil {
		return curated.Errorf("easyterm: output file required")
	}

	et.input = inputFile
	et.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using.
	// raw and cbreak modes start from a copy of the canonical attributes so
	// that settings like output post-processing are preserved
	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	et.rawAttr = et.canAttr
	et.cbreakAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)
	termios.Cfmakecbreak(&et.cbreakAttr)

	// initial geometry. errors are of no consequence, the geometry is simply
	// left at zero
	_ = et.UpdateGeometry()

	// set up sig/ack channels for signal handler
	et.endHandlerSig = make(chan bool)
	et.endHandlerAck = make(chan bool)

	// keep geometry up to date whenever the window changes size
	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.endHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.endHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function.
func (et *EasyTerm) CleanUp() {
	et.endHandlerSig <- true
	<-et.endHandlerAck
}

// TermPrint writes the string to the output file. Formatting is only applied
// when arguments are supplied, so strings containing verb-like sequences are
// safe to print as-is.
func (et *EasyTerm) TermPrint(s string, a ...any) {
	if len(a) == 0 {
		et.output.WriteString(s)
	} else {
		et.output.WriteString(fmt.Sprintf(s, a...))
	}
	et.output.Sync()
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf("easyterm: %v", err)
	}

	et.crit.Lock()
	defer et.crit.Unlock()
	et.geometry = TermGeometry{Rows: ws.Row, Cols: ws.Col}

	return nil
}

// Geometry returns the most recently gathered terminal dimensions.
func (et *EasyTerm) Geometry() TermGeometry {
	et.crit.Lock()
	defer et.crit.Unlock()
	return et.geometry
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// RawMode puts terminal into raw mode.
func (et *EasyTerm) RawMode() {
	termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (et *EasyTerm) CBreakMode() {
	termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}
