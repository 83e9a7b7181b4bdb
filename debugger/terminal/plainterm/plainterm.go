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

// Package plainterm implements the Terminal interface of the debugger
// package. It is a simple as-is implementation of the io.Reader and io.Writer
// interfaces with no special features.
package plainterm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gopheradvance/gopheradvance/debugger/terminal"

	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps no
// state between reads except for the most recent line of input.
type PlainTerminal struct {
	input  io.Reader
	output io.Writer

	// the last line of input successfully submitted through the terminal.
	// plain terminals have no scrollable history, just the most recent entry.
	lastInput string

	// if both of these flags are true then the terminal is considered to be
	// a real terminal
	realInput  bool
	realOutput bool

	buffer []byte
}

// Initialise performs any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout

	if f, ok := pt.input.(*os.File); ok {
		pt.realInput = term.IsTerminal(int(f.Fd()))
	}

	if f, ok := pt.output.(*os.File); ok {
		pt.realOutput = term.IsTerminal(int(f.Fd()))
	}

	pt.buffer = make([]byte, 255)

	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// terminal. Plain terminals have no use for tab completion.
func (pt *PlainTerminal) RegisterTabCompletion(terminal.TabCompletion) {
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	// we don't need to echo user input for plain terminals
	if style == terminal.StyleEcho {
		return
	}

	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	}

	pt.output.Write([]byte(s))
	pt.output.Write([]byte("\n"))
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	// there is no need to print the prompt if the input is not from a real
	// terminal
	if pt.realInput {
		pt.output.Write([]byte(prompt.String()))
	}

	n, err := pt.input.Read(pt.buffer)
	if err != nil {
		return "", err
	}

	// check for events that may have occurred while we were waiting for the
	// read to return
	select {
	case sig := <-events.Signal:
		return "", events.SignalHandler(sig)
	default:
	}

	return strings.TrimRight(string(pt.buffer[:n]), "\r\n"), nil
}

// TermReadCheck implements the terminal.Input interface.
func (pt *PlainTerminal) TermReadCheck() bool {
	return false
}

// IsRealTerminal implements the terminal.Input interface.
func (pt *PlainTerminal) IsRealTerminal() bool {
	return pt.realInput && pt.realOutput
}

// AppendHistory implements the terminal.Input interface.
func (pt *PlainTerminal) AppendHistory(line string) {
	if line == "" {
		return
	}
	pt.lastInput = line
}

// MostRecentHistory implements the terminal.Input interface.
func (pt *PlainTerminal) MostRecentHistory() string {
	return pt.lastInput
}
