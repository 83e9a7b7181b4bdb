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

package terminal

import (
	"os"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input from the user. the returned
	// line never includes the line terminator.
	//
	// If possible the TermRead() implementation should check the ReadEvents
	// channels for activity while waiting for input. Not all implementations
	// will be able to do so because of the context in which they operate.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// TermReadCheck returns true if there is input waiting to be read. Not
	// all implementations can return anything meaningful, in which case a
	// return value of false is fine.
	TermReadCheck() bool

	// IsRealTerminal returns true if the terminal is connected to a real
	// terminal device and to a user who can respond to prompts.
	IsRealTerminal() bool

	// AppendHistory records a line of input so that it can be recalled
	// later. recording is always the caller's responsibility: terminal
	// implementations must not record lines of their own accord.
	AppendHistory(line string)

	// MostRecentHistory returns the most recently recorded line of input,
	// or the empty string if nothing has been recorded.
	MostRecentHistory() string
}

// Sentinel errors returned by TermRead(). Not all terminal implementations
// will return these errors because of the context in which they operate: in
// those instances signals are caught by the Signal channel in the ReadEvents
// type instead.
const (
	UserInterrupt = "user interrupt"
)

// ReadEvents encapsulates the events that can occur while the terminal is
// waiting for input.
type ReadEvents struct {
	// interrupt signals from the operating system. SignalHandler is called
	// with any signal received during a TermRead(). a non-nil error from the
	// handler is returned to the TermRead() caller.
	Signal        chan os.Signal
	SignalHandler func(sig os.Signal) error
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	// Terminal implementations also implement the Input and Output
	// interfaces.
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need
	// to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// we could use this to make sure the terminal is returned to canonical
	// mode. not all terminal implementations will need to do anything.
	CleanUp()

	// Register a tab completion implementation to use with the terminal.
	// Not all implementations need to respond meaningfully to this.
	RegisterTabCompletion(TabCompletion)
}

// TabCompletion defines the operations required for tab completion. A good
// implementation can be found in the commandline package.
type TabCompletion interface {
	Complete(input string) string
}
