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
	"errors"
	"io"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/debugger/govern"
	"github.com/gopheradvance/gopheradvance/debugger/terminal"
)

// inputLoop is the command line of the debugger. it prints the machine
// status once on entry and then reads and processes input for as long as
// the machine is paused.
func (dbg *Debugger) inputLoop() error {
	dbg.printStatus()

	for dbg.state == govern.Paused {
		inp, err := dbg.term.TermRead(debuggerPrompt, dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.handleInterrupt()
				continue
			}

			// exhausted input is how non-interactive sessions end. the
			// Exiting state tells the caller that the machine is still
			// runnable
			if errors.Is(err, io.EOF) {
				dbg.state = govern.Exiting
				return nil
			}

			return err
		}

		// a blank line replays the most recent line in the history. the
		// replayed line is not recorded a second time
		if inp == "" {
			if last := dbg.term.MostRecentHistory(); last != "" {
				dbg.parseInput(last)
			}
			continue
		}

		// only lines that run a command enter the history. lines that fail
		// to parse or that name an unknown command are not worth recalling
		if dbg.parseInput(inp) {
			dbg.term.AppendHistory(inp)
		}
	}

	return nil
}

// handleInterrupt is called when terminal input is interrupted, usually by
// the user pressing ctrl-c at the prompt.
func (dbg *Debugger) handleInterrupt() {
	// without a user to confirm with, an interrupt is decisive
	if !dbg.term.IsRealTerminal() {
		dbg.state = govern.Shutdown
		return
	}

	confirm, err := dbg.term.TermRead(terminal.Prompt{
		Type:    terminal.PromptTypeConfirm,
		Content: "really quit (y/n) ",
	}, dbg.events)

	if err != nil {
		// another interrupt during confirmation is treated as if 'y' had
		// been typed
		if curated.Is(err, terminal.UserInterrupt) {
			confirm = "y"
		} else {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	if len(confirm) > 0 && (confirm[0] == 'y' || confirm[0] == 'Y') {
		dbg.state = govern.Shutdown
	}
}
