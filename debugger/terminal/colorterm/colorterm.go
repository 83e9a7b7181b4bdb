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

// Package colorterm implements the Terminal interface for the GopherAdvance
// debugger. It supports color output, command history and tab completion.
package colorterm

import (
	"os"

	"github.com/gopheradvance/gopheradvance/debugger/terminal"
	"github.com/gopheradvance/gopheradvance/debugger/terminal/colorterm/easyterm"
)

// the maximum number of entries in the command history. the oldest entry is
// lost when a new entry tips the history over this limit.
const maxHistory = 200

// ColorTerminal implements the debugger's Terminal interface with a basic
// ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader        runeReader
	history       []string
	tabCompletion terminal.TabCompletion
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.history = make([]string, 0, maxHistory)
	ct.reader = initRuneReader(os.Stdin)

	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsRealTerminal implements the terminal.Input interface.
func (ct *ColorTerminal) IsRealTerminal() bool {
	return true
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return false
}

// AppendHistory implements the terminal.Input interface. Empty lines and
// lines that repeat the most recent entry are not recorded.
func (ct *ColorTerminal) AppendHistory(line string) {
	if line == "" {
		return
	}
	if len(ct.history) > 0 && ct.history[len(ct.history)-1] == line {
		return
	}
	if len(ct.history) >= maxHistory {
		ct.history = ct.history[1:]
	}
	ct.history = append(ct.history, line)
}

// MostRecentHistory implements the terminal.Input interface.
func (ct *ColorTerminal) MostRecentHistory() string {
	if len(ct.history) == 0 {
		return ""
	}
	return ct.history[len(ct.history)-1]
}
