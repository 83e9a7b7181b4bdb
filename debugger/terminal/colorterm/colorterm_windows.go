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

//go:build windows

// Package colorterm is not available under windows.
package colorterm

import (
	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/debugger/terminal"
)

// ColorTerminal is a stub on windows. Initialise() always fails.
type ColorTerminal struct {
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	return curated.Errorf("colorterm: not available on windows")
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
}

// IsRealTerminal implements the terminal.Input interface.
func (ct *ColorTerminal) IsRealTerminal() bool {
	return false
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	return "", nil
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return false
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
}

// AppendHistory implements the terminal.Input interface.
func (ct *ColorTerminal) AppendHistory(line string) {
}

// MostRecentHistory implements the terminal.Input interface.
func (ct *ColorTerminal) MostRecentHistory() string {
	return ""
}
