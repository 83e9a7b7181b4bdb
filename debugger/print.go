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
	"fmt"
	"strings"

	"github.com/gopheradvance/gopheradvance/debugger/terminal"
)

// all print operations from the debugger should be made with the printLine()
// function. output is normalised and sent to the attached terminal.
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...interface{}) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}

	// remove all trailing newlines, and return if the resulting string is
	// empty
	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	dbg.term.TermPrintLine(sty, s)
}

// printStatus is the main status output of the debugger: the contents of the
// registers, the status flags and the encoding of the instruction that has
// just been executed.
//
// it is printed whenever the machine pauses and in response to the status
// command.
func (dbg *Debugger) printStatus() {
	dbg.printLine(terminal.StyleCPUStep, dbg.ga.CPU.Regs.String())
	dbg.printLine(terminal.StyleCPUStep, dbg.ga.CPU.PSR.String())

	// the encoding is refetched from memory rather than taken from the
	// CPU's own record of execution. the address is derived from the
	// current PC and the current instruction width, and the read goes
	// through the current bus, the same way any data read would
	mem := dbg.ga.CPU.Memory()

	if dbg.ga.CPU.PSR.Narrow {
		enc, err := mem.Read16(dbg.ga.CPU.Regs.PC() - 2)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
			return
		}
		dbg.printLine(terminal.StyleCPUStep, "%04X", enc)
	} else {
		enc, err := mem.Read32(dbg.ga.CPU.Regs.PC() - 4)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
			return
		}
		dbg.printLine(terminal.StyleCPUStep, "%08X", enc)
	}
}
