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

	"github.com/gopheradvance/gopheradvance/debugger/commandline"
	"github.com/gopheradvance/gopheradvance/debugger/govern"
	"github.com/gopheradvance/gopheradvance/debugger/terminal"
)

// parseInput splits a line of input into a command and its argument text,
// and runs the command. the return value is true if a command ran, which is
// the condition for the line entering the input history. a command that ran
// but had nothing useful to do (missing arguments, say) still counts as
// having run.
//
// the argument text is parsed before the command name is looked up. a line
// with malformed arguments is rejected even when the command name is
// unknown.
func (dbg *Debugger) parseInput(input string) bool {
	cmd := input
	var args []commandline.Value

	if i := strings.Index(input, " "); i != -1 {
		cmd = input[:i]

		// register references in the argument text resolve at parse time.
		// the register file is passed by value so the snapshot is taken
		// here
		var err error
		args, err = commandline.ParseValues(input[i+1:], dbg.ga.CPU.Regs)
		if err != nil {
			dbg.printLine(terminal.StyleError, "Parse error")
			return false
		}
	}

	c, ok := commandline.Lookup(cmd)
	if !ok {
		dbg.printLine(terminal.StyleError, "Command not found")
		return false
	}

	dbg.processCommand(c.Op, args)

	return true
}

// firstValue returns the first argument and true when the argument list
// begins with an integer. commands that require an address use it.
func firstValue(args []commandline.Value) (uint32, bool) {
	if len(args) == 0 || args[0].Type != commandline.ValueInt {
		return 0, false
	}
	return args[0].N, true
}

// processCommand runs the operation named by an entry in the commandline
// package's Commands table.
func (dbg *Debugger) processCommand(op string, args []commandline.Value) {
	switch op {
	case commandline.OpBreak:
		address, ok := firstValue(args)
		if !ok {
			dbg.printLine(terminal.StyleError, "Arguments missing")
			return
		}
		dbg.breakpoints.add(address)

	case commandline.OpWatch:
		address, ok := firstValue(args)
		if !ok {
			dbg.printLine(terminal.StyleError, "Arguments missing")
			return
		}
		dbg.watches.add(address)

	case commandline.OpContinue:
		dbg.state = govern.Running

	case commandline.OpNext:
		dbg.step()
		dbg.printStatus()

	case commandline.OpStatus:
		dbg.printStatus()

	case commandline.OpPrint:
		s := strings.Builder{}
		for _, v := range args {
			s.WriteString(fmt.Sprintf(" %d", v.N))
		}
		dbg.printLine(terminal.StyleInstrument, s.String())

	case commandline.OpPrintHex:
		s := strings.Builder{}
		for _, v := range args {
			s.WriteString(fmt.Sprintf(" 0x%08X", v.N))
		}
		dbg.printLine(terminal.StyleInstrument, s.String())

	case commandline.OpReadByte:
		address, ok := firstValue(args)
		if !ok {
			dbg.printLine(terminal.StyleError, "Arguments missing")
			return
		}
		v, err := dbg.ga.CPU.Memory().Read8(address)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
			return
		}
		dbg.printLine(terminal.StyleInstrument, " 0x%02X", v)

	case commandline.OpReadHalfword:
		address, ok := firstValue(args)
		if !ok {
			dbg.printLine(terminal.StyleError, "Arguments missing")
			return
		}
		v, err := dbg.ga.CPU.Memory().Read16(address)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
			return
		}
		dbg.printLine(terminal.StyleInstrument, " 0x%04X", v)

	case commandline.OpReadWord:
		address, ok := firstValue(args)
		if !ok {
			dbg.printLine(terminal.StyleError, "Arguments missing")
			return
		}
		v, err := dbg.ga.CPU.Memory().Read32(address)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
			return
		}
		dbg.printLine(terminal.StyleInstrument, " 0x%08X", v)

	case commandline.OpBreakInto:
		if dbg.breakInto == nil {
			dbg.printLine(terminal.StyleFeedback, "No debugger attached!")
			return
		}
		dbg.breakInto()

	case commandline.OpQuit:
		dbg.state = govern.Shutdown
	}
}
