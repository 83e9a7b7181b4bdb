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
	"github.com/gopheradvance/gopheradvance/debugger/govern"
	"github.com/gopheradvance/gopheradvance/debugger/terminal"
)

// breakpoint is an address at which execution should pause after the
// instruction there has been executed.
type breakpoint struct {
	address uint32
}

// breakpoints is the list of breakpoints and the check the run loop applies
// after every instruction.
type breakpoints struct {
	dbg *Debugger

	breakpoints []breakpoint
}

// newBreakpoints is the preferred method of initialisation for the
// breakpoints type.
func newBreakpoints(dbg *Debugger) *breakpoints {
	bpt := &breakpoints{dbg: dbg}
	bpt.breakpoints = make([]breakpoint, 0, 10)
	return bpt
}

func (bpt *breakpoints) isEmpty() bool {
	return len(bpt.breakpoints) == 0
}

func (bpt *breakpoints) add(address uint32) {
	bpt.breakpoints = append(bpt.breakpoints, breakpoint{address: address})
}

// check compares the program counter with every breakpoint, pausing the
// machine on the first match. by the time check is run the PC has advanced
// past the instruction that triggers the breakpoint, so the comparison
// allows for one instruction width. the width is taken from the current
// width flag.
func (bpt *breakpoints) check() {
	width := uint32(4)
	if bpt.dbg.ga.CPU.PSR.Narrow {
		width = 2
	}

	pc := bpt.dbg.ga.CPU.Regs.PC()

	for _, b := range bpt.breakpoints {
		if b.address+width == pc {
			bpt.dbg.state = govern.Paused
			bpt.dbg.printLine(terminal.StyleFeedback, "Hit breakpoint")
			break
		}
	}
}
