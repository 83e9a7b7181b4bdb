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

package cpu

import (
	"fmt"
	"strings"
)

// NumRegisters is the number of general purpose registers in the GA32.
const NumRegisters = 16

// the general purpose registers with a dedicated role.
const (
	SP = 13
	LR = 14
	PC = 15
)

// Registers is the register file of the GA32. All sixteen registers are
// general purpose as far as the instruction set is concerned but r13, r14
// and r15 have dedicated roles (stack pointer, link register and program
// counter).
type Registers [NumRegisters]uint32

// Register returns the value of the numbered register. reg must be in the
// range 0 to 15.
func (r Registers) Register(reg int) uint32 {
	return r[reg]
}

// PC returns the value of the program counter.
func (r Registers) PC() uint32 {
	return r[PC]
}

// SP returns the value of the stack pointer.
func (r Registers) SP() uint32 {
	return r[SP]
}

// LR returns the value of the link register.
func (r Registers) LR() uint32 {
	return r[LR]
}

// Reset all registers to zero.
func (r *Registers) Reset() {
	*r = Registers{}
}

func (r Registers) String() string {
	s := strings.Builder{}
	for i := 0; i < NumRegisters; i += 4 {
		s.WriteString(fmt.Sprintf("%08X %08X %08X %08X", r[i], r[i+1], r[i+2], r[i+3]))
		if i+4 < NumRegisters {
			s.WriteString("\n")
		}
	}
	return s.String()
}
