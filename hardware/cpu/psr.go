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

// PSR is the program status register. It stores the condition flags, the
// interrupt disable flags and the instruction width selector.
type PSR struct {
	Negative bool
	Zero     bool
	Carry    bool
	Overflow bool

	IRQDisable bool
	FIQDisable bool

	// Narrow selects the narrow (2 byte) instruction encoding. set and
	// cleared by the BX instruction.
	Narrow bool
}

// NewPSR is the preferred method of initialisation for the program status
// register.
func NewPSR() PSR {
	return PSR{}
}

// Label returns the canonical name for the program status register.
func (psr PSR) Label() string {
	return "PSR"
}

func (psr PSR) String() string {
	s := strings.Builder{}

	if psr.Negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('-')
	}
	if psr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('-')
	}
	if psr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('-')
	}
	if psr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('-')
	}
	if psr.IRQDisable {
		s.WriteRune('I')
	} else {
		s.WriteRune('-')
	}
	if psr.FIQDisable {
		s.WriteRune('F')
	} else {
		s.WriteRune('-')
	}
	if psr.Narrow {
		s.WriteRune('T')
	} else {
		s.WriteRune('-')
	}

	return fmt.Sprintf("%08X [%s]", psr.Value(), s.String())
}

// Reset the program status register to its initial state.
func (psr *PSR) Reset() {
	psr.FromValue(0)
}

// Value packs the PSR struct into its numeric form. The condition flags
// occupy bits 31 to 28 and the control flags bits 7 to 5.
func (psr PSR) Value() uint32 {
	var v uint32

	if psr.Negative {
		v |= 0x80000000
	}
	if psr.Zero {
		v |= 0x40000000
	}
	if psr.Carry {
		v |= 0x20000000
	}
	if psr.Overflow {
		v |= 0x10000000
	}
	if psr.IRQDisable {
		v |= 0x00000080
	}
	if psr.FIQDisable {
		v |= 0x00000040
	}
	if psr.Narrow {
		v |= 0x00000020
	}

	return v
}

// FromValue unpacks a numeric PSR value into the struct receiver.
func (psr *PSR) FromValue(v uint32) {
	psr.Negative = v&0x80000000 == 0x80000000
	psr.Zero = v&0x40000000 == 0x40000000
	psr.Carry = v&0x20000000 == 0x20000000
	psr.Overflow = v&0x10000000 == 0x10000000
	psr.IRQDisable = v&0x00000080 == 0x00000080
	psr.FIQDisable = v&0x00000040 == 0x00000040
	psr.Narrow = v&0x00000020 == 0x00000020
}
