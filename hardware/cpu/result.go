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
)

// Result records the most recently executed instruction. The instruction
// length implied by the Narrow field is what the debugger needs to find the
// address of the instruction that set the current PC.
type Result struct {
	// the address the instruction was fetched from
	Address uint32

	// the raw encoding of the instruction. narrow encodings occupy the low
	// sixteen bits
	Encoding uint32

	// whether the instruction used the narrow encoding
	Narrow bool
}

// Length returns the number of bytes the instruction occupied.
func (res Result) Length() uint32 {
	if res.Narrow {
		return 2
	}
	return 4
}

// Reset the result to a blank state.
func (res *Result) Reset() {
	*res = Result{}
}

func (res Result) String() string {
	if res.Narrow {
		return fmt.Sprintf("%04X", res.Encoding)
	}
	return fmt.Sprintf("%08X", res.Encoding)
}
