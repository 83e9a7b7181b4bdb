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

// Package cpubus defines the operations for the memory system when accessed
// from the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The RAM type implements this interface directly. Types that wrap
// another Memory implementation (the debugger's watch shim, for instance) also
// implement this interface, which is why the CPU allows its memory to be
// replumbed at runtime.
//
// Instruction fetches are distinct from data reads so that wrapping
// implementations can monitor data loads without also being triggered by the
// CPU reading its own program.
type Memory interface {
	// FetchWide reads the 4 byte encoding of a wide instruction.
	FetchWide(address uint32) (uint32, error)

	// FetchNarrow reads the 2 byte encoding of a narrow instruction.
	FetchNarrow(address uint32) (uint16, error)

	Read8(address uint32) (uint8, error)
	Read16(address uint32) (uint16, error)
	Read32(address uint32) (uint32, error)

	Write8(address uint32, data uint8) error
	Write16(address uint32, data uint16) error
	Write32(address uint32, data uint32) error
}
