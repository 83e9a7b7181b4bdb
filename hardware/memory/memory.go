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

package memory

import (
	"github.com/gopheradvance/gopheradvance/curated"
)

// Size is the extent of the GA32's RAM in bytes.
const Size = 0x01000000

// mask implements the address wrap. every address is brought into range by
// masking, byte by byte, so multi-byte accesses at the very top of memory
// wrap to the bottom.
const mask = Size - 1

// RAM is the GA32's flat memory space. It implements the cpubus.Memory
// interface.
type RAM struct {
	data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		data: make([]uint8, Size),
	}
}

// Clear sets every byte of memory to zero.
func (ram *RAM) Clear() {
	for i := range ram.data {
		ram.data[i] = 0
	}
}

// Load copies a program image into memory, starting at the origin address.
func (ram *RAM) Load(origin uint32, data []uint8) error {
	if origin >= Size || int(origin)+len(data) > Size {
		return curated.Errorf("ram: image of %d bytes does not fit at origin %08x", len(data), origin)
	}
	copy(ram.data[origin:], data)
	return nil
}

// FetchWide implements the cpubus.Memory interface.
func (ram *RAM) FetchWide(address uint32) (uint32, error) {
	return ram.Read32(address)
}

// FetchNarrow implements the cpubus.Memory interface.
func (ram *RAM) FetchNarrow(address uint32) (uint16, error) {
	return ram.Read16(address)
}

// Read8 implements the cpubus.Memory interface.
func (ram *RAM) Read8(address uint32) (uint8, error) {
	return ram.data[address&mask], nil
}

// Read16 implements the cpubus.Memory interface.
func (ram *RAM) Read16(address uint32) (uint16, error) {
	return uint16(ram.data[address&mask]) |
		uint16(ram.data[(address+1)&mask])<<8, nil
}

// Read32 implements the cpubus.Memory interface.
func (ram *RAM) Read32(address uint32) (uint32, error) {
	return uint32(ram.data[address&mask]) |
		uint32(ram.data[(address+1)&mask])<<8 |
		uint32(ram.data[(address+2)&mask])<<16 |
		uint32(ram.data[(address+3)&mask])<<24, nil
}

// Write8 implements the cpubus.Memory interface.
func (ram *RAM) Write8(address uint32, data uint8) error {
	ram.data[address&mask] = data
	return nil
}

// Write16 implements the cpubus.Memory interface.
func (ram *RAM) Write16(address uint32, data uint16) error {
	ram.data[address&mask] = uint8(data)
	ram.data[(address+1)&mask] = uint8(data >> 8)
	return nil
}

// Write32 implements the cpubus.Memory interface.
func (ram *RAM) Write32(address uint32, data uint32) error {
	ram.data[address&mask] = uint8(data)
	ram.data[(address+1)&mask] = uint8(data >> 8)
	ram.data[(address+2)&mask] = uint8(data >> 16)
	ram.data[(address+3)&mask] = uint8(data >> 24)
	return nil
}
