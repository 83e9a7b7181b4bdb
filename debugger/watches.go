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
	"github.com/gopheradvance/gopheradvance/hardware/memory/cpubus"
)

// watcher is an address whose memory accesses should pause the machine.
type watcher struct {
	address uint32
}

// watches intercepts data loads by substituting itself for the CPU's bus.
// instruction fetches and writes are forwarded without inspection: only the
// Read methods compare the address with the watchpoint list.
//
// the substitution is lazy. a machine with no watchpoints runs on the real
// bus with no interception at all.
type watches struct {
	dbg *Debugger

	// the bus that was in place when the shim was installed. all accesses
	// are forwarded to it
	mem cpubus.Memory

	watches []watcher
}

// newWatches is the preferred method of initialisation for the watches
// type. the shim is not installed until the first watchpoint is added.
func newWatches(dbg *Debugger) *watches {
	wtc := &watches{dbg: dbg}
	wtc.watches = make([]watcher, 0, 10)
	return wtc
}

// add a watchpoint, installing the shim if it is not already in place.
func (wtc *watches) add(address uint32) {
	if wtc.dbg.ga.CPU.Memory() != cpubus.Memory(wtc) {
		wtc.mem = wtc.dbg.ga.CPU.Memory()
		wtc.dbg.ga.CPU.Plumb(wtc)
	}

	wtc.watches = append(wtc.watches, watcher{address: address})
}

// check compares a load address with every watchpoint, pausing the machine
// on the first match.
func (wtc *watches) check(address uint32) {
	for _, w := range wtc.watches {
		if w.address == address {
			wtc.dbg.state = govern.Paused
			wtc.dbg.printLine(terminal.StyleFeedback, "Hit watchpoint")
			break
		}
	}
}

// FetchWide implements the cpubus.Memory interface.
func (wtc *watches) FetchWide(address uint32) (uint32, error) {
	return wtc.mem.FetchWide(address)
}

// FetchNarrow implements the cpubus.Memory interface.
func (wtc *watches) FetchNarrow(address uint32) (uint16, error) {
	return wtc.mem.FetchNarrow(address)
}

// Read8 implements the cpubus.Memory interface.
func (wtc *watches) Read8(address uint32) (uint8, error) {
	wtc.check(address)
	return wtc.mem.Read8(address)
}

// Read16 implements the cpubus.Memory interface.
func (wtc *watches) Read16(address uint32) (uint16, error) {
	wtc.check(address)
	return wtc.mem.Read16(address)
}

// Read32 implements the cpubus.Memory interface.
func (wtc *watches) Read32(address uint32) (uint32, error) {
	wtc.check(address)
	return wtc.mem.Read32(address)
}

// Write8 implements the cpubus.Memory interface.
func (wtc *watches) Write8(address uint32, data uint8) error {
	return wtc.mem.Write8(address, data)
}

// Write16 implements the cpubus.Memory interface.
func (wtc *watches) Write16(address uint32, data uint16) error {
	return wtc.mem.Write16(address, data)
}

// Write32 implements the cpubus.Memory interface.
func (wtc *watches) Write32(address uint32, data uint32) error {
	return wtc.mem.Write32(address, data)
}
