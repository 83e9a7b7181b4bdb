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

package hardware

import (
	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/hardware/cpu"
	"github.com/gopheradvance/gopheradvance/hardware/memory"
)

// GA32 is the main container for the emulated components of the machine.
type GA32 struct {
	CPU *cpu.CPU
	Mem *memory.RAM
}

// NewGA32 is the preferred method of initialisation for the GA32 type.
func NewGA32() *GA32 {
	ga := &GA32{}
	ga.Mem = memory.NewRAM()
	ga.CPU = cpu.NewCPU(ga.Mem)
	return ga
}

// AttachCartridge loads a cartridge image into the machine's memory. The
// machine is reset afterwards.
func (ga *GA32) AttachCartridge(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return err
	}

	ga.Mem.Clear()

	err = ga.Mem.Load(cartridgeloader.Origin, cartload.Data)
	if err != nil {
		return err
	}

	ga.Reset()

	return nil
}

// Reset emulates the reset procedure of the machine. The CPU is reset and
// the program counter loaded with the cartridge origin.
func (ga *GA32) Reset() {
	ga.CPU.Reset()
	ga.CPU.Regs[cpu.PC] = cartridgeloader.Origin
}
