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

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/hardware/memory/cpubus"
)

// CPU implements the GA32's single-threaded 32-bit core.
//
// The core is deliberately simple. There is no pipeline to emulate: when the
// instruction at address A has completed, PC holds A plus the instruction
// length (or the branch target). The instruction width is selected by
// PSR.Narrow.
type CPU struct {
	Regs Registers
	PSR  PSR

	mem cpubus.Memory

	// the most recently executed instruction
	LastResult Result

	// BreakRequest is latched by the BKPT instruction. it is cleared at the
	// start of the next call to Step() so whatever is supervising the CPU
	// must inspect it after every step
	BreakRequest bool

	// Halted is set by the HLT instruction and can only be unset with
	// Reset()
	Halted bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem: mem,
		PSR: NewPSR(),
	}
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// Memory returns the memory implementation currently plumbed into the CPU.
func (mc *CPU) Memory() cpubus.Memory {
	return mc.mem
}

// Reset reinitialises the registers and the status register. It does not
// load PC with an entry point; that is the responsibility of the machine.
func (mc *CPU) Reset() {
	mc.Regs.Reset()
	mc.PSR.Reset()
	mc.LastResult.Reset()
	mc.BreakRequest = false
	mc.Halted = false
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%08x SP=%08x LR=%08x %s=%s",
		mc.Regs[PC], mc.Regs[SP], mc.Regs[LR], mc.PSR.Label(), mc.PSR)
}

// Step executes exactly one instruction. The entire instruction has taken
// effect by the time the function returns: in particular PC has advanced (or
// branched) and LastResult describes what was executed.
func (mc *CPU) Step() error {
	if mc.Halted {
		return curated.Errorf("cpu: halted")
	}

	mc.BreakRequest = false

	addr := mc.Regs[PC]

	if mc.PSR.Narrow {
		enc, err := mc.mem.FetchNarrow(addr)
		if err != nil {
			return err
		}
		mc.LastResult = Result{Address: addr, Encoding: uint32(enc), Narrow: true}
		mc.Regs[PC] += 2
		return mc.executeNarrow(enc)
	}

	enc, err := mc.mem.FetchWide(addr)
	if err != nil {
		return err
	}
	mc.LastResult = Result{Address: addr, Encoding: enc, Narrow: false}
	mc.Regs[PC] += 4
	return mc.executeWide(enc)
}

func (mc *CPU) executeWide(enc uint32) error {
	op := enc >> 24
	rd := (enc >> 20) & 0xf
	rn := (enc >> 16) & 0xf
	rm := enc & 0xf
	imm := enc & 0xffff

	switch op {
	case WideNOP:

	case WideMOVI:
		mc.Regs[rd] = imm
		mc.setNZ(mc.Regs[rd])

	case WideMOVHI:
		mc.Regs[rd] = (mc.Regs[rd] & 0x0000ffff) | (imm << 16)
		mc.setNZ(mc.Regs[rd])

	case WideMOV:
		mc.Regs[rd] = mc.Regs[rm]
		mc.setNZ(mc.Regs[rd])

	case WideADD:
		mc.Regs[rd] = mc.add(mc.Regs[rn], mc.Regs[rm])

	case WideADDI:
		mc.Regs[rd] = mc.add(mc.Regs[rn], imm)

	case WideSUB:
		mc.Regs[rd] = mc.sub(mc.Regs[rn], mc.Regs[rm])

	case WideSUBI:
		mc.Regs[rd] = mc.sub(mc.Regs[rn], imm)

	case WideCMP:
		mc.sub(mc.Regs[rn], mc.Regs[rm])

	case WideCMPI:
		mc.sub(mc.Regs[rn], imm)

	case WideAND:
		mc.Regs[rd] = mc.Regs[rn] & mc.Regs[rm]
		mc.setNZ(mc.Regs[rd])

	case WideOR:
		mc.Regs[rd] = mc.Regs[rn] | mc.Regs[rm]
		mc.setNZ(mc.Regs[rd])

	case WideEOR:
		mc.Regs[rd] = mc.Regs[rn] ^ mc.Regs[rm]
		mc.setNZ(mc.Regs[rd])

	case WideLDR:
		v, err := mc.mem.Read32(mc.Regs[rn] + imm)
		if err != nil {
			return err
		}
		mc.Regs[rd] = v

	case WideLDRH:
		v, err := mc.mem.Read16(mc.Regs[rn] + imm)
		if err != nil {
			return err
		}
		mc.Regs[rd] = uint32(v)

	case WideLDRB:
		v, err := mc.mem.Read8(mc.Regs[rn] + imm)
		if err != nil {
			return err
		}
		mc.Regs[rd] = uint32(v)

	case WideSTR:
		if err := mc.mem.Write32(mc.Regs[rn]+imm, mc.Regs[rd]); err != nil {
			return err
		}

	case WideSTRH:
		if err := mc.mem.Write16(mc.Regs[rn]+imm, uint16(mc.Regs[rd])); err != nil {
			return err
		}

	case WideSTRB:
		if err := mc.mem.Write8(mc.Regs[rn]+imm, uint8(mc.Regs[rd])); err != nil {
			return err
		}

	case WideB:
		mc.branch(int32(int16(imm)))

	case WideBEQ:
		if mc.PSR.Zero {
			mc.branch(int32(int16(imm)))
		}

	case WideBNE:
		if !mc.PSR.Zero {
			mc.branch(int32(int16(imm)))
		}

	case WideBL:
		mc.Regs[LR] = mc.Regs[PC]
		mc.branch(int32(int16(imm)))

	case WideBX:
		mc.branchExchange(mc.Regs[rm])

	case WideBKPT:
		mc.BreakRequest = true

	case WideHLT:
		mc.Halted = true

	default:
		return curated.Errorf("cpu: undefined instruction (%08x) at %08x", enc, mc.LastResult.Address)
	}

	return nil
}

func (mc *CPU) executeNarrow(enc uint16) error {
	op := enc >> 12
	rd := (enc >> 8) & 0xf
	rm := enc & 0xf
	imm := uint32(enc & 0xff)

	switch op {
	case NarrowNOP:

	case NarrowMOVI:
		mc.Regs[rd] = imm
		mc.setNZ(mc.Regs[rd])

	case NarrowADDI:
		mc.Regs[rd] = mc.add(mc.Regs[rd], imm)

	case NarrowSUBI:
		mc.Regs[rd] = mc.sub(mc.Regs[rd], imm)

	case NarrowCMPI:
		mc.sub(mc.Regs[rd], imm)

	case NarrowMOV:
		mc.Regs[rd] = mc.Regs[rm]
		mc.setNZ(mc.Regs[rd])

	case NarrowADD:
		mc.Regs[rd] = mc.add(mc.Regs[rd], mc.Regs[rm])

	case NarrowSUB:
		mc.Regs[rd] = mc.sub(mc.Regs[rd], mc.Regs[rm])

	case NarrowCMP:
		mc.sub(mc.Regs[rd], mc.Regs[rm])

	case NarrowB:
		mc.branch(int32(int8(enc & 0xff)))

	case NarrowBEQ:
		if mc.PSR.Zero {
			mc.branch(int32(int8(enc & 0xff)))
		}

	case NarrowBNE:
		if !mc.PSR.Zero {
			mc.branch(int32(int8(enc & 0xff)))
		}

	case NarrowBX:
		mc.branchExchange(mc.Regs[rm])

	case NarrowLDR:
		v, err := mc.mem.Read32(mc.Regs[rm])
		if err != nil {
			return err
		}
		mc.Regs[rd] = v

	case NarrowSTR:
		if err := mc.mem.Write32(mc.Regs[rm], mc.Regs[rd]); err != nil {
			return err
		}

	case NarrowHLT:
		mc.Halted = true
	}

	return nil
}

// branch adds the halfword-counted offset to the PC. by the time an
// instruction executes the PC has already advanced, so offsets are relative
// to the instruction that follows the branch.
func (mc *CPU) branch(offset int32) {
	mc.Regs[PC] += uint32(offset) << 1
}

// branchExchange implements the BX instruction. bit 0 of the target selects
// the narrow encoding and is clear in the PC.
func (mc *CPU) branchExchange(target uint32) {
	mc.Regs[PC] = target &^ 1
	mc.PSR.Narrow = target&1 == 1
}

func (mc *CPU) setNZ(v uint32) {
	mc.PSR.Negative = v&0x80000000 == 0x80000000
	mc.PSR.Zero = v == 0
}

// add returns a+b and sets all four condition flags.
func (mc *CPU) add(a, b uint32) uint32 {
	r := a + b
	mc.setNZ(r)
	mc.PSR.Carry = r < a
	mc.PSR.Overflow = (^(a^b)&(a^r))&0x80000000 == 0x80000000
	return r
}

// sub returns a-b and sets all four condition flags. the carry flag is set
// when the subtraction does not borrow.
func (mc *CPU) sub(a, b uint32) uint32 {
	r := a - b
	mc.setNZ(r)
	mc.PSR.Carry = a >= b
	mc.PSR.Overflow = ((a^b)&(a^r))&0x80000000 == 0x80000000
	return r
}
