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

package cpu_test

import (
	"testing"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/hardware/cpu"
	"github.com/gopheradvance/gopheradvance/test"
)

// mockMem is a small memory for instruction tests. 64k is plenty and keeps
// allocation down.
type mockMem struct {
	internal []uint8
}

const mockMemMask = 0xffff

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, mockMemMask+1),
	}
}

func (mem *mockMem) FetchWide(address uint32) (uint32, error) {
	return mem.Read32(address)
}

func (mem *mockMem) FetchNarrow(address uint32) (uint16, error) {
	return mem.Read16(address)
}

func (mem *mockMem) Read8(address uint32) (uint8, error) {
	return mem.internal[address&mockMemMask], nil
}

func (mem *mockMem) Read16(address uint32) (uint16, error) {
	return uint16(mem.internal[address&mockMemMask]) |
		uint16(mem.internal[(address+1)&mockMemMask])<<8, nil
}

func (mem *mockMem) Read32(address uint32) (uint32, error) {
	return uint32(mem.internal[address&mockMemMask]) |
		uint32(mem.internal[(address+1)&mockMemMask])<<8 |
		uint32(mem.internal[(address+2)&mockMemMask])<<16 |
		uint32(mem.internal[(address+3)&mockMemMask])<<24, nil
}

func (mem *mockMem) Write8(address uint32, data uint8) error {
	mem.internal[address&mockMemMask] = data
	return nil
}

func (mem *mockMem) Write16(address uint32, data uint16) error {
	mem.internal[address&mockMemMask] = uint8(data)
	mem.internal[(address+1)&mockMemMask] = uint8(data >> 8)
	return nil
}

func (mem *mockMem) Write32(address uint32, data uint32) error {
	mem.internal[address&mockMemMask] = uint8(data)
	mem.internal[(address+1)&mockMemMask] = uint8(data >> 8)
	mem.internal[(address+2)&mockMemMask] = uint8(data >> 16)
	mem.internal[(address+3)&mockMemMask] = uint8(data >> 24)
	return nil
}

// putWide writes wide instructions to consecutive addresses. returns the
// address after the last instruction.
func (mem *mockMem) putWide(origin uint32, encodings ...uint32) uint32 {
	for i, enc := range encodings {
		mem.Write32(origin+uint32(i*4), enc)
	}
	return origin + uint32(len(encodings)*4)
}

// putNarrow writes narrow instructions to consecutive addresses. returns the
// address after the last instruction.
func (mem *mockMem) putNarrow(origin uint32, encodings ...uint16) uint32 {
	for i, enc := range encodings {
		mem.Write16(origin+uint32(i*2), enc)
	}
	return origin + uint32(len(encodings)*2)
}

func (mem *mockMem) assert32(t *testing.T, address uint32, value uint32) {
	t.Helper()
	v, _ := mem.Read32(address)
	test.ExpectEquality(t, v, value)
}

// encoding helpers. the immediate and Rm fields of the wide form overlap so
// an instruction is built with one or the other.

func wideImm(op, rd, rn uint32, imm uint16) uint32 {
	return op<<24 | rd<<20 | rn<<16 | uint32(imm)
}

func wideReg(op, rd, rn, rm uint32) uint32 {
	return op<<24 | rd<<20 | rn<<16 | rm
}

func narrowImm(op, rd uint32, imm uint8) uint16 {
	return uint16(op<<12 | rd<<8 | uint32(imm))
}

func narrowReg(op, rd, rm uint32) uint16 {
	return uint16(op<<12 | rd<<8 | rm)
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	test.DemandSuccess(t, mc.Step())
}

// runToHalt steps the CPU until HLT. the step limit catches runaway
// programs before the test times out.
func runToHalt(t *testing.T, mc *cpu.CPU, limit int) {
	t.Helper()
	for i := 0; i < limit; i++ {
		step(t, mc)
		if mc.Halted {
			return
		}
	}
	t.Fatalf("CPU did not halt within %d steps", limit)
}

func TestCPU_movesAndFlags(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Regs[cpu.PC] = 0x1000

	mem.putWide(0x1000,
		wideImm(cpu.WideMOVI, 0, 0, 0),       // r0 <- 0
		wideImm(cpu.WideMOVI, 1, 0, 0x0000),  // r1 <- 0
		wideImm(cpu.WideMOVHI, 1, 0, 0x8000), // r1 <- 0x80000000
		wideReg(cpu.WideMOV, 2, 0, 1),        // r2 <- r1
	)

	step(t, mc)
	test.ExpectEquality(t, mc.Regs[0], 0)
	test.ExpectSuccess(t, mc.PSR.Zero)
	test.ExpectFailure(t, mc.PSR.Negative)
	test.ExpectEquality(t, mc.Regs[cpu.PC], 0x1004)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs[1], 0x80000000)
	test.ExpectSuccess(t, mc.PSR.Negative)
	test.ExpectFailure(t, mc.PSR.Zero)

	step(t, mc)
	test.ExpectEquality(t, mc.Regs[2], 0x80000000)
	test.ExpectSuccess(t, mc.PSR.Negative)
	test.ExpectEquality(t, mc.Regs[cpu.PC], 0x1010)
}

func TestCPU_arithmeticFlags(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Regs[cpu.PC] = 0x1000

	mem.putWide(0x1000,
		wideImm(cpu.WideMOVI, 0, 0, 0xffff),
		wideImm(cpu.WideMOVHI, 0, 0, 0xffff), // r0 <- 0xffffffff
		wideImm(cpu.WideADDI, 1, 0, 1),       // r1 <- r0 + 1

		wideImm(cpu.WideMOVI, 0, 0, 0xffff),
		wideImm(cpu.WideMOVHI, 0, 0, 0x7fff), // r0 <- 0x7fffffff
		wideImm(cpu.WideADDI, 1, 0, 1),       // r1 <- r0 + 1

		wideImm(cpu.WideMOVI, 0, 0, 1),
		wideImm(cpu.WideSUBI, 1, 0, 2), // r1 <- r0 - 2
		wideImm(cpu.WideCMPI, 0, 0, 1), // flags(r0 - 1)
	)

	// unsigned overflow: all four flags considered
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs[1], 0)
	test.ExpectSuccess(t, mc.PSR.Zero)
	test.ExpectSuccess(t, mc.PSR.Carry)
	test.ExpectFailure(t, mc.PSR.Negative)
	test.ExpectFailure(t, mc.PSR.Overflow)

	// signed overflow
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs[1], 0x80000000)
	test.ExpectSuccess(t, mc.PSR.Negative)
	test.ExpectSuccess(t, mc.PSR.Overflow)
	test.ExpectFailure(t, mc.PSR.Zero)
	test.ExpectFailure(t, mc.PSR.Carry)

	// borrow clears the carry flag
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs[1], 0xffffffff)
	test.ExpectSuccess(t, mc.PSR.Negative)
	test.ExpectFailure(t, mc.PSR.Carry)
	test.ExpectFailure(t, mc.PSR.Overflow)

	// compare equal: zero set, no borrow
	step(t, mc)
	test.ExpectSuccess(t, mc.PSR.Zero)
	test.ExpectSuccess(t, mc.PSR.Carry)
	test.ExpectFailure(t, mc.PSR.Negative)
}

func TestCPU_loadsAndStores(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Regs[cpu.PC] = 0x1000

	mem.putWide(0x1000,
		wideImm(cpu.WideMOVI, 1, 0, 0x2000), // r1 <- data area
		wideImm(cpu.WideMOVI, 2, 0, 0xbeef),
		wideImm(cpu.WideMOVHI, 2, 0, 0xdead), // r2 <- 0xdeadbeef
		wideImm(cpu.WideSTR, 2, 1, 0),        // mem32[r1] <- r2
		wideImm(cpu.WideLDR, 3, 1, 0),        // r3 <- mem32[r1]
		wideImm(cpu.WideLDRH, 4, 1, 0),       // r4 <- mem16[r1]
		wideImm(cpu.WideLDRB, 5, 1, 3),       // r5 <- mem8[r1+3]
		wideImm(cpu.WideSTRH, 2, 1, 8),       // mem16[r1+8] <- r2
		wideImm(cpu.WideSTRB, 2, 1, 12),      // mem8[r1+12] <- r2
	)

	for i := 0; i < 9; i++ {
		step(t, mc)
	}

	mem.assert32(t, 0x2000, 0xdeadbeef)
	test.ExpectEquality(t, mc.Regs[3], 0xdeadbeef)
	test.ExpectEquality(t, mc.Regs[4], 0xbeef)
	test.ExpectEquality(t, mc.Regs[5], 0xde)
	mem.assert32(t, 0x2008, 0x0000beef)
	mem.assert32(t, 0x200c, 0x000000ef)
}

func TestCPU_branches(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Regs[cpu.PC] = 0x1000

	// the branch skips the first MOVI. offsets are counted in halfwords
	// from the following instruction
	mem.putWide(0x1000,
		wideImm(cpu.WideB, 0, 0, 2),    // to 0x1008
		wideImm(cpu.WideMOVI, 0, 0, 1), // skipped
		wideImm(cpu.WideMOVI, 1, 0, 2),
		wideImm(cpu.WideHLT, 0, 0, 0),
	)

	runToHalt(t, mc, 10)
	test.ExpectEquality(t, mc.Regs[0], 0)
	test.ExpectEquality(t, mc.Regs[1], 2)
}

func TestCPU_conditionalBranches(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Regs[cpu.PC] = 0x1000

	// a simple countdown loop. BNE is taken twice, BEQ once
	mem.putWide(0x1000,
		wideImm(cpu.WideMOVI, 0, 0, 3),
		wideImm(cpu.WideSUBI, 0, 0, 1),          // 0x1004
		wideImm(cpu.WideBNE, 0, 0, 0xfffc),      // to 0x1004 (offset -4)
		wideImm(cpu.WideBEQ, 0, 0, 2),           // to 0x1014
		wideImm(cpu.WideMOVI, 1, 0, 0xbad),      // skipped
		wideImm(cpu.WideHLT, 0, 0, 0),           // 0x1014
	)

	runToHalt(t, mc, 20)
	test.ExpectEquality(t, mc.Regs[0], 0)
	test.ExpectEquality(t, mc.Regs[1], 0)
	test.ExpectSuccess(t, mc.PSR.Zero)
}

func TestCPU_branchAndLink(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Regs[cpu.PC] = 0x1000

	mem.putWide(0x1000,
		wideImm(cpu.WideBL, 0, 0, 2),   // to 0x1008, LR <- 0x1004
		wideImm(cpu.WideHLT, 0, 0, 0),  // 0x1004: the return target
		wideImm(cpu.WideMOVI, 0, 0, 9), // 0x1008: the subroutine
		wideReg(cpu.WideBX, 0, 0, cpu.LR),
	)

	runToHalt(t, mc, 10)
	test.ExpectEquality(t, mc.Regs[0], 9)
	test.ExpectEquality(t, mc.Regs[cpu.LR], 0x1004)
	test.ExpectEquality(t, mc.Regs[cpu.PC], 0x1008)
}

func TestCPU_branchExchange(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Regs[cpu.PC] = 0x1000

	// wide section: set up targets and switch to the narrow section
	mem.putWide(0x1000,
		wideImm(cpu.WideMOVI, 0, 0, 0x2001), // narrow target, bit 0 set
		wideImm(cpu.WideMOVI, 3, 0, 0x1010), // wide return target, bit 0 clear
		wideReg(cpu.WideBX, 0, 0, 0),        // to 0x2000, narrow
		wideImm(cpu.WideNOP, 0, 0, 0),       // 0x100c: never executed
		wideImm(cpu.WideHLT, 0, 0, 0),       // 0x1010
	)

	// narrow section
	mem.putNarrow(0x2000,
		narrowImm(cpu.NarrowMOVI, 1, 42),
		narrowImm(cpu.NarrowADDI, 1, 8),
		narrowReg(cpu.NarrowBX, 0, 3), // back to wide
	)

	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.PSR.Narrow)

	step(t, mc)
	test.ExpectSuccess(t, mc.PSR.Narrow)
	test.ExpectEquality(t, mc.Regs[cpu.PC], 0x2000)

	step(t, mc)
	test.ExpectEquality(t, mc.Regs[1], 42)
	test.ExpectEquality(t, mc.Regs[cpu.PC], 0x2002)
	test.ExpectSuccess(t, mc.LastResult.Narrow)
	test.ExpectEquality(t, mc.LastResult.Length(), 2)
	test.ExpectEquality(t, mc.LastResult.String(), "112A")

	step(t, mc)
	test.ExpectEquality(t, mc.Regs[1], 50)

	step(t, mc)
	test.ExpectFailure(t, mc.PSR.Narrow)
	test.ExpectEquality(t, mc.Regs[cpu.PC], 0x1010)

	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)
}

func TestCPU_haltAndBreak(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Regs[cpu.PC] = 0x1000

	mem.putWide(0x1000,
		wideImm(cpu.WideBKPT, 0, 0, 0),
		wideImm(cpu.WideNOP, 0, 0, 0),
		wideImm(cpu.WideHLT, 0, 0, 0),
	)

	step(t, mc)
	test.ExpectSuccess(t, mc.BreakRequest)

	// the break request does not survive the next step
	step(t, mc)
	test.ExpectFailure(t, mc.BreakRequest)

	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)

	// a halted CPU refuses to step until it is reset
	err := mc.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, "cpu: halted"))

	mc.Reset()
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, mc.Regs[cpu.PC], 0)
}

func TestCPU_undefinedInstruction(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Regs[cpu.PC] = 0x1000

	mem.putWide(0x1000, wideImm(0x30, 0, 0, 0))

	err := mc.Step()
	test.ExpectFailure(t, err)
}

func TestCPU_lastResult(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Regs[cpu.PC] = 0x1000

	enc := wideImm(cpu.WideMOVI, 7, 0, 0x0123)
	mem.putWide(0x1000, enc)

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Address, 0x1000)
	test.ExpectEquality(t, mc.LastResult.Encoding, enc)
	test.ExpectFailure(t, mc.LastResult.Narrow)
	test.ExpectEquality(t, mc.LastResult.Length(), 4)
	test.ExpectEquality(t, mc.LastResult.String(), "01700123")
}

func TestPSR(t *testing.T) {
	psr := cpu.NewPSR()

	test.ExpectEquality(t, psr.Value(), 0)
	test.ExpectEquality(t, psr.String(), "00000000 [-------]")

	psr.Negative = true
	psr.Narrow = true
	test.ExpectEquality(t, psr.Value(), 0x80000020)
	test.ExpectEquality(t, psr.String(), "80000020 [N-----T]")

	psr.FromValue(0xf00000e0)
	test.ExpectEquality(t, psr.String(), "F00000E0 [NZCVIFT]")
	test.ExpectSuccess(t, psr.Zero)
	test.ExpectSuccess(t, psr.FIQDisable)

	psr.Reset()
	test.ExpectEquality(t, psr.Value(), 0)
}

func TestRegisters(t *testing.T) {
	var regs cpu.Registers

	regs[0] = 0x11
	regs[cpu.SP] = 0x7f00
	regs[cpu.LR] = 0x4444
	regs[cpu.PC] = 0x8000

	test.ExpectEquality(t, regs.Register(0), 0x11)
	test.ExpectEquality(t, regs.SP(), 0x7f00)
	test.ExpectEquality(t, regs.LR(), 0x4444)
	test.ExpectEquality(t, regs.PC(), 0x8000)

	s := "00000011 00000000 00000000 00000000\n" +
		"00000000 00000000 00000000 00000000\n" +
		"00000000 00000000 00000000 00000000\n" +
		"00000000 00007F00 00004444 00008000"
	test.ExpectEquality(t, regs.String(), s)

	regs.Reset()
	test.ExpectEquality(t, regs.PC(), 0)
}
