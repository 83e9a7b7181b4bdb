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

// Wide instructions are 4 byte little-endian words. The opcode occupies bits
// 31 to 24; the remaining fields are Rd in bits 23 to 20, Rn in bits 19 to
// 16, the immediate in bits 15 to 0 and Rm in bits 3 to 0. Branch immediates
// are signed and counted in halfwords, relative to the address of the
// following instruction.
const (
	WideNOP   = 0x00
	WideMOVI  = 0x01 // Rd <- imm
	WideMOVHI = 0x02 // Rd <- (Rd & 0xffff) | imm<<16
	WideMOV   = 0x03 // Rd <- Rm
	WideADD   = 0x04 // Rd <- Rn + Rm
	WideADDI  = 0x05 // Rd <- Rn + imm
	WideSUB   = 0x06 // Rd <- Rn - Rm
	WideSUBI  = 0x07 // Rd <- Rn - imm
	WideCMP   = 0x08 // flags(Rn - Rm)
	WideCMPI  = 0x09 // flags(Rn - imm)
	WideAND   = 0x0a // Rd <- Rn & Rm
	WideOR    = 0x0b // Rd <- Rn | Rm
	WideEOR   = 0x0c // Rd <- Rn ^ Rm
	WideLDR   = 0x10 // Rd <- mem32[Rn + imm]
	WideLDRH  = 0x11 // Rd <- mem16[Rn + imm]
	WideLDRB  = 0x12 // Rd <- mem8[Rn + imm]
	WideSTR   = 0x14 // mem32[Rn + imm] <- Rd
	WideSTRH  = 0x15 // mem16[Rn + imm] <- Rd
	WideSTRB  = 0x16 // mem8[Rn + imm] <- Rd
	WideB     = 0x20
	WideBEQ   = 0x21
	WideBNE   = 0x22
	WideBL    = 0x23 // LR <- next instruction address
	WideBX    = 0x24 // PC <- Rm &^ 1; Narrow <- Rm bit 0
	WideBKPT  = 0xf0
	WideHLT   = 0xff
)

// Narrow instructions are 2 byte little-endian halfwords. The opcode
// occupies bits 15 to 12, Rd bits 11 to 8, the immediate bits 7 to 0 and Rm
// bits 3 to 0. All sixteen opcode values are defined. Branch immediates are
// signed and counted in halfwords, relative to the address of the following
// instruction.
const (
	NarrowNOP  = 0x0
	NarrowMOVI = 0x1 // Rd <- imm
	NarrowADDI = 0x2 // Rd <- Rd + imm
	NarrowSUBI = 0x3 // Rd <- Rd - imm
	NarrowCMPI = 0x4 // flags(Rd - imm)
	NarrowMOV  = 0x5 // Rd <- Rm
	NarrowADD  = 0x6 // Rd <- Rd + Rm
	NarrowSUB  = 0x7 // Rd <- Rd - Rm
	NarrowCMP  = 0x8 // flags(Rd - Rm)
	NarrowB    = 0x9
	NarrowBEQ  = 0xa
	NarrowBNE  = 0xb
	NarrowBX   = 0xc // PC <- Rm &^ 1; Narrow <- Rm bit 0
	NarrowLDR  = 0xd // Rd <- mem32[Rm]
	NarrowSTR  = 0xe // mem32[Rm] <- Rd
	NarrowHLT  = 0xf
)
