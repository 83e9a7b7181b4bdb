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

// Package cpu implements the GA32's 32-bit core.
//
// The instruction set has two encoding widths, a 4 byte wide form and a 2
// byte narrow form, selected by the Narrow flag in the PSR. The BX
// instruction switches between the two. Instruction layouts and opcode
// values are described in instructions.go.
//
// The core presents no pipeline effects to the programmer. After the
// instruction at address A has executed, PC holds the address of the next
// instruction and LastResult describes what was executed. Supervising code
// (the hardware package's run loop or the debugger) steps the core one
// instruction at a time with the Step() function.
package cpu
