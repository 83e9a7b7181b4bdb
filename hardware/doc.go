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

// Package hardware is the base package for the GA32 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The GA32 type is the root of the emulation and contains references to the
// machine's sub-systems. From here, the emulation can either be set running
// continuously (with an optional callback to check for continuation); or it
// can be stepped one instruction at a time, which is how the debugger drives
// it.
package hardware
