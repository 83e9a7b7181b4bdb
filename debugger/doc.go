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

// Package debugger implements an interactive command line debugger for the
// GA32 emulation. Features include:
//
//   - single instruction stepping
//   - breakpoints
//   - watchpoints
//   - memory peeking
//   - register and flag inspection
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, _ := debugger.NewDebugger(ga, term)
//
// The term argument must be an instance of a type that satisfies the
// Terminal interface defined in the terminal package. The colorterm and
// plainterm sub-packages provide good reference implementations.
//
// Once initialised, the debugger can be started with the Start() function.
// Start() retains control of the machine until the user explicitly quits,
// or until terminal input is exhausted. The State() function distinguishes
// the two conditions after Start() has returned: input exhaustion leaves the
// debugger in the Exiting state and the machine is still runnable, whereas
// quitting leaves it in the Shutdown state.
//
// While the machine is running, the debugger checks the interrupt signal
// channel after every instruction. An interrupt pauses the machine and hands
// control back to the command line. An interrupt at the command line itself
// asks for confirmation before quitting.
package debugger
