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

package terminal

// Style identifies the category of text being sent to the
// Output.TermPrintLine() function. The terminal implementation is free to
// interpret the style however is appropriate - the most likely treatment is
// to colourise the output.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back. terminals that display input
	// as it is typed will want to ignore this style.
	StyleEcho Style = iota

	// the main status output of the debugger: registers, status flags and
	// the most recently executed instruction.
	StyleCPUStep

	// the result of an instrument command. memory reads and value prints.
	StyleInstrument

	// information from the debugger itself. breakpoint and watchpoint
	// notifications, for example.
	StyleFeedback

	// error messages.
	StyleError
)
