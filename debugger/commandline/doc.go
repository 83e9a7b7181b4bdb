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

// Package commandline defines the command language used by the debugger. It
// is responsible for three things: the table of command names and the
// operations they map to; the parsing of command arguments into typed
// values; and tab completion of command names.
//
// The Commands table is kept in sorted order. The sort order is load-bearing
// and is asserted when the package is initialised - both name lookup and tab
// completion rely on it.
//
// Argument parsing is the job of the ParseValues() function. Register
// arguments are resolved to their current contents at parse time, through
// the Registers interface.
package commandline
