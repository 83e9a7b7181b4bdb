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

// Package terminal defines the operations required for command line
// interaction with the debugger.
//
// For flexibility, terminal interaction happens through the Terminal
// interface. There are two reference implementations of this interface: the
// PlainTerminal and the ColorTerminal, found respectively in the plainterm
// and colorterm sub-packages.
//
// History storage belongs to the terminal implementation but recording is
// driven entirely by the debugger, through the AppendHistory() function. Of
// the two reference implementations the ColorTerminal is the interesting
// example: it keeps a scrollable history which it never adds to itself.
//
// Tab completion is handled by the commandline package if required. Again,
// the ColorTerminal implementation is a good example of how to use it.
package terminal
