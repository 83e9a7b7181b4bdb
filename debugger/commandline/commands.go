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

package commandline

import (
	"sort"
	"strings"
)

// List of operations that entries in the Commands table map to. several
// entries may share an operation, in which case the entries are aliases of
// one another.
const (
	OpBreak        = "BREAK"
	OpBreakInto    = "BREAKINTO"
	OpContinue     = "CONTINUE"
	OpNext         = "NEXT"
	OpPrint        = "PRINT"
	OpPrintHex     = "PRINTHEX"
	OpQuit         = "QUIT"
	OpReadByte     = "READBYTE"
	OpReadHalfword = "READHALFWORD"
	OpReadWord     = "READWORD"
	OpStatus       = "STATUS"
	OpWatch        = "WATCH"
)

// Command is a single entry in the Commands table. Name is the string typed
// by the user and Op identifies the operation the debugger performs in
// response.
type Command struct {
	Name string
	Op   string
}

// Commands is the table of commands understood by the debugger. entries must
// be lower-case and must be in ascending sort order by name. short forms are
// full entries in the table rather than being handled by a separate alias
// mechanism.
var Commands = []Command{
	{"b", OpBreak},
	{"break", OpBreak},
	{"c", OpContinue},
	{"continue", OpContinue},
	{"i", OpStatus},
	{"info", OpStatus},
	{"n", OpNext},
	{"next", OpNext},
	{"p", OpPrint},
	{"p/x", OpPrintHex},
	{"print", OpPrint},
	{"print/x", OpPrintHex},
	{"q", OpQuit},
	{"quit", OpQuit},
	{"rb", OpReadByte},
	{"rh", OpReadHalfword},
	{"rw", OpReadWord},
	{"status", OpStatus},
	{"w", OpWatch},
	{"watch", OpWatch},
	{"x", OpBreakInto},
}

// the sort order of the Commands table is load-bearing. name lookup and tab
// completion both rely on it.
func init() {
	if !sort.SliceIsSorted(Commands, func(i, j int) bool {
		return Commands[i].Name < Commands[j].Name
	}) {
		panic("commandline: Commands table is not sorted")
	}
}

// Lookup returns the entry in the Commands table whose name matches the
// candidate string. matching is case-insensitive and the whole of the
// candidate must match.
func Lookup(candidate string) (Command, bool) {
	s := strings.ToLower(candidate)

	i := sort.Search(len(Commands), func(i int) bool {
		return Commands[i].Name >= s
	})
	if i < len(Commands) && Commands[i].Name == s {
		return Commands[i], true
	}

	return Command{}, false
}
