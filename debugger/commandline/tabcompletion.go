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

// TabCompletion completes command names from a Commands table. It implements
// the terminal.TabCompletion interface.
type TabCompletion struct {
	commands []Command
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type. the supplied table must be sorted by name, as the
// package level Commands table is.
func NewTabCompletion(commands []Command) *TabCompletion {
	return &TabCompletion{commands: commands}
}

// Complete transforms the input such that it is extended to the one command
// name the input unambiguously prefixes, along with a trailing space. if the
// input prefixes no command, or more than one, the input is returned
// unchanged.
//
// completion is case-insensitive and works on the command name only. input
// that already contains a space is returned unchanged.
func (tc *TabCompletion) Complete(input string) string {
	if strings.ContainsRune(input, ' ') {
		return input
	}

	prefix := strings.ToLower(input)
	if prefix == "" {
		return input
	}

	// first entry that sorts greater than or equal to the prefix
	i := sort.Search(len(tc.commands), func(i int) bool {
		return tc.commands[i].Name >= prefix
	})

	// no entry extends the prefix
	if i >= len(tc.commands) || !strings.HasPrefix(tc.commands[i].Name, prefix) {
		return input
	}

	// the prefix is ambiguous if the next entry also extends it
	if i+1 < len(tc.commands) && strings.HasPrefix(tc.commands[i+1].Name, prefix) {
		return input
	}

	return input + tc.commands[i].Name[len(prefix):] + " "
}
