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

package commandline_test

import (
	"testing"

	"github.com/gopheradvance/gopheradvance/debugger/commandline"
	"github.com/gopheradvance/gopheradvance/test"
)

func TestTabCompletion(t *testing.T) {
	tc := commandline.NewTabCompletion(commandline.Commands)

	cases := []struct {
		input    string
		expected string
	}{
		// unambiguous prefixes complete with a trailing space
		{"br", "break "},
		{"co", "continue "},
		{"ne", "next "},
		{"qu", "quit "},
		{"wa", "watch "},
		{"st", "status "},
		{"in", "info "},
		{"print/", "print/x "},

		// an exact match completes when no later entry shares the prefix
		{"rb", "rb "},
		{"rh", "rh "},
		{"rw", "rw "},
		{"x", "x "},

		// the typed case is preserved. the completed suffix is canonical
		{"BR", "BReak "},
		{"Qu", "Quit "},
	}

	for _, c := range cases {
		test.ExpectEquality(t, tc.Complete(c.input), c.expected, c.input)
	}
}

func TestTabCompletion_refusal(t *testing.T) {
	tc := commandline.NewTabCompletion(commandline.Commands)

	cases := []string{
		// short forms make their long forms ambiguous
		"b",
		"c",
		"n",
		"q",
		"w",
		"i",

		// print and print/x share the whole of the shorter name
		"p",
		"pr",
		"print",

		// prefixes that match nothing
		"d",
		"zz",
		"breakk",

		// empty input and input beyond the command name are refused
		"",
		"break $1",
		"rw 0",
	}

	for _, c := range cases {
		test.ExpectEquality(t, tc.Complete(c), c, c)
	}
}
