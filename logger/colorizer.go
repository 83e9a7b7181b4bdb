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

package logger

import (
	"io"
	"strings"

	"github.com/gopheradvance/gopheradvance/debugger/terminal/colorterm/easyterm/ansi"
)

// Colorizer applies basic colouring rules to logging output. The tag part of
// an entry is penned in its own colour and any repetition count is dimmed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
//
// Entries arrive one per call, in the form produced by the Entry type. Text
// that does not look like a log entry is passed through undecorated.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := strings.TrimSuffix(string(p), "\n")

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		if _, err = c.out.Write(p); err != nil {
			return 0, err
		}
		return len(p), nil
	}

	b := strings.Builder{}
	b.WriteString(ansi.DimPens["cyan"])
	b.WriteString(tag)
	b.WriteString(ansi.NormalPen)
	b.WriteString(": ")

	// the repetition count is less important than the detail itself
	if i := strings.LastIndex(detail, " (repeat x"); i >= 0 && strings.HasSuffix(detail, ")") {
		b.WriteString(detail[:i])
		b.WriteString(ansi.DimPens["white"])
		b.WriteString(detail[i:])
		b.WriteString(ansi.NormalPen)
	} else {
		b.WriteString(detail)
	}
	b.WriteString("\n")

	if _, err = io.WriteString(c.out, b.String()); err != nil {
		return 0, err
	}

	return len(p), nil
}
