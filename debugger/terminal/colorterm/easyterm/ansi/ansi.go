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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
	attrStrike    = 8
)

// colours are referenced by name in calls to ColorBuild().
var colours = map[string]int{
	"black":   colBlack,
	"red":     colRed,
	"green":   colGreen,
	"yellow":  colYellow,
	"blue":    colBlue,
	"magenta": colMagenta,
	"cyan":    colCyan,
	"white":   colWhite,
	"normal":  colDefault,
}

// attributes are referenced by name in calls to ColorBuild().
var attributes = map[string]int{
	"bold":      attrBold,
	"underline": attrUnderline,
	"italic":    attrInverse,
	"strike":    attrStrike,
}

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen = mustColorBuild("", "", "", false, false)

	for _, col := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[col] = mustColorBuild(col, "normal", "", true, false)
		DimPens[col] = mustColorBuild(col, "normal", "", false, false)
	}

	for _, sty := range []string{"bold", "underline"} {
		PenStyles[sty] = mustColorBuild("", "", sty, false, false)
	}
}

// mustColorBuild is used to build the package-wide pen tables. the arguments
// to those calls are fixed so any error is a programming mistake.
func mustColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) string {
	s, err := ColorBuild(pen, paper, attribute, brightPen, brightPaper)
	if err != nil {
		panic(err)
	}
	return s
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.Grow(32)
	s.WriteString("\033[")

	// pen
	if pen != "" {
		penType := targetPen
		if brightPen {
			penType = targetBrightPen
		}
		col, ok := colours[strings.ToLower(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		s.WriteString(fmt.Sprintf("%d%d", penType, col))
	}

	// paper
	if paper != "" {
		if s.Len() > 2 {
			s.WriteString(";")
		}
		paperType := targetPaper
		if brightPaper {
			paperType = targetBrightPaper
		}
		col, ok := colours[strings.ToLower(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		s.WriteString(fmt.Sprintf("%d%d", paperType, col))
	}

	// attribute
	if attribute != "" {
		if s.Len() > 2 {
			s.WriteString(";")
		}
		if strings.ToLower(attribute) != "normal" {
			attr, ok := attributes[strings.ToLower(attribute)]
			if !ok {
				return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
			}
			s.WriteString(fmt.Sprintf("%d", attr))
		}
	}

	// terminate ANSI sequence
	s.WriteString("m")

	return s.String(), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore is the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorForwardOne is the CSI sequence to move the cursor forward (to the right
// for latin fonts) one character.
const CursorForwardOne = "\033[1C"

// CursorBackwardOne is the CSI sequence to move the cursor backward (to the left
// for latin fonts) one character.
const CursorBackwardOne = "\033[1D"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
