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

//go:build !windows

package colorterm

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/debugger/terminal"
	"github.com/gopheradvance/gopheradvance/debugger/terminal/colorterm/easyterm"
	"github.com/gopheradvance/gopheradvance/debugger/terminal/colorterm/easyterm/ansi"
)

// readRune is the type passed over the runeReader channel.
type readRune struct {
	r   rune
	err error
}

// runeReader decouples reading from the input stream from the TermRead()
// loop, allowing TermRead() to service events while waiting for a keypress.
type runeReader struct {
	runes chan readRune
}

// initRuneReader starts the goroutine that reads runes from the input stream.
// the goroutine runs for the remainder of the process.
func initRuneReader(input io.Reader) runeReader {
	rr := runeReader{runes: make(chan readRune)}

	br := bufio.NewReader(input)
	go func() {
		for {
			r, _, err := br.ReadRune()
			rr.runes <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return rr
}

// nextRune returns the next rune from the input stream, servicing any
// signals that arrive while waiting. a handled signal returns the zero rune,
// which the TermRead() loop ignores.
func (ct *ColorTerminal) nextRune(events *terminal.ReadEvents) (rune, error) {
	select {
	case rr := <-ct.reader.runes:
		if rr.err != nil {
			return 0, rr.err
		}
		return rr.r, nil
	case sig := <-events.Signal:
		if err := events.SignalHandler(sig); err != nil {
			return 0, err
		}
		return 0, nil
	}
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	// the pen used to paint the prompt
	var promptPen string
	switch prompt.Type {
	case terminal.PromptTypeConfirm:
		promptPen = ansi.Pens["red"]
	default:
		promptPen = ansi.PenStyles["bold"]
	}

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	input := make([]byte, 255)
	n := 0
	cursor := 0
	history := len(ct.history)

	// buffInput is used to store the latest input when we scroll through
	// history. we don't want to lose what we've typed in case the user wants
	// to resume where they left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	// the method for cursor placement is as follows:
	// 	1. for each iteration in the loop
	//		2. store current cursor position
	//		3. clear the current line
	//		4. output the prompt
	//		5. output the input buffer
	//		6. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	ct.EasyTerm.TermPrint("\r%s", ansi.CursorMove(len(prompt.String())))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.EasyTerm.TermPrint("%s%s%s", ansi.ClearLine, promptPen, prompt.String())
		ct.EasyTerm.TermPrint("%s%s", ansi.NormalPen, string(input[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		r, err := ct.nextRune(events)
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursor

				// append everything after the cursor to the new string and
				// copy into input array
				s += string(input[cursor:n])
				copy(input, s)

				// advance cursor to the end of the completed word
				ct.EasyTerm.TermPrint(ansi.CursorMove(d))
				cursor += d

				// note new used-length of input array
				n += d
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn:
			ct.EasyTerm.TermPrint("\n")
			return string(input[:n]), nil

		case easyterm.KeyEsc:
			// ESCAPE SEQUENCE BEGIN
			r, err := ct.nextRune(events)
			if err != nil {
				return "", err
			}
			switch r {
			case easyterm.EscCursor:
				// CURSOR KEY
				r, err := ct.nextRune(events)
				if err != nil {
					return "", err
				}

				switch r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.history) > 0 {
						// if we're at the end of the command history then
						// store the current input in buffInput for possible
						// later editing
						if history == len(ct.history) {
							copy(buffInput, input[:n])
							buffN = n
						}

						if history > 0 {
							history--
							copy(input, ct.history[history])
							n = len(ct.history[history])
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}

				case easyterm.CursorDown:
					// move down through command history
					if len(ct.history) > 0 {
						if history < len(ct.history)-1 {
							history++
							copy(input, ct.history[history])
							n = len(ct.history[history])
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						} else if history == len(ct.history)-1 {
							history++
							copy(input, buffInput)
							n = buffN
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}

				case easyterm.CursorForward:
					// move forward through current command input
					if cursor < n {
						ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
						cursor++
					}

				case easyterm.CursorBackward:
					// move backward through current command input
					if cursor > 0 {
						ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
						cursor--
					}

				case easyterm.EscHome:
					ct.EasyTerm.TermPrint(ansi.CursorMove(-cursor))
					cursor = 0

				case easyterm.EscEnd:
					ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n

				case easyterm.EscDelete:
					// the delete key sends a four character sequence. the
					// trailing tilde is of no interest but it must be
					// consumed
					if _, err := ct.nextRune(events); err != nil {
						return "", err
					}

					if cursor < n {
						copy(input[cursor:], input[cursor+1:n])
						n--
						history = len(ct.history)
					}
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.history)
			}

		default:
			if unicode.IsPrint(r) {
				m := utf8.EncodeRune(er, r)

				// never outgrow the input buffer
				if n+m > len(input) {
					continue
				}

				// never outgrow the terminal. the paint loop redraws the
				// whole input on a single line
				if g := ct.Geometry(); g.Cols > 0 && len(prompt.String())+n+m >= int(g.Cols) {
					continue
				}

				copy(input[cursor+m:], input[cursor:n])
				copy(input[cursor:], er[:m])
				ct.EasyTerm.TermPrint("%c", r)
				cursor += m
				n += m
				history = len(ct.history)
			}
		}
	}
}
