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
	"strings"

	"github.com/gopheradvance/gopheradvance/curated"
)

// Registers is the interface to the CPU register file required by the
// ParseValues() function. register arguments are resolved to their current
// contents at parse time.
type Registers interface {
	Register(reg int) uint32
	PC() uint32
	SP() uint32
	LR() uint32
}

// ValueType identifies the type of payload a Value carries.
type ValueType int

// List of valid ValueType values. ValueString is reserved: no production in
// the argument grammar yields a string yet.
const (
	ValueInt ValueType = iota
	ValueString
)

// Value is a single command argument produced by the ParseValues() function.
type Value struct {
	Type ValueType
	N    uint32
	S    string
}

// list of states for the argument parser. parseExpectSuffix means that a
// register or named token has been fully resolved and nothing more can
// legally follow in the same token.
type parseState int

const (
	parseRoot parseState = iota
	parseExpectRegister
	parseExpectRegisterTeen
	parseExpectLR
	parseExpectPC
	parseExpectSP
	parseExpectDecimal
	parseExpectHex
	parseExpectPrefix
	parseExpectSuffix
)

// ParseValues converts the argument text of a command into an ordered list
// of values. the text is everything after the command name; an empty string
// is not an error, it produces an empty list.
//
// the grammar is case-insensitive. register references (r0 to r15, pc, sp,
// lr) resolve to the named register's current contents. numeric literals are
// decimal, or hexadecimal with a 0x or $ prefix; a bare 0 is the zero
// literal. literals larger than 32 bits wrap.
//
// tokens are separated by exactly one space. leading, trailing or doubled
// spaces are an error. any illegal token aborts the entire list: there is
// never a partial result.
func ParseValues(text string, regs Registers) ([]Value, error) {
	if text == "" {
		return nil, nil
	}

	tokens := strings.Split(text, " ")
	vals := make([]Value, 0, len(tokens))

	for _, tok := range tokens {
		if tok == "" {
			return nil, curated.Errorf("badly spaced arguments")
		}
		v, err := parseValue(tok, regs)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}

	return vals, nil
}

// parseValue runs a single token through the parser state machine. the
// machine iterates over an index into the token, rather than recursing, so
// pathological input cannot exhaust the stack.
func parseValue(tok string, regs Registers) (Value, error) {
	state := parseRoot

	// value accumulator. for register and named tokens the resolved register
	// contents are placed here as soon as the token is unambiguous
	var current uint32

	// whether at least one digit has been accumulated in the hex state. a
	// hex prefix with no digits after it is not a valid token
	var hexDigits bool

	// the grammar is case-insensitive
	lt := strings.ToLower(tok)

	for i := 0; i < len(lt); i++ {
		c := lt[i]

		switch state {
		case parseRoot:
			switch c {
			case 'r':
				state = parseExpectRegister
			case 'p':
				state = parseExpectPC
			case 's':
				state = parseExpectSP
			case 'l':
				state = parseExpectLR
			case '1', '2', '3', '4', '5', '6', '7', '8', '9':
				state = parseExpectDecimal
				current = uint32(c - '0')
			case '0':
				state = parseExpectPrefix
			case '$':
				state = parseExpectHex
			default:
				return Value{}, curated.Errorf("unrecognised argument (%s)", tok)
			}

		case parseExpectRegister:
			switch c {
			case '0', '2', '3', '4', '5', '6', '7', '8', '9':
				current = regs.Register(int(c - '0'))
				state = parseExpectSuffix
			case '1':
				state = parseExpectRegisterTeen
			default:
				return Value{}, curated.Errorf("unrecognised argument (%s)", tok)
			}

		case parseExpectRegisterTeen:
			switch c {
			case '0', '1', '2', '3', '4', '5':
				current = regs.Register(int(c-'0') + 10)
				state = parseExpectSuffix
			default:
				return Value{}, curated.Errorf("unrecognised argument (%s)", tok)
			}

		case parseExpectLR:
			if c != 'r' {
				return Value{}, curated.Errorf("unrecognised argument (%s)", tok)
			}
			current = regs.LR()
			state = parseExpectSuffix

		case parseExpectPC:
			if c != 'c' {
				return Value{}, curated.Errorf("unrecognised argument (%s)", tok)
			}
			current = regs.PC()
			state = parseExpectSuffix

		case parseExpectSP:
			if c != 'p' {
				return Value{}, curated.Errorf("unrecognised argument (%s)", tok)
			}
			current = regs.SP()
			state = parseExpectSuffix

		case parseExpectDecimal:
			if c < '0' || c > '9' {
				return Value{}, curated.Errorf("unrecognised argument (%s)", tok)
			}
			current = current*10 + uint32(c-'0')

		case parseExpectHex:
			switch {
			case c >= '0' && c <= '9':
				current = current*16 + uint32(c-'0')
			case c >= 'a' && c <= 'f':
				current = current*16 + uint32(c-'a'+10)
			default:
				return Value{}, curated.Errorf("unrecognised argument (%s)", tok)
			}
			hexDigits = true

		case parseExpectPrefix:
			if c != 'x' {
				return Value{}, curated.Errorf("unrecognised argument (%s)", tok)
			}
			state = parseExpectHex

		case parseExpectSuffix:
			return Value{}, curated.Errorf("unrecognised argument (%s)", tok)
		}
	}

	// the state the machine finishes in decides whether the token was
	// complete
	switch state {
	case parseExpectDecimal:
		return Value{Type: ValueInt, N: current}, nil

	case parseExpectHex:
		if !hexDigits {
			return Value{}, curated.Errorf("incomplete argument (%s)", tok)
		}
		return Value{Type: ValueInt, N: current}, nil

	case parseExpectPrefix:
		// a lone 0 with no 0x prefix completing it is the zero literal
		return Value{Type: ValueInt, N: 0}, nil

	case parseExpectRegisterTeen:
		// a bare r1 is a complete register reference. only a second digit of
		// 0 to 5 can extend it
		return Value{Type: ValueInt, N: regs.Register(1)}, nil

	case parseExpectSuffix:
		return Value{Type: ValueInt, N: current}, nil
	}

	// any other state means the token ended before it resolved to anything
	return Value{}, curated.Errorf("incomplete argument (%s)", tok)
}
