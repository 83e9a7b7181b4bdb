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

// mockRegisters gives every register a distinct and predictable value.
type mockRegisters struct{}

func (r mockRegisters) Register(reg int) uint32 {
	return uint32(7 + reg*10)
}

func (r mockRegisters) PC() uint32 {
	return 0x8000
}

func (r mockRegisters) SP() uint32 {
	return 0x7f00
}

func (r mockRegisters) LR() uint32 {
	return 0x4444
}

func TestParseValues_literals(t *testing.T) {
	cases := []struct {
		input    string
		expected uint32
	}{
		{"1", 1},
		{"25", 25},
		{"4294967295", 4294967295},
		{"0x10", 16},
		{"0X10", 16},
		{"0xdeadbeef", 0xdeadbeef},
		{"0xDEADBEEF", 0xdeadbeef},
		{"$1f", 31},
		{"$1F", 31},
		{"$0", 0},

		// a bare 0 could be read as an incomplete hex prefix but it is
		// accepted as the zero literal
		{"0", 0},
	}

	for _, c := range cases {
		vals, err := commandline.ParseValues(c.input, mockRegisters{})
		test.DemandSuccess(t, err, c.input)
		test.DemandEquality(t, len(vals), 1, c.input)
		test.ExpectEquality(t, vals[0].Type, commandline.ValueInt, c.input)
		test.ExpectEquality(t, vals[0].N, c.expected, c.input)
	}
}

func TestParseValues_registers(t *testing.T) {
	cases := []struct {
		input    string
		expected uint32
	}{
		{"r0", 7},
		{"R0", 7},
		{"r1", 17},
		{"r9", 97},
		{"r10", 107},
		{"r15", 157},
		{"R15", 157},
		{"pc", 0x8000},
		{"PC", 0x8000},
		{"Pc", 0x8000},
		{"sp", 0x7f00},
		{"SP", 0x7f00},
		{"lr", 0x4444},
		{"LR", 0x4444},
	}

	for _, c := range cases {
		vals, err := commandline.ParseValues(c.input, mockRegisters{})
		test.DemandSuccess(t, err, c.input)
		test.DemandEquality(t, len(vals), 1, c.input)
		test.ExpectEquality(t, vals[0].N, c.expected, c.input)
	}
}

// literals larger than 32 bits wrap rather than erroring.
func TestParseValues_overflow(t *testing.T) {
	cases := []struct {
		input    string
		expected uint32
	}{
		{"4294967296", 0},
		{"4294967297", 1},
		{"0x1ffffffff", 0xffffffff},
		{"0x100000001", 1},
	}

	for _, c := range cases {
		vals, err := commandline.ParseValues(c.input, mockRegisters{})
		test.DemandSuccess(t, err, c.input)
		test.DemandEquality(t, len(vals), 1, c.input)
		test.ExpectEquality(t, vals[0].N, c.expected, c.input)
	}
}

func TestParseValues_lists(t *testing.T) {
	vals, err := commandline.ParseValues("1 2 3", mockRegisters{})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(vals), 3)
	test.ExpectEquality(t, vals[0].N, 1)
	test.ExpectEquality(t, vals[1].N, 2)
	test.ExpectEquality(t, vals[2].N, 3)

	vals, err = commandline.ParseValues("pc $10 25", mockRegisters{})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(vals), 3)
	test.ExpectEquality(t, vals[0].N, 0x8000)
	test.ExpectEquality(t, vals[1].N, 16)
	test.ExpectEquality(t, vals[2].N, 25)

	// an empty argument string is not an error. it is an empty list
	vals, err = commandline.ParseValues("", mockRegisters{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(vals), 0)
}

func TestParseValues_errors(t *testing.T) {
	cases := []string{
		// incomplete or malformed hex prefixes
		"0y",
		"0x",
		"$",

		// incomplete register and named tokens
		"r",
		"l",
		"s",
		"p",

		// register indexes end at r15
		"r16",
		"r1x",
		"rx",

		// nothing can follow a completed register or named token
		"r0x",
		"r10q",
		"pcx",
		"pc1",
		"sp2",
		"lrr",

		// malformed literals
		"hello",
		"1a",
		"-1",
		"0x10z",
		"$zz",

		// malformed spacing
		" 1",
		"1 ",
		"1  2",
	}

	for _, c := range cases {
		vals, err := commandline.ParseValues(c, mockRegisters{})
		test.ExpectFailure(t, err, c)
		test.ExpectEquality(t, len(vals), 0, c)
	}
}

// an illegal token anywhere in the list aborts the entire list. there is
// never a partial result.
func TestParseValues_abortEntireList(t *testing.T) {
	vals, err := commandline.ParseValues("25 bogus", mockRegisters{})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(vals), 0)

	vals, err = commandline.ParseValues("1 2 zz", mockRegisters{})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(vals), 0)
}

type mutableRegisters struct {
	v uint32
}

func (r *mutableRegisters) Register(reg int) uint32 {
	return r.v
}

func (r *mutableRegisters) PC() uint32 {
	return r.v
}

func (r *mutableRegisters) SP() uint32 {
	return r.v
}

func (r *mutableRegisters) LR() uint32 {
	return r.v
}

// register references resolve to the contents of the register at parse time.
// later changes to the register do not affect the value.
func TestParseValues_resolveAtParseTime(t *testing.T) {
	regs := &mutableRegisters{v: 5}

	vals, err := commandline.ParseValues("r0", regs)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(vals), 1)
	test.ExpectEquality(t, vals[0].N, 5)

	regs.v = 9
	test.ExpectEquality(t, vals[0].N, 5)
}
