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

package test_test

import (
	"errors"
	"io"
	"testing"

	"github.com/gopheradvance/gopheradvance/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, true)
	test.ExpectEquality(t, true, !false)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10, 11, 0.1)
	test.ExpectApproximate(t, 0.95, 1.0, 0.05)
}

func TestDemand(t *testing.T) {
	test.DemandEquality(t, 10, 5+5)
	test.DemandSuccess(t, nil)
	test.DemandFailure(t, errors.New("test"))
	test.DemandImplements[io.Writer](t, &test.Writer{}, nil)
}

func TestWriter(t *testing.T) {
	tw := &test.Writer{}

	n, err := tw.Write([]byte("hello"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 5)
	test.ExpectSuccess(t, tw.Compare("hello"))

	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
