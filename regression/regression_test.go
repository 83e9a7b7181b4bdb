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

package regression_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/regression"
	"github.com/gopheradvance/gopheradvance/test"
)

// the regression database lives in the resource path, which for non-release
// builds is relative to the working directory. run each test in its own
// directory so that tests cannot see each other's database.
func tempWorkingDir(t *testing.T) {
	t.Helper()
	cwd, err := os.Getwd()
	test.DemandSuccess(t, err)
	err = os.Chdir(t.TempDir())
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})
}

func rewriteCart(t *testing.T, fn string, words ...uint32) {
	t.Helper()
	data := make([]byte, 0, len(words)*4)
	for _, w := range words {
		data = append(data, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	err := os.WriteFile(fn, data, 0o644)
	test.DemandSuccess(t, err)
}

func writeCart(t *testing.T, words ...uint32) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.ga32")
	rewriteCart(t, fn, words...)
	return fn
}

func TestRegress_addAndRun(t *testing.T) {
	tempWorkingDir(t)

	fn := writeCart(t,
		0x01000000, // MOVI r0, #0
		0x05000001, // ADDI r0, r0, #1
		0x2000fffc, // B -4 (back to the ADDI)
	)

	tw := &test.Writer{}

	reg := &regression.StateRegression{
		CartLoad:        cartridgeloader.NewLoader(fn),
		NumInstructions: 100,
		Notes:           "counting loop",
	}

	err := regression.RegressAdd(tw, reg)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "added: [state] program"))

	// rerunning the test on an unchanged cartridge should succeed
	tw.Clear()
	err = regression.RegressRun(tw, false, nil)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "succeed: [state] program"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "regression tests: 1 succeed, 0 fail, 0 skipped"))
}

func TestRegress_failure(t *testing.T) {
	tempWorkingDir(t)

	fn := writeCart(t,
		0x01000005, // MOVI r0, #5
		0xff000000, // HLT
	)

	tw := &test.Writer{}

	reg := &regression.StateRegression{
		CartLoad:        cartridgeloader.NewLoader(fn),
		NumInstructions: 2,
	}

	err := regression.RegressAdd(tw, reg)
	test.ExpectSuccess(t, err)

	// alter the program. the recorded fingerprint should no longer match
	rewriteCart(t, fn,
		0x01000007, // MOVI r0, #7
		0xff000000, // HLT
	)

	tw.Clear()
	err = regression.RegressRun(tw, false, nil)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "failure: [state] program"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "regression tests: 0 succeed, 1 fail, 0 skipped"))

	// the FAILS keyword reruns the entries that failed last time
	tw.Clear()
	err = regression.RegressRun(tw, false, []string{"FAILS"})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "failure: [state] program"))

	// restoring the program returns the test to success
	rewriteCart(t, fn,
		0x01000005, // MOVI r0, #5
		0xff000000, // HLT
	)

	tw.Clear()
	err = regression.RegressRun(tw, false, []string{"FAILS"})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "succeed: [state] program"))

	// nothing failed in the last run so there is nothing for the FAILS
	// keyword to refer to
	tw.Clear()
	err = regression.RegressRun(tw, false, []string{"FAILS"})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "no previous failures to rerun"))
}

func TestRegress_logEntry(t *testing.T) {
	tempWorkingDir(t)

	// the BKPT instruction logs a complaint when no debugger is attached.
	// the log test fingerprints that log output
	fn := writeCart(t,
		0xf0000000, // BKPT
		0xff000000, // HLT
	)

	tw := &test.Writer{}

	reg := &regression.LogRegression{
		CartLoad:        cartridgeloader.NewLoader(fn),
		NumInstructions: 10,
	}

	err := regression.RegressAdd(tw, reg)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "added: [log] program"))

	tw.Clear()
	err = regression.RegressRun(tw, false, nil)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "succeed: [log] program"))
}

func TestRegress_listAndDelete(t *testing.T) {
	tempWorkingDir(t)

	fn := writeCart(t,
		0x01000063, // MOVI r0, #99
		0xff000000, // HLT
	)

	tw := &test.Writer{}

	err := regression.RegressAdd(tw, &regression.StateRegression{
		CartLoad:        cartridgeloader.NewLoader(fn),
		NumInstructions: 2,
	})
	test.ExpectSuccess(t, err)

	err = regression.RegressAdd(tw, &regression.LogRegression{
		CartLoad:        cartridgeloader.NewLoader(fn),
		NumInstructions: 2,
	})
	test.ExpectSuccess(t, err)

	tw.Clear()
	err = regression.RegressList(tw)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "000 [state] program"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "001 [log] program"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "Total: 2"))

	// answering no to the confirmation leaves the database unchanged
	tw.Clear()
	err = regression.RegressDelete(tw, strings.NewReader("n\n"), "0")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, strings.Contains(tw.String(), "deleted test #0"))

	// answering yes deletes the entry
	tw.Clear()
	err = regression.RegressDelete(tw, strings.NewReader("y\n"), "0")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "deleted test #0"))

	tw.Clear()
	err = regression.RegressList(tw)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, strings.Contains(tw.String(), "000 [state]"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "Total: 1"))

	// deleting an entry that does not exist is an error
	err = regression.RegressDelete(tw, strings.NewReader("y\n"), "100")
	test.ExpectFailure(t, err)
}

func TestRegress_filterKeys(t *testing.T) {
	tempWorkingDir(t)

	fn := writeCart(t,
		0x01000063, // MOVI r0, #99
		0xff000000, // HLT
	)

	tw := &test.Writer{}

	err := regression.RegressAdd(tw, &regression.StateRegression{
		CartLoad:        cartridgeloader.NewLoader(fn),
		NumInstructions: 2,
	})
	test.ExpectSuccess(t, err)

	err = regression.RegressAdd(tw, &regression.StateRegression{
		CartLoad:        cartridgeloader.NewLoader(fn),
		NumInstructions: 1,
	})
	test.ExpectSuccess(t, err)

	// running a single key skips the other entry
	tw.Clear()
	err = regression.RegressRun(tw, false, []string{"1"})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "regression tests: 1 succeed, 0 fail, 1 skipped"))

	// keys that are not numeric are rejected
	err = regression.RegressRun(tw, false, []string{"wrong"})
	test.ExpectFailure(t, err)
}
