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

package digest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/debugger/govern"
	"github.com/gopheradvance/gopheradvance/digest"
	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/test"
)

func writeCart(t *testing.T, words ...uint32) string {
	t.Helper()
	data := make([]byte, 0, len(words)*4)
	for _, w := range words {
		data = append(data, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	fn := filepath.Join(t.TempDir(), "program.ga32")
	err := os.WriteFile(fn, data, 0o644)
	test.DemandSuccess(t, err)
	return fn
}

// run a counting loop for the specified number of instructions and return the
// rolling state fingerprint.
func runForHash(t *testing.T, fn string, numInstructions int) string {
	t.Helper()

	ga := hardware.NewGA32()
	err := ga.AttachCartridge(cartridgeloader.NewLoader(fn))
	test.DemandSuccess(t, err)

	dig := digest.NewState(ga)

	ct := 0
	err = ga.Run(func() (govern.State, error) {
		if err := dig.Step(); err != nil {
			return govern.Exiting, err
		}
		ct++
		if ct >= numInstructions {
			return govern.Exiting, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)

	return dig.Hash()
}

func TestState(t *testing.T) {
	fn := writeCart(t,
		0x01000000, // MOVI r0, #0
		0x05000001, // ADDI r0, r0, #1
		0x2000fffc, // B -4 (back to the ADDI)
	)

	// the same run should always produce the same fingerprint
	a := runForHash(t, fn, 100)
	b := runForHash(t, fn, 100)
	test.ExpectEquality(t, a, b)

	// running for even one instruction more changes the fingerprint
	c := runForHash(t, fn, 101)
	test.ExpectInequality(t, a, c)
}

func TestState_reset(t *testing.T) {
	fn := writeCart(t,
		0x01000063, // MOVI r0, #99
		0xff000000, // HLT
	)

	ga := hardware.NewGA32()
	err := ga.AttachCartridge(cartridgeloader.NewLoader(fn))
	test.DemandSuccess(t, err)

	dig := digest.NewState(ga)
	zero := dig.Hash()

	err = ga.Run(func() (govern.State, error) {
		return govern.Running, dig.Step()
	})
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, dig.Hash(), zero)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), zero)
}
