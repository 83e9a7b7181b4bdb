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

package hardware_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/debugger/govern"
	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/logger"
	"github.com/gopheradvance/gopheradvance/test"
)

// image assembles a sequence of wide instructions into a little-endian
// cartridge image.
func image(words ...uint32) []byte {
	data := make([]byte, 0, len(words)*4)
	for _, w := range words {
		data = append(data, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return data
}

func attach(t *testing.T, ga *hardware.GA32, words ...uint32) {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.ga32")
	err := os.WriteFile(fn, image(words...), 0o644)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ga.AttachCartridge(cartridgeloader.NewLoader(fn)))
}

func TestAttachCartridge(t *testing.T) {
	ga := hardware.NewGA32()
	attach(t, ga,
		0x01000063, // movi r0, 99
		0xff000000, // hlt
	)

	// reset procedure points the PC at the cartridge origin
	test.ExpectEquality(t, ga.CPU.Regs.PC(), uint32(cartridgeloader.Origin))

	v, err := ga.Mem.Read32(cartridgeloader.Origin)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x01000063))
}

func TestRun_halt(t *testing.T) {
	ga := hardware.NewGA32()
	attach(t, ga,
		0x01000063, // movi r0, 99
		0xff000000, // hlt
	)

	err := ga.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ga.CPU.Halted, true)
	test.ExpectEquality(t, ga.CPU.Regs.Register(0), uint32(99))

	// a halted machine does not run again
	err = ga.Run(nil)
	test.ExpectSuccess(t, err)
}

func TestRun_continueCheck(t *testing.T) {
	ga := hardware.NewGA32()
	attach(t, ga,
		0x2000fffe, // b -2 (to itself)
	)

	ct := 0
	err := ga.Run(func() (govern.State, error) {
		ct++
		if ct >= 10 {
			return govern.Exiting, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ct, 10)
	test.ExpectEquality(t, ga.CPU.Halted, false)
}

func TestRun_breakRequest(t *testing.T) {
	logger.Clear()

	ga := hardware.NewGA32()
	attach(t, ga,
		0xf0000000, // bkpt
		0xff000000, // hlt
	)

	err := ga.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ga.CPU.Halted, true)

	logged := false
	logger.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == "ga32" && e.Detail == "No debugger attached!" {
				logged = true
			}
		}
	})
	test.ExpectEquality(t, logged, true)
}

func BenchmarkCPU(b *testing.B) {
	ga := hardware.NewGA32()

	err := ga.Mem.Write32(cartridgeloader.Origin, 0x2000fffe) // b -2 (to itself)
	if err != nil {
		b.Fatal(err)
	}
	ga.Reset()

	b.ResetTimer()

	ct := 0
	err = ga.Run(func() (govern.State, error) {
		ct++
		if ct >= b.N {
			return govern.Exiting, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		b.Fatal(err)
	}
}
