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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/gopheradvance/gopheradvance/curated"
)

// Profile is used to specify the type of profile to be generated.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileAll
)

// ParseProfileString converts the string representation of a profile type,
// as supplied on the command line, to a Profile value.
func ParseProfileString(s string) (Profile, error) {
	switch strings.ToLower(s) {
	case "none":
		return ProfileNone, nil
	case "cpu":
		return ProfileCPU, nil
	case "mem":
		return ProfileMem, nil
	case "all":
		return ProfileAll, nil
	}
	return ProfileNone, curated.Errorf("profiling: unrecognised profile (%s)", s)
}

// RunProfiler runs the supplied function, optionally inside the CPU
// profiler, and writes the requested profiles to the working directory. The
// tag is used to name the profile files.
func RunProfiler(profile Profile, tag string, run func() error) error {
	err := cpuProfile(profile == ProfileCPU || profile == ProfileAll, fmt.Sprintf("%s_cpu.profile", tag), run)
	if err != nil {
		return err
	}
	return memProfile(profile == ProfileMem || profile == ProfileAll, fmt.Sprintf("%s_mem.profile", tag))
}

func cpuProfile(profile bool, outFile string, run func() error) error {
	if profile {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}

		err = pprof.StartCPUProfile(f)
		if err != nil {
			f.Close()
			return curated.Errorf("profiling: %v", err)
		}

		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	return run()
}

func memProfile(profile bool, outFile string) error {
	if profile {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
		defer f.Close()

		runtime.GC()

		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("profiling: %v", err)
		}
	}

	return nil
}
