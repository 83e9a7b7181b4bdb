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
	"io"
	"os"
	"time"

	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/debugger/govern"
	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/performance/limiter"
)

// sentinel error returned by the run loop when the measurement period has
// elapsed.
const timedOut = "performance: timed out"

// how many times per second the instruction rate cap wakes up. between
// waits the machine runs in a burst of ClockHz/limitTicks instructions.
const limitTicks = 100

// Check runs the cartridge headlessly until the program halts, the supplied
// duration elapses or something arrives on the quit channel. Profiles are
// generated as defined by the profile argument and a summary of the
// measured instruction rate is written to output.
//
// An empty duration string means no time limit. A nil quit channel is
// valid. Unless uncapped is true the machine is paced to its nominal clock
// rate.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, duration string, uncapped bool, quit <-chan os.Signal) error {
	ga := hardware.NewGA32()

	err := ga.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// a nil timer channel never fires, meaning no time limit
	var timerChan <-chan time.Time
	if duration != "" {
		dur, err := time.ParseDuration(duration)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		timerChan = time.After(dur)
	}

	var lim *limiter.Limiter
	if !uncapped {
		lim = limiter.NewLimiter(limitTicks)
	}

	// the continue check is called after every instruction so counting the
	// calls counts the instructions
	numInstructions := 0

	runner := func() error {
		// only check the channels every PerformanceBrake instructions.
		// checking them is relatively expensive
		performanceBrake := 0

		// instructions since the last wait on the rate cap
		limitBrake := 0

		err := ga.Run(func() (govern.State, error) {
			numInstructions++

			if lim != nil {
				limitBrake++
				if limitBrake >= hardware.ClockHz/limitTicks {
					limitBrake = 0
					lim.Wait()
				}
			}

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case <-timerChan:
					return govern.Exiting, curated.Errorf(timedOut)
				case <-quit:
					return govern.Exiting, nil
				default:
				}
			}

			return govern.Running, nil
		})

		// the measurement period ending is not an error
		if err != nil && !curated.Is(err, timedOut) {
			return err
		}
		return nil
	}

	startTime := time.Now()

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(startTime).Seconds()
	mips := float64(numInstructions) / elapsed / 1e6
	output.Write([]byte(fmt.Sprintf("%.2f MIPS (%d instructions in %.2f seconds)\n", mips, numInstructions, elapsed)))

	return nil
}
