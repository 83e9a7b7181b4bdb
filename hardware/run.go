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

package hardware

import (
	"github.com/gopheradvance/gopheradvance/debugger/govern"
	"github.com/gopheradvance/gopheradvance/logger"
)

// The continueCheck() function run by Run() is called after every CPU
// instruction. Even at that granularity a full continue check can be
// expensive.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Exiting, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// ClockHz is the nominal instruction rate of the GA32. The emulation itself
// runs as quickly as it can; anything that wants to pace the machine to how
// fast the real hardware would be, paces against this.
const ClockHz = 8000000

// Run sets the emulation running as quickly as possible. The emulation
// continues until the CPU halts, the continueCheck() function returns a state
// other than govern.Running, or an error occurs.
//
// BKPT instructions are acknowledged with a log entry. Debugging sessions do
// not use this function, they drive the CPU directly.
func (ga *GA32) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for state == govern.Running {
		if ga.CPU.Halted {
			return nil
		}

		err = ga.CPU.Step()
		if err != nil {
			return err
		}

		if ga.CPU.BreakRequest {
			logger.Log(logger.Allow, "ga32", "No debugger attached!")
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
