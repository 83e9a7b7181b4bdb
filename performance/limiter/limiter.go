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

// Package limiter throttles a loop to a requested number of events per
// second. Create a Limiter and call Wait() at the point in the loop that is
// to be regulated:
//
//	lim := limiter.NewLimiter(100)
//	for {
//		lim.Wait()
//		// ... event ...
//	}
//
// The limiter self-corrects for the time spent between calls to Wait() so
// over a long enough period the event rate converges on the requested
// value.
package limiter

import (
	"time"
)

// Limiter regulates the speed of a loop.
type Limiter struct {
	eventsPerSecond int
	secondsPerEvent time.Duration
	tick            chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter
// type.
func NewLimiter(eventsPerSecond int) *Limiter {
	lim := &Limiter{}
	lim.SetLimit(eventsPerSecond)
	lim.tick = make(chan bool)

	go func() {
		adjusted := lim.secondsPerEvent
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjusted)

			// adjust sleep duration to account for how long the
			// loop body took
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.secondsPerEvent
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the number of events per second.
func (lim *Limiter) SetLimit(eventsPerSecond int) {
	lim.eventsPerSecond = eventsPerSecond
	lim.secondsPerEvent = time.Duration(float64(time.Second) / float64(eventsPerSecond))
}

// Wait until the next event is permitted to proceed.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited is the non-blocking version of Wait(). Returns true if the next
// event is permitted to proceed and false if it is not.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
