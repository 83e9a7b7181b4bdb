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

package govern

// State indicates the debugger's current state.
type State int

// List of possible debugger states.
//
// The declaration order is important. States that compare less than Exiting
// are "live" states during which the emulation can still advance. The
// debugger's run loop relies on this ordering when deciding whether to
// continue.
//
// Paused is the default state.
const (
	Paused State = iota
	Running
	Exiting
	Shutdown
)

func (s State) String() string {
	switch s {
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	case Exiting:
		return "Exiting"
	case Shutdown:
		return "Shutdown"
	}

	return ""
}
