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

package regression

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/database"
	"github.com/gopheradvance/gopheradvance/debugger/govern"
	"github.com/gopheradvance/gopheradvance/digest"
	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/performance/limiter"
)

const stateEntryID = "state"

const (
	stateFieldCartName int = iota
	stateFieldNumInstructions
	stateFieldNotes
	stateFieldDigest
	numStateFields
)

// StateRegression is a regression type that runs a cartridge for a set
// number of instructions, folding the machine state after every instruction
// into a rolling hash. A hash mismatch means the emulation has diverged at
// some point during the run.
type StateRegression struct {
	CartLoad        cartridgeloader.Loader
	NumInstructions int
	Notes           string
	digest          string
}

func deserialiseStateEntry(fields database.SerialisedEntry) (database.Entry, error) {
	reg := &StateRegression{}

	// basic sanity check
	if len(fields) != numStateFields {
		return nil, curated.Errorf("state: wrong number of fields in database entry")
	}

	reg.CartLoad = cartridgeloader.NewLoader(fields[stateFieldCartName])
	reg.Notes = fields[stateFieldNotes]
	reg.digest = fields[stateFieldDigest]

	var err error

	reg.NumInstructions, err = strconv.Atoi(fields[stateFieldNumInstructions])
	if err != nil {
		return nil, curated.Errorf("state: invalid numInstructions field [%s]", fields[stateFieldNumInstructions])
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg StateRegression) ID() string {
	return stateEntryID
}

// String implements the database.Entry interface.
func (reg StateRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s instructions=%d", reg.ID(), reg.CartLoad.ShortName(), reg.NumInstructions))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *StateRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
			reg.CartLoad.Filename,
			strconv.Itoa(reg.NumInstructions),
			reg.Notes,
			reg.digest,
		},
		nil
}

// CleanUp implements the database.Entry interface.
func (reg StateRegression) CleanUp() error {
	return nil
}

// regress implements the regression.Regressor interface.
func (reg *StateRegression) regress(newRegression bool, output io.Writer, message string) (bool, error) {
	output.Write([]byte(message))

	ga := hardware.NewGA32()

	err := ga.AttachCartridge(reg.CartLoad)
	if err != nil {
		return false, curated.Errorf("state: %v", err)
	}

	dig := digest.NewState(ga)

	// display progress meter every 1 second
	lim := limiter.NewLimiter(1)

	numInstructions := 0

	err = ga.Run(func() (govern.State, error) {
		if err := dig.Step(); err != nil {
			return govern.Exiting, err
		}

		numInstructions++
		if numInstructions >= reg.NumInstructions {
			return govern.Exiting, nil
		}

		if lim.HasWaited() {
			output.Write([]byte(fmt.Sprintf("\r%s [%d/%d]", message, numInstructions, reg.NumInstructions)))
		}

		return govern.Running, nil
	})
	if err != nil {
		return false, curated.Errorf("state: %v", err)
	}

	if newRegression {
		reg.digest = dig.Hash()
		return true, nil
	}

	return dig.Hash() == reg.digest, nil
}
