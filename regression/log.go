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
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/database"
	"github.com/gopheradvance/gopheradvance/debugger/govern"
	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/logger"
	"github.com/gopheradvance/gopheradvance/performance/limiter"
)

const logEntryID = "log"

const (
	logFieldCartName int = iota
	logFieldNumInstructions
	logFieldNotes
	logFieldDigest
	numLogFields
)

// LogRegression is a regression type that runs a cartridge for a set number
// of instructions and hashes the debugging log produced by the run. It is
// useful for cartridges that exercise code paths that complain to the log
// rather than altering machine state in an easily observable way.
type LogRegression struct {
	CartLoad        cartridgeloader.Loader
	NumInstructions int
	Notes           string
	digest          string
}

func deserialiseLogEntry(fields database.SerialisedEntry) (database.Entry, error) {
	reg := &LogRegression{}

	// basic sanity check
	if len(fields) != numLogFields {
		return nil, curated.Errorf("log: wrong number of fields in database entry")
	}

	reg.CartLoad = cartridgeloader.NewLoader(fields[logFieldCartName])
	reg.Notes = fields[logFieldNotes]
	reg.digest = fields[logFieldDigest]

	var err error

	reg.NumInstructions, err = strconv.Atoi(fields[logFieldNumInstructions])
	if err != nil {
		return nil, curated.Errorf("log: invalid numInstructions field [%s]", fields[logFieldNumInstructions])
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg LogRegression) ID() string {
	return logEntryID
}

// String implements the database.Entry interface.
func (reg LogRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s instructions=%d", reg.ID(), reg.CartLoad.ShortName(), reg.NumInstructions))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *LogRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
			reg.CartLoad.Filename,
			strconv.Itoa(reg.NumInstructions),
			reg.Notes,
			reg.digest,
		},
		nil
}

// CleanUp implements the database.Entry interface.
func (reg LogRegression) CleanUp() error {
	return nil
}

// regress implements the regression.Regressor interface.
func (reg *LogRegression) regress(newRegression bool, output io.Writer, message string) (bool, error) {
	output.Write([]byte(message))

	ga := hardware.NewGA32()

	err := ga.AttachCartridge(reg.CartLoad)
	if err != nil {
		return false, curated.Errorf("log: %v", err)
	}

	// clear the central log so that the hash covers this run and nothing
	// else
	logger.Clear()

	// display progress meter every 1 second
	lim := limiter.NewLimiter(1)

	numInstructions := 0

	err = ga.Run(func() (govern.State, error) {
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
		return false, curated.Errorf("log: %v", err)
	}

	// hash the log output produced during the run
	buf := &bytes.Buffer{}
	logger.Write(buf)
	dig := fmt.Sprintf("%x", sha1.Sum(buf.Bytes()))

	if newRegression {
		reg.digest = dig
		return true, nil
	}

	return dig == reg.digest, nil
}
