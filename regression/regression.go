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
	"sort"
	"strconv"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/database"
	"github.com/gopheradvance/gopheradvance/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/gopheradvance/gopheradvance/resources"
)

// the location of the regression database and support files, relative to the
// resource path.
const regressionPath = "regression"
const regressionDBFile = "db"

// Regressor is the generic entry type in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag causes the test fingerprint to be stored in the entry rather than
	// compared against it.
	//
	// message is the string that is to be printed during the regression.
	// it does not have a trailing newline.
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	if err := db.RegisterEntryType(stateEntryID, deserialiseStateEntry); err != nil {
		return err
	}

	if err := db.RegisterEntryType(logEntryID, deserialiseLogEntry); err != nil {
		return err
	}

	return nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	if output == nil {
		return curated.Errorf("regression: list: output is nil (use nopWriter)")
	}

	dbPth, err := resources.JoinPath(regressionPath, regressionDBFile)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(dbPth, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes a specific entry from the regression database. The
// confirmation io.Reader is used to read the y/n answer to the delete
// prompt.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return curated.Errorf("regression: delete: output is nil (use nopWriter)")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key [%s]", key)
	}

	dbPth, err := resources.JoinPath(regressionPath, regressionDBFile)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(dbPth, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.SelectKeys(nil, v)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil {
		return err
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		err = db.Delete(v)
		if err != nil {
			return err
		}
		output.Write([]byte(fmt.Sprintf("deleted test #%s from regression database\n", key)))
	}

	return nil
}

// RegressAdd adds a new regression entry to the database. The regression
// test is run as part of the add process, with the fingerprint of the run
// being stored alongside the entry.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return curated.Errorf("regression: add: output is nil (use nopWriter)")
	}

	dbPth, err := resources.JoinPath(regressionPath, regressionDBFile)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(dbPth, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	ok, err := reg.regress(true, output, msg)
	if !ok || err != nil {
		return err
	}

	output.Write([]byte(ansi.ClearLine))
	output.Write([]byte(fmt.Sprintf("\radded: %s\n", reg)))

	return db.Add(reg)
}

// RegressRun runs the tests in the regression database. The filterKeys list
// specifies which entries to test. An empty list means that every entry
// should be tested.
//
// The keyword FAILS can be used in the filterKeys list. It is replaced with
// the keys that failed the last time RegressRun() was called.
func RegressRun(output io.Writer, verbose bool, filterKeys []string) error {
	if output == nil {
		return curated.Errorf("regression: run: output is nil (use nopWriter)")
	}

	dbPth, err := resources.JoinPath(regressionPath, regressionDBFile)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(dbPth, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	// substitute the FAILS keyword before parsing the list of keys
	filterKeys, err = addFailsToKeys(filterKeys)
	if err != nil {
		if curated.Is(err, noPreviousFails) {
			output.Write([]byte("no previous failures to rerun\n"))
			return nil
		}
		return err
	}

	// decide on the list of keys to run. an empty filter means every entry
	// in the database
	var keyList []int
	if len(filterKeys) == 0 {
		keyList = db.SortedKeyList()
	} else {
		keyList = make([]int, 0, len(filterKeys))
		for _, k := range filterKeys {
			v, err := strconv.Atoi(k)
			if err != nil {
				return curated.Errorf("regression: invalid key [%s]", k)
			}
			keyList = append(keyList, v)
		}
		sort.Ints(keyList)
	}

	numSucceed := 0
	numFail := 0
	numError := 0

	numSkipped := db.NumEntries() - len(keyList)
	if numSkipped < 0 {
		numSkipped = 0
	}

	defer func() {
		output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail, %d skipped", numSucceed, numFail, numSkipped)))
		if numError > 0 {
			output.Write([]byte(" [with errors]"))
		}
		output.Write([]byte("\n"))
	}()

	// the keys that fail during this run. saved to disk at the end of the
	// run for use with the FAILS keyword
	failedKeys := make([]string, 0, len(keyList))

	for _, key := range keyList {
		ent, err := db.SelectKeys(nil, key)
		if err != nil {
			return err
		}

		// database entry should also satisfy the Regressor interface
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database entry does not satisfy the Regressor interface")
		}

		msg := fmt.Sprintf("running: %s", reg)
		ok, err = reg.regress(false, output, msg)

		// once regress() has completed we clear the line ready for the
		// completion message
		output.Write([]byte(ansi.ClearLine))

		if err != nil {
			numError++
			output.Write([]byte(fmt.Sprintf("\r ERROR: %s\n", reg)))

			// output any error message on following line
			if verbose {
				output.Write([]byte(fmt.Sprintf("%s\n", err)))
			}

			failedKeys = append(failedKeys, strconv.Itoa(key))
		} else if !ok {
			numFail++
			output.Write([]byte(fmt.Sprintf("\rfailure: %s\n", reg)))

			failedKeys = append(failedKeys, strconv.Itoa(key))
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("\rsucceed: %s\n", reg)))
		}
	}

	return saveFails(failedKeys)
}
