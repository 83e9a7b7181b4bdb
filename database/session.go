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

package database

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gopheradvance/gopheradvance/curated"
)

// Activity is used to direct the type of database activity a session will
// involve.
type Activity int

// List of valid Activity values.
const (
	ActivityCreating Activity = iota
	ActivityReading
	ActivityModifying
)

// Session keeps track of a database session.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]deserialiser
}

// StartSession starts/initialises a new database session. The init argument
// is the function to call once the database file has been successfully
// opened. It is called before any entries are deserialised and is the
// opportunity to register entry types with RegisterEntryType().
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	var flags int

	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	case ActivityModifying:
		flags = os.O_RDWR
	}

	db := &Session{activity: activity}
	db.entryTypes = make(map[string]deserialiser)

	var err error

	db.dbfile, err = os.OpenFile(path, flags, 0600)
	if err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	// closing of db.dbfile requires a call to EndSession()

	err = init(db)
	if err != nil {
		return nil, err
	}

	err = db.readDBFile()
	if err != nil {
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. Changes made during the session are
// committed to the database file if commitChanges is true.
func (db *Session) EndSession(commitChanges bool) error {
	if db.dbfile == nil {
		return curated.Errorf("database: no open session")
	}

	// write entries to database
	if commitChanges {
		if db.activity == ActivityReading {
			return curated.Errorf("database: cannot commit to a read-only session")
		}

		err := db.dbfile.Truncate(0)
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		_, err = db.dbfile.Seek(0, io.SeekStart)
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		keyList := db.SortedKeyList()

		for _, key := range keyList {
			ser, err := db.entries[key].Serialise()
			if err != nil {
				return err
			}

			s := strings.Builder{}
			s.WriteString(recordHeader(key, db.entries[key].ID()))

			for i := 0; i < len(ser); i++ {
				s.WriteString(fieldSep)
				s.WriteString(ser[i])
			}

			s.WriteString(entrySep)

			_, err = db.dbfile.WriteString(s.String())
			if err != nil {
				return curated.Errorf("database: %v", err)
			}
		}
	}

	// end session by closing file
	err := db.dbfile.Close()
	if err != nil {
		return curated.Errorf("database: %v", err)
	}
	db.dbfile = nil

	return nil
}

func (db *Session) readDBFile() error {
	// clobbers the contents of db.entries
	db.entries = make(map[int]Entry)

	// make sure we're at the beginning of the file
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf("database: %v", err)
	}

	buffer, err := io.ReadAll(db.dbfile)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	// split entries
	lines := strings.Split(string(buffer), entrySep)

	for i := 0; i < len(lines); i++ {
		lines[i] = strings.TrimSpace(lines[i])
		if len(lines[i]) == 0 {
			continue
		}

		// the leader fields are the key and the entry ID. the remainder of
		// the line belongs to the entry itself
		fields := strings.SplitN(lines[i], fieldSep, numLeaderFields+1)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: truncated entry at line %d", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key [%s] at line %d", fields[leaderFieldKey], i+1)
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key [%d] at line %d", key, i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type [%s]", fields[leaderFieldID])
		}

		var ser SerialisedEntry
		if len(fields) > numLeaderFields {
			ser = strings.Split(fields[numLeaderFields], fieldSep)
		}

		ent, err := des(ser)
		if err != nil {
			return err
		}

		db.entries[key] = ent
	}

	return nil
}
