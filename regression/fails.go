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
	"os"
	"sort"
	"strings"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/resources"
)

// the file used to record failed keys between calls to RegressRun().
const fails = "fails"

// sentinel error returned by addFailsToKeys() when the FAILS keyword is used
// but there is nothing to substitute it with.
const noPreviousFails = "regression: no previous fails"

// sort keys, trim whitespace and remove empty strings and duplicates.
func tidyKeys(keys []string) []string {
	sort.Strings(keys)

	tidy := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if len(k) == 0 {
			continue
		}
		if len(tidy) > 0 && tidy[len(tidy)-1] == k {
			continue
		}
		tidy = append(tidy, k)
	}

	return tidy
}

func saveFails(keys []string) error {
	keys = tidyKeys(keys)

	p, err := resources.JoinPath(regressionPath, fails)
	if err != nil {
		return curated.Errorf("regression: save fails: %v", err)
	}

	f, err := os.Create(p)
	if err != nil {
		return curated.Errorf("regression: save fails: %v", err)
	}
	defer f.Close()

	for _, v := range keys {
		f.WriteString(fmt.Sprintf("%s\n", v))
	}

	return nil
}

func loadFails() ([]string, error) {
	p, err := resources.JoinPath(regressionPath, fails)
	if err != nil {
		return []string{}, curated.Errorf("regression: load fails: %v", err)
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return []string{}, curated.Errorf("regression: load fails: %v", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return []string{}, curated.Errorf("regression: load fails: %v", err)
	}

	return tidyKeys(strings.Split(string(b), "\n")), nil
}

// replace the FAILS keyword in the list of keys with the keys that failed
// during the previous run.
func addFailsToKeys(keys []string) ([]string, error) {
	keys = tidyKeys(keys)

	n := -1
	for i, k := range keys {
		if strings.ToUpper(k) == "FAILS" {
			n = i
			break
		}
	}
	if n < 0 {
		return keys, nil
	}

	keys = append(keys[:n], keys[n+1:]...)

	// load previous fails from disk
	prevFails, err := loadFails()
	if err != nil {
		return keys, err
	}

	if len(prevFails) == 0 {
		return keys, curated.Errorf(noPreviousFails)
	}

	// merge previous fails with keys
	return tidyKeys(append(keys, prevFails...)), nil
}
