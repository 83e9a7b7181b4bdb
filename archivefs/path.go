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

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopheradvance/gopheradvance/curated"
)

// Path represents a single destination in the file system. The destination
// may be inside a zip archive.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// if the path is inside a zip file, the in-zip path is split into the
	// path to a file and the file itself
	inZipPath string
	inZipFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path.
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// Dir returns all but the last element of the current path.
func (afs Path) Dir() string {
	if afs.isDir {
		return afs.current
	}
	return filepath.Dir(afs.current)
}

// IsDir returns true if Path is currently set to a directory. For the
// purposes of archivefs, the root of an archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Open and return an io.ReadSeeker for the path previously given to the
// Set() function.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and
// any errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, curated.Errorf("archivefs: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(filepath.Join(afs.inZipPath, afs.inZipFile))
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: %v", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: %v", err)
		}

		return bytes.NewReader(b), len(b), nil
	}

	b, err := os.ReadFile(afs.current)
	if err != nil {
		return nil, 0, curated.Errorf("archivefs: %v", err)
	}

	return bytes.NewReader(b), len(b), nil
}

// Close any open zip files and reset the path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// Set the path. Each element of the path is checked in turn so that archive
// files part way along the path are descended into rather than rejected. On
// error the path is left in the reset state.
func (afs *Path) Set(path string) error {
	if err := afs.set(path); err != nil {
		afs.Close()
		return err
	}
	return nil
}

func (afs *Path) set(path string) error {
	afs.Close()

	// clean path and split into parts
	path = filepath.Clean(path)
	lst := strings.Split(path, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	// reuse path string
	path = ""

	for _, l := range lst {
		path = filepath.Join(path, l)

		if afs.zf != nil {
			p := filepath.Join(afs.inZipPath, l)

			zf, err := afs.zf.Open(p)
			if err != nil {
				return curated.Errorf("archivefs: set: %v", err)
			}

			zfi, err := zf.Stat()
			if err != nil {
				return curated.Errorf("archivefs: set: %v", err)
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipPath = p
				afs.inZipFile = ""
			} else {
				afs.inZipFile = l
			}
		} else {
			fi, err := os.Stat(path)
			if err != nil {
				return curated.Errorf("archivefs: set: %v", err)
			}

			afs.isDir = fi.IsDir()
			if afs.isDir {
				continue
			}

			afs.zf, err = zip.OpenReader(path)
			if err == nil {
				// the root of an archive file is considered to be a directory
				afs.isDir = true
				continue
			}

			if !errors.Is(err, zip.ErrFormat) {
				return curated.Errorf("archivefs: set: %v", err)
			}
		}
	}

	afs.current = filepath.Clean(path)

	return nil
}
