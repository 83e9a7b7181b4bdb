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

package archivefs_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopheradvance/gopheradvance/archivefs"
	"github.com/gopheradvance/gopheradvance/test"
)

// testDir builds a directory containing a plain file and a zip archive with
// a file at its root and another in a sub-directory.
func testDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "plain.ga32"), []byte("plain contents"), 0o644)
	test.DemandSuccess(t, err)

	f, err := os.Create(filepath.Join(dir, "carts.zip"))
	test.DemandSuccess(t, err)

	zw := zip.NewWriter(f)

	w, err := zw.Create("program.ga32")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte("program contents"))
	test.DemandSuccess(t, err)

	w, err = zw.Create("more/other.ga32")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte("other contents"))
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	return dir
}

func TestPath(t *testing.T) {
	dir := testDir(t)

	var afs archivefs.Path
	var path string
	var err error

	// non-existant file
	path = filepath.Join(dir, "foo")
	err = afs.Set(path)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	err = afs.Set(dir)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), dir)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, !afs.InArchive())

	// a real file in a directory
	path = filepath.Join(dir, "plain.ga32")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, !afs.IsDir())
	test.ExpectSuccess(t, !afs.InArchive())

	// a real archive. treated as a directory
	path = filepath.Join(dir, "carts.zip")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// file in an archive
	path = filepath.Join(dir, "carts.zip", "program.ga32")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, !afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// file in a directory in an archive
	path = filepath.Join(dir, "carts.zip", "more", "other.ga32")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, !afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// non-existant file in an archive
	path = filepath.Join(dir, "carts.zip", "foo")
	err = afs.Set(path)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")

	afs.Close()
}

func TestOpen(t *testing.T) {
	dir := testDir(t)

	// plain file
	r, sz, err := archivefs.Open(filepath.Join(dir, "plain.ga32"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, len("plain contents"))
	d, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "plain contents")

	// file inside the archive
	r, sz, err = archivefs.Open(filepath.Join(dir, "carts.zip", "more", "other.ga32"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, len("other contents"))
	d, err = io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "other contents")

	// a directory cannot be opened
	_, _, err = archivefs.Open(dir)
	test.ExpectFailure(t, err)

	// nor can the root of an archive
	_, _, err = archivefs.Open(filepath.Join(dir, "carts.zip"))
	test.ExpectFailure(t, err)
}
