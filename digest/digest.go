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

// Package digest is used to create fingerprints of a running machine. The
// fingerprint is a cryptographic hash and if a newly generated hash differs
// from a previously recorded value then something in the emulation has
// changed. We use this as the basis for regression tests.
package digest

// Digest implementations return a cryptographic hash in response to a Hash()
// request. How the hash is generated is implementation specific.
type Digest interface {
	Hash() string
	ResetDigest()
}
