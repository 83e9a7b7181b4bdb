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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/hardware/cpu"
)

// the amount of machine state folded into the hash on every Step(). the
// sixteen registers and the status register, four bytes each.
const stateDepth = (cpu.NumRegisters + 1) * 4

// State is a rolling fingerprint of the condition of a GA32 machine. The
// Step() function folds the current contents of the register file and the
// status register into the hash. Because each hash includes the previous
// hash, the final value fingerprints the entire run and not just the state
// at the moment of the last Step().
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type State struct {
	ga     *hardware.GA32
	digest [sha1.Size]byte
	state  []byte
}

// NewState initialises a new instance of State.
func NewState(ga *hardware.GA32) *State {
	dig := &State{ga: ga}

	// length of state array contains enough room for the previous step's
	// digest value
	dig.state = make([]byte, sha1.Size+stateDepth)

	return dig
}

// Hash implements the digest.Digest interface.
func (dig State) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *State) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Step folds the current machine state into the fingerprint.
func (dig *State) Step() error {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the state data
	n := copy(dig.state, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: error chaining state fingerprint")
	}

	i := len(dig.digest)
	for r := 0; r < cpu.NumRegisters; r++ {
		binary.LittleEndian.PutUint32(dig.state[i:], dig.ga.CPU.Regs[r])
		i += 4
	}
	binary.LittleEndian.PutUint32(dig.state[i:], dig.ga.CPU.PSR.Value())

	dig.digest = sha1.Sum(dig.state)

	return nil
}
