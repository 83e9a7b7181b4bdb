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

// Package regression facilitates the regression testing of emulation code.
// By adding test results to a database, the tests can be rerun automatically
// and checked for consistency.
//
// Currently, two types of test are supported. First the state test. This
// test runs a cartridge for a set number of instructions, folding the
// machine state after every instruction into a rolling hash and saving the
// final value to the test database. A change to the hash means the emulation
// has diverged at some point during the run, not just at the end of it.
//
// The second test is the log test. This runs a cartridge in the same way but
// hashes the debugging log produced by the run. It is useful for cartridges
// that exercise code paths that complain to the log rather than altering
// machine state in an easily observable way.
package regression
