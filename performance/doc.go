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

// Package performance contains helper functions relating to performance.
//
// Check() runs the machine headlessly, optionally for a fixed duration of
// time and optionally generating profiling information, and reports the
// measured instruction rate when it is done.
//
// RunProfiler() generates the various profile types around any function. On
// its own it does not limit how long the function runs for, so it is useful
// in more real-world situations; the debugger is run through it when
// profiling of a debugging session has been requested.
package performance
