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

// Package memory implements the GA32's memory space. The GA32 has a single,
// flat area of RAM. There is no memory protection and no unmapped areas;
// addresses outside the physical space wrap around.
//
// The memory is accessed through the interface defined in the cpubus
// package. Multi-byte values are stored little-endian and there is no
// alignment requirement for any access.
package memory
