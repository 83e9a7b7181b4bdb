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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Errors are created with the Errorf() function. Unlike fmt.Errorf() the
// formatting pattern is retained alongside the placeholder values, which
// allows errors to be distinguished by pattern later on:
//
//	e := curated.Errorf("ga32: %v", err)
//
//	if curated.Is(e, "ga32: %v") {
//		...
//	}
//
// The Has() function is similar to Is() but checks for the pattern anywhere
// in the error chain, rather than just at the head. IsAny() says whether the
// error is curated at all; an uncurated error is best treated as unexpected.
//
// The Error() function normalises the message chain, removing duplicate
// adjacent parts. Parts are delimited by the sub-string ': ', as suggested on
// p239 of "The Go Programming Language" (Donovan, Kernighan). This means
// functions can wrap and return errors freely, without worrying about
// duplicated information appearing in the final message.
//
// Sentinel errors are achieved by storing the pattern as a const string and
// comparing with the Is() and Has() functions.
package curated
