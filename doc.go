// This file is part of ioerr.
//
// ioerr is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ioerr is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ioerr.  If not, see <https://www.gnu.org/licenses/>.

// Package ioerr is a helper package for the plain Go language error type. It
// provides errors tagged with a Kind, a broad category of failure in the
// style of operating system I/O failures, and a small family of guard
// functions that turn a failed check into an early return.
//
// Errors are created with the New() function. The simplest form takes a kind
// and nothing else:
//
//	return ioerr.New(ioerr.UnexpectedEOF)
//
// Errors of this form are shared values and creating one does not allocate.
// A payload can be added, either a ready-made message, another error to act
// as the wrapped cause, or a format pattern with operands:
//
//	ioerr.New(ioerr.InvalidInput, "empty input")
//	ioerr.New(ioerr.InvalidData, err)
//	ioerr.New(ioerr.InvalidData, "bad field (%s)", name)
//
// The guard functions remove the boilerplate of check-then-return. Ensure()
// takes a condition and the same arguments as New() and returns nil when the
// condition holds:
//
//	func decode(data []byte) (frame, error) {
//		if err := ioerr.Ensure(len(data) > 0, ioerr.InvalidInput, "empty frame"); err != nil {
//			return frame{}, err
//		}
//		...
//	}
//
// EnsureEq() and EnsureNe() are the comparison forms, checking that two
// values are equal or not equal respectively:
//
//	if err := ioerr.EnsureEq(crc, want, ioerr.InvalidData, "checksum mismatch (%08x)", crc); err != nil {
//		return err
//	}
//
// The Is() function can be used to check whether an error was created by
// this package with a specific kind. The Has() function is similar but
// checks if the kind occurs somewhere in the error chain, following wrapped
// causes:
//
//	e := ioerr.New(ioerr.NotFound, "no symbol (%s)", sym)
//	f := fmt.Errorf("loading table: %w", e)
//
//	if ioerr.Has(f, ioerr.NotFound) {
//		...
//	}
//
// The Is() function in the standard errors package works too. The shared
// payload-free error for a kind matches every error of that kind:
//
//	if errors.Is(f, ioerr.New(ioerr.NotFound)) {
//		...
//	}
//
// The Error() function implementation ensures that the error message is
// normalised. Specifically, that the message chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of
// chains as being composed of parts separated by the sub-string ': ' as
// suggested on p239 of "The Go Programming Language" (Donovan, Kernighan).
package ioerr
