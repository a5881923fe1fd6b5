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

package ioerr

import "errors"

// IsAny checks if the error was created by this package.
func IsAny(err error) bool {
	if err == nil {
		return false
	}

	_, ok := err.(*Error)
	return ok
}

// Is checks if the error was created by this package with a specific kind.
// The check applies to the error itself and does not look inside wrapped
// causes. Use the Has() function to search a chain of errors.
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.kind == kind
	}

	return false
}

// Has checks if an error of a specific kind appears somewhere in the chain.
// The chain is followed through the standard Unwrap convention so errors
// wrapped by other packages are traversed too.
func Has(err error, kind Kind) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, New(kind))
}

// KindOf returns the kind of the first error in the chain that was created
// by this package. The second return value is false if there is no such
// error in the chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return 0, false
}
