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

// Ensure checks that a condition holds and returns a kind-tagged error when
// it does not. The error is created with the New() function; the kind and
// payload arguments are the same as for that function.
//
// Ensure returns an untyped nil when the condition holds, so the usual
// early-return pattern behaves as expected:
//
//	func (s *stream) skip(n int) error {
//		if err := ioerr.Ensure(n >= 0, ioerr.InvalidInput, "skip of negative length (%d)", n); err != nil {
//			return err
//		}
//		...
//	}
//
// The condition is evaluated by the caller, before Ensure runs, and so is
// evaluated exactly once however the check turns out.
func Ensure(cond bool, kind Kind, payload ...interface{}) error {
	if cond {
		return nil
	}
	return New(kind, payload...)
}

// EnsureEq checks that two values are equal and returns a kind-tagged error
// when they are not. Equality is the == operator for the values' type. Each
// operand is evaluated exactly once.
func EnsureEq[T comparable](left T, right T, kind Kind, payload ...interface{}) error {
	return Ensure(left == right, kind, payload...)
}

// EnsureNe checks that two values are not equal and returns a kind-tagged
// error when they are. The counterpart of EnsureEq and subject to the same
// evaluation rules.
func EnsureNe[T comparable](left T, right T, kind Kind, payload ...interface{}) error {
	return Ensure(left != right, kind, payload...)
}
