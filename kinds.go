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

// Kind identifies the category of failure. Kinds are deliberately broad. A
// more precise description of what went wrong belongs in the error payload,
// not in a new kind.
type Kind int

// List of error kinds.
const (
	NotFound Kind = iota
	PermissionDenied
	AlreadyExists
	InvalidInput
	InvalidData
	TimedOut
	Interrupted
	WriteZero
	UnexpectedEOF
	Unsupported
	Other

	// numKinds must be the last entry in the list
	numKinds
)
