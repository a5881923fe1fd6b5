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

import "fmt"

// descriptions for each error kind. used by the String() function and as the
// entire error message for errors created without a payload
var messages = map[Kind]string{
	NotFound:         "entity not found",
	PermissionDenied: "permission denied",
	AlreadyExists:    "entity already exists",
	InvalidInput:     "invalid input parameter",
	InvalidData:      "invalid data",
	TimedOut:         "timed out",
	Interrupted:      "operation interrupted",
	WriteZero:        "write zero",
	UnexpectedEOF:    "unexpected end of file",
	Unsupported:      "unsupported operation",
	Other:            "other error",
}

// String returns the description of the error kind. Kinds outside of the
// declared list are reported rather than causing a panic. Implements the
// Stringer interface in the fmt package.
func (k Kind) String() string {
	if s, ok := messages[k]; ok {
		return s
	}
	return fmt.Sprintf("unrecognised error kind (%d)", int(k))
}
