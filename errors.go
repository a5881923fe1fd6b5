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

import (
	"fmt"
	"strings"
)

// Error is an implementation of the go language error interface. It pairs a
// Kind with an optional payload. Errors are immutable once created; the only
// way to create one is with the New() function (or with the guard functions,
// which call New() on your behalf).
type Error struct {
	kind    Kind
	payload interface{}
}

// errors created without a payload are shared. one per declared kind,
// allocated at package initialisation.
var sentinels [numKinds]*Error

func init() {
	for k := range sentinels {
		sentinels[k] = &Error{kind: Kind(k)}
	}
}

// New creates a kind-tagged error. The payload arguments decide the shape of
// the error:
//
// With no payload arguments the error carries the kind alone. Errors of this
// shape are shared values created at package initialisation, meaning that the
// payload-free path performs no allocation.
//
// With a single payload argument the value is stored as-is. A string is kept
// verbatim with no interpolation, even if it contains formatting verbs; an
// error value becomes a wrapped cause, retrievable with the Unwrap()
// function; any other value is rendered with the %v verb when the message is
// requested.
//
// With two or more payload arguments the first is a format pattern in the
// style of the fmt package and the remainder are its operands.
//
// New panics if the format pattern in the two-or-more shape is not a string.
// That is a programming mistake at the call site and not something a caller
// can meaningfully recover from.
func New(kind Kind, payload ...interface{}) *Error {
	switch len(payload) {
	case 0:
		if kind >= 0 && kind < numKinds {
			return sentinels[kind]
		}
		return &Error{kind: kind}

	case 1:
		return &Error{kind: kind, payload: payload[0]}
	}

	pattern, ok := payload[0].(string)
	if !ok {
		panic(fmt.Sprintf("ioerr: format pattern is not a string (%T)", payload[0]))
	}

	return &Error{kind: kind, payload: fmt.Sprintf(pattern, payload[1:]...)}
}

// Kind returns the category of failure the error was created with.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the payload rendered as a string. The empty string is
// returned if the error was created without a payload.
func (e *Error) Message() string {
	switch p := e.payload.(type) {
	case nil:
		return ""
	case string:
		return p
	case error:
		return p.Error()
	default:
		return fmt.Sprint(p)
	}
}

// Unwrap returns the wrapped cause if the error was created with an error
// value as its payload. Returns nil otherwise.
func (e *Error) Unwrap() error {
	if cause, ok := e.payload.(error); ok {
		return cause
	}
	return nil
}

// Is reports whether target is a payload-free error of the same kind. It
// means that the Is() function in the standard errors package matches every
// error of a kind against the shared payload-free error for that kind:
//
//	if errors.Is(err, ioerr.New(ioerr.Interrupted)) {
//		...
//	}
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == e.kind && t.payload == nil
}

// Error returns the normalised error message. The message is the kind
// description followed by the payload, with duplicate adjacent parts of the
// message chain removed. An error without a payload renders as the kind
// description alone.
//
// Implements the go language error interface.
func (e *Error) Error() string {
	if e.payload == nil {
		return e.kind.String()
	}

	s := fmt.Sprintf("%s: %s", e.kind.String(), e.Message())

	// de-duplicate error message parts
	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}
