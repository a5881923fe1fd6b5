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

package ioerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/ioerr"
	"github.com/jetsetilly/ioerr/test"

	pkgerrors "github.com/pkg/errors"
)

func TestIs(t *testing.T) {
	e := ioerr.New(ioerr.Interrupted)
	test.ExpectSuccess(t, ioerr.Is(e, ioerr.Interrupted))
	test.ExpectFailure(t, ioerr.Is(e, ioerr.TimedOut))
	test.ExpectFailure(t, ioerr.Is(nil, ioerr.Interrupted))

	// Is() does not look inside wrapped causes
	w := fmt.Errorf("outer: %w", e)
	test.ExpectFailure(t, ioerr.Is(w, ioerr.Interrupted))
}

func TestIsAny(t *testing.T) {
	test.ExpectSuccess(t, ioerr.IsAny(ioerr.New(ioerr.Other)))
	test.ExpectFailure(t, ioerr.IsAny(errors.New("plain error")))
	test.ExpectFailure(t, ioerr.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := ioerr.New(ioerr.UnexpectedEOF, "reading stream header")
	w := fmt.Errorf("loading state: %w", e)

	test.ExpectSuccess(t, ioerr.Has(w, ioerr.UnexpectedEOF))
	test.ExpectFailure(t, ioerr.Has(w, ioerr.NotFound))
	test.ExpectFailure(t, ioerr.Has(nil, ioerr.UnexpectedEOF))

	// causes wrapped by New() are part of the chain
	f := ioerr.New(ioerr.InvalidData, e)
	test.ExpectSuccess(t, ioerr.Has(f, ioerr.UnexpectedEOF))
	test.ExpectSuccess(t, ioerr.Has(f, ioerr.InvalidData))
}

func TestHasThroughForeignWrapper(t *testing.T) {
	e := ioerr.New(ioerr.TimedOut)
	w := pkgerrors.Wrap(e, "polling for response")

	test.ExpectSuccess(t, ioerr.Has(w, ioerr.TimedOut))
	test.ExpectFailure(t, ioerr.Has(w, ioerr.Interrupted))
}

func TestKindOf(t *testing.T) {
	e := ioerr.New(ioerr.UnexpectedEOF, "reading stream header")
	w := fmt.Errorf("loading state: %w", e)

	k, ok := ioerr.KindOf(w)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, ioerr.UnexpectedEOF)

	_, ok = ioerr.KindOf(errors.New("plain error"))
	test.ExpectFailure(t, ok)

	// the first kind in the chain wins
	f := ioerr.New(ioerr.InvalidData, e)
	k, ok = ioerr.KindOf(f)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, ioerr.InvalidData)
}
