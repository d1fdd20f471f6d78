// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	require.NoError(t, ResourceUnavailable.Wrap(nil))

	err := ResourceUnavailable.Wrap(fs.ErrNotExist)
	require.ErrorIs(t, err, ResourceUnavailable)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Equal(t, ResourceUnavailable, Code(err))
	require.Equal(t, fs.ErrNotExist.Error(), err.Error())
}

func TestWrapUnknownKeepsCode(t *testing.T) {
	inner := DuplicateIdentifier.With("dup")
	err := UnknownError.Wrap(inner)
	require.Same(t, inner, err)
	require.Equal(t, DuplicateIdentifier, Code(err))
}

func TestWithFormat(t *testing.T) {
	err := ResourceUnavailable.WithFormat("open %q: %w", "codes.txt", fs.ErrNotExist)
	require.Equal(t, `open "codes.txt": file does not exist`, err.Error())
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.ErrorIs(t, err, ResourceUnavailable)
	require.False(t, Is(err, DuplicateIdentifier))

	err = BadRequest.WithFormat("bad %d", 1)
	require.Nil(t, err.Cause)
	require.ErrorIs(t, err, BadRequest)
}

func TestCodeOfPlainError(t *testing.T) {
	require.Equal(t, Status(0), Code(fs.ErrNotExist))
	require.Equal(t, EncodingError, Code(UnknownError.WithCauseAndFormat(EncodingError.With("x"), "y")))
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "malformedTrailingEntry", MalformedTrailingEntry.String())
	require.Equal(t, "stale", Stale.Error())
	require.Equal(t, "Status:1", Status(1).String())
}
