// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package typegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	require.Empty(t, Diff("a\nb\n", "a\nb\n", false))
	require.Equal(t, "-b\n+c\n", Diff("a\nb\n", "a\nc\n", false))
	require.Equal(t, "+b\n", Diff("a\n", "a\nb\n", false))
	require.Equal(t, "-b\n", Diff("a\nb", "a\n", false))
}

func TestDiffUnchangedLinesAreSkipped(t *testing.T) {
	want := "package irc\n\nvar (\n\tA = Code{id: 1}\n\tB = Code{id: 2}\n)\n"
	got := "package irc\n\nvar (\n\tA = Code{id: 1}\n\tB = Code{id: 2}\n\tC = Code{id: 3}\n)\n"
	require.Equal(t, "+\tC = Code{id: 3}\n", Diff(want, got, false))

	require.Equal(t, "-b\n+e\n", Diff("a\nb\nc\nd\n", "a\nc\nd\ne\n", false))
}
