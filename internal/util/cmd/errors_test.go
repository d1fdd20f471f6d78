// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cmdutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	buf := new(bytes.Buffer)
	code := -1
	oldErr, oldExit := Stderr, Exit
	Stderr, Exit = buf, func(c int) { code = c }
	t.Cleanup(func() { Stderr, Exit = oldErr, oldExit })
	return buf, &code
}

func TestCheck(t *testing.T) {
	buf, code := capture(t)

	Check(nil)
	require.Equal(t, -1, *code)
	require.Empty(t, buf.String())

	Check(errors.New("boom"))
	require.Equal(t, 1, *code)
	require.Equal(t, "Error: boom\n", buf.String())
}

func TestWarnfPlain(t *testing.T) {
	buf, code := capture(t)
	Warnf("%d stale", 3)
	require.Equal(t, -1, *code)
	require.Equal(t, "WARNING: 3 stale\n", buf.String())
	require.False(t, IsTerminal())
}
