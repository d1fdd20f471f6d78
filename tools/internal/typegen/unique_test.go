// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package typegen

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/ircgen/pkg/errors"
)

func TestCheckUnique(t *testing.T) {
	codes := []*Code{
		NewCode("RPL_WELCOME", "001"),
		NewCode("NICK", "nick"),
	}
	require.NoError(t, CheckUnique(codes, "", "Unknown"))

	codes = append(codes, NewCode("RPL_WELCOME_BACK", "002"))
	err := CheckUnique(codes, "", "Unknown")
	require.ErrorIs(t, err, errors.DuplicateIdentifier)
	require.EqualError(t, err, "RplWelcome (from RPL_WELCOME_BACK) collides with RPL_WELCOME")
}

func TestCheckUniqueReserved(t *testing.T) {
	codes := []*Code{NewCode("UNKNOWN", "unknown")}
	require.NoError(t, CheckUnique(codes, "", "CodeUnknown"))
	require.ErrorIs(t, CheckUnique(codes, "Code", "CodeUnknown"), errors.DuplicateIdentifier)

	err := CheckUnique(codes, "", "Unknown")
	require.ErrorIs(t, err, errors.DuplicateIdentifier)
	require.EqualError(t, err, "Unknown (from UNKNOWN) collides with a reserved name")
}
