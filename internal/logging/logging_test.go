// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainLogging(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := NewLogger(buf, LogFormatPlain, "info")
	require.NoError(t, err)

	logger.Info().Int("count", 3).Msg("Parsed table")
	logger.Debug().Msg("hidden")
	require.Contains(t, buf.String(), "INFO")
	require.Contains(t, buf.String(), "Parsed table")
	require.Contains(t, buf.String(), "count=3")
	require.NotContains(t, buf.String(), "hidden")
}

func TestJSONLogging(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := NewLogger(buf, LogFormatJSON, "")
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	require.Empty(t, buf.String())

	logger.Warn().Str("file", "codes.txt").Msg("Stale")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "codes.txt", entry["file"])
	require.Equal(t, "Stale", entry["message"])
}

func TestBadConfig(t *testing.T) {
	_, err := NewLogger(new(bytes.Buffer), "xml", "info")
	require.EqualError(t, err, "unsupported log format: xml")

	_, err = NewLogger(new(bytes.Buffer), LogFormatPlain, "loud")
	require.Error(t, err)
}
