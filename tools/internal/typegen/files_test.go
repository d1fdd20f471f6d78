// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package typegen

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/ircgen/pkg/errors"
)

func names(codes []*Code) []string {
	var s []string
	for _, c := range codes {
		s = append(s, c.Name)
	}
	return s
}

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))
	return file
}

func TestParseLines(t *testing.T) {
	f := new(FileReader)
	codes, err := f.Parse(strings.NewReader("  PASS \npass\r\nRPL_WELCOME\n001\nERR_NOSUCHNICK\n  401  \n"))
	require.NoError(t, err)
	require.Equal(t, []string{"PASS", "RPL_WELCOME", "ERR_NOSUCHNICK"}, names(codes))
	require.Equal(t, "pass", codes[0].Value)
	require.Equal(t, "401", codes[2].Value)
	require.Equal(t, []int{1, 3, 5}, []int{codes[0].Line, codes[1].Line, codes[2].Line})
}

func TestParseLinesEmpty(t *testing.T) {
	codes, err := new(FileReader).Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, codes)
}

func TestParseLinesUnpairedTrailing(t *testing.T) {
	const table = "NICK\nnick\nJOIN\n"

	buf := new(bytes.Buffer)
	logger := zerolog.New(buf).Level(zerolog.DebugLevel)
	f := &FileReader{Logger: &logger}
	codes, err := f.Parse(strings.NewReader(table))
	require.NoError(t, err)
	require.Equal(t, []string{"NICK"}, names(codes))
	require.Contains(t, buf.String(), "Discarding unpaired trailing line")

	f = &FileReader{Strict: true}
	_, err = f.Parse(strings.NewReader(table))
	require.ErrorIs(t, err, errors.MalformedTrailingEntry)
	require.EqualError(t, err, `line 3: "JOIN" has no value`)
}

func TestParseLinesStrictToleratesBlankLine(t *testing.T) {
	f := &FileReader{Strict: true}
	codes, err := f.Parse(strings.NewReader("NICK\nnick\n\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"NICK"}, names(codes))
}

func TestParseYAML(t *testing.T) {
	const table = `
- name: RPL_WELCOME
  value: "001"
- name: NICK
  value: nick
- name: ERR_NOSUCHNICK
  value: 401
`
	f := &FileReader{Format: TableFormatYAML}
	codes, err := f.Parse(strings.NewReader(table))
	require.NoError(t, err)
	require.Equal(t, []string{"RPL_WELCOME", "NICK", "ERR_NOSUCHNICK"}, names(codes))
	require.Equal(t, "001", codes[0].Value)
	require.Equal(t, "401", codes[2].Value)
	require.Equal(t, CodeKindError, codes[2].Kind)
}

func TestParseYAMLErrors(t *testing.T) {
	f := &FileReader{Format: TableFormatYAML}

	_, err := f.Parse(strings.NewReader("- name: A\n  value: a\n  extra: 1\n"))
	require.ErrorIs(t, err, errors.EncodingError)

	_, err = f.Parse(strings.NewReader("- name: A\n- name: B\n  value: b\n"))
	require.ErrorIs(t, err, errors.EncodingError)

	codes, err := f.Parse(strings.NewReader("- name: A\n  value: a\n- name: B\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, names(codes))

	f.Strict = true
	_, err = f.Parse(strings.NewReader("- name: A\n  value: a\n- name: B\n"))
	require.ErrorIs(t, err, errors.MalformedTrailingEntry)

	codes, err = f.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, codes)
}

func TestParseLinesLongLine(t *testing.T) {
	value := strings.Repeat("x", 2<<20)
	codes, err := new(FileReader).Parse(strings.NewReader("NICK\n" + value + "\nJOIN\njoin"))
	require.NoError(t, err)
	require.Equal(t, []string{"NICK", "JOIN"}, names(codes))
	require.Len(t, codes[0].Value, len(value))
	require.Equal(t, "join", codes[1].Value)
}

func TestParseLinesReadError(t *testing.T) {
	_, err := new(FileReader).Parse(io.MultiReader(strings.NewReader("NICK\n"), iotest.ErrReader(io.ErrUnexpectedEOF)))
	require.ErrorIs(t, err, errors.ResourceUnavailable)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestParseUnknownFormat(t *testing.T) {
	_, err := (&FileReader{Format: "csv"}).Parse(strings.NewReader(""))
	require.ErrorIs(t, err, errors.BadRequest)
}

func TestReadCodesMissingFile(t *testing.T) {
	_, err := new(FileReader).ReadCodes(filepath.Join(t.TempDir(), "codes.txt"))
	require.ErrorIs(t, err, errors.ResourceUnavailable)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadCodesDirectory(t *testing.T) {
	_, err := new(FileReader).ReadCodes(t.TempDir())
	require.ErrorIs(t, err, errors.ResourceUnavailable)
	require.Equal(t, errors.ResourceUnavailable, errors.Code(err))
}

func TestReadCodesStrict(t *testing.T) {
	file := writeTable(t, "codes.txt", "NICK\nnick\nJOIN\n")
	_, err := (&FileReader{Strict: true}).ReadCodes(file)
	require.ErrorIs(t, err, errors.MalformedTrailingEntry)
	require.Equal(t, errors.MalformedTrailingEntry, errors.Code(err))
}

func TestReadCodesFilter(t *testing.T) {
	file := writeTable(t, "codes.txt", "PASS\npass\nNICK\nnick\nRPL_WELCOME\n001\nERR_NOSUCHNICK\n401\n")

	f := &FileReader{Include: []string{"ERR_NOSUCHNICK", "PASS", " "}}
	codes, err := f.ReadCodes(file)
	require.NoError(t, err)
	require.Equal(t, []string{"PASS", "ERR_NOSUCHNICK"}, names(codes))

	f = &FileReader{Exclude: []string{"NICK"}}
	codes, err = f.ReadCodes(file)
	require.NoError(t, err)
	require.Equal(t, []string{"PASS", "RPL_WELCOME", "ERR_NOSUCHNICK"}, names(codes))

	f = &FileReader{Rename: []string{"PASS:RPL_PASS"}}
	codes, err = f.ReadCodes(file)
	require.NoError(t, err)
	require.Equal(t, "RPL_PASS", codes[0].Name)
	require.Equal(t, "RplPass", codes[0].Identifier)
	require.Equal(t, CodeKindReply, codes[0].Kind)
	require.Equal(t, 1, codes[0].Line)
}

func TestReadCodesFilterErrors(t *testing.T) {
	file := writeTable(t, "codes.txt", "PASS\npass\n")

	for _, f := range []*FileReader{
		{Include: []string{"NOPE"}},
		{Exclude: []string{"NOPE"}},
		{Rename: []string{"NOPE:X"}},
		{Rename: []string{"PASS"}},
	} {
		_, err := f.ReadCodes(file)
		require.ErrorIs(t, err, errors.BadRequest)
	}
}
