// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	cmdutil "gitlab.com/accumulatenetwork/ircgen/internal/util/cmd"
	"gitlab.com/accumulatenetwork/ircgen/pkg/errors"
	"gitlab.com/accumulatenetwork/ircgen/tools/internal/typegen"
)

// Generate reads the code table and renders the enumeration. The result is
// written to out when the configuration selects standard output, and to the
// output file otherwise. Nothing is written if any step fails.
func Generate(cfg *Config, out io.Writer, logger zerolog.Logger) error {
	files := cfg.Files
	files.Logger = &logger
	codes, err := files.ReadCodes(cfg.Input)
	if err != nil {
		return err
	}

	for _, c := range codes {
		logger.Debug().Int("line", c.Line).Str("name", c.Name).Stringer("kind", c.Kind).Str("identifier", c.Identifier).Msg("Code")
	}

	kinds := typegen.CountKinds(codes)
	logger.Info().
		Str("input", cfg.Input).
		Int("codes", len(codes)).
		Int("replies", kinds[typegen.CodeKindReply]).
		Int("errors", kinds[typegen.CodeKindError]).
		Msg("Parsed table")

	ttypes := convert(codes, cfg)
	if cfg.Unique {
		err = typegen.CheckUnique(codes, ttypes.Prefix, ttypes.Reserved()...)
		if err != nil {
			return err
		}
	}

	b, err := render(cfg, ttypes)
	if err != nil {
		return err
	}

	if cfg.Check {
		return check(cfg.Out, b)
	}

	if cfg.ToStdout() {
		_, err = out.Write(b)
		if err != nil {
			return errors.UnknownError.WithFormat("write: %w", err)
		}
	} else {
		err = typegen.WriteFile(cfg.Out, b)
		if err != nil {
			return err
		}
	}

	logger.Info().Str("out", cfg.Out).Str("size", humanize.Bytes(uint64(len(b)))).Msg("Generated")
	return nil
}

// render executes the template. Go output is formatted; if formatting fails,
// the unformatted text is used so the output can still be inspected.
func render(cfg *Config, ttypes *Types) ([]byte, error) {
	name := "go"
	if cfg.Template != "" {
		name = cfg.Template
	}

	buf := new(bytes.Buffer)
	err := Templates.Execute(buf, name, ttypes)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("execute template: %w", err)
	}

	if Templates.Has(name) || typegen.IsGoFile(cfg.Out) {
		b, err := typegen.GoFmt(goFileName(cfg), buf.Bytes())
		if err != nil {
			cmdutil.Warnf("Output is not valid Go, writing it unformatted: %v", err)
		}
		return b, nil
	}
	return buf.Bytes(), nil
}

func goFileName(cfg *Config) string {
	if cfg.ToStdout() {
		return "stdout.go"
	}
	return cfg.Out
}

// check compares the generated output with the file on disk.
func check(file string, b []byte) error {
	existing, err := os.ReadFile(file)
	if err != nil {
		return errors.ResourceUnavailable.WithFormat("check: %w", err)
	}

	diff := typegen.Diff(string(existing), string(b), cmdutil.IsTerminal())
	if diff == "" {
		return nil
	}
	return errors.Stale.WithFormat("%s is out of date:\n%s", file, diff)
}
