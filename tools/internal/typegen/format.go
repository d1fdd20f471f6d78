// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package typegen

import (
	"os"
	"path/filepath"

	"gitlab.com/accumulatenetwork/ircgen/pkg/errors"
	"golang.org/x/tools/imports"
)

var goFmtOptions = &imports.Options{
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
	FormatOnly: true,
}

// IsGoFile returns true if file names a Go source file.
func IsGoFile(file string) bool {
	return filepath.Ext(file) == ".go"
}

// GoFmt formats Go source and sorts its imports. If the source cannot be
// parsed, GoFmt returns it unchanged along with the error.
func GoFmt(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, goFmtOptions)
	if err != nil {
		return src, errors.EncodingError.WithFormat("formatting %s: %w", filename, err)
	}
	return out, nil
}

// WriteFile writes the generated output to file, creating the parent
// directory if needed.
func WriteFile(file string, b []byte) error {
	if dir := filepath.Dir(file); dir != "." {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return errors.ResourceUnavailable.WithFormat("creating %s: %w", dir, err)
		}
	}

	err := os.WriteFile(file, b, 0644)
	if err != nil {
		return errors.ResourceUnavailable.WithFormat("writing %s: %w", file, err)
	}
	return nil
}
