// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package typegen

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	diffAdded   = color.New(color.FgGreen)
	diffRemoved = color.New(color.FgRed)
)

// Diff returns the lines that differ between want and got, prefixed with '-'
// and '+'. Diff returns an empty string if they are equal.
func Diff(want, got string, colorize bool) string {
	if want == got {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	w := new(strings.Builder)
	for _, d := range diffs {
		var prefix string
		var c *color.Color
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, c = "+", diffAdded
		case diffmatchpatch.DiffDelete:
			prefix, c = "-", diffRemoved
		default:
			continue
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			if colorize {
				line = c.Sprint(prefix + line)
			} else {
				line = prefix + line
			}
			w.WriteString(line)
		}
	}
	return w.String()
}
