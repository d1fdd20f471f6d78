// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Stderr receives errors and warnings.
var Stderr io.Writer = os.Stderr

// Exit is called by Fatalf. Tests replace it.
var Exit = os.Exit

func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, "Error: "+format+"\n", args...)
	Exit(1)
}

func Check(err error) {
	if err != nil {
		Fatalf("%v", err)
	}
}

func Warnf(format string, args ...interface{}) {
	format = "WARNING: " + format + "\n"
	if IsTerminal() {
		fmt.Fprint(Stderr, color.RedString(format, args...))
	} else {
		fmt.Fprintf(Stderr, format, args...)
	}
}

// IsTerminal returns true if Stderr is an interactive terminal.
func IsTerminal() bool {
	f, ok := Stderr.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
