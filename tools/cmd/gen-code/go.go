// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	_ "embed"
)

//go:embed go.go.tmpl
var goSrc string

var _ = Templates.Register(goSrc, "go", nil, "Go")
