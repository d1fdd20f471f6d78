// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package irc defines the IRC commands, replies, and errors as a closed set
// of codes.
package irc

//go:generate go run gitlab.com/accumulatenetwork/ircgen/tools/cmd/gen-code --input codes.txt --out code_gen.go --unique
