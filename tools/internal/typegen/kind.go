// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package typegen

import "fmt"

// CodeKind is the classification of a code.
type CodeKind uint64

// CodeKindPlain is a code that is neither a reply nor an error.
const CodeKindPlain CodeKind = 0

// CodeKindReply is a code named with the RPL_ prefix.
const CodeKindReply CodeKind = 1

// CodeKindError is a code named with the ERR_ prefix.
const CodeKindError CodeKind = 2

// String returns the name of the Code Kind.
func (v CodeKind) String() string {
	switch v {
	case CodeKindPlain:
		return "plain"
	case CodeKindReply:
		return "reply"
	case CodeKindError:
		return "error"
	}
	return fmt.Sprintf("CodeKind:%d", v)
}
