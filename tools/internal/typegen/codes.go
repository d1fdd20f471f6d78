// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package typegen

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	replyPrefix = "RPL_"
	errorPrefix = "ERR_"
)

// Code is an entry of a code table.
type Code struct {
	// Name is the code as written in the table, e.g. RPL_WELCOME.
	Name string
	// Value is the string value of the code as written in the table.
	Value string
	// Kind is derived from the prefix of the name.
	Kind CodeKind
	// Identifier is the name used to declare the code.
	Identifier string
	// Literal is the quoted, uppercased value.
	Literal string
	// Line is the line of the table the name was read from, if known.
	Line int
}

// NewCode classifies the named code and derives its identifier and literal.
func NewCode(name, value string) *Code {
	c := &Code{Name: name, Value: value}
	c.Kind = KindOf(name)
	c.Identifier = FormatIdentifier(name, c.Kind)
	c.Literal = FormatLiteral(value)
	return c
}

// KindOf classifies a code name by its prefix.
func KindOf(name string) CodeKind {
	switch {
	case strings.HasPrefix(name, replyPrefix):
		return CodeKindReply
	case strings.HasPrefix(name, errorPrefix):
		return CodeKindError
	default:
		return CodeKindPlain
	}
}

// FormatIdentifier derives the identifier of a code. Replies and errors use
// the first two underscore-separated segments, e.g. RPL_WELCOME becomes
// RplWelcome. Anything else is capitalized as a whole, e.g. NICK becomes Nick.
func FormatIdentifier(name string, kind CodeKind) string {
	if kind == CodeKindPlain {
		return Capitalize(name)
	}

	parts := strings.SplitN(name, "_", 3)
	if len(parts) < 2 {
		return Capitalize(parts[0])
	}
	return Capitalize(parts[0]) + Capitalize(parts[1])
}

// FormatLiteral uppercases and quotes a code value.
func FormatLiteral(value string) string {
	return strconv.Quote(cases.Upper(language.Und).String(value))
}

// Capitalize uppercases the first letter of s and lowercases the rest.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	_, n := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:n]) + cases.Lower(language.Und).String(s[n:])
}

// CountKinds counts the codes of each kind.
func CountKinds(codes []*Code) map[CodeKind]int {
	counts := map[CodeKind]int{}
	for _, c := range codes {
		counts[c.Kind]++
	}
	return counts
}
