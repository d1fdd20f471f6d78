// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package typegen

import "gitlab.com/accumulatenetwork/ircgen/pkg/errors"

// CheckUnique fails on the first code whose identifier, with the prefix,
// collides with an earlier code or with one of the reserved names.
func CheckUnique(codes []*Code, prefix string, reserved ...string) error {
	seen := make(map[string]*Code, len(codes))
	for _, name := range reserved {
		seen[name] = nil
	}

	for _, c := range codes {
		id := prefix + c.Identifier
		prev, ok := seen[id]
		switch {
		case !ok:
			seen[id] = c
		case prev == nil:
			return errors.DuplicateIdentifier.WithFormat("%s (from %s) collides with a reserved name", id, c.Name)
		default:
			return errors.DuplicateIdentifier.WithFormat("%s (from %s) collides with %s", id, c.Name, prev.Name)
		}
	}
	return nil
}
