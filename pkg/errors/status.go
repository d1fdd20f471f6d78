// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import "fmt"

// Status is a generator status code.
type Status uint64

// OK means the operation succeeded.
const OK Status = 200

// BadRequest means the configuration or arguments are invalid.
const BadRequest Status = 400

// ResourceUnavailable means an input resource could not be opened.
const ResourceUnavailable Status = 404

// DuplicateIdentifier means two codes derive the same identifier.
const DuplicateIdentifier Status = 409

// Stale means generated output does not match the file on disk.
const Stale Status = 412

// MalformedTrailingEntry means the table ends with a name that has no value.
const MalformedTrailingEntry Status = 422

// UnknownError means an unknown error occurred.
const UnknownError Status = 500

// EncodingError means something could not be decoded or rendered.
const EncodingError Status = 501

// String returns the name of the Status.
func (v Status) String() string {
	switch v {
	case OK:
		return "ok"
	case BadRequest:
		return "badRequest"
	case ResourceUnavailable:
		return "resourceUnavailable"
	case DuplicateIdentifier:
		return "duplicateIdentifier"
	case Stale:
		return "stale"
	case MalformedTrailingEntry:
		return "malformedTrailingEntry"
	case UnknownError:
		return "unknownError"
	case EncodingError:
		return "encodingError"
	}
	return fmt.Sprintf("Status:%d", v)
}
