// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the builder package.
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrUnknownKind indicates Parse was given an unsupported graph kind or a
// malformed "kind:n" string.
var ErrUnknownKind = errors.New("builder: unknown graph kind")
