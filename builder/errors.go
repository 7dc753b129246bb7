// SPDX-License-Identifier: MIT
// Package: lvbib/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Lifecycle and validation sentinels live in core (ErrIllegalState,
//     ErrValidation, ErrInvalidArgument); they pass through this package
//     wrapped with `%w` and method context.
//   • ErrConstructFailed is added when the injected Factory itself fails.
//   • Callers MUST use errors.Is / errors.As to branch on semantics.

package builder

import (
	"errors"
	"fmt"
)

// ErrConstructFailed indicates that the record Factory rejected the
// accumulated fields (e.g., a date whose day does not exist in its month).
// The builder is left unchanged and may be corrected and finalized again.
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix inputs, retry */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a wrapped error with the method and node path:
// "<Method>(<path>): <message>". The format MUST contain a %w verb.
func builderErrorf(method, path, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): "+format, append([]interface{}{method, path}, args...)...)
}
