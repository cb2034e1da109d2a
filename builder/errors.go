// SPDX-License-Identifier: MIT
// Package: citytour/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with builderErrorf (method + %w).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewCities indicates a negative city count or a zero grid dimension.
var ErrTooFewCities = errors.New("builder: parameter too small")

// ErrBadMaxCoord indicates a zero coordinate bound for Random.
var ErrBadMaxCoord = errors.New("builder: max coordinate must be positive")

// builderErrorf prefixes a sentinel with the method tag and formatted context.
func builderErrorf(method, format string, sentinel error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
