// SPDX-License-Identifier: MIT
// Package: covergen/param
//
// errors.go — sentinel errors for parameter validation.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (parameter index, value position) is attached with %w wrapping.
//   • Validation failures are permanent: the caller must fix the input.

package param

import (
	"errors"
	"fmt"
)

// ErrInvalidInputType indicates that the input is not a homogeneous,
// well-formed list of domains (wrong shape, nested collections,
// non-comparable values, malformed names).
var ErrInvalidInputType = errors.New("param: invalid input type")

// ErrInvalidParameterCount indicates that fewer than two parameters were supplied.
var ErrInvalidParameterCount = errors.New("param: at least two parameters are required")

// ErrEmptyDomain indicates that a parameter's domain holds no values.
var ErrEmptyDomain = errors.New("param: empty domain")

// ErrStrengthOutOfRange indicates that the coverage strength n is below 1 or
// exceeds the number of parameters.
var ErrStrengthOutOfRange = errors.New("param: strength out of range")

// paramErrorf attaches "parameter p" context to a sentinel.
func paramErrorf(sentinel error, p int, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%w: parameter %d", sentinel, p)
	}

	return fmt.Errorf("%w: parameter %d: %s", sentinel, p, fmt.Sprintf(format, args...))
}
