package ipo

import (
	"errors"

	"github.com/katalvlaran/covergen/param"
)

// Construction errors; aliases of the param sentinels so callers can match
// either name with errors.Is.
var (
	// ErrInvalidInputType indicates input that is not a well-formed list of domains.
	ErrInvalidInputType = param.ErrInvalidInputType

	// ErrInvalidParameterCount indicates fewer than two parameters.
	ErrInvalidParameterCount = param.ErrInvalidParameterCount

	// ErrEmptyDomain indicates a parameter without values.
	ErrEmptyDomain = param.ErrEmptyDomain

	// ErrStrengthOutOfRange indicates n < 1 or n > number of parameters.
	ErrStrengthOutOfRange = param.ErrStrengthOutOfRange
)

// ErrSlotMismatch is reported by Row.Validate when a slot holds an assignment
// for a different parameter.
var ErrSlotMismatch = errors.New("ipo: slot holds assignment of another parameter")
