// SPDX-License-Identifier: MIT

// Package param provides the validated, indexed view of test parameters that
// every covergen algorithm works on.
//
// A parameter is identified by its position p in [0, k) and owns an ordered,
// non-empty domain of values; a value listed twice counts once. Values are
// opaque: any comparable Go type may be used, including `any` for data
// decoded at runtime.
//
// Construction validates once and fails fast; no partially built Set is ever
// returned:
//
//	ErrInvalidParameterCount — fewer than two parameters.
//	ErrEmptyDomain           — a parameter has no values.
//	ErrInvalidInputType      — input is not a well-formed list of domains
//	                           (non-list, nested collections, bad names).
//	ErrStrengthOutOfRange    — strength n outside [1, k] (Validate/ValidateStrength).
//
// Sources of input:
//
//	param.New(domains)          — statically typed [][]V.
//	param.NewNamed(names, doms) — same, with human-readable parameter names.
//	param.FromAny(raw)          — dynamically typed []any of []any.
//	param.DecodeYAML(r)         — a YAML sequence of sequences, or a mapping
//	                              with a `parameters:` list of {name, values}.
//
// A Set is immutable after construction and safe for concurrent reads.
package param
