// SPDX-License-Identifier: MIT
// Package: covergen/param
//
// validate.go — staged validation of parameter domains and strength.
//
// Stages (first failure wins):
//  1. Parameter count (k ≥ 2).
//  2. Per-parameter domain: non-empty, comparable values.
//  3. Optional names: len == k, non-empty, unique.
//  4. Strength (1 ≤ n ≤ k), only when a strength is being validated.
//
// All functions are deterministic and side-effect free; they never panic on
// user input.

package param

import (
	"fmt"
	"reflect"
)

// Validate checks domains and strength together. It is the full
// validate(domains, n) contract used by generators before construction.
//
// Complexity: O(Σ|domain|) time, O(max|domain|) extra space.
func Validate[V comparable](domains [][]V, n int) error {
	if err := validateDomains(domains); err != nil {
		return err
	}

	return validateStrength(len(domains), n)
}

// validateDomains runs stages 1 and 2.
func validateDomains[V comparable](domains [][]V) error {
	// Stage 1: parameter count.
	if len(domains) < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidParameterCount, len(domains))
	}

	// Stage 2: every domain non-empty and hashable.
	var (
		p   int
		err error
	)
	for p = range domains {
		if err = validateDomain(p, domains[p]); err != nil {
			return err
		}
	}

	return nil
}

// validateDomain checks one parameter's values.
func validateDomain[V comparable](p int, values []V) error {
	if len(values) == 0 {
		return paramErrorf(ErrEmptyDomain, p, "")
	}

	var (
		i int
		v V
	)
	for i, v = range values {
		// A comparable static type may still carry an unhashable dynamic
		// value when V is an interface; using it as a map key would panic.
		if !hashable(any(v)) {
			return paramErrorf(ErrInvalidInputType, p, "value %d of type %T is not comparable", i, v)
		}
	}

	return nil
}

// validateNames enforces len(names)==k, non-empty strings and uniqueness.
func validateNames(names []string, k int) error {
	if len(names) != k {
		return fmt.Errorf("%w: %d names for %d parameters", ErrInvalidInputType, len(names), k)
	}
	seen := make(map[string]struct{}, k)

	var (
		p    int
		name string
		ok   bool
	)
	for p, name = range names {
		if name == "" {
			return paramErrorf(ErrInvalidInputType, p, "empty name")
		}
		if _, ok = seen[name]; ok {
			return paramErrorf(ErrInvalidInputType, p, "duplicate name %q", name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// validateStrength verifies 1 ≤ n ≤ k.
func validateStrength(k, n int) error {
	if n < 1 || n > k {
		return fmt.Errorf("%w: n=%d, parameters=%d", ErrStrengthOutOfRange, n, k)
	}

	return nil
}

// hashable reports whether v can be used as a map key without panicking.
func hashable(v any) bool {
	if v == nil {
		return true
	}

	return reflect.ValueOf(v).Comparable()
}
