// SPDX-License-Identifier: MIT
// Package: covergen/param
//
// decode.go — dynamically typed input: arbitrary Go values and YAML documents.
//
// Both entry points produce a *Set[any]. Every value must be a scalar
// (string, bool, numeric or nil); nested collections are rejected with
// ErrInvalidInputType because they cannot act as atomic parameter values.

package param

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"
)

// FromAny converts a dynamically typed list of domains, e.g. []any{[]any{..}}
// or [][]string, into a Set[any].
//
// Errors: ErrInvalidInputType when raw is not a slice of slices of scalars,
// plus every error of New.
func FromAny(raw any) (*Set[any], error) {
	domains, err := domainsFromAny(raw)
	if err != nil {
		return nil, err
	}

	return New(domains)
}

// domainsFromAny reshapes raw into [][]any without validating domain content.
func domainsFromAny(raw any) ([][]any, error) {
	outer := reflect.ValueOf(raw)
	if !isList(outer) {
		return nil, fmt.Errorf("%w: want a list of domains, got %T", ErrInvalidInputType, raw)
	}

	domains := make([][]any, outer.Len())
	var (
		p     int
		inner reflect.Value
		err   error
	)
	for p = 0; p < outer.Len(); p++ {
		inner = unwrap(outer.Index(p))
		if !isList(inner) {
			return nil, paramErrorf(ErrInvalidInputType, p, "want a list of values, got %s", kindOf(inner))
		}
		if domains[p], err = scalars(p, inner); err != nil {
			return nil, err
		}
	}

	return domains, nil
}

// scalars copies a reflected list into []any, rejecting nested collections.
func scalars(p int, list reflect.Value) ([]any, error) {
	out := make([]any, list.Len())
	var (
		i int
		v reflect.Value
	)
	for i = 0; i < list.Len(); i++ {
		v = unwrap(list.Index(i))
		if !v.IsValid() {
			out[i] = nil
			continue
		}
		switch v.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.Func, reflect.Chan, reflect.Struct:
			return nil, paramErrorf(ErrInvalidInputType, p, "value %d is a %s, not a scalar", i, v.Kind())
		}
		out[i] = v.Interface()
	}

	return out, nil
}

// unwrap strips interface indirection so kinds can be inspected.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

func isList(v reflect.Value) bool {
	v = unwrap(v)

	return v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array)
}

func kindOf(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}

	return v.Kind().String()
}

// yamlFile is the mapping form of a parameter document:
//
//	parameters:
//	  - name: os
//	    values: [linux, darwin, windows]
type yamlFile struct {
	Parameters []yamlParameter `yaml:"parameters"`
}

type yamlParameter struct {
	Name   string `yaml:"name"`
	Values []any  `yaml:"values"`
}

// DecodeYAML reads one YAML document describing parameter domains. Accepted
// shapes are a sequence of sequences, or a mapping with a `parameters` list
// whose items carry `name` and `values`.
//
// Errors: ErrInvalidInputType for malformed or empty documents, plus every
// error of New / NewNamed.
func DecodeYAML(r io.Reader) (*Set[any], error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidInputType)
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidInputType, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		var raw []any
		if err := root.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInputType, err)
		}

		return FromAny(raw)

	case yaml.MappingNode:
		var file yamlFile
		if err := root.Decode(&file); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInputType, err)
		}

		return fromYAMLFile(file)

	default:
		return nil, fmt.Errorf("%w: top-level YAML node must be a sequence or mapping", ErrInvalidInputType)
	}
}

// fromYAMLFile builds a named Set; unnamed entries fall back to "p<index>".
func fromYAMLFile(file yamlFile) (*Set[any], error) {
	raw := make([]any, len(file.Parameters))
	names := defaultNames(len(file.Parameters))
	for p, prm := range file.Parameters {
		raw[p] = prm.Values
		if prm.Name != "" {
			names[p] = prm.Name
		}
	}

	domains, err := domainsFromAny(raw)
	if err != nil {
		return nil, err
	}

	return NewNamed(names, domains)
}
