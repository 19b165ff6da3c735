package param_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covergen/param"
)

func TestFromAny(t *testing.T) {
	s, err := param.FromAny([]any{[]any{"a", "b"}, []any{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, s.Sizes())
	assert.Equal(t, any(2), s.ValueAt(1, 1))

	// Typed nested slices are accepted too.
	s, err = param.FromAny([][]string{{"x"}, {"y", "z"}})
	require.NoError(t, err)
	assert.Equal(t, any("z"), s.ValueAt(1, 1))
}

func TestFromAny_InvalidShapes(t *testing.T) {
	cases := map[string]any{
		"nil":             nil,
		"scalar":          42,
		"map":             map[string]any{"a": []any{1}},
		"flat list":       []any{1, 2},
		"nested value":    []any{[]any{1, []any{2}}, []any{3}},
		"map value":       []any{[]any{map[string]int{"a": 1}}, []any{3}},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := param.FromAny(raw)
			assert.ErrorIs(t, err, param.ErrInvalidInputType)
		})
	}
}

func TestFromAny_RepeatedValuesCollapse(t *testing.T) {
	s, err := param.FromAny([]any{[]any{"a", "a", "b"}, []any{1}})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, s.Domain(0))
}

func TestFromAny_CountAndEmpty(t *testing.T) {
	_, err := param.FromAny([]any{[]any{1}})
	assert.ErrorIs(t, err, param.ErrInvalidParameterCount)

	_, err = param.FromAny([]any{[]any{1}, []any{}})
	assert.ErrorIs(t, err, param.ErrEmptyDomain)
}

func TestDecodeYAML_Sequence(t *testing.T) {
	doc := `
- [a, b, c]
- [1, 2, 3]
- [true, false]
`
	s, err := param.DecodeYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 2}, s.Sizes())
	assert.Equal(t, any("c"), s.ValueAt(0, 2))
	assert.Equal(t, any(3), s.ValueAt(1, 2))
	assert.Equal(t, any(false), s.ValueAt(2, 1))
}

func TestDecodeYAML_Mapping(t *testing.T) {
	doc := `
parameters:
  - name: os
    values: [linux, darwin]
  - values: [amd64, arm64]
  - name: go
    values: ["1.23", "1.24"]
`
	s, err := param.DecodeYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"os", "p1", "go"}, s.Names())
	assert.Equal(t, any("1.24"), s.ValueAt(2, 1))
}

func TestDecodeYAML_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", param.ErrInvalidInputType},
		{"scalar", "42", param.ErrInvalidInputType},
		{"syntax", "- [a, b\n", param.ErrInvalidInputType},
		{"nested", "- [[1], [2]]\n- [3]\n", param.ErrInvalidInputType},
		{"one parameter", "- [1, 2]\n", param.ErrInvalidParameterCount},
		{"empty values", "parameters:\n  - name: a\n    values: [1]\n  - name: b\n", param.ErrEmptyDomain},
		{"duplicate names", "parameters:\n  - {name: a, values: [1]}\n  - {name: a, values: [2]}\n", param.ErrInvalidInputType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := param.DecodeYAML(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
