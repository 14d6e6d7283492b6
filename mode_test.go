package strfmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(v string, _ []string) string { return v }

func TestDetectModeNamed(t *testing.T) {
	data, mode, opts := DetectMode(obj{"name": "Alice", "age": 30})
	assert.Equal(t, ModeNamed, mode)
	assert.True(t, Object("name", "Alice", "age", 30).Equal(data))
	assert.Nil(t, opts.Formatters)

	data, mode, _ = DetectMode(obj{})
	assert.Equal(t, ModeNamed, mode)
	assert.Equal(t, KindObject, data.Kind())

	data, mode, _ = DetectMode(Object("k", 1))
	assert.Equal(t, ModeNamed, mode)
	assert.True(t, Object("k", 1).Equal(data))
}

func TestDetectModeWithOptions(t *testing.T) {
	shapes := map[string]any{
		"struct":        Options{Formatters: map[string]Formatter{"custom": noop}},
		"pointer":       &Options{Formatters: map[string]Formatter{"custom": noop}},
		"map of funcs":  obj{"formatters": map[string]any{"custom": noop}},
		"map formatter": obj{"formatters": map[string]Formatter{"custom": noop}},
	}
	for name, options := range shapes {
		t.Run(name, func(t *testing.T) {
			data, mode, opts := DetectMode(obj{"name": "Bob"}, options)
			assert.Equal(t, ModeNamed, mode)
			assert.True(t, Object("name", "Bob").Equal(data))
			require.Contains(t, opts.Formatters, "custom")
		})
	}

	_, mode, opts := DetectMode(obj{"name": "Bob"}, obj{"formatters": map[string]any{}})
	assert.Equal(t, ModeNamed, mode)
	assert.Empty(t, opts.Formatters)
}

func TestDetectModeIndexed(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want Value
	}{
		{"no args", nil, Array()},
		{"primitives", []any{"first", "second", "third"}, Array("first", "second", "third")},
		{"single string", []any{"single"}, Array("single")},
		{"single number", []any{42}, Array(42)},
		{"single bool", []any{false}, Array(false)},
		{"mixed", []any{"string", 42, true, nil, obj{"key": "value"}}, Array("string", 42, true, nil, Object("key", "value"))},
		{"array first", []any{[]string{"array", "values"}, "second"}, Array(Array("array", "values"), "second")},
		{"single array", []any{[]int{1, 2, 3}}, Array(Array(1, 2, 3))},
		{"null first", []any{nil, "second"}, Array(nil, "second")},
		{"time first", []any{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "second"}, Array("2024-01-01T00:00:00.000Z", "second")},
		{"object with extra values", []any{obj{"name": "Alice"}, "extra", "more"}, Array(Object("name", "Alice"), "extra", "more")},
		{"non-options second object", []any{obj{"name": "Alice"}, obj{"notFormatters": true}}, Array(Object("name", "Alice"), Object("notFormatters", true))},
		{"options with extra keys", []any{obj{"a": 1}, obj{"formatters": map[string]Formatter{}, "other": 1}}, Array(Object("a", 1), Object("formatters", Object(), "other", 1))},
		{"formatters not callable", []any{obj{"a": 1}, obj{"formatters": map[string]any{"x": "y"}}}, Array(Object("a", 1), Object("formatters", Object("x", "y")))},
		{"nil options pointer", []any{obj{"a": 1}, (*Options)(nil)}, Array(Object("a", 1), nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, mode, opts := DetectMode(tt.args...)
			assert.Equal(t, ModeIndexed, mode)
			assert.True(t, tt.want.Equal(data), "want %#v, got %#v", tt.want, data)
			assert.Nil(t, opts.Formatters)
		})
	}
}

func TestDetectModeOptionsAlone(t *testing.T) {
	_, mode, opts := DetectMode(Options{Formatters: map[string]Formatter{"x": noop}})
	assert.Equal(t, ModeIndexed, mode)
	assert.Nil(t, opts.Formatters)

	_, mode, _ = DetectMode(obj{"formatters": map[string]Formatter{}})
	assert.Equal(t, ModeIndexed, mode)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "indexed", ModeIndexed.String())
	assert.Equal(t, "named", ModeNamed.String())
	assert.Equal(t, "unknown", Mode(7).String())
}
