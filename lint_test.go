package strfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint(t *testing.T) {
	tests := []struct {
		name     string
		template string
		kinds    []ErrorKind
	}{
		{"clean", "Hello {name}, you owe {amount:currency(en-US,USD)}", nil},
		{"data is not consulted", "{a.b.c} {0} {missing|x}", nil},
		{"unknown formatter", "{name:shout}", []ErrorKind{ErrUnknownFormatter}},
		{"malformed formatter", "{name:pad(2}", []ErrorKind{ErrBadFormatterSpec}},
		{"bad path", "{a..b}", []ErrorKind{ErrBadPlaceholder}},
		{"bad path and formatter", "{[0]:nope}", []ErrorKind{ErrBadPlaceholder, ErrUnknownFormatter}},
		{"stray brace", "x {name", []ErrorKind{ErrUnterminated}},
		{"escapes are fine", "{{literal}} {}", nil},
	}
	env := NewEnvironment()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kinds []ErrorKind
			for _, d := range env.Lint(tt.template) {
				kinds = append(kinds, d.Kind)
			}
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestLintSpans(t *testing.T) {
	env := NewEnvironment()
	diags := env.Lint("ok\n  {x:nope}")
	require.Len(t, diags, 1)
	require.NotNil(t, diags[0].Span)
	assert.Equal(t, uint32(2), diags[0].Span.StartLine)
	assert.Equal(t, uint32(3), diags[0].Span.StartCol)
	assert.Equal(t, "ok\n  {x:nope}", diags[0].Source)
}

func TestLintSeesRegisteredFormatters(t *testing.T) {
	env := EmptyEnvironment()
	assert.Len(t, env.Lint("{0:upper}"), 1)

	env.AddFormatter("upper", FormatterUpper)
	assert.Empty(t, env.Lint("{0:upper}"))
}
