package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umt-kit/strfmt/syntax"
)

type tok struct {
	typ  TokenType
	text string
}

func summarize(tokens []Token) []tok {
	out := make([]tok, len(tokens))
	for i, t := range tokens {
		out[i] = tok{t.Type, t.Text}
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []tok
	}{
		{"empty", "", []tok{}},
		{"plain", "no placeholders", []tok{{TokenText, "no placeholders"}}},
		{"single", "Hello {name}!", []tok{
			{TokenText, "Hello "}, {TokenPlaceholder, "{name}"}, {TokenText, "!"},
		}},
		{"adjacent", "{a}{b}", []tok{
			{TokenPlaceholder, "{a}"}, {TokenPlaceholder, "{b}"},
		}},
		{"escapes", "{{}} {{test}}", []tok{{TokenText, "{} {test}"}}},
		{"escape then placeholder", "{{{name}}}", []tok{
			{TokenText, "{"}, {TokenPlaceholder, "{name}}"},
		}},
		{"empty braces are literal", "{}{x}", []tok{
			{TokenText, "{}"}, {TokenPlaceholder, "{x}"},
		}},
		{"open brace inside body", "a {b {c} d", []tok{
			{TokenText, "a "}, {TokenPlaceholder, "{b {c}"}, {TokenText, " d"},
		}},
		{"escaped open inside body", "{a{{b}", []tok{{TokenPlaceholder, "{a{b}"}}},
		{"stray", "a {b", []tok{{TokenText, "a "}, {TokenStray, "{b"}}},
		{"stray after placeholder", "{x} {", []tok{
			{TokenPlaceholder, "{x}"}, {TokenText, " "}, {TokenStray, "{"},
		}},
		{"lone close", "a}b", []tok{{TokenText, "a}b"}}},
		{"full placeholder", "{user.name:upper|anon}", []tok{
			{TokenPlaceholder, "{user.name:upper|anon}"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summarize(Tokenize(tt.in)))
		})
	}
}

func TestTokenizeBody(t *testing.T) {
	tokens := Tokenize("x {items[0]:pad(3, )|-} y")
	require.Len(t, tokens, 3)
	assert.Equal(t, "items[0]:pad(3, )|-", tokens[1].Body)
	assert.Empty(t, tokens[0].Body)

	tokens = Tokenize("{{{name}}}")
	require.Len(t, tokens, 2)
	assert.Equal(t, "name}", tokens[1].Body, "}} inside a body collapses before matching")
}

func TestTokenizeSpans(t *testing.T) {
	tokens := Tokenize("Hi {name}!\n  {x}")
	require.Len(t, tokens, 4)

	assert.Equal(t, syntax.Span{
		StartLine: 1, StartCol: 4, StartOffset: 3,
		EndLine: 1, EndCol: 10, EndOffset: 9,
	}, tokens[1].Span)
	assert.Equal(t, syntax.Span{
		StartLine: 2, StartCol: 3, StartOffset: 13,
		EndLine: 2, EndCol: 6, EndOffset: 16,
	}, tokens[3].Span)
	assert.Equal(t, "2:3", tokens[3].Span.String())
}

func TestTokenizeSpansCoverEscapes(t *testing.T) {
	src := "{{a}} {b}"
	tokens := Tokenize(src)
	require.Len(t, tokens, 2)
	assert.Equal(t, "{a} ", tokens[0].Text)
	assert.Equal(t, "{{a}} ", src[tokens[0].Span.StartOffset:tokens[0].Span.EndOffset])
	assert.Equal(t, "{b}", src[tokens[1].Span.StartOffset:tokens[1].Span.EndOffset])
}

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"Hello {name}, {{literal}} {a.b[0]:upper|x}",
		"}}}{{{",
		"{ {} }",
		"multi\nline {x}\n{y",
		"ユーザー{名前}さん",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, tok := range Tokenize(in) {
			b.WriteString(tok.Text)
		}
		want := strings.ReplaceAll(in, "{{", "\x00")
		want = strings.ReplaceAll(want, "}}", "\x01")
		want = strings.NewReplacer("\x00", "{", "\x01", "}").Replace(want)
		assert.Equal(t, want, b.String(), in)
	}
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "text", TokenText.String())
	assert.Equal(t, "placeholder", TokenPlaceholder.String())
	assert.Equal(t, "stray", TokenStray.String())
	assert.Equal(t, "unknown", TokenType(9).String())
}
