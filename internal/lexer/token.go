// Package lexer splits a format template into literal text and placeholders.
package lexer

import (
	"fmt"

	"github.com/umt-kit/strfmt/syntax"
)

// TokenType represents the type of a token.
type TokenType int

const (
	// TokenText is literal text. Brace escapes are already collapsed.
	TokenText TokenType = iota

	// TokenPlaceholder is a "{...}" span.
	TokenPlaceholder

	// TokenStray is the literal tail that starts at a '{' with no closing
	// '}' anywhere after it. It renders exactly like TokenText.
	TokenStray
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "text"
	case TokenPlaceholder:
		return "placeholder"
	case TokenStray:
		return "stray"
	default:
		return "unknown"
	}
}

// Token is a lexed piece of a template.
type Token struct {
	Type TokenType
	// Text is what the token renders as when emitted verbatim: the literal
	// text, or for a placeholder the raw "{...}" with escapes collapsed.
	Text string
	// Body is the text between the braces of a placeholder.
	Body string
	Span syntax.Span
}

func (t Token) String() string {
	if t.Type == TokenPlaceholder {
		return fmt.Sprintf("%s(%q)@%s", t.Type, t.Body, t.Span)
	}
	return fmt.Sprintf("%s(%q)@%s", t.Type, t.Text, t.Span)
}
