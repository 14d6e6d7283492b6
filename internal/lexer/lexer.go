package lexer

import (
	"sort"
	"strings"

	"github.com/umt-kit/strfmt/syntax"
)

type unitKind uint8

const (
	unitRaw unitKind = iota
	unitOpen
	unitClose
)

// unit is one byte of template, or one "{{" / "}}" escape pair.
type unit struct {
	kind unitKind
	b    byte
	off  int
}

func (u unit) width() int {
	if u.kind == unitRaw {
		return 1
	}
	return 2
}

func (u unit) char() byte {
	switch u.kind {
	case unitOpen:
		return '{'
	case unitClose:
		return '}'
	default:
		return u.b
	}
}

func (u unit) is(c byte) bool {
	return u.kind == unitRaw && u.b == c
}

// Tokenize splits source into text and placeholder tokens.
//
// Every "{{" is collapsed to a literal '{' first, scanning left to right,
// then every remaining "}}" to a literal '}'. A placeholder is then an
// unescaped '{', at least one character, and the next unescaped '}'. The
// body may contain a '{' or escaped braces but never a '}'. "{}" is literal
// text, and a '{' with no '}' after it starts a TokenStray tail.
//
// Concatenating Token.Text over the result reproduces the template with
// escapes collapsed.
func Tokenize(source string) []Token {
	units := collapse(source)
	l := &lexer{source: source, units: units, lines: lineStarts(source)}
	return l.scan()
}

func collapse(source string) []unit {
	units := make([]unit, 0, len(source))
	for i := 0; i < len(source); i++ {
		if source[i] == '{' && i+1 < len(source) && source[i+1] == '{' {
			units = append(units, unit{kind: unitOpen, off: i})
			i++
			continue
		}
		units = append(units, unit{kind: unitRaw, b: source[i], off: i})
	}

	out := units[:0]
	for i := 0; i < len(units); i++ {
		if units[i].is('}') && i+1 < len(units) && units[i+1].is('}') {
			out = append(out, unit{kind: unitClose, off: units[i].off})
			i++
			continue
		}
		out = append(out, units[i])
	}
	return out
}

type lexer struct {
	source string
	units  []unit
	lines  []int
	tokens []Token
}

func (l *lexer) scan() []Token {
	n := len(l.units)
	nextClose := make([]int, n+1)
	nextClose[n] = -1
	for i := n - 1; i >= 0; i-- {
		if l.units[i].is('}') {
			nextClose[i] = i
		} else {
			nextClose[i] = nextClose[i+1]
		}
	}

	textStart := 0
	for i := 0; i < n; i++ {
		if !l.units[i].is('{') {
			continue
		}
		closeAt := nextClose[i+1]
		if closeAt < 0 {
			l.emit(TokenText, textStart, i)
			l.emit(TokenStray, i, n)
			return l.tokens
		}
		if closeAt == i+1 {
			continue
		}
		l.emit(TokenText, textStart, i)
		l.emit(TokenPlaceholder, i, closeAt+1)
		i = closeAt
		textStart = closeAt + 1
	}
	l.emit(TokenText, textStart, n)
	return l.tokens
}

// emit appends the token covering units[start:end]; empty ranges are dropped.
func (l *lexer) emit(typ TokenType, start, end int) {
	if start >= end {
		return
	}
	var b strings.Builder
	b.Grow(end - start)
	for _, u := range l.units[start:end] {
		b.WriteByte(u.char())
	}
	tok := Token{
		Type: typ,
		Text: b.String(),
		Span: l.span(l.units[start].off, l.units[end-1].off+l.units[end-1].width()),
	}
	if typ == TokenPlaceholder {
		tok.Body = tok.Text[1 : len(tok.Text)-1]
	}
	l.tokens = append(l.tokens, tok)
}

func (l *lexer) span(start, end int) syntax.Span {
	sl, sc := l.position(start)
	el, ec := l.position(end)
	return syntax.Span{
		StartLine:   uint32(sl),
		StartCol:    uint32(sc),
		StartOffset: uint32(start),
		EndLine:     uint32(el),
		EndCol:      uint32(ec),
		EndOffset:   uint32(end),
	}
}

// position maps a byte offset to a 1-based line and column.
func (l *lexer) position(off int) (int, int) {
	line := sort.Search(len(l.lines), func(i int) bool { return l.lines[i] > off }) - 1
	return line + 1, off - l.lines[line] + 1
}

func lineStarts(source string) []int {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
