package strfmt

import (
	"github.com/umt-kit/strfmt/internal/lexer"
	"github.com/umt-kit/strfmt/internal/parser"
	"github.com/umt-kit/strfmt/value"
)

// Lint reports the problems in template that do not depend on data: a '{'
// that is never closed, paths that cannot be parsed, and formatters that
// are malformed or not registered in the environment. Unlike Check it
// neither resolves paths nor runs formatters.
func (e *Environment) Lint(template string) []*Error {
	s := e.newState(template, value.Null(), ModeNamed, Options{})
	s.collect = true
	for _, tok := range lexer.Tokenize(template) {
		switch tok.Type {
		case lexer.TokenStray:
			s.report(Errorf(ErrUnterminated, "'{' is never closed"), tok)
		case lexer.TokenPlaceholder:
			s.lintPlaceholder(tok)
		}
	}
	return s.diags
}

func (s *state) lintPlaceholder(tok lexer.Token) {
	ph := parser.ParsePlaceholder(tok.Body)
	if _, ok := value.ParsePath(ph.Path); !ok {
		s.report(Errorf(ErrBadPlaceholder, "%q is not a valid path", ph.Path), tok)
	}
	if !ph.HasFormatter {
		return
	}
	fs, err := parser.ParseFormatterSpec(ph.Formatter)
	if err != nil {
		s.report(Errorf(ErrBadFormatterSpec, "cannot parse formatter %q", ph.Formatter), tok)
		return
	}
	if _, ok := s.formatter(fs.Name); !ok {
		s.report(Errorf(ErrUnknownFormatter, "%q is not registered", fs.Name), tok)
	}
}
