package strfmt

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/umt-kit/strfmt/internal/lexer"
	"github.com/umt-kit/strfmt/internal/parser"
	"github.com/umt-kit/strfmt/syntax"
	"github.com/umt-kit/strfmt/value"
)

// state renders one template against one set of data.
type state struct {
	env     *Environment
	logger  *slog.Logger
	source  string
	data    value.Value
	mode    Mode
	overlay map[string]Formatter
	out     strings.Builder

	// collect enables diagnostics for Check.
	collect bool
	diags   []*Error
}

func (e *Environment) newState(source string, data value.Value, mode Mode, opts Options) *state {
	return &state{
		env:     e,
		logger:  e.Logger(),
		source:  source,
		data:    data,
		mode:    mode,
		overlay: opts.Formatters,
	}
}

func (s *state) render() string {
	s.out.Grow(len(s.source))
	for _, tok := range lexer.Tokenize(s.source) {
		switch tok.Type {
		case lexer.TokenText:
			s.out.WriteString(tok.Text)
		case lexer.TokenStray:
			s.report(Errorf(ErrUnterminated, "'{' is never closed"), tok)
			s.out.WriteString(tok.Text)
		case lexer.TokenPlaceholder:
			s.out.WriteString(s.evalPlaceholder(tok))
		}
	}
	return s.out.String()
}

func (s *state) evalPlaceholder(tok lexer.Token) string {
	ph := parser.ParsePlaceholder(tok.Body)

	val, found := s.lookup(ph, tok)
	switch {
	case !found && !ph.HasDefault:
		return tok.Text
	case !found, val.IsNull() && ph.HasDefault:
		val = value.FromString(ph.Default)
	}

	rendered := val.String()
	if !ph.HasFormatter {
		return rendered
	}
	return s.applyFormatter(rendered, ph.Formatter, tok)
}

// lookup resolves a placeholder path against the call data. An
// unresolved path is only reported when there is no default to fall
// back to.
func (s *state) lookup(ph parser.Placeholder, tok lexer.Token) (value.Value, bool) {
	segs, ok := value.ParsePath(ph.Path)
	if !ok {
		s.report(Errorf(ErrBadPlaceholder, "%q is not a valid path", ph.Path), tok)
		return value.Value{}, false
	}
	var val value.Value
	if s.mode == ModeNamed {
		val, ok = value.ResolveSegments(s.data, segs)
	} else {
		val, ok = s.resolveIndexed(segs)
	}
	if !ok && !ph.HasDefault {
		s.report(Errorf(ErrUnresolvedPath, "%q does not resolve", ph.Path), tok)
	}
	return val, ok
}

// resolveIndexed resolves a path whose first segment names an argument
// position, as in "0", "-1", "0.name" or "1[2]".
func (s *state) resolveIndexed(segs []value.Segment) (value.Value, bool) {
	idx, ok := segs[0].Index()
	if !ok {
		return value.Value{}, false
	}
	arg, ok := s.data.GetIndex(idx)
	if !ok {
		return value.Value{}, false
	}
	if arg, ok = value.ApplyIndices(arg, segs[0].Indices); !ok {
		return value.Value{}, false
	}
	return value.ResolveSegments(arg, segs[1:])
}

func (s *state) applyFormatter(rendered, spec string, tok lexer.Token) string {
	fs, err := parser.ParseFormatterSpec(spec)
	if err != nil {
		perr, ok := err.(*Error)
		if !ok {
			perr = Errorf(ErrBadFormatterSpec, "%v", err)
		}
		s.report(perr, tok)
		return rendered
	}
	f, ok := s.formatter(fs.Name)
	if !ok {
		s.report(Errorf(ErrUnknownFormatter, "%q is not registered", fs.Name), tok)
		return rendered
	}
	return s.call(f, fs, rendered, tok)
}

func (s *state) formatter(name string) (Formatter, bool) {
	if f, ok := s.overlay[name]; ok && f != nil {
		return f, true
	}
	return s.env.Formatter(name)
}

func (s *state) call(f Formatter, fs parser.FormatterSpec, rendered string, tok lexer.Token) (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("formatter panicked",
				"formatter", fs.Name,
				"placeholder", tok.Text,
				"position", tok.Span.String(),
				"panic", fmt.Sprint(r))
			if s.collect {
				s.diags = append(s.diags, s.annotate(
					Errorf(ErrFormatterPanic, "%s: %v", fs.Name, r), tok.Span))
			}
			out = rendered
		}
	}()
	return f(rendered, fs.Args)
}

// report logs a soft failure and, when checking, records it.
func (s *state) report(err *Error, tok lexer.Token) {
	s.logger.Debug(err.Kind.String(),
		"placeholder", tok.Text,
		"position", tok.Span.String(),
		"detail", err.Message)
	if s.collect {
		s.diags = append(s.diags, s.annotate(err, tok.Span))
	}
}

func (s *state) annotate(err *Error, span syntax.Span) *Error {
	return err.WithSpan(span).WithSource(s.source)
}
