package parser

import (
	"regexp"
	"strings"

	"github.com/umt-kit/strfmt/internal/errors"
)

var formatterSpecRe = regexp.MustCompile(`^(\w+)(?:\(([^)]*)\))?$`)

// ParsePlaceholder splits a placeholder body. It never fails: whether the
// path resolves is decided later against the data.
//
// The first '|' separates the default, so later '|' characters belong to
// the default text. Within the path part the first ':' separates the
// formatter. Each part is trimmed.
func ParsePlaceholder(body string) Placeholder {
	var p Placeholder
	head := body
	if before, after, ok := strings.Cut(body, "|"); ok {
		head = before
		p.Default = strings.TrimSpace(after)
		p.HasDefault = true
	}
	head = strings.TrimSpace(head)
	if path, spec, ok := strings.Cut(head, ":"); ok {
		p.Path = strings.TrimSpace(path)
		p.Formatter = strings.TrimSpace(spec)
		p.HasFormatter = true
	} else {
		p.Path = head
	}
	return p
}

// ParseFormatterSpec validates a formatter spec of the form name or
// name(arg, ...). The name is one or more word characters; the argument
// list may not contain ')'. A nested ':' or any trailing text is rejected.
func ParseFormatterSpec(spec string) (FormatterSpec, error) {
	m := formatterSpecRe.FindStringSubmatch(spec)
	if m == nil {
		return FormatterSpec{}, errors.Errorf(errors.ErrBadFormatterSpec,
			"cannot parse formatter %q", spec)
	}
	fs := FormatterSpec{Name: m[1]}
	if m[2] != "" {
		fs.Args = ParseArgs(m[2])
		fs.HasArgs = true
	}
	return fs, nil
}

// ParseArgs splits a formatter argument list on commas outside quotes.
// A single or double quote opens a quoted run that ends at the same quote
// character; the quotes themselves are dropped. Every argument is trimmed,
// and an argument that trims to nothing becomes a single space so the
// number of arguments is always one more than the number of separators.
//
//	ParseArgs(`4,0`)       // ["4", "0"]
//	ParseArgs(`"a,b", c`)  // ["a,b", "c"]
//	ParseArgs(`3, `)       // ["3", " "]
func ParseArgs(raw string) []string {
	var (
		args    []string
		current strings.Builder
		quote   rune
	)
	flush := func() {
		arg := strings.TrimSpace(current.String())
		if arg == "" {
			arg = " "
		}
		args = append(args, arg)
		current.Reset()
	}
	for _, c := range raw {
		switch {
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
		case quote != 0 && c == quote:
			quote = 0
		case quote == 0 && c == ',':
			flush()
		default:
			current.WriteRune(c)
		}
	}
	flush()
	return args
}
