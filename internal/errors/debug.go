package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/umt-kit/strfmt/syntax"
)

// Format implements fmt.Formatter. "%+v" renders the message followed by
// an excerpt of the template with the offending placeholder underlined:
//
//	unknown formatter: "shout" is not registered (at line 2)
//	------------------------------- greeting -------------------------------
//	   1 | Dear {name},
//	   2 > {body:shout}
//	     i ^^^^^^^^^^^^ unknown formatter
//	~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		_, _ = io.WriteString(f, e.Error())
		if f.Flag('+') {
			renderSource(f, e)
			if e.cause != nil {
				_, _ = fmt.Fprintf(f, "\n\ncaused by: %v", e.cause)
			}
		}
	case 's':
		_, _ = io.WriteString(f, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	}
}

func renderSource(w io.Writer, err *Error) {
	if err.Source == "" || err.Span == nil {
		return
	}
	title := fmt.Sprintf(" %s ", templateTitle(err.Name))
	_, _ = fmt.Fprint(w, "\n")
	_, _ = fmt.Fprintln(w, centerLine(title, '-', 72))

	lines := strings.Split(err.Source, "\n")
	lineIdx := int(err.Span.StartLine) - 1
	if lineIdx >= len(lines) {
		lineIdx = len(lines) - 1
	}
	if lineIdx < 0 {
		lineIdx = 0
	}

	for idx := max(lineIdx-2, 0); idx < lineIdx; idx++ {
		_, _ = fmt.Fprintf(w, "%4d | %s\n", idx+1, lines[idx])
	}
	_, _ = fmt.Fprintf(w, "%4d > %s\n", lineIdx+1, lines[lineIdx])
	_, _ = fmt.Fprintf(
		w,
		"     i %s%s %s\n",
		strings.Repeat(" ", int(err.Span.StartCol)-1),
		strings.Repeat("^", caretWidth(err.Span)),
		err.Kind,
	)
	for idx := lineIdx + 1; idx <= lineIdx+2 && idx < len(lines); idx++ {
		_, _ = fmt.Fprintf(w, "%4d | %s\n", idx+1, lines[idx])
	}
	_, _ = fmt.Fprint(w, strings.Repeat("~", 72))
}

// caretWidth underlines the span, falling back to a single caret when the
// span crosses a newline.
func caretWidth(span *syntax.Span) int {
	if span.EndLine != span.StartLine || span.EndCol <= span.StartCol {
		return 1
	}
	return int(span.EndCol - span.StartCol)
}

func templateTitle(name string) string {
	if name == "" {
		return "Template Source"
	}
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' })
	if len(parts) == 0 {
		return "Template Source"
	}
	return parts[len(parts)-1]
}

func centerLine(title string, fill rune, width int) string {
	if len(title) >= width {
		return title
	}
	pad := width - len(title)
	left := pad / 2
	right := pad - left
	return strings.Repeat(string(fill), left) + title + strings.Repeat(string(fill), right)
}
