// Package parser splits placeholder bodies into their path, default and
// formatter parts.
package parser

import (
	"fmt"
	"strings"
)

// Placeholder is the parsed body of a "{...}" span:
//
//	path [ ':' formatter ] [ '|' default ]
type Placeholder struct {
	Path string

	// Default is the text after the first '|'. HasDefault distinguishes
	// "{x|}" (empty default) from "{x}".
	Default    string
	HasDefault bool

	// Formatter is the raw formatter spec after the first ':' of the path
	// part, not yet validated.
	Formatter    string
	HasFormatter bool
}

func (p Placeholder) String() string {
	var b strings.Builder
	b.WriteString(p.Path)
	if p.HasFormatter {
		b.WriteByte(':')
		b.WriteString(p.Formatter)
	}
	if p.HasDefault {
		b.WriteByte('|')
		b.WriteString(p.Default)
	}
	return b.String()
}

// FormatterSpec is a validated formatter reference such as "pad(4,0)".
type FormatterSpec struct {
	Name string
	Args []string
	// HasArgs is false for "upper" and for "upper()"; an empty argument
	// list passes no arguments to the formatter.
	HasArgs bool
}

func (f FormatterSpec) String() string {
	if !f.HasArgs {
		return f.Name
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(f.Args, ","))
}
