// Package strfmt renders placeholder format strings against dynamic data.
//
// # Quick Start
//
// Positional arguments are addressed by index, a single map or struct by
// field path:
//
//	strfmt.Format("Hello, {0}! It's {1} today.", "World", "sunny")
//	// Hello, World! It's sunny today.
//
//	strfmt.Format("User: {user.name}, last item: {items[-1]}", map[string]any{
//	    "user":  map[string]any{"name": "Charlie"},
//	    "items": []string{"A", "B", "C"},
//	})
//	// User: Charlie, last item: C
//
// # Placeholder Syntax
//
//	{path}                  value at path
//	{path|default}          default when the value is null or missing
//	{path:formatter}        value passed through a formatter
//	{path:formatter(a, b)}  formatter with arguments, optionally quoted
//	{{ and }}               literal braces
//
// Paths are dot-separated names with optional bracket indexers; negative
// indexes count from the end ({matrix[0][-1]}). In indexed mode the first
// name is the argument position, so {0.name} reads a field of the first
// argument.
//
// Rendering never fails. A placeholder whose path cannot be resolved and
// that has no default is left in the output verbatim, an unknown formatter
// leaves the value unformatted, and a '{' that is never closed is literal
// text. Use Check to list these cases with their positions, or Lint for the
// subset that does not depend on data.
//
// # Formatters
//
// The default environment provides upper, lower, pad, plural, multiply,
// number, currency, date and time. Register more on an Environment, or pass
// them for a single call:
//
//	env := strfmt.NewEnvironment()
//	env.AddFormatter("reverse", func(v string, _ []string) string {
//	    r := []rune(v)
//	    slices.Reverse(r)
//	    return string(r)
//	})
//	_ = env.AddPreset("usd", "currency(en-US,USD)")
//	env.Format("{text:reverse} costs {price:usd}", data)
//
//	strfmt.Format("{name:shout}", data, strfmt.Options{
//	    Formatters: map[string]strfmt.Formatter{"shout": shout},
//	})
//
// # See Also
//
//   - environment.go: registry, presets and entry points
//   - formatters.go: built-in formatters
//   - value package: dynamic values and path resolution
//   - config package: YAML presets and logging settings
//   - cmd/strfmt: command line renderer and checker
package strfmt

// Re-export commonly used types from subpackages
import (
	"github.com/umt-kit/strfmt/value"
)

// Value is a dynamically typed value rendered into templates.
type Value = value.Value

// ValueKind describes the type of a Value.
type ValueKind = value.ValueKind

// Value kinds
const (
	KindNull   = value.KindNull
	KindBool   = value.KindBool
	KindNumber = value.KindNumber
	KindString = value.KindString
	KindArray  = value.KindArray
	KindObject = value.KindObject
)

// Value constructors
var (
	Null       = value.Null
	FromBool   = value.FromBool
	FromInt    = value.FromInt
	FromFloat  = value.FromFloat
	FromString = value.FromString
	FromSlice  = value.FromSlice
	FromMap    = value.FromMap
	FromAny    = value.FromAny
	Array      = value.Array
	Object     = value.Object
)
