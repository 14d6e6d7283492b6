package strfmt

import (
	"github.com/umt-kit/strfmt/value"
)

// Mode is the dispatch style of a Format call.
type Mode int

const (
	// ModeIndexed addresses arguments by position: {0}, {1}, {-1}.
	ModeIndexed Mode = iota
	// ModeNamed addresses fields of a single data object: {user.name}.
	ModeNamed
)

func (m Mode) String() string {
	switch m {
	case ModeIndexed:
		return "indexed"
	case ModeNamed:
		return "named"
	default:
		return "unknown"
	}
}

// Options are per-call settings passed after named data:
//
//	strfmt.Format("{name:shout}", data, strfmt.Options{
//		Formatters: map[string]strfmt.Formatter{"shout": shout},
//	})
type Options struct {
	// Formatters overlay the environment's registry for one call. An
	// overlay entry wins over a registered formatter of the same name.
	Formatters map[string]Formatter
}

// DetectMode decides how Format interprets its arguments.
//
// A single object argument (a map, a struct, or a value.Value of kind
// Object) selects named mode. An object followed by an options argument
// also selects named mode and returns the options. Every other shape,
// including no arguments at all, is indexed mode with data being an Array
// of all arguments. An options argument is an Options, a non-nil *Options,
// or a map[string]any whose only key is "formatters".
func DetectMode(args ...any) (value.Value, Mode, Options) {
	switch len(args) {
	case 1:
		if _, isOpts := asOptions(args[0]); !isOpts {
			if data := value.FromAny(args[0]); data.Kind() == value.KindObject {
				return data, ModeNamed, Options{}
			}
		}
	case 2:
		if opts, isOpts := asOptions(args[1]); isOpts {
			if _, firstIsOpts := asOptions(args[0]); !firstIsOpts {
				if data := value.FromAny(args[0]); data.Kind() == value.KindObject {
					return data, ModeNamed, opts
				}
			}
		}
	}
	return indexedData(args), ModeIndexed, Options{}
}

func indexedData(args []any) value.Value {
	items := make([]value.Value, len(args))
	for i, arg := range args {
		items[i] = value.FromAny(arg)
	}
	return value.FromSlice(items)
}

// asOptions recognizes the accepted shapes of an options argument.
func asOptions(arg any) (Options, bool) {
	switch o := arg.(type) {
	case Options:
		return o, true
	case *Options:
		if o == nil {
			return Options{}, false
		}
		return *o, true
	case map[string]any:
		if len(o) != 1 {
			return Options{}, false
		}
		raw, ok := o["formatters"]
		if !ok {
			return Options{}, false
		}
		fs, ok := asFormatterMap(raw)
		if !ok {
			return Options{}, false
		}
		return Options{Formatters: fs}, true
	default:
		return Options{}, false
	}
}

func asFormatterMap(raw any) (map[string]Formatter, bool) {
	switch m := raw.(type) {
	case map[string]Formatter:
		return m, true
	case map[string]func(string, []string) string:
		out := make(map[string]Formatter, len(m))
		for name, f := range m {
			out[name] = f
		}
		return out, true
	case map[string]any:
		out := make(map[string]Formatter, len(m))
		for name, item := range m {
			switch f := item.(type) {
			case Formatter:
				out[name] = f
			case func(string, []string) string:
				out[name] = f
			default:
				return nil, false
			}
		}
		return out, true
	case nil:
		return nil, true
	default:
		return nil, false
	}
}
