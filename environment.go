package strfmt

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/umt-kit/strfmt/internal/parser"
	"github.com/umt-kit/strfmt/value"
)

// Formatter transforms the rendered value of a placeholder. args holds
// the parsed arguments of "name(arg, ...)" and is nil for a bare "name".
// Formatters should be pure; a panic is recovered and the value is
// emitted unformatted.
type Formatter func(value string, args []string) string

var formatterNameRe = regexp.MustCompile(`^\w+$`)

// Environment holds the formatter registry and the logger used while
// rendering. It is safe for concurrent use; registrations made while a
// Format call is running may or may not be seen by that call.
type Environment struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
	logger     *slog.Logger
}

// NewEnvironment creates an environment with the default formatters.
func NewEnvironment() *Environment {
	env := EmptyEnvironment()
	registerDefaultFormatters(env)
	return env
}

// EmptyEnvironment creates an environment with no formatters.
func EmptyEnvironment() *Environment {
	return &Environment{
		formatters: make(map[string]Formatter),
		logger:     slog.New(slog.DiscardHandler),
	}
}

// AddFormatter registers a formatter, replacing any existing one.
func (e *Environment) AddFormatter(name string, f Formatter) {
	e.mu.Lock()
	e.formatters[name] = f
	e.mu.Unlock()
}

// RemoveFormatter unregisters a formatter.
func (e *Environment) RemoveFormatter(name string) {
	e.mu.Lock()
	delete(e.formatters, name)
	e.mu.Unlock()
}

// Formatter returns a registered formatter.
func (e *Environment) Formatter(name string) (Formatter, bool) {
	e.mu.RLock()
	f, ok := e.formatters[name]
	e.mu.RUnlock()
	return f, ok
}

// Formatters returns the registered formatter names in sorted order.
func (e *Environment) Formatters() []string {
	e.mu.RLock()
	names := make([]string, 0, len(e.formatters))
	for name := range e.formatters {
		names = append(names, name)
	}
	e.mu.RUnlock()
	sort.Strings(names)
	return names
}

// AddPreset registers name as a shorthand for a formatter call with fixed
// leading arguments. With
//
//	env.AddPreset("usd", "currency(en-US,USD)")
//
// "{price:usd}" renders like "{price:currency(en-US,USD)}". Arguments
// given to the preset are appended after the fixed ones. The base
// formatter is looked up once, at registration.
func (e *Environment) AddPreset(name, spec string) error {
	if !formatterNameRe.MatchString(name) {
		return Errorf(ErrBadPreset, "preset name %q must consist of letters, digits and underscores", name)
	}
	fs, err := parser.ParseFormatterSpec(strings.TrimSpace(spec))
	if err != nil {
		return Errorf(ErrBadPreset, "preset %q: %q is not a formatter call", name, spec).WithCause(err)
	}
	base, ok := e.Formatter(fs.Name)
	if !ok {
		return Errorf(ErrBadPreset, "preset %q: formatter %q is not registered", name, fs.Name)
	}
	fixed := fs.Args
	e.AddFormatter(name, func(v string, args []string) string {
		if len(args) == 0 {
			return base(v, fixed)
		}
		all := make([]string, 0, len(fixed)+len(args))
		all = append(all, fixed...)
		all = append(all, args...)
		return base(v, all)
	})
	return nil
}

// SetLogger sets the logger that receives soft failures. Unresolved
// placeholders and unknown or malformed formatters are logged at debug
// level, recovered formatter panics at warn level. A nil logger discards.
func (e *Environment) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	e.mu.Lock()
	e.logger = logger
	e.mu.Unlock()
}

// Logger returns the environment's logger.
func (e *Environment) Logger() *slog.Logger {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.logger
}

// Format renders template with args interpreted by DetectMode.
// It never fails; see Check for what degraded.
func (e *Environment) Format(template string, args ...any) string {
	data, mode, opts := DetectMode(args...)
	return e.newState(template, data, mode, opts).render()
}

// FormatValue renders template against already-converted data. An Object
// is named data, an Array supplies the indexed arguments, and any other
// value is the single indexed argument.
func (e *Environment) FormatValue(template string, data value.Value, opts Options) string {
	data, mode := valueMode(data)
	return e.newState(template, data, mode, opts).render()
}

// Check renders template like Format and returns a diagnostic for every
// placeholder that degraded: unresolved paths without a default, unknown
// or malformed formatters, recovered formatter panics, unparseable paths
// and a '{' that is never closed. The errors carry the template source and
// the span of the offending placeholder.
func (e *Environment) Check(template string, args ...any) []*Error {
	data, mode, opts := DetectMode(args...)
	s := e.newState(template, data, mode, opts)
	s.collect = true
	s.render()
	return s.diags
}

// CheckValue is Check for data given as a value; see FormatValue.
func (e *Environment) CheckValue(template string, data value.Value, opts Options) []*Error {
	data, mode := valueMode(data)
	s := e.newState(template, data, mode, opts)
	s.collect = true
	s.render()
	return s.diags
}

func valueMode(data value.Value) (value.Value, Mode) {
	switch data.Kind() {
	case value.KindObject:
		return data, ModeNamed
	case value.KindArray:
		return data, ModeIndexed
	default:
		return value.FromSlice([]value.Value{data}), ModeIndexed
	}
}

var defaultEnv = NewEnvironment()

// Format renders template with the default formatters.
//
//	strfmt.Format("Hello, {0}! It's {1} today.", "World", "sunny")
//	strfmt.Format("Hello, {name}!", map[string]any{"name": "Alice"})
func Format(template string, args ...any) string {
	return defaultEnv.Format(template, args...)
}

// Check reports what Format would degrade, using the default formatters.
func Check(template string, args ...any) []*Error {
	return defaultEnv.Check(template, args...)
}
