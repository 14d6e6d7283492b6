package config

import (
	stderrors "errors"
	"sort"

	"github.com/umt-kit/strfmt"
)

// Apply registers the configured presets on env. A preset may build on
// another preset regardless of name order; presets whose base never
// becomes available are reported together.
func Apply(cfg *Config, env *strfmt.Environment) error {
	pending := make([]string, 0, len(cfg.Presets))
	for name := range cfg.Presets {
		pending = append(pending, name)
	}
	sort.Strings(pending)

	for len(pending) > 0 {
		var failed []string
		var errs []error
		for _, name := range pending {
			if err := env.AddPreset(name, cfg.Presets[name]); err != nil {
				failed = append(failed, name)
				errs = append(errs, err)
			}
		}
		if len(failed) == len(pending) {
			return stderrors.Join(errs...)
		}
		pending = failed
	}
	return nil
}
