// Package config loads the strfmt configuration file.
//
// A configuration file looks like:
//
//	logging:
//	  level: info     # debug, info, warn or error
//	  format: text    # text or json
//	render:
//	  strict: false   # fail rendering when Check reports problems
//	presets:
//	  usd: currency(en-US,USD)
//	  id: pad(6,0)
//
// Load it with LoadConfig and install the presets with Apply.
package config

// Config is the root configuration.
type Config struct {
	// Logging configures the CLI logger.
	Logging LoggingConfig `yaml:"logging"`

	// Render holds rendering defaults.
	Render RenderConfig `yaml:"render"`

	// Presets maps a preset name to a formatter call with fixed
	// arguments, as accepted by Environment.AddPreset.
	Presets map[string]string `yaml:"presets"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// Format is the output format ("text", "json").
	Format string `yaml:"format"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	// Strict makes rendering fail when any placeholder degrades.
	Strict bool `yaml:"strict"`
}
