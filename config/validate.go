package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/umt-kit/strfmt/internal/parser"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the field (e.g., "logging.level").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every validation failure of a configuration.
type ValidationError struct {
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:\n", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "  - %s\n", err.Error())
	}
	return sb.String()
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"text", "json"}
	presetNameRe = regexp.MustCompile(`^\w+$`)
)

// Validate checks the configuration and returns a ValidationError listing
// every problem, or nil. Whether a preset's base formatter exists is only
// known once presets are applied to an environment.
func Validate(cfg *Config) error {
	var errs []FieldError
	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validatePresets(cfg.Presets)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError
	if !oneOf(strings.ToLower(cfg.Level), validLevels) {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validLevels, ", "), cfg.Level),
		})
	}
	if !oneOf(strings.ToLower(cfg.Format), validFormats) {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validFormats, ", "), cfg.Format),
		})
	}
	return errs
}

func validatePresets(presets map[string]string) []FieldError {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []FieldError
	for _, name := range names {
		field := "presets." + name
		if !presetNameRe.MatchString(name) {
			errs = append(errs, FieldError{Field: field, Message: "name must consist of letters, digits and underscores"})
			continue
		}
		spec := strings.TrimSpace(presets[name])
		fs, err := parser.ParseFormatterSpec(spec)
		if err != nil {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("%q is not a formatter call", presets[name])})
			continue
		}
		if fs.Name == name {
			errs = append(errs, FieldError{Field: field, Message: "preset refers to itself"})
		}
	}
	return errs
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
