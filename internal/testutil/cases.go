// Package testutil loads the YAML golden cases shared by the package tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/umt-kit/strfmt/value"
)

// Case is one golden rendering case. A case file holds a YAML list:
//
//   - name: nested path
//     template: "User: {user.name}"
//     data: {user: {name: Charlie}}
//     expected: "User: Charlie"
//     diagnostics: []
//
// Data is passed as the single named argument; otherwise Args are passed
// positionally.
type Case struct {
	Name     string       `yaml:"name"`
	Template string       `yaml:"template"`
	Data     *value.Value `yaml:"data"`
	Args     value.Values `yaml:"args"`
	Expected string       `yaml:"expected"`

	// Diagnostics lists the error kinds Check must report, in order. A
	// missing key skips the check; an empty list requires a clean template.
	Diagnostics []string `yaml:"diagnostics"`

	// Skip, when set, is the reason the case is skipped.
	Skip string `yaml:"skip"`

	// File is the case file the case was loaded from.
	File string `yaml:"-"`
}

// Inputs returns the arguments to render the case with.
func (c Case) Inputs() []any {
	if c.Data != nil {
		return []any{*c.Data}
	}
	args := make([]any, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg
	}
	return args
}

// ChecksDiagnostics reports whether the case states expected diagnostics.
func (c Case) ChecksDiagnostics() bool {
	return c.Diagnostics != nil
}

// LoadCases reads every *.yaml file in dir, in file name order.
func LoadCases(dir string) ([]Case, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no case files found in %s", dir)
	}
	sort.Strings(paths)

	var cases []Case
	for _, path := range paths {
		loaded, err := ParseCaseFile(path)
		if err != nil {
			return nil, err
		}
		cases = append(cases, loaded...)
	}
	return cases, nil
}

// ParseCaseFile reads one case file.
func ParseCaseFile(path string) ([]Case, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cases, err := ParseCases(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i := range cases {
		cases[i].File = filepath.Base(path)
	}
	return cases, nil
}

// ParseCases decodes a YAML list of cases. Unknown keys are rejected so a
// misspelled field does not silently weaken a case.
func ParseCases(content []byte) ([]Case, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var cases []Case
	if err := dec.Decode(&cases); err != nil {
		return nil, err
	}
	for i, c := range cases {
		if c.Name == "" {
			return nil, fmt.Errorf("case %d has no name", i)
		}
		if c.Data != nil && len(c.Args) > 0 {
			return nil, fmt.Errorf("case %q sets both data and args", c.Name)
		}
	}
	return cases, nil
}
