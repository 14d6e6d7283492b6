package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/umt-kit/strfmt"
	"github.com/umt-kit/strfmt/value"
)

// dataFlags are shared by commands that render against data.
type dataFlags struct {
	dataFile string
	args     []string
}

// input is what a template is rendered against: decoded data, or the
// positional arguments when no data file was given.
type input struct {
	data *value.Value
	args []string
}

func (f *dataFlags) load(stdin io.Reader) (input, error) {
	if f.dataFile == "" {
		return input{args: f.args}, nil
	}
	if len(f.args) > 0 {
		return input{}, fmt.Errorf("--data and --arg cannot be combined")
	}
	raw, err := readSource(f.dataFile, stdin)
	if err != nil {
		return input{}, err
	}
	data, err := decodeData(raw)
	if err != nil {
		return input{}, fmt.Errorf("failed to parse data file %q: %w", f.dataFile, err)
	}
	return input{data: &data}, nil
}

// decodeData decodes YAML or JSON into a value. An empty document is an
// empty object.
func decodeData(raw []byte) (value.Value, error) {
	var data value.Value
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return value.Value{}, err
	}
	if data.IsNull() {
		return value.FromMap(nil), nil
	}
	return data, nil
}

// readSource reads a file, or stdin when path is "-".
func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return raw, nil
}

func (in input) format(env *strfmt.Environment, template string) string {
	if in.data != nil {
		return env.FormatValue(template, *in.data, strfmt.Options{})
	}
	return env.Format(template, in.anyArgs()...)
}

func (in input) check(env *strfmt.Environment, template string) []*strfmt.Error {
	if in.data != nil {
		return env.CheckValue(template, *in.data, strfmt.Options{})
	}
	return env.Check(template, in.anyArgs()...)
}

func (in input) anyArgs() []any {
	out := make([]any, len(in.args))
	for i, a := range in.args {
		out[i] = a
	}
	return out
}

// printDiagnostics writes each diagnostic with its source excerpt.
func printDiagnostics(w io.Writer, name string, diags []*strfmt.Error) {
	for _, d := range diags {
		fmt.Fprintf(w, "%+v\n\n", d.WithName(name))
	}
}
