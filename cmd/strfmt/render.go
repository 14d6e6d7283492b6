package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/umt-kit/strfmt"
)

var renderFlags struct {
	dataFlags
	file      string
	strict    bool
	watch     bool
	noNewline bool
}

var renderCmd = &cobra.Command{
	Use:   "render [template]",
	Short: "Render a template",
	Long: `Render a template given inline or with --file.

Without --data the template is rendered in indexed mode against the --arg
values, so {0} is the first --arg. With --data the YAML or JSON document
is the data: an object is addressed by name ({user.name}), an array by
position ({0}).

Examples:
  strfmt render "Hello, {0}!" --arg World
  strfmt render "{price:currency(en-US,USD)}" --data order.json
  strfmt render --file mail.txt --data user.yaml --strict
  strfmt render --file mail.txt --data user.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderFlags.file, "file", "f", "", "read the template from a file (\"-\" for stdin)")
	renderCmd.Flags().StringVarP(&renderFlags.dataFile, "data", "d", "", "YAML or JSON data file (\"-\" for stdin)")
	renderCmd.Flags().StringArrayVarP(&renderFlags.args, "arg", "a", nil, "positional argument (repeatable)")
	renderCmd.Flags().BoolVar(&renderFlags.strict, "strict", false, "fail when any placeholder degrades (overrides render.strict)")
	renderCmd.Flags().BoolVarP(&renderFlags.watch, "watch", "w", false, "re-render when the template or data file changes")
	renderCmd.Flags().BoolVarP(&renderFlags.noNewline, "no-newline", "n", false, "do not print a trailing newline")
}

func runRender(cmd *cobra.Command, args []string) error {
	env, cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strict") {
		cfg.Render.Strict = renderFlags.strict
	}
	if renderFlags.file == "-" && renderFlags.dataFile == "-" {
		return fmt.Errorf("the template and the data cannot both come from stdin")
	}

	r := &renderer{
		env:       env,
		strict:    cfg.Render.Strict,
		inline:    args,
		file:      renderFlags.file,
		data:      renderFlags.dataFlags,
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
		noNewline: renderFlags.noNewline,
	}
	if err := r.bufferStdin(cmd.InOrStdin()); err != nil {
		return err
	}
	if !renderFlags.watch {
		return r.run()
	}

	var paths []string
	for _, p := range []string{renderFlags.file, renderFlags.dataFile} {
		if p != "" && p != "-" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("--watch needs --file or --data pointing at a file")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.runLogged()
	return watchFiles(ctx, paths, 100*time.Millisecond, env.Logger(), r.runLogged)
}

type renderer struct {
	env       *strfmt.Environment
	strict    bool
	inline    []string
	file      string
	data      dataFlags
	out       io.Writer
	errOut    io.Writer
	stdin     []byte
	noNewline bool
}

// bufferStdin reads stdin once when the template or the data comes from
// it, so that every re-render in watch mode sees the same input.
func (r *renderer) bufferStdin(stdin io.Reader) error {
	if r.file != "-" && r.data.dataFile != "-" {
		return nil
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	r.stdin = raw
	return nil
}

func (r *renderer) template() (name, source string, err error) {
	switch {
	case len(r.inline) == 1 && r.file != "":
		return "", "", fmt.Errorf("give the template inline or with --file, not both")
	case len(r.inline) == 1:
		return "", r.inline[0], nil
	case r.file != "":
		raw, err := readSource(r.file, bytes.NewReader(r.stdin))
		if err != nil {
			return "", "", err
		}
		return r.file, string(raw), nil
	default:
		return "", "", fmt.Errorf("no template given")
	}
}

func (r *renderer) run() error {
	name, source, err := r.template()
	if err != nil {
		return err
	}
	in, err := r.data.load(bytes.NewReader(r.stdin))
	if err != nil {
		return err
	}

	if r.strict {
		if diags := in.check(r.env, source); len(diags) > 0 {
			printDiagnostics(r.errOut, name, diags)
			return fmt.Errorf("%d placeholder(s) could not be rendered", len(diags))
		}
	}

	out := in.format(r.env, source)
	if !r.noNewline {
		out += "\n"
	}
	_, err = io.WriteString(r.out, out)
	return err
}

// runLogged renders once in watch mode, where errors are reported and
// watching continues.
func (r *renderer) runLogged() {
	if err := r.run(); err != nil {
		r.env.Logger().Error("render failed", "error", err)
	}
}
