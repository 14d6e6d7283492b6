package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umt-kit/strfmt"
)

var checkFlags dataFlags

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Report problems in template files",
	Long: `Report placeholders that would not render cleanly.

Without --data or --arg only data-independent problems are reported: a '{'
that is never closed, unparseable paths, and malformed or unknown
formatters. With data, unresolved paths and formatter panics are reported
as well.

Examples:
  strfmt check templates/*.txt
  strfmt check --data user.yaml mail.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.dataFile, "data", "d", "", "YAML or JSON data file (\"-\" for stdin)")
	checkCmd.Flags().StringArrayVarP(&checkFlags.args, "arg", "a", nil, "positional argument (repeatable)")
}

func runCheck(cmd *cobra.Command, files []string) error {
	env, _, err := setup(cmd)
	if err != nil {
		return err
	}
	withData := checkFlags.dataFile != "" || len(checkFlags.args) > 0
	in, err := checkFlags.load(cmd.InOrStdin())
	if err != nil {
		return err
	}

	problems, failing := 0, 0
	for _, file := range files {
		raw, err := readSource(file, cmd.InOrStdin())
		if err != nil {
			return err
		}
		source := string(raw)

		var diags []*strfmt.Error
		if withData {
			diags = in.check(env, source)
		} else {
			diags = env.Lint(source)
		}
		if len(diags) == 0 {
			continue
		}
		printDiagnostics(cmd.OutOrStdout(), file, diags)
		problems += len(diags)
		failing++
	}

	if problems > 0 {
		return fmt.Errorf("found %d problem(s) in %d of %d template(s)", problems, failing, len(files))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d template(s) OK\n", len(files))
	return nil
}
