package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formattersCmd = &cobra.Command{
	Use:   "formatters",
	Short: "List available formatters",
	Long: `List the built-in formatters together with any presets defined in the
configuration file, one per line in sorted order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, name := range env.Formatters() {
			if spec, ok := cfg.Presets[name]; ok {
				fmt.Fprintf(w, "%s = %s\n", name, spec)
				continue
			}
			fmt.Fprintln(w, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formattersCmd)
}
