// Package cmd contains the scalectl commands.
package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

// Set of supported output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// options holds the flags shared by every command.
type options struct {
	output string
	url    string
}

// NewRootCmd constructs the base command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:          "scalectl",
		Short:        "Model blockchain scalability solutions.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			formats := []string{formatText, formatJSON, formatYAML}
			if !slices.Contains(formats, opts.output) {
				return fmt.Errorf("unknown output format %q, use one of %v", opts.output, formats)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", formatText, "Output format: text, json or yaml.")
	rootCmd.PersistentFlags().StringVarP(&opts.url, "url", "u", "", "Url of a running showcase service. Runs locally when empty.")

	rootCmd.AddCommand(
		newLayer2Cmd(&opts),
		newShardingCmd(&opts),
		newHybridCmd(&opts),
		newCompareCmd(&opts),
		newTrilemmaCmd(&opts),
		newMetricsCmd(&opts),
		newSolutionCmd(&opts),
	)

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
