// Package cmd provides the CLI commands for matchql.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/searchforge/matchquery/pkg/version"
)

var debugMode bool

// NewRootCmd creates the root command for the matchql CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matchql",
		Short: "Translate match queries into query trees",
		Long: `matchql translates a text value, a target field, and a match
configuration into the query tree a full-text engine would execute.

It exists to inspect what a given configuration does to a given input:
which terms survive analysis, how synonyms group, where fuzzy matching
degrades to exact terms, and how the common-terms optimization splits
clauses.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.SetVersionTemplate("matchql version {{.Version}}\n")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to stderr")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debugMode {
			level = slog.LevelDebug
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))
	}

	cmd.AddCommand(newTranslateCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
