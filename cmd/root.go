// Package cmd contains the CLI commands for the rbl application.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

// verbose holds the global --verbose flag state.
var verbose bool

// jsonAll holds the global --json flag state.
var jsonAll bool

func init() {
	rootCmd = NewRootCmd()
	rootCmd.AddCommand(NewCheckCmd(defaultFactory))
	rootCmd.AddCommand(NewDirectivesCmd())
	rootCmd.AddCommand(NewDoctorCmd(defaultFactory))
}

// GetVerbose returns the current verbose flag state.
func GetVerbose() bool {
	return verbose
}

// GetJSON returns the current global JSON output flag state.
func GetJSON() bool {
	return jsonAll
}

// NewRootCmd creates a new root command instance.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rbl",
		Short: "Validate robots.txt files against the robots exclusion protocol",
		Long: "rbl is a CLI tool that validates robots.txt documents: directive grammar,\n" +
			"grouping order, path and sitemap URL shape, size and encoding limits.",
	}

	// Add persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&jsonAll, "json", false, "Output results as JSON")

	return cmd
}

// ExecuteContext runs the root command with the given context.
// This enables graceful shutdown via context cancellation (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
