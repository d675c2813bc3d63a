package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/robotslint-go/internal/config"
	"github.com/eykd/robotslint-go/internal/lint"
	"github.com/eykd/robotslint-go/internal/robots"
)

// LintRunner defines the interface for running lint operations.
type LintRunner interface {
	Run(ctx context.Context, paths []string) (*lint.RunResult, error)
	WriteReport(ctx context.Context, result *lint.RunResult, path string) error
}

// ServiceFactory wires a LintRunner and its configuration from a
// config file path. The bootstrap supplies the production factory;
// tests supply fakes.
type ServiceFactory func(configPath string) (LintRunner, config.Config, error)

// checkJSONResponse is the JSON output structure for the check command.
type checkJSONResponse struct {
	Files   []lint.FileReport `json:"files"`
	Summary struct {
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
	} `json:"summary"`
}

// formatCheckJSON writes a run result as JSON to w.
func formatCheckJSON(w io.Writer, result *lint.RunResult) {
	out := checkJSONResponse{Files: result.Files}
	if out.Files == nil {
		out.Files = []lint.FileReport{}
	}
	out.Summary.Errors = result.Errors
	out.Summary.Warnings = result.Warnings
	writeJSON(w, out)
}

// formatCheckHuman writes a run result as human-readable text to w.
// With a single input the report stands alone; with several, each
// report is introduced by its path.
func formatCheckHuman(w io.Writer, result *lint.RunResult) {
	for i, fr := range result.Files {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if len(result.Files) > 1 {
			fmt.Fprintf(w, "%s:\n", fr.Path)
		}
		fmt.Fprintln(w, robots.FormatReport(fr.Report))
	}
	if result.Errors > 0 || result.Warnings > 0 {
		fmt.Fprintf(w, "\n%d error(s), %d warning(s)\n", result.Errors, result.Warnings)
	}
}

// NewCheckCmd creates the check command with the given service factory.
func NewCheckCmd(factory ServiceFactory) *cobra.Command {
	var jsonOutput bool
	var configPath string
	var reportFile string

	cmd := &cobra.Command{
		Use:           "check [path...]",
		Short:         "Validate robots.txt documents",
		Long:          "check validates each named robots.txt document (default robots.txt; use - for stdin)\nand reports protocol errors and warnings with line numbers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cfg, err := factory(configPath)
			if err != nil {
				return err
			}

			paths := args
			if len(paths) == 0 {
				paths = []string{"robots.txt"}
			}

			result, err := runner.Run(cmd.Context(), paths)
			if err != nil {
				return err
			}

			if jsonOutput || cfg.JSON || GetJSON() {
				formatCheckJSON(cmd.OutOrStdout(), result)
			} else {
				formatCheckHuman(cmd.OutOrStdout(), result)
			}

			if reportFile != "" {
				if err := runner.WriteReport(cmd.Context(), result, reportFile); err != nil {
					return &ContextError{Op: "writing report", Path: reportFile, Err: err}
				}
			}

			if result.Errors > 0 || result.Warnings > 0 {
				return &FindingsDetectedError{Errors: result.Errors, Warnings: result.Warnings}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the lint config file (default .robotslint.yml)")
	cmd.Flags().StringVar(&reportFile, "report-file", "", "Write the JSON report to this file")

	return cmd
}
