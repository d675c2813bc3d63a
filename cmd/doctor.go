package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrDoctorFailed is returned when any environment check fails.
var ErrDoctorFailed = errors.New("environment checks failed")

// doctorCheck is the outcome of one environment check.
type doctorCheck struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// doctorOutput is the top-level JSON structure for doctor output.
type doctorOutput struct {
	Checks []doctorCheck `json:"checks"`
}

// NewDoctorCmd creates the doctor command. It verifies the lint
// environment: the config file parses and every input is readable.
func NewDoctorCmd(factory ServiceFactory) *cobra.Command {
	var jsonOutput bool
	var configPath string

	cmd := &cobra.Command{
		Use:           "doctor [path...]",
		Short:         "Diagnose configuration and input problems",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var checks []doctorCheck

			runner, _, err := factory(configPath)
			checks = append(checks, doctorCheck{
				Name:   "config",
				OK:     err == nil,
				Detail: errDetail(err),
			})

			if err == nil {
				paths := args
				if len(paths) == 0 {
					paths = []string{"robots.txt"}
				}
				_, runErr := runner.Run(cmd.Context(), paths)
				checks = append(checks, doctorCheck{
					Name:   "inputs",
					OK:     runErr == nil,
					Detail: errDetail(runErr),
				})
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), &doctorOutput{Checks: checks})
			} else {
				for _, c := range checks {
					status := "ok"
					if !c.OK {
						status = "FAIL"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s", c.Name, status)
					if c.Detail != "" {
						fmt.Fprintf(cmd.OutOrStdout(), " (%s)", c.Detail)
					}
					fmt.Fprintln(cmd.OutOrStdout())
				}
			}

			for _, c := range checks {
				if !c.OK {
					return ErrDoctorFailed
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the lint config file (default .robotslint.yml)")

	return cmd
}

// errDetail renders an error for a check detail, empty for nil.
func errDetail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
