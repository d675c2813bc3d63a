package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/robotslint-go/internal/domain"
)

// directiveInfo describes one directive for suggestion consumers.
type directiveInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// directivesOutput is the top-level JSON structure for directives output.
type directivesOutput struct {
	Directives []directiveInfo `json:"directives"`
}

// NewDirectivesCmd creates the directives command. It lists the known
// directive vocabulary with categories, for shell users and editor
// tooling that wants completion data.
func NewDirectivesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:           "directives",
		Short:         "List the known robots.txt directives",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]directiveInfo, 0, len(domain.Directives()))
			for _, d := range domain.Directives() {
				infos = append(infos, directiveInfo{Name: string(d), Category: string(d.Category())})
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), &directivesOutput{Directives: infos})
			} else {
				for _, info := range infos {
					fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", info.Name, info.Category)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
