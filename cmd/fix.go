package cmd

import (
	"github.com/spf13/cobra"

	"devr.dev/pkg/devr/internal/domain"
)

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fix",
		Short: "Apply lint fixes and formatting",
		Long:  "Run ruff check --fix and the configured formatter over the whole project.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := currentProject()
			if err != nil {
				return err
			}

			return workflow.Fix(cmd.Context(), domain.FixArgs{ProjectArgs: project})
		},
	}
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
