package cmd

import (
	"github.com/spf13/cobra"

	"devr.dev/pkg/devr/internal/domain"
)

const releaseLongDescription = `Check that the project is ready to be tagged:
  - [project].version has a section in CHANGELOG.md and Unreleased is empty
  - python -m build produces a wheel and an sdist
  - each artifact installs into a fresh venv and its scripts answer --version`

// releaseCmd represents the release command.
var releaseCmd = newReleaseCmd()

func newReleaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "release",
		Short: "Run release preflight checks",
		Long:  releaseLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := currentProject()
			if err != nil {
				return err
			}

			return workflow.Release(cmd.Context(), domain.ReleaseArgs{ProjectArgs: project})
		},
	}
}

func init() {
	rootCmd.AddCommand(releaseCmd)
}
