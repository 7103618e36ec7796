package cmd

import (
	"github.com/spf13/cobra"

	"devr.dev/pkg/devr/internal/domain"
)

const initLongDescription = `Initialize devr in this project:
  - find the project venv, or create one at [tool.devr].venv_path
  - install the dev toolchain into the venv
  - install the project itself (best-effort)
  - write .pre-commit-config.yaml if missing and install the git hook`

var initPythonFlag string

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the venv, install the toolchain and set up pre-commit",
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := currentProject()
			if err != nil {
				return err
			}

			return workflow.Init(cmd.Context(), domain.InitArgs{
				ProjectArgs: project,
				Python:      initPythonFlag,
			})
		},
	}

	cmd.Flags().StringVar(&initPythonFlag, pythonFlagName, "", "python interpreter used to create the venv (e.g. python3.12)")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
