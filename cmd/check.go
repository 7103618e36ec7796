package cmd

import (
	"github.com/spf13/cobra"

	"devr.dev/pkg/devr/internal/domain"
)

const checkLongDescription = `Run the full preflight gate inside the project venv:
ruff lint, format check, type check, and pytest with a coverage threshold.

With --changed, lint, format and type check only see the Python files that
changed (the staged ones with --staged). Tests always cover the whole project.`

var checkFixFlag bool
var checkStagedFlag bool
var checkChangedFlag bool
var checkFastFlag bool

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run lint, format, type check and tests",
		Long:  checkLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := currentProject()
			if err != nil {
				return err
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				ProjectArgs: project,
				Fix:         checkFixFlag,
				Staged:      checkStagedFlag,
				Changed:     checkChangedFlag,
				Fast:        checkFastFlag,
				Exclude:     excludeGlobs(cmd),
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&checkFixFlag, fixFlagName, false, "apply safe autofixes (ruff check --fix) and formatting")
	cmd.Flags().BoolVar(&checkStagedFlag, stagedFlagName, false, "use staged files (git index) for changed-files mode")
	cmd.Flags().BoolVar(&checkChangedFlag, changedFlagName, false, "run lint, format and type check on changed files only")
	cmd.Flags().BoolVar(&checkFastFlag, fastFlagName, false, "skip slow steps (tests)")
}
