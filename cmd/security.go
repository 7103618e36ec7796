package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devr.dev/pkg/devr/internal/domain"
)

var securityFailFastFlag bool

// securityCmd represents the security command.
var securityCmd = newSecurityCmd()

func newSecurityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "security",
		Short: "Run dependency audit and static security scan",
		Long: `Run pip-audit and bandit inside the project venv. Every scan runs and
all failures are reported together unless --fail-fast is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, err := currentProject()
			if err != nil {
				return err
			}

			return workflow.Security(cmd.Context(), domain.SecurityArgs{
				ProjectArgs: project,
				FailFast:    viper.GetBool(failFastConfigKey),
			})
		},
	}

	cmd.Flags().BoolVar(&securityFailFastFlag, failFastFlagName, false, "stop after the first failing scan")
	bindFlagToConfig(cmd.Flags().Lookup(failFastFlagName), failFastConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(securityCmd)
}
