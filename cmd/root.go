// Package cmd provides the root command and CLI setup for devr.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"devr.dev/pkg/devr/internal/adapter"
	"devr.dev/pkg/devr/internal/controller"
	"devr.dev/pkg/devr/internal/domain"
	m "devr.dev/pkg/devr/internal/model"
)

var fsAdapter adapter.ProjectFSAdapter
var pyprojectAdapter adapter.PyprojectAdapter
var toolRunner adapter.ToolRunnerAdapter
var gitAdapter adapter.GitAdapter
var workflow domain.Workflow
var ui controller.UI

// logFileFlag overrides the log file location.
var logFileFlag string

// verboseFlag mirrors debug logs to stderr.
var verboseFlag bool

// excludePatterns is a root-level flag that drops matching files from scoped runs.
var excludePatterns []string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalProjectFSAdapter()
	pyprojectAdapter = adapter.NewLocalPyprojectAdapter()
	toolRunner = adapter.NewLocalToolRunnerAdapter(os.Stdout, os.Stderr)
	gitAdapter = adapter.NewLocalGitAdapter(gitTimeout())
	workflow = domain.NewWorkflow(
		fsAdapter,
		pyprojectAdapter,
		toolRunner,
		gitAdapter,
		ui,
	)
	verboseWriter = os.Stderr
}

const rootLongDescription = `devr runs the dev preflight checks of a Python project inside the
project's virtual environment: lint, format check, type check, tests with a
coverage threshold, and security scans.

Project settings are read from [tool.devr] in pyproject.toml.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "devr",
		Short:         "Run dev preflight checks inside your project venv",
		Long:          rootLongDescription,
		Version:       buildVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.SetVersionTemplate("devr {{.Version}}\n")

	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "also print debug logs to stderr")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	// Not bound to viper: viper reads bound array flags back as CSV, which
	// would split brace globs such as {a,b}/*.py.
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude changed files matching a glob (can be repeated)")
}

// excludeGlobs returns the --exclude patterns when given on the command
// line, and check.exclude from config or environment otherwise.
func excludeGlobs(cmd *cobra.Command) []string {
	if flag := cmd.Flags().Lookup(excludeFlagName); flag != nil && flag.Changed {
		return append([]string(nil), excludePatterns...)
	}

	return viper.GetStringSlice(excludeConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		var exitErr *domain.ExitError
		if !errors.As(err, &exitErr) {
			rootCmd.PrintErrln("Error:", err)
		}

		os.Exit(domain.ExitCode(err))
	}
}

// currentProject locates the project around the working directory and reads
// the active environment from VIRTUAL_ENV.
func currentProject() (domain.ProjectArgs, error) {
	wd, err := os.Getwd()
	if err != nil {
		return domain.ProjectArgs{}, fmt.Errorf("get working directory: %w", err)
	}

	return domain.ProjectArgs{
		Root: fsAdapter.FindProjectRoot(m.Path(wd)),
		Active: domain.ActiveEnvironment{
			Prefix: m.Path(os.Getenv("VIRTUAL_ENV")),
		},
	}, nil
}

// buildVersion returns the module version embedded at build time.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "0.0.0"
	}

	return info.Main.Version
}
