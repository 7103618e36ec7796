package domain

import (
	"context"
	"fmt"
	"strconv"

	m "devr.dev/pkg/devr/internal/model"
)

// WholeProject is the target list used when a run is not scoped.
var WholeProject = []string{"."}

const noChangedFiles = "No changed Python files detected; skipping "

// FormatStages returns the lint and format stages for formatter over targets.
// With fix set, the stages rewrite files instead of only checking them.
func FormatStages(formatter m.Formatter, fix bool, targets []string) ([]m.Stage, error) {
	lintArgs := []string{"check"}
	if fix {
		lintArgs = append(lintArgs, "--fix")
	}

	lint := m.Stage{Name: "lint", Tool: m.ToolRuff, Args: append(lintArgs, targets...)}

	switch formatter {
	case m.FormatterRuff:
		formatArgs := []string{"format"}
		if !fix {
			formatArgs = append(formatArgs, "--check")
		}

		return []m.Stage{lint, {Name: "format", Tool: m.ToolRuff, Args: append(formatArgs, targets...)}}, nil
	case m.FormatterBlack:
		formatArgs := []string{"-q"}
		if !fix {
			formatArgs = append(formatArgs, "--check")
		}

		return []m.Stage{lint, {Name: "format", Tool: m.ToolBlack, Args: append(formatArgs, targets...)}}, nil
	default:
		return nil, fmt.Errorf("%w: %s (expected ruff or black)", ErrUnknownFormatter, formatter)
	}
}

// TypeCheckStage returns the type-check stage for checker over targets.
func TypeCheckStage(checker m.TypeChecker, targets []string) (m.Stage, error) {
	switch checker {
	case m.TypeCheckerMypy:
		return m.Stage{Name: "typecheck", Tool: m.ToolMypy, Args: append([]string{}, targets...)}, nil
	case m.TypeCheckerPyright:
		return m.Stage{Name: "typecheck", Tool: m.ToolPyright, Args: append([]string{}, targets...)}, nil
	default:
		return m.Stage{}, fmt.Errorf("%w: %s (expected mypy or pyright)", ErrUnknownTypeChecker, checker)
	}
}

// PytestStage returns the pytest stage enforcing the configured coverage.
func PytestStage(cfg m.Config) m.Stage {
	args := []string{"--cov=."}
	if cfg.CoverageBranch {
		args = append(args, "--cov-branch")
	}

	args = append(args, "--cov-report=term-missing", "--cov-fail-under="+strconv.Itoa(cfg.CoverageMin))

	return m.Stage{Name: "tests", Tool: m.ToolPytest, Args: args}
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	cfg, env, err := w.environment(ctx, args.ProjectArgs)
	if err != nil {
		return err
	}

	targets := WholeProject
	if args.Changed {
		targets = w.scopeTargets(ctx, args)
	}

	formatStages, err := FormatStages(cfg.Formatter, args.Fix, targets)
	if err != nil {
		return w.fail(ctx, ExitConfig, err)
	}

	if len(targets) == 0 {
		w.DisplaySkip(ctx, noChangedFiles+"lint/format.")
	} else {
		for _, stage := range formatStages {
			if err := w.runFatal(ctx, env, args.Root, stage); err != nil {
				return err
			}
		}
	}

	typeStage, err := TypeCheckStage(cfg.TypeChecker, targets)
	if err != nil {
		return w.fail(ctx, ExitConfig, err)
	}

	if len(targets) == 0 {
		w.DisplaySkip(ctx, noChangedFiles+"type check.")
	} else if err := w.runFatal(ctx, env, args.Root, typeStage); err != nil {
		return err
	}

	switch {
	case !cfg.RunTests:
		w.DisplaySkip(ctx, "Skipping tests (run_tests is disabled).")
	case args.Fast:
		w.DisplaySkip(ctx, "Skipping tests (--fast).")
	default:
		if err := w.runFatal(ctx, env, args.Root, PytestStage(cfg)); err != nil {
			return err
		}
	}

	w.DisplaySuccess(ctx, "devr check passed")

	return nil
}

func (w *workflow) Fix(ctx context.Context, args FixArgs) error {
	cfg, env, err := w.environment(ctx, args.ProjectArgs)
	if err != nil {
		return err
	}

	stages, err := FormatStages(cfg.Formatter, true, WholeProject)
	if err != nil {
		return w.fail(ctx, ExitConfig, err)
	}

	for _, stage := range stages {
		if err := w.runFatal(ctx, env, args.Root, stage); err != nil {
			return err
		}
	}

	w.DisplaySuccess(ctx, "devr fix complete")

	return nil
}

// scopeTargets resolves the change set and keeps the existing source files.
func (w *workflow) scopeTargets(ctx context.Context, args CheckArgs) []string {
	var set m.ChangeSet
	if args.Staged {
		set = w.Staged(ctx, args.Root)
	} else {
		set = w.Changed(ctx, args.Root)
	}

	for _, warning := range set.Warnings {
		w.DisplayWarning(ctx, warning)
	}

	if set.Undetermined {
		w.DisplayWarning(ctx, "could not determine changed files (is this a git repository?).")
	}

	return FilterExisting(w.ProjectFSAdapter, args.Root, FilterSourceFiles(set.Paths, args.Exclude))
}
