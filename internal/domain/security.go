package domain

import (
	"context"
	"fmt"
	"strings"

	m "devr.dev/pkg/devr/internal/model"
)

// SecurityStages returns the dependency audit and the static scan. The scan
// skips the venv directory.
func SecurityStages(venvPath string) []m.Stage {
	return []m.Stage{
		{Name: "pip-audit", Tool: m.ToolPipAudit},
		{Name: "bandit", Tool: m.ToolBandit, Args: []string{"-r", ".", "-x", venvPath}},
	}
}

func (w *workflow) Security(ctx context.Context, args SecurityArgs) error {
	cfg, env, err := w.environment(ctx, args.ProjectArgs)
	if err != nil {
		return err
	}

	stages := SecurityStages(cfg.VenvPath)
	results := make([]m.StageResult, 0, len(stages))

	var failed []string

	for i, stage := range stages {
		if len(failed) > 0 && args.FailFast {
			for _, skipped := range stages[i:] {
				results = append(results, m.StageResult{Stage: skipped, Status: m.StageSkipped})
			}

			w.DisplaySkip(ctx, "Stopping after first failure (--fail-fast).")

			break
		}

		result, err := w.runStage(ctx, env, args.Root, stage)
		if err != nil {
			return err
		}

		results = append(results, result)

		if result.Status == m.StageFailed {
			failed = append(failed, stage.Name)
		}
	}

	w.DisplaySummary(ctx, results)

	if len(failed) > 0 {
		names := strings.Join(failed, ", ")
		w.DisplayError(ctx, "Security checks failed: "+names)

		return exitWith(ExitFailure, fmt.Errorf("%w: %s", ErrSecurityFailed, names))
	}

	w.DisplaySuccess(ctx, "devr security passed")

	return nil
}
