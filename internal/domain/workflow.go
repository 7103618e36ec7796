package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"devr.dev/pkg/devr/internal/adapter"
	"devr.dev/pkg/devr/internal/controller"
	m "devr.dev/pkg/devr/internal/model"
)

// ProjectArgs identify the project a workflow operates on.
type ProjectArgs struct {
	Root   m.Path
	Active ActiveEnvironment
}

// InitArgs contains the arguments for bootstrapping a project.
type InitArgs struct {
	ProjectArgs
	// Python overrides the interpreter used to create a new venv.
	Python string
}

// CheckArgs contains the arguments for the quality gate.
type CheckArgs struct {
	ProjectArgs
	Fix     bool
	Staged  bool
	Changed bool
	Fast    bool
	Exclude []string
}

// FixArgs contains the arguments for applying lint fixes and formatting.
type FixArgs struct {
	ProjectArgs
}

// SecurityArgs contains the arguments for the security workflow.
type SecurityArgs struct {
	ProjectArgs
	FailFast bool
}

// ReleaseArgs contains the arguments for the release preflight.
type ReleaseArgs struct {
	ProjectArgs
}

// Workflow sequences tool runs for each devr command. Every method returns
// nil on success or an error carrying the exit status (see ExitCode).
type Workflow interface {
	Init(ctx context.Context, args InitArgs) error
	Check(ctx context.Context, args CheckArgs) error
	Fix(ctx context.Context, args FixArgs) error
	Security(ctx context.Context, args SecurityArgs) error
	Release(ctx context.Context, args ReleaseArgs) error
}

type workflow struct {
	adapter.ProjectFSAdapter
	adapter.PyprojectAdapter
	adapter.ToolRunnerAdapter
	controller.UI
	Locator
	Provisioner
	ChangeSetResolver
	goos string
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.ProjectFSAdapter,
	pyprojectAdapter adapter.PyprojectAdapter,
	toolRunner adapter.ToolRunnerAdapter,
	gitAdapter adapter.GitAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		ProjectFSAdapter:  fsAdapter,
		PyprojectAdapter:  pyprojectAdapter,
		ToolRunnerAdapter: toolRunner,
		UI:                ui,
		Locator:           NewLocator(fsAdapter),
		Provisioner:       NewProvisioner(fsAdapter, toolRunner, ui),
		ChangeSetResolver: NewChangeSetResolver(gitAdapter),
		goos:              runtime.GOOS,
	}
}

func (w *workflow) Init(ctx context.Context, args InitArgs) error {
	cfg := LoadConfig(w.PyprojectAdapter, args.Root)

	env, found := w.Locate(args.Root, cfg.VenvPath, args.Active)
	if found {
		w.DisplayEnvironment(ctx, env.Dir, false)
	} else {
		target, err := w.venvTarget(args.Root, cfg.VenvPath)
		if err != nil {
			return w.fail(ctx, ExitConfig, err)
		}

		w.DisplayEnvironment(ctx, target, true)

		if err := w.Create(ctx, args.Root, target, args.Python); err != nil {
			return w.fail(ctx, ExitConfig, err)
		}

		env = m.Environment{Dir: target, Interpreter: w.InterpreterPath(target)}
	}

	if !w.Exists(env.Interpreter) {
		return w.fail(ctx, ExitConfig, fmt.Errorf("%w: interpreter missing at %s", ErrProvision, env.Interpreter))
	}

	w.DisplayNotice(ctx, "Installing dev toolchain into venv...")

	code, err := w.EnsureToolchain(ctx, env, args.Root)
	if err != nil {
		return w.fail(ctx, ExitConfig, fmt.Errorf("install toolchain: %w", err))
	}

	if code != 0 {
		return w.fail(ctx, code, fmt.Errorf("install toolchain: %w", ErrStageFailed))
	}

	w.DisplayNotice(ctx, "Installing project into venv (best-effort)...")
	w.InstallProjectDependencies(ctx, env, args.Root)

	w.DisplayNotice(ctx, "Setting up pre-commit...")

	if err := WritePreCommitConfig(ctx, w.ProjectFSAdapter, w.UI, args.Root); err != nil {
		return w.fail(ctx, ExitFailure, err)
	}

	if err := w.runFatal(ctx, env, args.Root, m.Stage{Name: "pre-commit", Tool: m.ToolPreCommit, Args: []string{"install"}}); err != nil {
		return err
	}

	w.DisplayNotice(ctx, "Done. Try: devr check")

	return nil
}

// environment loads the project config and locates its venv. A missing venv
// is reported to the user and returned as an ExitConfig error.
func (w *workflow) environment(ctx context.Context, args ProjectArgs) (m.Config, m.Environment, error) {
	cfg := LoadConfig(w.PyprojectAdapter, args.Root)

	env, found := w.Locate(args.Root, cfg.VenvPath, args.Active)
	if !found {
		w.DisplayError(ctx, "No venv found. Run: devr init")
		return cfg, env, exitWith(ExitConfig, ErrNoEnvironment)
	}

	w.DisplayEnvironment(ctx, env.Dir, false)

	return cfg, env, nil
}

func (w *workflow) venvTarget(root m.Path, venvPath string) (m.Path, error) {
	target := m.Path(venvPath)
	if !filepath.IsAbs(venvPath) {
		target = w.JoinPath(string(root), venvPath)
	}

	abs, err := w.AbsPath(target)
	if err != nil {
		return "", fmt.Errorf("resolve venv path %s: %w", venvPath, err)
	}

	return abs, nil
}

// runStage announces and runs one stage. The error is non-nil only when the
// tool could not be started, which is reported as a setup error.
func (w *workflow) runStage(ctx context.Context, env m.Environment, root m.Path, stage m.Stage) (m.StageResult, error) {
	w.DisplayStageStart(ctx, stage)

	code, err := w.RunModule(ctx, env, stage.Tool, stage.Args, root)
	if err != nil {
		slog.Error("tool could not be started", "stage", stage.Name, "error", err)
		return m.StageResult{Stage: stage, Status: m.StageFailed}, w.fail(ctx, ExitConfig, fmt.Errorf("start %s: %w", stage.Tool, err))
	}

	result := m.StageResult{Stage: stage, Code: code, Status: m.StagePassed}
	if code != 0 {
		result.Status = m.StageFailed
		slog.Debug("stage failed", "stage", stage.Name, "code", code)
	}

	return result, nil
}

// runFatal runs a stage and turns a non-zero exit into an error carrying
// that exit status.
func (w *workflow) runFatal(ctx context.Context, env m.Environment, root m.Path, stage m.Stage) error {
	result, err := w.runStage(ctx, env, root, stage)
	if err != nil {
		return err
	}

	if result.Status == m.StageFailed {
		return exitWith(result.Code, fmt.Errorf("%s: %w", stage.Name, ErrStageFailed))
	}

	return nil
}

func (w *workflow) fail(ctx context.Context, code int, err error) error {
	w.DisplayError(ctx, "Error: "+err.Error())
	return exitWith(code, err)
}
