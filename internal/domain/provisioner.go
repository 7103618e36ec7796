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

// DefaultToolchain is installed into every venv by init.
var DefaultToolchain = []string{
	"ruff>=0.6",
	"pytest>=8",
	"pytest-cov>=5",
	"mypy>=1.10",
	"pyright>=1.1.380",
	"pre-commit>=3.7",
	"pip-audit>=2.7",
	"bandit>=1.7",
	"black>=24.8",
	"build>=1.2",
}

// RequirementsFileName is the fallback dependency list for projects
// without a pyproject.toml.
const RequirementsFileName = "requirements.txt"

// DefaultBaseInterpreter returns the interpreter used to create a venv when
// no override is given.
func DefaultBaseInterpreter(goos string) string {
	if goos == "windows" {
		return "python"
	}

	return "python3"
}

// Provisioner creates environments and installs packages into them.
type Provisioner interface {
	// Create makes a new venv at target. A non-zero exit of the venv module
	// is returned as an error wrapping ErrProvision.
	Create(ctx context.Context, root, target m.Path, interpreter string) error

	// EnsureToolchain upgrades the packaging tools and installs
	// DefaultToolchain. It returns the first non-zero pip exit code.
	EnsureToolchain(ctx context.Context, env m.Environment, root m.Path) (int, error)

	// InstallProjectDependencies installs the project itself on a best-effort
	// basis. Failures are reported as warnings and never abort.
	InstallProjectDependencies(ctx context.Context, env m.Environment, root m.Path)
}

type provisioner struct {
	fs     adapter.ProjectFSAdapter
	runner adapter.ToolRunnerAdapter
	ui     controller.UI
	goos   string
}

// NewProvisioner constructs a Provisioner.
func NewProvisioner(fs adapter.ProjectFSAdapter, runner adapter.ToolRunnerAdapter, ui controller.UI) Provisioner {
	return &provisioner{fs: fs, runner: runner, ui: ui, goos: runtime.GOOS}
}

func (p *provisioner) Create(ctx context.Context, root, target m.Path, interpreter string) error {
	if interpreter == "" {
		interpreter = DefaultBaseInterpreter(p.goos)
	}

	if err := p.fs.MkdirAll(m.Path(filepath.Dir(string(target)))); err != nil {
		return fmt.Errorf("%w: %w", ErrProvision, err)
	}

	slog.Debug("creating venv", "target", target, "interpreter", interpreter)

	code, err := p.runner.Run(ctx, interpreter, []string{"-m", string(m.ToolVenv), string(target)}, root)
	if err != nil {
		return fmt.Errorf("%w: start %s: %w", ErrProvision, interpreter, err)
	}

	if code != 0 {
		return fmt.Errorf("%w: %s -m venv exited with %d", ErrProvision, interpreter, code)
	}

	return nil
}

func (p *provisioner) EnsureToolchain(ctx context.Context, env m.Environment, root m.Path) (int, error) {
	steps := [][]string{
		{"install", "-U", "pip", "setuptools", "wheel"},
		append([]string{"install"}, DefaultToolchain...),
	}

	for _, args := range steps {
		code, err := p.runner.RunModule(ctx, env, m.ToolPip, args, root)
		if err != nil {
			return 0, err
		}

		if code != 0 {
			return code, nil
		}
	}

	return 0, nil
}

func (p *provisioner) InstallProjectDependencies(ctx context.Context, env m.Environment, root m.Path) {
	if p.fs.Exists(m.Path(joinRoot(root, adapter.PyprojectFileName))) {
		if p.pip(ctx, env, root, "install", "-e", ".") {
			return
		}

		p.ui.DisplayNotice(ctx, "Editable install failed; trying non-editable install (pip install .)")

		if p.pip(ctx, env, root, "install", ".") {
			return
		}

		p.ui.DisplayWarning(ctx, "project install failed; continuing without installed project dependencies.")

		return
	}

	if p.fs.Exists(m.Path(joinRoot(root, RequirementsFileName))) {
		if !p.pip(ctx, env, root, "install", "-r", RequirementsFileName) {
			p.ui.DisplayWarning(ctx, "installing requirements.txt failed; continuing.")
		}

		return
	}

	p.ui.DisplayWarning(ctx, "No pyproject.toml or requirements.txt found; skipping project dependency install.")
}

func (p *provisioner) pip(ctx context.Context, env m.Environment, root m.Path, args ...string) bool {
	code, err := p.runner.RunModule(ctx, env, m.ToolPip, args, root)
	if err != nil {
		slog.Warn("pip could not be started", "args", args, "error", err)
		return false
	}

	return code == 0
}
