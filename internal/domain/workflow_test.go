package domain

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"devr.dev/pkg/devr/internal/adapter"
	adaptermocks "devr.dev/pkg/devr/internal/adapter/mocks"
	"devr.dev/pkg/devr/internal/controller"
	m "devr.dev/pkg/devr/internal/model"
)

func newTestWorkflow(t *testing.T, runner adapter.ToolRunnerAdapter, git adapter.GitAdapter) (Workflow, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	wf := NewWorkflow(
		adapter.NewLocalProjectFSAdapter(),
		adapter.NewLocalPyprojectAdapter(),
		runner,
		git,
		controller.NewSimpleUI(cmd, false),
	)

	return wf, out
}

// newProject creates a project root holding a fake .venv and returns it.
func newProject(t *testing.T, pyproject string) string {
	t.Helper()

	root := t.TempDir()
	makeVenv(t, filepath.Join(root, ".venv"), false)

	if pyproject != "" {
		writeProjectFile(t, root, "pyproject.toml", pyproject)
	}

	return root
}

func expectModule(runner *adaptermocks.MockToolRunnerAdapter, tool m.Tool, args []string, code int) *mock.Call {
	return runner.EXPECT().RunModule(mock.Anything, mock.Anything, tool, args, mock.Anything).Return(code, nil).Once()
}

func projectArgs(root string) ProjectArgs {
	return ProjectArgs{Root: m.Path(root)}
}

func TestWorkflow_Check_NoEnvironment(t *testing.T) {
	runner := adaptermocks.NewMockToolRunnerAdapter(t)
	wf, out := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

	err := wf.Check(context.Background(), CheckArgs{ProjectArgs: projectArgs(t.TempDir())})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEnvironment)
	assert.Equal(t, ExitConfig, ExitCode(err))
	assert.Contains(t, out.String(), "No venv found. Run: devr init")
}

func TestWorkflow_Check_FullProject(t *testing.T) {
	root := newProject(t, "[tool.devr]\ncoverage_min = 90\n")
	runner := adaptermocks.NewMockToolRunnerAdapter(t)

	mock.InOrder(
		expectModule(runner, m.ToolRuff, []string{"check", "."}, 0),
		expectModule(runner, m.ToolRuff, []string{"format", "--check", "."}, 0),
		expectModule(runner, m.ToolMypy, []string{"."}, 0),
		expectModule(runner, m.ToolPytest, []string{"--cov=.", "--cov-branch", "--cov-report=term-missing", "--cov-fail-under=90"}, 0),
	)

	wf, out := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

	err := wf.Check(context.Background(), CheckArgs{ProjectArgs: projectArgs(root)})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Using venv: "+filepath.Join(root, ".venv"))
	assert.Contains(t, out.String(), "==> lint: python -m ruff check .")
	assert.Contains(t, out.String(), "✅ devr check passed")
}

func TestWorkflow_Check_StopsAtFirstFailure(t *testing.T) {
	root := newProject(t, "")
	runner := adaptermocks.NewMockToolRunnerAdapter(t)

	mock.InOrder(
		expectModule(runner, m.ToolRuff, []string{"check", "."}, 0),
		expectModule(runner, m.ToolRuff, []string{"format", "--check", "."}, 3),
	)

	wf, out := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

	err := wf.Check(context.Background(), CheckArgs{ProjectArgs: projectArgs(root)})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStageFailed)
	assert.Equal(t, 3, ExitCode(err))
	assert.NotContains(t, out.String(), "devr check passed")
}

func TestWorkflow_Check_BlackWithFix(t *testing.T) {
	root := newProject(t, "[tool.devr]\nformatter = \" Black \"\ntypechecker = \"pyright\"\nrun_tests = false\n")
	runner := adaptermocks.NewMockToolRunnerAdapter(t)

	mock.InOrder(
		expectModule(runner, m.ToolRuff, []string{"check", "--fix", "."}, 0),
		expectModule(runner, m.ToolBlack, []string{"-q", "."}, 0),
		expectModule(runner, m.ToolPyright, []string{"."}, 0),
	)

	wf, out := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

	err := wf.Check(context.Background(), CheckArgs{ProjectArgs: projectArgs(root), Fix: true})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Skipping tests (run_tests is disabled).")
}

func TestWorkflow_Check_ToolCannotStart(t *testing.T) {
	root := newProject(t, "")
	runner := adaptermocks.NewMockToolRunnerAdapter(t)
	runner.EXPECT().RunModule(mock.Anything, mock.Anything, m.ToolRuff, mock.Anything, mock.Anything).
		Return(0, errors.New("exec format error")).Once()

	wf, _ := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

	err := wf.Check(context.Background(), CheckArgs{ProjectArgs: projectArgs(root)})

	assert.Equal(t, ExitConfig, ExitCode(err))
}

func TestWorkflow_Check_ScopedToChangedFiles(t *testing.T) {
	root := newGitRepo(t)
	makeVenv(t, filepath.Join(root, ".venv"), false)
	writeProjectFile(t, root, ".gitignore", ".venv/\n")

	writeProjectFile(t, root, "tracked.py", "value = 1\n")
	writeProjectFile(t, root, "notes.md", "initial\n")
	runGit(t, root, "add", ".gitignore", "tracked.py", "notes.md")
	runGit(t, root, "commit", "-m", "initial")

	writeProjectFile(t, root, "tracked.py", "value = 2\n")
	writeProjectFile(t, root, "new_module.pyi", "def run() -> None: ...\n")
	writeProjectFile(t, root, "todo.txt", "todo\n")

	runner := adaptermocks.NewMockToolRunnerAdapter(t)

	mock.InOrder(
		expectModule(runner, m.ToolRuff, []string{"check", "tracked.py", "new_module.pyi"}, 0),
		expectModule(runner, m.ToolRuff, []string{"format", "--check", "tracked.py", "new_module.pyi"}, 0),
		expectModule(runner, m.ToolMypy, []string{"tracked.py", "new_module.pyi"}, 0),
	)

	wf, out := newTestWorkflow(t, runner, adapter.NewLocalGitAdapter(0))

	err := wf.Check(context.Background(), CheckArgs{ProjectArgs: projectArgs(root), Changed: true, Fast: true})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Skipping tests (--fast).")
}

func TestWorkflow_Check_ScopedWithNothingChanged(t *testing.T) {
	root := newProject(t, "[tool.devr]\ncoverage_branch = \"no\"\n")
	git := adaptermocks.NewMockGitAdapter(t)
	git.EXPECT().Query(mock.Anything, m.Path(root), "diff", "--relative", "--name-only", "--cached").
		Return([]string{"README.md", "deleted.py"}, nil).Once()

	runner := adaptermocks.NewMockToolRunnerAdapter(t)
	expectModule(runner, m.ToolPytest, []string{"--cov=.", "--cov-report=term-missing", "--cov-fail-under=85"}, 0)

	wf, out := newTestWorkflow(t, runner, git)

	err := wf.Check(context.Background(), CheckArgs{ProjectArgs: projectArgs(root), Staged: true, Changed: true})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "No changed Python files detected; skipping lint/format.")
	assert.Contains(t, out.String(), "No changed Python files detected; skipping type check.")
	assert.Contains(t, out.String(), "✅ devr check passed")
}

func TestWorkflow_Check_ScopedOutsideRepository(t *testing.T) {
	root := newProject(t, "")
	git := adaptermocks.NewMockGitAdapter(t)
	git.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errQueryFailed)
	git.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errQueryFailed)
	git.EXPECT().IsRepository(mock.Anything, m.Path(root)).Return(false).Once()

	runner := adaptermocks.NewMockToolRunnerAdapter(t)

	wf, out := newTestWorkflow(t, runner, git)

	err := wf.Check(context.Background(), CheckArgs{ProjectArgs: projectArgs(root), Changed: true, Fast: true})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "could not determine changed files")
	runner.AssertNotCalled(t, "RunModule", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Fix(t *testing.T) {
	root := newProject(t, "")
	runner := adaptermocks.NewMockToolRunnerAdapter(t)

	mock.InOrder(
		expectModule(runner, m.ToolRuff, []string{"check", "--fix", "."}, 0),
		expectModule(runner, m.ToolRuff, []string{"format", "."}, 0),
	)

	wf, out := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

	require.NoError(t, wf.Fix(context.Background(), FixArgs{ProjectArgs: projectArgs(root)}))
	assert.Contains(t, out.String(), "✅ devr fix complete")
}

func TestWorkflow_Fix_PropagatesExitCode(t *testing.T) {
	root := newProject(t, "")
	runner := adaptermocks.NewMockToolRunnerAdapter(t)
	expectModule(runner, m.ToolRuff, []string{"check", "--fix", "."}, 4)

	wf, _ := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

	err := wf.Fix(context.Background(), FixArgs{ProjectArgs: projectArgs(root)})
	assert.Equal(t, 4, ExitCode(err))
}

func TestWorkflow_Security(t *testing.T) {
	t.Run("runs every stage and reports all failures", func(t *testing.T) {
		root := newProject(t, "")
		runner := adaptermocks.NewMockToolRunnerAdapter(t)

		mock.InOrder(
			expectModule(runner, m.ToolPipAudit, []string(nil), 1),
			expectModule(runner, m.ToolBandit, []string{"-r", ".", "-x", ".venv"}, 1),
		)

		wf, out := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

		err := wf.Security(context.Background(), SecurityArgs{ProjectArgs: projectArgs(root)})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSecurityFailed)
		assert.Equal(t, ExitFailure, ExitCode(err))
		assert.Contains(t, out.String(), "Security checks failed: pip-audit, bandit")
		assert.Contains(t, out.String(), "FAILED 2")
	})

	t.Run("fail fast skips remaining stages", func(t *testing.T) {
		root := newProject(t, "")
		runner := adaptermocks.NewMockToolRunnerAdapter(t)
		expectModule(runner, m.ToolPipAudit, []string(nil), 5)

		wf, out := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

		err := wf.Security(context.Background(), SecurityArgs{ProjectArgs: projectArgs(root), FailFast: true})

		assert.Equal(t, ExitFailure, ExitCode(err))
		assert.Contains(t, out.String(), "skipped")
		assert.Contains(t, out.String(), "Security checks failed: pip-audit\n")
		runner.AssertNotCalled(t, "RunModule", mock.Anything, mock.Anything, m.ToolBandit, mock.Anything, mock.Anything)
	})

	t.Run("passes with configured venv excluded", func(t *testing.T) {
		root := newProject(t, "[tool.devr]\nvenv_path = \"env-dev\"\n")
		makeVenv(t, filepath.Join(root, "env-dev"), false)

		runner := adaptermocks.NewMockToolRunnerAdapter(t)

		mock.InOrder(
			expectModule(runner, m.ToolPipAudit, []string(nil), 0),
			expectModule(runner, m.ToolBandit, []string{"-r", ".", "-x", "env-dev"}, 0),
		)

		wf, out := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

		require.NoError(t, wf.Security(context.Background(), SecurityArgs{ProjectArgs: projectArgs(root)}))
		assert.Contains(t, out.String(), "Using venv: "+filepath.Join(root, "env-dev"))
		assert.Contains(t, out.String(), "✅ devr security passed")
	})
}

func TestWorkflow_Init_ExistingEnvironment(t *testing.T) {
	root := newProject(t, "[project]\nname = 'sample'\n")
	runner := adaptermocks.NewMockToolRunnerAdapter(t)

	mock.InOrder(
		expectModule(runner, m.ToolPip, []string{"install", "-U", "pip", "setuptools", "wheel"}, 0),
		expectModule(runner, m.ToolPip, append([]string{"install"}, DefaultToolchain...), 0),
		expectModule(runner, m.ToolPip, []string{"install", "-e", "."}, 0),
		expectModule(runner, m.ToolPreCommit, []string{"install"}, 0),
	)

	wf, out := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

	require.NoError(t, wf.Init(context.Background(), InitArgs{ProjectArgs: projectArgs(root)}))

	written, err := os.ReadFile(filepath.Join(root, PreCommitFileName))
	require.NoError(t, err)
	assert.Equal(t, PreCommitConfig, string(written))
	assert.Contains(t, out.String(), "Using venv: ")
	assert.Contains(t, out.String(), "Done. Try: devr check")
}

func TestWorkflow_Init_CreatesEnvironment(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, ".venv")

	runner := adaptermocks.NewMockToolRunnerAdapter(t)
	runner.EXPECT().Run(mock.Anything, "python3.12", []string{"-m", "venv", target}, m.Path(root)).
		RunAndReturn(func(_ context.Context, _ string, _ []string, _ m.Path) (int, error) {
			makeVenv(t, target, false)
			return 0, nil
		}).Once()
	runner.EXPECT().RunModule(mock.Anything, m.Environment{Dir: m.Path(target), Interpreter: m.Path(filepath.Join(target, "bin", "python"))}, m.ToolPip, mock.Anything, m.Path(root)).
		Return(0, nil).Twice()
	expectModule(runner, m.ToolPreCommit, []string{"install"}, 0)

	wf, out := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

	require.NoError(t, wf.Init(context.Background(), InitArgs{ProjectArgs: projectArgs(root), Python: "python3.12"}))
	assert.Contains(t, out.String(), "Creating venv at: "+target)
	assert.Contains(t, out.String(), "Warning: No pyproject.toml or requirements.txt found")
}

func TestWorkflow_Init_Failures(t *testing.T) {
	t.Run("venv creation fails", func(t *testing.T) {
		root := t.TempDir()
		runner := adaptermocks.NewMockToolRunnerAdapter(t)
		runner.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(1, nil).Once()

		wf, _ := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

		err := wf.Init(context.Background(), InitArgs{ProjectArgs: projectArgs(root)})
		assert.ErrorIs(t, err, ErrProvision)
		assert.Equal(t, ExitConfig, ExitCode(err))
	})

	t.Run("interpreter missing after creation", func(t *testing.T) {
		root := t.TempDir()
		runner := adaptermocks.NewMockToolRunnerAdapter(t)
		runner.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0, nil).Once()

		wf, _ := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

		err := wf.Init(context.Background(), InitArgs{ProjectArgs: projectArgs(root)})
		assert.Equal(t, ExitConfig, ExitCode(err))
	})

	t.Run("toolchain install fails", func(t *testing.T) {
		root := newProject(t, "")
		runner := adaptermocks.NewMockToolRunnerAdapter(t)
		expectModule(runner, m.ToolPip, []string{"install", "-U", "pip", "setuptools", "wheel"}, 0)
		expectModule(runner, m.ToolPip, append([]string{"install"}, DefaultToolchain...), 7)

		wf, _ := newTestWorkflow(t, runner, adaptermocks.NewMockGitAdapter(t))

		err := wf.Init(context.Background(), InitArgs{ProjectArgs: projectArgs(root)})
		assert.Equal(t, 7, ExitCode(err))
		assert.NoFileExists(t, filepath.Join(root, PreCommitFileName))
	})
}

func TestFormatStages(t *testing.T) {
	targets := []string{"a.py"}

	tests := []struct {
		name      string
		formatter m.Formatter
		fix       bool
		want      []m.Stage
	}{
		{
			name:      "ruff check",
			formatter: m.FormatterRuff,
			want: []m.Stage{
				{Name: "lint", Tool: m.ToolRuff, Args: []string{"check", "a.py"}},
				{Name: "format", Tool: m.ToolRuff, Args: []string{"format", "--check", "a.py"}},
			},
		},
		{
			name:      "ruff fix",
			formatter: m.FormatterRuff,
			fix:       true,
			want: []m.Stage{
				{Name: "lint", Tool: m.ToolRuff, Args: []string{"check", "--fix", "a.py"}},
				{Name: "format", Tool: m.ToolRuff, Args: []string{"format", "a.py"}},
			},
		},
		{
			name:      "black check",
			formatter: m.FormatterBlack,
			want: []m.Stage{
				{Name: "lint", Tool: m.ToolRuff, Args: []string{"check", "a.py"}},
				{Name: "format", Tool: m.ToolBlack, Args: []string{"-q", "--check", "a.py"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatStages(tt.formatter, tt.fix, targets)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FormatStages(m.Formatter("yapf"), false, targets)
	require.ErrorIs(t, err, ErrUnknownFormatter)
}

func TestTypeCheckStage(t *testing.T) {
	stage, err := TypeCheckStage(m.TypeCheckerPyright, []string{"a.py", "b.pyi"})
	require.NoError(t, err)
	assert.Equal(t, m.Stage{Name: "typecheck", Tool: m.ToolPyright, Args: []string{"a.py", "b.pyi"}}, stage)

	_, err = TypeCheckStage(m.TypeChecker("pytype"), nil)
	require.ErrorIs(t, err, ErrUnknownTypeChecker)
}

func TestPytestStage(t *testing.T) {
	cfg := m.DefaultConfig()
	cfg.CoverageMin = 0
	cfg.CoverageBranch = false

	assert.Equal(t, []string{"--cov=.", "--cov-report=term-missing", "--cov-fail-under=0"}, PytestStage(cfg).Args)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
	assert.Equal(t, 9, ExitCode(exitWith(9, ErrStageFailed)))
}
