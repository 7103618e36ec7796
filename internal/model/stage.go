package model

import "strings"

// Tool is the Python module name used to invoke an external program
// (`python -m <tool>`).
type Tool string

const (
	// ToolPip is the package installer.
	ToolPip Tool = "pip"
	// ToolRuff is the linter, and the default formatter.
	ToolRuff Tool = "ruff"
	// ToolBlack is the alternate formatter.
	ToolBlack Tool = "black"
	// ToolMypy is the default type checker.
	ToolMypy Tool = "mypy"
	// ToolPyright is the alternate type checker.
	ToolPyright Tool = "pyright"
	// ToolPytest is the test runner (with pytest-cov).
	ToolPytest Tool = "pytest"
	// ToolPipAudit is the dependency auditor.
	ToolPipAudit Tool = "pip_audit"
	// ToolBandit is the static security analyzer.
	ToolBandit Tool = "bandit"
	// ToolPreCommit installs the git hook.
	ToolPreCommit Tool = "pre_commit"
	// ToolBuild builds release artifacts.
	ToolBuild Tool = "build"
	// ToolVenv creates environments.
	ToolVenv Tool = "venv"
)

// Stage is a single tool invocation within a workflow.
type Stage struct {
	Name string
	Tool Tool
	Args []string
}

// CommandLine renders the stage as the module invocation it performs.
func (s Stage) CommandLine() string {
	parts := append([]string{"python", "-m", string(s.Tool)}, s.Args...)
	return strings.Join(parts, " ")
}

// StageStatus is the outcome of a stage.
type StageStatus int

const (
	// StagePassed indicates the tool exited with status 0.
	StagePassed StageStatus = iota
	// StageFailed indicates a non-zero exit status.
	StageFailed
	// StageSkipped indicates the stage did not run.
	StageSkipped
)

func (s StageStatus) String() string {
	switch s {
	case StagePassed:
		return "passed"
	case StageFailed:
		return "failed"
	case StageSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// StageResult records what happened when a stage ran.
type StageResult struct {
	Stage  Stage
	Code   int
	Status StageStatus
}
