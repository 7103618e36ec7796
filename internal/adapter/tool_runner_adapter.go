package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	m "devr.dev/pkg/devr/internal/model"
)

// ToolRunnerAdapter abstracts running external programs. Every quality tool
// goes through RunModule so the workflows never branch on the concrete tool.
type ToolRunnerAdapter interface {
	// RunModule runs `<env interpreter> -m <tool> args...` from dir and
	// returns the exit code. The error is non-nil only when the process
	// could not be started at all.
	RunModule(ctx context.Context, env m.Environment, tool m.Tool, args []string, dir m.Path) (int, error)

	// Run executes program with args from dir and returns the exit code,
	// with the same error contract as RunModule.
	Run(ctx context.Context, program string, args []string, dir m.Path) (int, error)
}

// LocalToolRunnerAdapter provides a concrete implementation using os/exec.
// Tool output is streamed to the configured writers as it is produced.
type LocalToolRunnerAdapter struct {
	stdout io.Writer
	stderr io.Writer
}

// NewLocalToolRunnerAdapter constructs a LocalToolRunnerAdapter writing tool
// output to stdout and stderr.
func NewLocalToolRunnerAdapter(stdout, stderr io.Writer) *LocalToolRunnerAdapter {
	return &LocalToolRunnerAdapter{
		stdout: stdout,
		stderr: stderr,
	}
}

// RunModule runs a Python module inside the environment.
func (a *LocalToolRunnerAdapter) RunModule(ctx context.Context, env m.Environment, tool m.Tool, args []string, dir m.Path) (int, error) {
	moduleArgs := append([]string{"-m", string(tool)}, args...)
	return a.Run(ctx, string(env.Interpreter), moduleArgs, dir)
}

// Run executes program and waits for it to finish. No timeout is applied.
func (a *LocalToolRunnerAdapter) Run(ctx context.Context, program string, args []string, dir m.Path) (int, error) {
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = string(dir)
	cmd.Stdout = a.stdout
	cmd.Stderr = a.stderr

	slog.Debug("running tool", "program", program, "args", args, "dir", dir)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal; there is no numeric status to forward.
			code = 1
		}

		slog.Debug("tool exited with non-zero status", "program", program, "code", code)

		return code, nil
	}

	slog.Error("failed to start tool", "program", program, "error", err)

	return 0, fmt.Errorf("start %s: %w", program, err)
}
