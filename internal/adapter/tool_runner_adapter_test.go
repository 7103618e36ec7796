package adapter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "devr.dev/pkg/devr/internal/model"
)

// These tests exercise LocalToolRunnerAdapter against real processes: a
// shell for exit codes, and a fake interpreter script standing in for a
// venv python.

func skipWithoutShell(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func writeFakeInterpreter(t *testing.T, dir string, code int) m.Path {
	t.Helper()

	path := filepath.Join(dir, "python")
	script := "#!/bin/sh\necho \"$@\" > args.txt\nexit " + strconv.Itoa(code) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return m.Path(path)
}

func TestLocalToolRunnerAdapter_Run_Success(t *testing.T) {
	skipWithoutShell(t)

	var stdout bytes.Buffer

	adapter := NewLocalToolRunnerAdapter(&stdout, &bytes.Buffer{})

	code, err := adapter.Run(context.Background(), "sh", []string{"-c", "echo hello"}, m.Path(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestLocalToolRunnerAdapter_Run_ForwardsExitCode(t *testing.T) {
	skipWithoutShell(t)

	var stderr bytes.Buffer

	adapter := NewLocalToolRunnerAdapter(&bytes.Buffer{}, &stderr)

	code, err := adapter.Run(context.Background(), "sh", []string{"-c", "echo oops >&2; exit 7"}, m.Path(t.TempDir()))
	require.NoError(t, err, "a tool's own failure is not an adapter error")
	assert.Equal(t, 7, code)
	assert.Contains(t, stderr.String(), "oops")
}

func TestLocalToolRunnerAdapter_Run_MissingProgram(t *testing.T) {
	adapter := NewLocalToolRunnerAdapter(&bytes.Buffer{}, &bytes.Buffer{})

	_, err := adapter.Run(context.Background(), "devr-no-such-program-xyz", nil, m.Path(t.TempDir()))
	require.Error(t, err)
}

func TestLocalToolRunnerAdapter_RunModule(t *testing.T) {
	skipWithoutShell(t)

	dir := t.TempDir()
	env := m.Environment{Dir: m.Path(dir), Interpreter: writeFakeInterpreter(t, dir, 4)}

	adapter := NewLocalToolRunnerAdapter(&bytes.Buffer{}, &bytes.Buffer{})

	code, err := adapter.RunModule(context.Background(), env, m.ToolRuff, []string{"check", "a.py"}, m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, 4, code)

	args, err := os.ReadFile(filepath.Join(dir, "args.txt"))
	require.NoError(t, err)
	assert.Equal(t, "-m ruff check a.py\n", string(args))
}
