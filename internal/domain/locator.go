package domain

import (
	"log/slog"
	"path/filepath"
	"runtime"

	"devr.dev/pkg/devr/internal/adapter"
	m "devr.dev/pkg/devr/internal/model"
)

// ConventionalEnvNames are the venv directory names tried under the project
// root, in order, when neither the configured nor the active venv is usable.
var ConventionalEnvNames = []string{".venv", "venv", "env"}

// ActiveEnvironment holds the two ambient prefixes that tell whether devr
// was started from inside an activated environment.
type ActiveEnvironment struct {
	Prefix     m.Path
	BasePrefix m.Path
}

// IsIsolated reports whether the effective prefix differs from the base
// prefix, which is only the case inside an isolated environment.
func IsIsolated(prefix, basePrefix m.Path) bool {
	return prefix != basePrefix
}

// Locator finds an existing, usable venv for a project.
type Locator interface {
	// Locate returns the first usable environment: the configured path,
	// then the active environment, then ConventionalEnvNames.
	Locate(root m.Path, configured string, active ActiveEnvironment) (m.Environment, bool)

	// InterpreterPath returns the expected python executable inside dir.
	InterpreterPath(dir m.Path) m.Path
}

type locator struct {
	fs   adapter.ProjectFSAdapter
	goos string
}

// NewLocator constructs a Locator for the running operating system.
func NewLocator(fs adapter.ProjectFSAdapter) Locator {
	return &locator{fs: fs, goos: runtime.GOOS}
}

func (l *locator) Locate(root m.Path, configured string, active ActiveEnvironment) (m.Environment, bool) {
	if configured != "" {
		if env, ok := l.usable(l.resolve(root, configured)); ok {
			return env, true
		}
	}

	if IsIsolated(active.Prefix, active.BasePrefix) && active.Prefix != "" {
		if env, ok := l.usable(active.Prefix); ok {
			return env, true
		}
	}

	for _, name := range ConventionalEnvNames {
		if env, ok := l.usable(l.resolve(root, name)); ok {
			return env, true
		}
	}

	slog.Debug("no venv located", "root", root, "configured", configured)

	return m.Environment{}, false
}

func (l *locator) InterpreterPath(dir m.Path) m.Path {
	windows := l.fs.JoinPath(string(dir), "Scripts", "python.exe")
	posix := l.fs.JoinPath(string(dir), "bin", "python")

	preferred, alternate := posix, windows
	if l.goos == "windows" {
		preferred, alternate = windows, posix
	}

	if l.fs.Exists(preferred) || !l.fs.Exists(alternate) {
		return preferred
	}

	return alternate
}

func (l *locator) usable(dir m.Path) (m.Environment, bool) {
	interpreter := l.InterpreterPath(dir)
	if !l.fs.Exists(interpreter) {
		return m.Environment{}, false
	}

	return m.Environment{Dir: dir, Interpreter: interpreter}, true
}

func (l *locator) resolve(root m.Path, rel string) m.Path {
	path := m.Path(rel)
	if !filepath.IsAbs(rel) {
		path = l.fs.JoinPath(string(root), rel)
	}

	abs, err := l.fs.AbsPath(path)
	if err != nil {
		return path
	}

	return abs
}

func joinRoot(root m.Path, name string) string {
	return filepath.Join(string(root), name)
}
