package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"

	m "devr.dev/pkg/devr/internal/model"
)

// DefaultGitTimeout bounds every git query.
const DefaultGitTimeout = 10 * time.Second

var (
	// ErrGitNotFound is returned when the git executable is not on PATH.
	ErrGitNotFound = errors.New("git executable not found")
	// ErrGitTimeout is returned when a git query exceeds its timeout.
	ErrGitTimeout = errors.New("git query timed out")
)

// GitAdapter runs read-only version-control queries.
type GitAdapter interface {
	// Query runs `git args...` in dir and returns the non-blank, trimmed
	// lines of its standard output.
	Query(ctx context.Context, dir m.Path, args ...string) ([]string, error)

	// IsRepository reports whether dir lies inside a git work tree.
	IsRepository(ctx context.Context, dir m.Path) bool
}

// quietPathConfig makes git print non-ASCII file names verbatim instead of
// as quoted octal escapes.
var quietPathConfig = []string{"-c", "core.quotePath=false"}

// LocalGitAdapter shells out to the git executable.
type LocalGitAdapter struct {
	binary  string
	config  []string
	timeout time.Duration
}

// NewLocalGitAdapter constructs a LocalGitAdapter. A non-positive timeout
// selects DefaultGitTimeout.
func NewLocalGitAdapter(timeout time.Duration) *LocalGitAdapter {
	if timeout <= 0 {
		timeout = DefaultGitTimeout
	}

	return &LocalGitAdapter{
		binary:  "git",
		config:  quietPathConfig,
		timeout: timeout,
	}
}

// Query runs a git subcommand with a bounded timeout.
func (a *LocalGitAdapter) Query(ctx context.Context, dir m.Path, args ...string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	full := make([]string, 0, len(a.config)+len(args))
	full = append(full, a.config...)
	full = append(full, args...)

	cmd := exec.CommandContext(ctx, a.binary, full...)
	cmd.Dir = string(dir)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		switch {
		case errors.Is(err, exec.ErrNotFound):
			return nil, ErrGitNotFound
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			slog.Warn("git query timed out", "args", args, "timeout", a.timeout)
			return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), ErrGitTimeout)
		default:
			slog.Debug("git query failed", "args", args, "error", err, "stderr", strings.TrimSpace(stderr.String()))
			return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
	}

	return splitLines(stdout.String()), nil
}

// IsRepository asks git whether dir is inside a work tree. When the git
// executable itself is missing, it falls back to looking for a repository
// on disk with go-git so the caller can still tell the two cases apart.
func (a *LocalGitAdapter) IsRepository(ctx context.Context, dir m.Path) bool {
	lines, err := a.Query(ctx, dir, "rev-parse", "--is-inside-work-tree")
	if err == nil {
		return len(lines) > 0 && lines[0] == "true"
	}

	if !errors.Is(err, ErrGitNotFound) {
		return false
	}

	_, openErr := git.PlainOpenWithOptions(string(dir), &git.PlainOpenOptions{DetectDotGit: true})
	if openErr != nil {
		slog.Debug("no repository found on disk", "dir", dir, "error", openErr)
		return false
	}

	return true
}

func splitLines(output string) []string {
	var lines []string

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}
