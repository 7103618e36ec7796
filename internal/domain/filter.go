package domain

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"devr.dev/pkg/devr/internal/adapter"
	m "devr.dev/pkg/devr/internal/model"
)

// SourcePatterns select the files the lint, format and type-check stages
// accept when a run is scoped.
var SourcePatterns = []string{"**/*.py", "**/*.pyi"}

// FilterSourceFiles keeps the paths matching SourcePatterns and none of the
// exclude globs. Order is preserved.
func FilterSourceFiles(paths []string, exclude []string) []string {
	filtered := make([]string, 0, len(paths))

	for _, path := range paths {
		slashed := filepath.ToSlash(path)
		if !matchesAny(SourcePatterns, slashed) {
			continue
		}

		if matchesAny(exclude, slashed) {
			slog.Debug("excluded scoped target", "path", path)
			continue
		}

		filtered = append(filtered, path)
	}

	return filtered
}

// FilterExisting keeps the paths that name a regular file inside root.
// Relative paths are resolved against root; absolute paths are used as-is.
// Symlinks are followed and their targets must stay inside root too.
func FilterExisting(fsys adapter.ProjectFSAdapter, root m.Path, paths []string) []string {
	existing := make([]string, 0, len(paths))

	base, err := fsys.ResolvePath(root)
	if err != nil {
		slog.Warn("could not resolve project root", "root", root, "error", err)
		return existing
	}

	for _, path := range paths {
		full := m.Path(path)
		if !filepath.IsAbs(path) {
			full = fsys.JoinPath(string(root), path)
		}

		resolved, err := fsys.ResolvePath(full)
		if err != nil {
			continue
		}

		if !insideRoot(string(base), string(resolved)) {
			slog.Debug("dropped target outside project root", "path", path, "resolved", resolved)
			continue
		}

		if !fsys.IsRegularFile(resolved) {
			continue
		}

		existing = append(existing, path)
	}

	return existing
}

func insideRoot(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			slog.Warn("invalid glob pattern", "pattern", pattern, "error", err)
			continue
		}

		if matched {
			return true
		}
	}

	return false
}
