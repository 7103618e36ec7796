// Package adapter contains infrastructure adapters for the devr CLI:
// filesystem, git, pyproject.toml and subprocess execution.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	m "devr.dev/pkg/devr/internal/model"
)

// ProjectMarkers are the files or directories whose presence marks a project
// root, checked in this order in each directory.
var ProjectMarkers = []string{
	"pyproject.toml",
	"setup.cfg",
	"setup.py",
	"requirements.txt",
	".git",
}

// ProjectFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on. It hides direct `os` access so the workflow logic can be
// tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type ProjectFSAdapter interface {
	// FindProjectRoot walks up from start looking for a project marker and
	// returns start itself when none is found.
	FindProjectRoot(start m.Path) m.Path

	// Exists reports whether anything exists at path.
	Exists(path m.Path) bool

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// CreateFile writes content to a new file. It fails with an error
	// matching fs.ErrExist when the file is already present.
	CreateFile(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path m.Path) error

	// CreateTempDir creates a new temporary directory.
	CreateTempDir(pattern string) (m.Path, error)

	// Glob returns the sorted paths matching a doublestar pattern.
	Glob(pattern string) ([]m.Path, error)

	// AbsPath returns a cleaned absolute version of path.
	AbsPath(path m.Path) (m.Path, error)

	// ResolvePath returns the absolute path with every symlink evaluated.
	// It fails when path does not exist.
	ResolvePath(path m.Path) (m.Path, error)

	// IsRegularFile reports whether path is a regular file. Symlinks are
	// followed.
	IsRegularFile(path m.Path) bool

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalProjectFSAdapter is the os-backed ProjectFSAdapter.
type LocalProjectFSAdapter struct{}

// NewLocalProjectFSAdapter constructs a LocalProjectFSAdapter instance ready
// to be wired into the workflow.
func NewLocalProjectFSAdapter() *LocalProjectFSAdapter {
	return &LocalProjectFSAdapter{}
}

// FindProjectRoot searches for a project marker walking up the directory tree.
func (a *LocalProjectFSAdapter) FindProjectRoot(start m.Path) m.Path {
	dir := filepath.Clean(string(start))

	for {
		for _, marker := range ProjectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return m.Path(dir)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}

		dir = parent
	}
}

// Exists reports whether path exists.
func (a *LocalProjectFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}

// ReadFile loads file contents from disk.
func (a *LocalProjectFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// CreateFile writes a new file, refusing to replace an existing one.
func (a *LocalProjectFSAdapter) CreateFile(path m.Path, content []byte, perm os.FileMode) error {
	// #nosec G304 - path is a fixed file name under the project root
	f, err := os.OpenFile(string(path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

// MkdirAll creates path and any missing parents.
func (a *LocalProjectFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalProjectFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// CreateTempDir creates a temporary directory.
func (a *LocalProjectFSAdapter) CreateTempDir(pattern string) (m.Path, error) {
	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// Glob expands a doublestar pattern against the filesystem.
func (a *LocalProjectFSAdapter) Glob(pattern string) ([]m.Path, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	sort.Strings(matches)

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(match))
	}

	return paths, nil
}

// AbsPath returns the cleaned absolute form of path.
func (a *LocalProjectFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// ResolvePath returns the absolute, symlink-free form of path.
func (a *LocalProjectFSAdapter) ResolvePath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return m.Path(resolved), nil
}

// IsRegularFile reports whether path names a regular file.
func (a *LocalProjectFSAdapter) IsRegularFile(path m.Path) bool {
	info, err := os.Stat(string(path))
	return err == nil && info.Mode().IsRegular()
}

// JoinPath joins path elements into a single path.
func (a *LocalProjectFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// IsExist reports whether err means the target already exists.
func IsExist(err error) bool {
	return errors.Is(err, fs.ErrExist)
}
