package domain

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"devr.dev/pkg/devr/internal/adapter"
	"devr.dev/pkg/devr/internal/controller"
	m "devr.dev/pkg/devr/internal/model"
)

const (
	// PreCommitFileName is the pre-commit configuration written by init.
	PreCommitFileName = ".pre-commit-config.yaml"
	// PreCommitHookID identifies the devr hook inside that file.
	PreCommitHookID = "devr-check"
)

// PreCommitConfig is the local hook definition written into new projects.
const PreCommitConfig = `repos:
  - repo: local
    hooks:
      - id: devr-check
        name: devr check (staged)
        entry: devr check --staged --changed
        language: system
        pass_filenames: false
`

type preCommitFile struct {
	Repos []struct {
		Repo  string `yaml:"repo"`
		Hooks []struct {
			ID string `yaml:"id"`
		} `yaml:"hooks"`
	} `yaml:"repos"`
}

// WritePreCommitConfig creates the pre-commit configuration unless one is
// already present, in which case the file is left untouched.
func WritePreCommitConfig(ctx context.Context, fs adapter.ProjectFSAdapter, ui controller.UI, root m.Path) error {
	path := m.Path(joinRoot(root, PreCommitFileName))

	err := fs.CreateFile(path, []byte(PreCommitConfig), 0o644)
	if err == nil {
		slog.Debug("wrote pre-commit config", "path", path)
		return nil
	}

	if !adapter.IsExist(err) {
		return fmt.Errorf("write %s: %w", PreCommitFileName, err)
	}

	ui.DisplayNotice(ctx, PreCommitFileName+" already exists; leaving it unchanged.")

	if !HasDevrHook(fs, path) {
		ui.DisplayNotice(ctx, "Tip: add a local hook that runs: devr check --staged --changed")
	}

	return nil
}

// HasDevrHook reports whether the pre-commit file at path already declares
// the devr hook. Unreadable or malformed files count as not declaring it.
func HasDevrHook(fs adapter.ProjectFSAdapter, path m.Path) bool {
	data, err := fs.ReadFile(path)
	if err != nil {
		return false
	}

	var cfg preCommitFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Debug("could not parse pre-commit config", "path", path, "error", err)
		return false
	}

	for _, repo := range cfg.Repos {
		for _, hook := range repo.Hooks {
			if hook.ID == PreCommitHookID {
				return true
			}
		}
	}

	return false
}
