package domain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"devr.dev/pkg/devr/internal/adapter"
	m "devr.dev/pkg/devr/internal/model"
)

const (
	// ChangelogFileName is validated before a release.
	ChangelogFileName = "CHANGELOG.md"
	// DistDirName holds the built artifacts.
	DistDirName = "dist"
	// UnreleasedSection is the required first changelog section.
	UnreleasedSection = "Unreleased"
)

var changelogHeading = regexp.MustCompile(`^## \[(.+?)\]`)

// ProjectMetadata is the subset of `[project]` the release preflight needs.
type ProjectMetadata struct {
	Name    string
	Version string
	// Scripts are the console entry points, sorted by name.
	Scripts []string
}

// ParseProjectMetadata extracts the project name, version and console
// scripts from a decoded pyproject.toml.
func ParseProjectMetadata(doc map[string]any) (ProjectMetadata, error) {
	project, ok := adapter.Table(doc, "project")
	if !ok {
		return ProjectMetadata{}, errors.New("could not determine [project].version from pyproject.toml")
	}

	version, _ := project["version"].(string)
	if strings.TrimSpace(version) == "" {
		return ProjectMetadata{}, errors.New("could not determine [project].version from pyproject.toml")
	}

	name, _ := project["name"].(string)
	if strings.TrimSpace(name) == "" {
		return ProjectMetadata{}, errors.New("could not determine [project].name from pyproject.toml")
	}

	meta := ProjectMetadata{Name: strings.TrimSpace(name), Version: strings.TrimSpace(version)}

	if scripts, ok := adapter.Table(project, "scripts"); ok {
		for script := range scripts {
			meta.Scripts = append(meta.Scripts, script)
		}

		sort.Strings(meta.Scripts)
	}

	return meta, nil
}

// ChangelogVersions returns the labels of the `## [label]` headings in order.
func ChangelogVersions(changelog string) []string {
	var versions []string

	scanner := bufio.NewScanner(strings.NewReader(changelog))
	for scanner.Scan() {
		if match := changelogHeading.FindStringSubmatch(strings.TrimSpace(scanner.Text())); match != nil {
			versions = append(versions, match[1])
		}
	}

	return versions
}

// ValidateChangelog checks that the changelog opens with an empty Unreleased
// section and already has a section for version.
func ValidateChangelog(changelog, version string) error {
	versions := ChangelogVersions(changelog)
	if len(versions) == 0 || versions[0] != UnreleasedSection {
		return fmt.Errorf("%s must have '## [%s]' as the first section", ChangelogFileName, UnreleasedSection)
	}

	found := false

	for _, v := range versions {
		if v == version {
			found = true
			break
		}
	}

	if !found {
		return fmt.Errorf("%s is missing a section for version %q. Move completed entries from %s into that release section before tagging",
			ChangelogFileName, version, UnreleasedSection)
	}

	if strings.TrimSpace(unreleasedBody(changelog)) != "" {
		return fmt.Errorf("%s has unreleased entries. Move completed entries from %q into the current version section before tagging",
			ChangelogFileName, UnreleasedSection)
	}

	return nil
}

func unreleasedBody(changelog string) string {
	var (
		body   strings.Builder
		inside bool
	)

	for _, line := range strings.Split(changelog, "\n") {
		if strings.HasPrefix(line, "## [") {
			if inside {
				break
			}

			inside = strings.HasPrefix(line, "## ["+UnreleasedSection+"]")
			if inside {
				body.WriteString(strings.TrimPrefix(line, "## ["+UnreleasedSection+"]"))
				body.WriteString("\n")
			}

			continue
		}

		if inside {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}

	return body.String()
}

func (w *workflow) Release(ctx context.Context, args ReleaseArgs) error {
	meta, err := w.releaseMetadata(args.Root)
	if err != nil {
		return w.failRelease(ctx, err)
	}

	w.DisplayNotice(ctx, "Detected project version: "+meta.Version)

	changelog, err := w.ReadFile(m.Path(joinRoot(args.Root, ChangelogFileName)))
	if err != nil {
		return w.failRelease(ctx, fmt.Errorf("read %s: %w", ChangelogFileName, err))
	}

	if err := ValidateChangelog(string(changelog), meta.Version); err != nil {
		return w.failRelease(ctx, err)
	}

	w.DisplayNotice(ctx, "Changelog/version check passed.")

	_, env, err := w.environment(ctx, args.ProjectArgs)
	if err != nil {
		return err
	}

	dist := m.Path(joinRoot(args.Root, DistDirName))
	if err := w.RemoveAll(dist); err != nil {
		return w.failRelease(ctx, fmt.Errorf("clean %s: %w", dist, err))
	}

	var results []m.StageResult

	defer func() { w.DisplaySummary(ctx, results) }()

	run := func(ctx context.Context, env m.Environment, stage m.Stage) error {
		result, err := w.runStage(ctx, env, args.Root, stage)
		if err != nil {
			return err
		}

		results = append(results, result)

		if result.Status == m.StageFailed {
			return w.failRelease(ctx, fmt.Errorf("command failed with exit code %d: %s", result.Code, stage.CommandLine()))
		}

		return nil
	}

	for _, stage := range []m.Stage{
		{Name: "build-version", Tool: m.ToolBuild, Args: []string{"--version"}},
		{Name: "build", Tool: m.ToolBuild},
	} {
		if err := run(ctx, env, stage); err != nil {
			return err
		}
	}

	for _, suffix := range []string{".whl", ".tar.gz"} {
		artifact, err := w.artifact(dist, suffix)
		if err != nil {
			return w.failRelease(ctx, err)
		}

		w.DisplayNotice(ctx, "Smoke testing artifact: "+filepath.Base(string(artifact)))

		if err := w.smokeTest(ctx, env, args.Root, meta, artifact, run); err != nil {
			return err
		}
	}

	w.DisplaySuccess(ctx, "Release preflight checks completed successfully.")

	return nil
}

func (w *workflow) releaseMetadata(root m.Path) (ProjectMetadata, error) {
	doc, err := w.Read(m.Path(joinRoot(root, adapter.PyprojectFileName)))
	if err != nil {
		return ProjectMetadata{}, fmt.Errorf("read %s: %w", adapter.PyprojectFileName, err)
	}

	return ParseProjectMetadata(doc)
}

func (w *workflow) artifact(dist m.Path, suffix string) (m.Path, error) {
	matches, err := w.Glob(filepath.Join(string(dist), "*"+suffix))
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("no %s artifact found in %s", suffix, dist)
	}

	return matches[0], nil
}

// smokeTest installs artifact into a throwaway venv and runs every console
// script with --version.
func (w *workflow) smokeTest(
	ctx context.Context,
	env m.Environment,
	root m.Path,
	meta ProjectMetadata,
	artifact m.Path,
	run func(context.Context, m.Environment, m.Stage) error,
) error {
	tmp, err := w.CreateTempDir("devr-release-")
	if err != nil {
		return w.failRelease(ctx, fmt.Errorf("create temp dir: %w", err))
	}

	defer func() { _ = w.RemoveAll(tmp) }()

	venvDir := w.JoinPath(string(tmp), ".venv")
	if err := run(ctx, env, m.Stage{Name: "smoke-venv", Tool: m.ToolVenv, Args: []string{string(venvDir)}}); err != nil {
		return err
	}

	smokeEnv := m.Environment{Dir: venvDir, Interpreter: w.InterpreterPath(venvDir)}

	for _, stage := range []m.Stage{
		{Name: "smoke-pip", Tool: m.ToolPip, Args: []string{"install", "--upgrade", "pip"}},
		{Name: "smoke-install", Tool: m.ToolPip, Args: []string{"install", "--force-reinstall", string(artifact)}},
		{Name: "smoke-show", Tool: m.ToolPip, Args: []string{"show", meta.Name}},
	} {
		if err := run(ctx, smokeEnv, stage); err != nil {
			return err
		}
	}

	binDir := filepath.Dir(string(smokeEnv.Interpreter))

	for _, script := range meta.Scripts {
		if w.goos == "windows" {
			script += ".exe"
		}

		program := filepath.Join(binDir, script)
		w.DisplayNotice(ctx, "$ "+program+" --version")

		code, err := w.Run(ctx, program, []string{"--version"}, root)
		if err != nil {
			return w.failRelease(ctx, fmt.Errorf("start %s: %w", program, err))
		}

		if code != 0 {
			return w.failRelease(ctx, fmt.Errorf("command failed with exit code %d: %s --version", code, program))
		}
	}

	return nil
}

func (w *workflow) failRelease(ctx context.Context, err error) error {
	return w.fail(ctx, ExitFailure, fmt.Errorf("%w: %w", ErrReleasePreflight, err))
}
