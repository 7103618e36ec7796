package domain

import (
	"context"
	"errors"
	"log/slog"

	"devr.dev/pkg/devr/internal/adapter"
	m "devr.dev/pkg/devr/internal/model"
)

// ChainAction tells the chain runner what to do after a step succeeds.
type ChainAction int

const (
	// StopOnSuccess ends the chain as soon as the step succeeds.
	StopOnSuccess ChainAction = iota
	// UnionWithNext keeps the step's output and runs the next step too.
	UnionWithNext
)

// QueryStep is one git query in a fallback chain. A failing step always
// falls through to the next one.
type QueryStep struct {
	Args   []string
	Action ChainAction
}

var (
	// StagedQuery lists the files in the staging index.
	StagedQuery = []QueryStep{
		{Args: []string{"diff", "--relative", "--name-only", "--cached"}, Action: StopOnSuccess},
	}

	// TrackedChangeQuery lists tracked files that differ from the last
	// commit. Without a commit to compare against, it unions the unstaged
	// and staged diffs instead.
	TrackedChangeQuery = []QueryStep{
		{Args: []string{"diff", "--relative", "--name-only", "HEAD"}, Action: StopOnSuccess},
		{Args: []string{"diff", "--relative", "--name-only"}, Action: UnionWithNext},
		{Args: []string{"diff", "--relative", "--name-only", "--cached"}, Action: StopOnSuccess},
	}

	// UntrackedQuery lists files git does not track and does not ignore.
	UntrackedQuery = []QueryStep{
		{Args: []string{"ls-files", "--others", "--exclude-standard"}, Action: StopOnSuccess},
	}
)

// ChangeSetResolver determines which files a scoped run should consider.
type ChangeSetResolver interface {
	// Staged returns the files in the staging index. Any failure yields an
	// empty set.
	Staged(ctx context.Context, root m.Path) m.ChangeSet

	// Changed returns tracked changes followed by untracked files.
	Changed(ctx context.Context, root m.Path) m.ChangeSet
}

type changeSetResolver struct {
	git adapter.GitAdapter
}

// NewChangeSetResolver constructs a ChangeSetResolver backed by git.
func NewChangeSetResolver(git adapter.GitAdapter) ChangeSetResolver {
	return &changeSetResolver{git: git}
}

func (r *changeSetResolver) Staged(ctx context.Context, root m.Path) m.ChangeSet {
	var set m.ChangeSet

	paths, err := r.runChain(ctx, root, StagedQuery)
	if err != nil {
		set.Warnings = append(set.Warnings, queryWarning("staged files", err))
		return set
	}

	set.Paths = Union(paths)

	return set
}

func (r *changeSetResolver) Changed(ctx context.Context, root m.Path) m.ChangeSet {
	var set m.ChangeSet

	tracked, err := r.runChain(ctx, root, TrackedChangeQuery)
	if err != nil {
		set.Warnings = append(set.Warnings, queryWarning("changed files", err))
	}

	if len(tracked) == 0 && !r.git.IsRepository(ctx, root) {
		set.Undetermined = true
		return set
	}

	untracked, err := r.runChain(ctx, root, UntrackedQuery)
	if err != nil {
		set.Warnings = append(set.Warnings, queryWarning("untracked files", err))
	}

	set.Paths = Union(tracked, untracked)

	return set
}

// runChain runs steps in order and concatenates the output of every
// successful step until one with StopOnSuccess succeeds. It fails only when
// no step succeeded.
func (r *changeSetResolver) runChain(ctx context.Context, root m.Path, steps []QueryStep) ([]string, error) {
	var (
		paths     []string
		succeeded bool
		lastErr   error
	)

	for _, step := range steps {
		lines, err := r.git.Query(ctx, root, step.Args...)
		if err != nil {
			slog.Debug("git query step failed", "args", step.Args, "error", err)

			lastErr = err

			continue
		}

		succeeded = true
		paths = append(paths, lines...)

		if step.Action == StopOnSuccess {
			break
		}
	}

	if !succeeded {
		return nil, lastErr
	}

	return paths, nil
}

// Union concatenates the lists, keeping the first occurrence of each path.
func Union(lists ...[]string) []string {
	seen := make(map[string]struct{})

	var out []string

	for _, list := range lists {
		for _, path := range list {
			if _, ok := seen[path]; ok {
				continue
			}

			seen[path] = struct{}{}
			out = append(out, path)
		}
	}

	return out
}

func queryWarning(what string, err error) string {
	switch {
	case errors.Is(err, adapter.ErrGitNotFound):
		return "git is not installed; could not list " + what
	case errors.Is(err, adapter.ErrGitTimeout):
		return "git timed out; could not list " + what
	default:
		return "could not list " + what + " from git"
	}
}
