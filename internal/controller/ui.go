// Package controller provides output adapters for displaying workflow progress.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "devr.dev/pkg/devr/internal/model"
)

// UI defines how workflows report progress to the user.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	// DisplayEnvironment announces the environment in use, or the one about
	// to be created.
	DisplayEnvironment(ctx context.Context, env m.Path, creating bool)
	// DisplayStageStart announces a stage before it runs.
	DisplayStageStart(ctx context.Context, stage m.Stage)
	// DisplayNotice prints an informational line.
	DisplayNotice(ctx context.Context, message string)
	// DisplaySkip explains why a stage did not run.
	DisplaySkip(ctx context.Context, reason string)
	// DisplayWarning prints a degraded-but-continuing condition.
	DisplayWarning(ctx context.Context, message string)
	// DisplayError prints a failure that ends the workflow.
	DisplayError(ctx context.Context, message string)
	// DisplaySummary renders per-stage results.
	DisplaySummary(ctx context.Context, results []m.StageResult)
	// DisplaySuccess prints the final success line.
	DisplaySuccess(ctx context.Context, message string)
}

// NewUI returns the UI implementation for cmd. Styled output is used only
// when writing to a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
