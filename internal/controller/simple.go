package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "devr.dev/pkg/devr/internal/model"
)

var (
	stageStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	skipStyle    = lipgloss.NewStyle().Faint(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// SimpleUI implements UI by printing lines to the cobra command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI. When styled is false, no ANSI
// sequences are emitted.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplayEnvironment prints which venv is used or created.
func (s *SimpleUI) DisplayEnvironment(ctx context.Context, env m.Path, creating bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	if creating {
		s.printf("Creating venv at: %s\n", env)
		return
	}

	s.printf("Using venv: %s\n", env)
}

// DisplayStageStart prints the stage name and its command line.
func (s *SimpleUI) DisplayStageStart(ctx context.Context, stage m.Stage) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s\n", s.render(stageStyle, "==> "+stage.Name+":"), stage.CommandLine())
}

// DisplayNotice prints an informational line.
func (s *SimpleUI) DisplayNotice(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", message)
}

// DisplaySkip prints why a stage was skipped.
func (s *SimpleUI) DisplaySkip(ctx context.Context, reason string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.render(skipStyle, reason))
}

// DisplayWarning prints a warning line.
func (s *SimpleUI) DisplayWarning(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.render(warningStyle, "Warning: "+message))
}

// DisplayError prints an error line.
func (s *SimpleUI) DisplayError(_ context.Context, message string) {
	s.printf("%s\n", s.render(errorStyle, message))
}

// DisplaySummary renders a table of stage results.
func (s *SimpleUI) DisplaySummary(ctx context.Context, results []m.StageResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(results) == 0 {
		return
	}

	s.printf("\n%s", renderSummaryTable(results))
}

func renderSummaryTable(results []m.StageResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Stage", "Command", "Exit", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	failed := 0

	for _, result := range results {
		exit := strconv.Itoa(result.Code)
		if result.Status == m.StageSkipped {
			exit = "-"
		}

		if result.Status == m.StageFailed {
			failed++
		}

		table.Append([]string{result.Stage.Name, result.Stage.CommandLine(), exit, result.Status.String()})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Stages %d", len(results)),
		"",
		"",
		fmt.Sprintf("Failed %d", failed),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplaySuccess prints the final success line.
func (s *SimpleUI) DisplaySuccess(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.render(successStyle, "✅ "+message))
}

func (s *SimpleUI) render(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
