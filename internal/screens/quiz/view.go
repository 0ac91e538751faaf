package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
	"github.com/quizdeck/quizdeck/internal/view"
)

func (s *QuizScreen) View(width, height int) string {
	if s.input == modeConfirmClear {
		return s.renderConfirmClear(width)
	}

	visible := s.ses.VisibleIndices()
	if len(visible) == 0 && s.ses.Mode() == view.ModeWrongOnly {
		return s.renderEmptyState(width, "Nothing left to review — every answer is correct.")
	}
	if len(visible) == 0 {
		return s.renderEmptyState(width, "No questions match the current search.")
	}

	var b strings.Builder

	// Info line: question badge left, mode right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  " + s.questionBadge())
	infoRight := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(s.ses.Mode().String())

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	cur := s.ses.Cursor()
	q := s.ses.Catalog().Question(cur)
	rec := s.ses.Ledger()[cur]

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		PaddingLeft(2).
		Render(q.Text))
	b.WriteString("\n\n")

	// Options.
	b.WriteString(s.choice.View(rec.Choice, rec.Answered(), q.Answer.Label))
	b.WriteString("\n")

	// Grading feedback.
	if rec.Answered() {
		if *rec.Correct {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
				Render("  ✓ Correct"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render(fmt.Sprintf("  ✗ Wrong — correct answer is %s", q.Answer.Label)))
		}
		b.WriteString("\n")
	}

	// Status hint (validation errors and friends).
	if s.status != "" {
		b.WriteString(theme.Warn.Render("  " + s.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	// Search / jump input line.
	switch s.input {
	case modeJump:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).
			Render(fmt.Sprintf("  go to question: %s_", s.jump)))
	default:
		b.WriteString("  " + s.search.View(s.input == modeSearch))
	}
	b.WriteString("\n\n")

	// Score bar.
	sum := s.ses.Summary()
	var pct float64
	if sum.FullScore > 0 {
		pct = sum.TotalScore / sum.FullScore
	}
	bar := components.ProgressBar{
		Label:       fmt.Sprintf("  Score %.4g/%.4g", sum.TotalScore, sum.FullScore),
		Percent:     pct,
		ShowPercent: true,
		Width:       min(width-4, 60),
	}
	b.WriteString(bar.View())

	return b.String()
}

func (s *QuizScreen) renderEmptyState(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n" + msg + "\n\nPress w to show all questions, Esc to clear the search.")
}

func (s *QuizScreen) renderConfirmClear(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("\n\nWipe all answers?\n\nThis removes every recorded choice and grade.\n\n[y] yes   [n] no")
}
