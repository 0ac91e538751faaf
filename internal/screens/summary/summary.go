package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/session"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// SummaryScreen shows the aggregate counts and score for the session.
type SummaryScreen struct {
	ses *session.Session
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen over an active session.
func New(ses *session.Session) *SummaryScreen {
	return &SummaryScreen{ses: ses}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.ses.Summary()
	total := s.ses.Catalog().Len()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Your progress"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d/%d        Correct: %d        Wrong: %d",
		sum.Answered, total, sum.Correct, sum.Wrong)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if sum.Answered > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Accuracy: %.0f%%", sum.Accuracy()*100)))
		b.WriteString("\n\n")
	}

	barWidth := min(width-8, 56)

	var answeredPct float64
	if total > 0 {
		answeredPct = float64(sum.Answered) / float64(total)
	}
	answered := components.ProgressBar{
		Label:   "Answered",
		Percent: answeredPct,
		Width:   barWidth,
	}

	var scorePct float64
	if sum.FullScore > 0 {
		scorePct = sum.TotalScore / sum.FullScore
	}
	score := components.ProgressBar{
		Label:       fmt.Sprintf("Score %.4g/%.4g", sum.TotalScore, sum.FullScore),
		Percent:     scorePct,
		ShowPercent: true,
		Width:       barWidth,
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answered.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, score.View()))
	b.WriteString("\n")

	return b.String()
}
