package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// MultiChoice renders a question's options and tracks the highlighted
// one. Selection and grading state live in the session; this component
// is given both on every render.
type MultiChoice struct {
	Options     []catalog.Option
	Highlighted int
}

// NewMultiChoice creates a selector over opts, highlighting the chosen
// label if one exists.
func NewMultiChoice(opts []catalog.Option, chosen *string) MultiChoice {
	m := MultiChoice{Options: opts}
	if chosen != nil {
		for i, opt := range opts {
			if opt.Label == *chosen {
				m.Highlighted = i
				break
			}
		}
	}
	return m
}

// Update moves the highlight on up/down keys.
func (m MultiChoice) Update(msg tea.Msg) MultiChoice {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m
	}
	switch kmsg.String() {
	case "up", "k":
		if m.Highlighted > 0 {
			m.Highlighted--
		}
	case "down", "j":
		if m.Highlighted < len(m.Options)-1 {
			m.Highlighted++
		}
	}
	return m
}

// HighlightedLabel returns the label under the highlight.
func (m MultiChoice) HighlightedLabel() string {
	if m.Highlighted < 0 || m.Highlighted >= len(m.Options) {
		return ""
	}
	return m.Options[m.Highlighted].Label
}

// View renders the option list. chosen is the recorded selection (may
// be nil); graded and correctLabel describe the grading state: once
// graded, the correct option is shown green and a wrong choice red.
func (m MultiChoice) View(chosen *string, graded bool, correctLabel string) string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Highlighted && !graded {
			prefix = "▸ "
		}
		marker := " "
		if chosen != nil && *chosen == opt.Label {
			marker = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, opt.Label, opt.Text)

		var style lipgloss.Style
		switch {
		case graded && opt.Label == correctLabel:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case graded && chosen != nil && *chosen == opt.Label:
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		case graded:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Highlighted:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case chosen != nil && *chosen == opt.Label:
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		s += style.Render(line) + "\n"
	}
	return s
}
