package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/quiz"
	"github.com/quizdeck/quizdeck/internal/screens/summary"
	"github.com/quizdeck/quizdeck/internal/session"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
	"github.com/quizdeck/quizdeck/internal/view"
)

// menuItem is one entry of the home menu.
type menuItem struct {
	label    string
	disabled bool
	action   func() tea.Cmd
}

// HomeScreen is the entry screen: start, review, summary, quit.
type HomeScreen struct {
	ses      *session.Session
	items    []menuItem
	selected int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen for an active session.
func New(ses *session.Session) *HomeScreen {
	h := &HomeScreen{ses: ses}
	h.rebuild()
	return h
}

// rebuild recomputes the menu; "review mistakes" is only available
// while wrong answers exist.
func (h *HomeScreen) rebuild() {
	sum := h.ses.Summary()

	h.items = []menuItem{
		{label: "CONTINUE QUIZ", action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(h.ses)}
			}
		}},
		{label: fmt.Sprintf("REVIEW MISTAKES (%d)", sum.Wrong), disabled: sum.Wrong == 0,
			action: func() tea.Cmd {
				if h.ses.Mode() == view.ModeAll {
					h.ses.ToggleMode()
				}
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quiz.New(h.ses)}
				}
			}},
		{label: "SUMMARY", action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: summary.New(h.ses)}
			}
		}},
		{label: "QUIT", action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	if h.selected >= len(h.items) {
		h.selected = 0
	}
	if h.items[h.selected].disabled {
		h.selected = 0
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Counts change while the quiz screen is stacked on top; refresh on
	// the way back.
	h.rebuild()

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := h.selected - 1; i >= 0; i-- {
			if !h.items[i].disabled {
				h.selected = i
				break
			}
		}
	case "down", "j":
		for i := h.selected + 1; i < len(h.items); i++ {
			if !h.items[i].disabled {
				h.selected = i
				break
			}
		}
	case "enter":
		item := h.items[h.selected]
		if !item.disabled && item.action != nil {
			return h, item.action()
		}
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("QUIZDECK"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d questions loaded", h.ses.Catalog().Len())))
	b.WriteString("\n\n")

	for i, item := range h.items {
		prefix := "   "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case item.disabled:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == h.selected:
			prefix = " ▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+item.label)))
		b.WriteString("\n")
	}

	return b.String()
}
