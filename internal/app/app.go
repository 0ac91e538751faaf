package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/home"
	"github.com/quizdeck/quizdeck/internal/session"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
)

// AppModel is the root Bubble Tea model: it owns the screen router and
// draws the header/footer frame around the active screen.
type AppModel struct {
	ses    *session.Session
	router *router.Router
	width  int
	height int
}

func newAppModel(ses *session.Session) AppModel {
	return AppModel{
		ses:    ses,
		router: router.New(home.New(ses)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens with their own esc handling (search, prompts)
			// consume it before it reaches here via the router below.
			if m.router.Depth() > 1 {
				if h, ok := m.router.Active().(escHandler); !ok || !h.HandlesEsc() {
					return m, func() tea.Msg { return router.PopScreenMsg{} }
				}
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// escHandler lets a screen claim the esc key for its own input modes.
type escHandler interface {
	HandlesEsc() bool
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	sum := m.ses.Summary()
	header := layout.RenderHeader(title, sum.Correct, sum.Answered, m.width)

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints = provider.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program over an active session.
func Run(ses *session.Session) error {
	p := tea.NewProgram(newAppModel(ses))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
