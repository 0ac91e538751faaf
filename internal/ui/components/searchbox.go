package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// SearchBox wraps bubbles/textinput for the question search filter.
type SearchBox struct {
	Model textinput.Model
}

// NewSearchBox creates a search input with a prompt.
func NewSearchBox() SearchBox {
	ti := textinput.New()
	ti.Placeholder = "search questions..."
	ti.Prompt = "/ "
	ti.CharLimit = 80
	return SearchBox{Model: ti}
}

// Focus puts the input into editing state.
func (s *SearchBox) Focus() tea.Cmd {
	return s.Model.Focus()
}

// Blur leaves editing state.
func (s *SearchBox) Blur() {
	s.Model.Blur()
}

// Update forwards messages to the underlying input.
func (s SearchBox) Update(msg tea.Msg) (SearchBox, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// Value returns the current query text.
func (s SearchBox) Value() string {
	return s.Model.Value()
}

// SetValue replaces the query text.
func (s *SearchBox) SetValue(v string) {
	s.Model.SetValue(v)
}

// View renders the search input, dimmed when inactive and empty.
func (s SearchBox) View(active bool) string {
	if !active && s.Value() == "" {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("/ search")
	}
	return s.Model.View()
}
