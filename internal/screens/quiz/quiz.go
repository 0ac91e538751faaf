package quiz

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/ledger"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/summary"
	"github.com/quizdeck/quizdeck/internal/session"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/view"
)

// inputMode is the keyboard focus of the quiz screen.
type inputMode int

const (
	modeAnswer inputMode = iota
	modeSearch            // typing in the search box
	modeJump              // typing a question number
	modeConfirmClear      // y/n prompt before clearAll
)

// QuizScreen presents the question under the session cursor and routes
// every user action through the session dispatchers. It owns no answer
// state of its own.
type QuizScreen struct {
	ses    *session.Session
	choice components.MultiChoice
	search components.SearchBox
	input  inputMode
	jump   string
	status string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over an active session.
func New(ses *session.Session) *QuizScreen {
	s := &QuizScreen{
		ses:    ses,
		search: components.NewSearchBox(),
	}
	s.search.SetValue(ses.Query())
	s.syncChoice()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

// HandlesEsc claims the esc key while a sub-input (search, jump,
// confirm) is active so the router does not pop the screen.
func (s *QuizScreen) HandlesEsc() bool {
	return s.input != modeAnswer
}

func (s *QuizScreen) Title() string {
	if s.ses.Mode() == view.ModeWrongOnly {
		return "Quiz · review mistakes"
	}
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.input {
	case modeSearch:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear search"},
		}
	case modeJump:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmClear:
		return []layout.KeyHint{
			{Key: "Y", Description: "Wipe all answers"},
			{Key: "N", Description: "Keep them"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Space", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "←/→", Description: "Prev/Next"},
		{Key: "w", Description: "Wrong only"},
		{Key: "/", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
	return hints
}

// syncChoice rebuilds the option selector for the question under the
// cursor, restoring the recorded choice's highlight.
func (s *QuizScreen) syncChoice() {
	if s.ses.Catalog().Len() == 0 {
		return
	}
	cur := s.ses.Cursor()
	q := s.ses.Catalog().Question(cur)
	s.choice = components.NewMultiChoice(q.Options, s.ses.Ledger()[cur].Choice)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.input == modeSearch {
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch s.input {
	case modeSearch:
		return s.updateSearch(kmsg)
	case modeJump:
		return s.updateJump(kmsg)
	case modeConfirmClear:
		return s.updateConfirmClear(kmsg)
	}
	return s.updateAnswer(kmsg)
}

func (s *QuizScreen) updateAnswer(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	cur := s.ses.Cursor()
	rec := s.ses.Ledger()[cur]

	switch kmsg.String() {
	case "up", "k", "down", "j":
		if !rec.Answered() {
			s.choice = s.choice.Update(kmsg)
		}

	case "space", " ":
		// Choosing is locked once graded; reset first.
		if rec.Answered() {
			s.status = "already graded — press r to reset"
			break
		}
		s.status = ""
		if err := s.ses.Select(cur, s.choice.HighlightedLabel()); err != nil {
			s.status = err.Error()
		}

	case "enter":
		if rec.Answered() {
			s.status = "already graded — press r to reset"
			break
		}
		if err := s.ses.Submit(cur); err != nil {
			if err == ledger.ErrNoSelection {
				s.status = "no option selected"
			} else {
				s.status = err.Error()
			}
		} else {
			s.status = ""
		}

	case "left", "h", "p":
		s.ses.GoPrevious()
		s.status = ""
		s.syncChoice()

	case "right", "l", "n":
		s.ses.GoNext()
		s.status = ""
		s.syncChoice()

	case "g":
		s.input = modeJump
		s.jump = ""

	case "r":
		if err := s.ses.Reset(cur); err == nil {
			s.status = ""
			s.syncChoice()
		}

	case "w":
		if !s.ses.ToggleMode() {
			s.status = "no wrong answers to review"
		} else {
			s.status = ""
			s.syncChoice()
		}

	case "/":
		s.input = modeSearch
		return s, s.search.Focus()

	case "c":
		s.input = modeConfirmClear

	case "s":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: summary.New(s.ses)}
		}
	}
	return s, nil
}

func (s *QuizScreen) updateSearch(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "enter":
		s.input = modeAnswer
		s.search.Blur()
		return s, nil
	case "esc":
		s.input = modeAnswer
		s.search.Blur()
		s.search.SetValue("")
		s.ses.ClearSearch()
		return s, nil
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(kmsg)
	// Live filter: the query applies on every keystroke.
	s.ses.SetSearchQuery(s.search.Value())
	return s, cmd
}

func (s *QuizScreen) updateJump(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := kmsg.String()
	switch {
	case key == "enter":
		s.input = modeAnswer
		if n, err := strconv.Atoi(s.jump); err == nil {
			if err := s.ses.Jump(n - 1); err != nil {
				s.status = fmt.Sprintf("no question %d", n)
			} else {
				s.status = ""
				s.syncChoice()
			}
		}
	case key == "esc":
		s.input = modeAnswer
	case key == "backspace" && len(s.jump) > 0:
		s.jump = s.jump[:len(s.jump)-1]
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		s.jump += key
	}
	return s, nil
}

func (s *QuizScreen) updateConfirmClear(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "y", "Y":
		// Leave wrong-only first: the wrong set is about to vanish.
		if s.ses.Mode() == view.ModeWrongOnly {
			s.ses.ToggleMode()
		}
		s.ses.ClearAll()
		s.status = "all answers cleared"
		s.syncChoice()
	}
	s.input = modeAnswer
	return s, nil
}

// questionBadge formats the "question N of M (K in view)" line.
func (s *QuizScreen) questionBadge() string {
	total := s.ses.Catalog().Len()
	visible := s.ses.VisibleIndices()
	pos := view.Position(s.ses.Cursor(), visible)

	badge := fmt.Sprintf("Question %d of %d", s.ses.Cursor()+1, total)
	if len(visible) != total || pos < 0 {
		if pos >= 0 {
			badge += fmt.Sprintf("  ·  %d/%d in view", pos+1, len(visible))
		} else {
			badge += "  ·  outside current view"
		}
	}
	if q := strings.TrimSpace(s.ses.Query()); q != "" {
		badge += fmt.Sprintf("  ·  filter: %q", q)
	}
	return badge
}
