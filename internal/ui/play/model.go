package play

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"trivium/internal/question"
	"trivium/internal/quiz"
)

// screen identifies the view the model is showing.
type screen int

const (
	screenQuestion screen = iota
	screenReveal
	screenResult
)

// Model drives one quiz session as a Bubble Tea program. All state
// transitions go through Update, so the flow is testable without a
// terminal.
type Model struct {
	session *quiz.Session
	screen  screen
	cursor  int
	current question.Question
	outcome quiz.Outcome
	result  quiz.Result
	history []answerRecord
	review  table.Model
	noColor bool
	aborted bool
	err     error
	width   int
}

// answerRecord remembers one answered question for the result review.
type answerRecord struct {
	text    string
	correct bool
}

// Options configures the live quiz model.
type Options struct {
	NoColor bool
}

// NewModel constructs a live quiz model over an active session.
func NewModel(session *quiz.Session, opts Options) Model {
	model := Model{
		session: session,
		noColor: opts.NoColor,
	}
	if current, err := session.Current(); err == nil {
		model.current = current
	}
	return model
}

// Aborted reports whether the user quit before finishing the session.
func (m Model) Aborted() bool {
	return m.aborted
}

// Err returns a session error encountered during the run, if any.
func (m Model) Err() error {
	return m.err
}

// Result returns the final result; valid only after the result screen
// was reached.
func (m Model) Result() quiz.Result {
	return m.result
}

// Init performs no startup work; the session is ready on construction.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses and window size changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "q", "esc":
		if m.screen != screenResult {
			m.aborted = true
		}
		return m, tea.Quit
	}
	switch m.screen {
	case screenQuestion:
		return m.handleQuestionKey(key)
	case screenReveal:
		return m.handleRevealKey(key)
	default:
		return m, tea.Quit
	}
}

func (m Model) handleQuestionKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.current.Options)-1 {
			m.cursor++
		}
		return m, nil
	case "enter", " ":
		return m.submit(m.cursor)
	}
	if choice, ok := digitChoice(key.String()); ok {
		return m.submit(choice)
	}
	return m, nil
}

// submit hands a choice to the session. An out-of-range digit never
// consumes the turn; the question stays on screen.
func (m Model) submit(choice int) (tea.Model, tea.Cmd) {
	outcome, err := m.session.Submit(choice)
	if err != nil {
		return m, nil
	}
	m.outcome = outcome
	m.history = append(m.history, answerRecord{text: m.current.Text, correct: outcome.Correct})
	m.screen = screenReveal
	return m, nil
}

func (m Model) handleRevealKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter", " ":
	default:
		return m, nil
	}
	if !m.session.Complete() {
		current, err := m.session.Current()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.current = current
		m.cursor = 0
		m.screen = screenQuestion
		return m, nil
	}
	result, err := m.session.Finish()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.result = result
	m.review = newReviewTable(m.history, m.noColor)
	m.screen = screenResult
	return m, nil
}

// digitChoice maps a "1".."9" key to a zero-based option index.
func digitChoice(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}
