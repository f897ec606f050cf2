package play

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current screen.
func (m Model) View() string {
	switch m.screen {
	case screenReveal:
		return m.viewReveal()
	case screenResult:
		return m.viewResult()
	default:
		return m.viewQuestion()
	}
}

func (m Model) viewQuestion() string {
	header := stylize("Question "+strconv.Itoa(m.session.Position()+1)+"/"+strconv.Itoa(m.session.Total()), m.noColor, lipgloss.Color("33"))
	meta := stylize("Category: "+m.current.Category+" | Difficulty: "+m.current.Difficulty, m.noColor, lipgloss.Color("242"))

	options := make([]string, 0, len(m.current.Options))
	for i, option := range m.current.Options {
		line := "  " + strconv.Itoa(i+1) + ". " + option
		if i == m.cursor {
			line = stylize("> "+strconv.Itoa(i+1)+". "+option, m.noColor, lipgloss.Color("205"))
		}
		options = append(options, line)
	}

	footer := stylize("up/down move | enter select | 1-9 answer | q quit", m.noColor, lipgloss.Color("244"))
	parts := []string{header, meta, "", m.current.Text, ""}
	parts = append(parts, options...)
	parts = append(parts, "", footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewReveal() string {
	var verdict string
	if m.outcome.Correct {
		verdict = stylize("Correct!", m.noColor, lipgloss.Color("42"))
	} else {
		correct := strconv.Itoa(m.outcome.CorrectIndex+1) + ". " + m.current.Options[m.outcome.CorrectIndex]
		verdict = stylize("Wrong! The correct answer was "+correct, m.noColor, lipgloss.Color("196"))
	}
	progress := stylize(scoreLine(m.session.Score(), m.session.Position(), m.session.Total()), m.noColor, lipgloss.Color("242"))
	footer := stylize("enter continue | q quit", m.noColor, lipgloss.Color("244"))
	return lipgloss.JoinVertical(lipgloss.Left, m.current.Text, "", verdict, progress, "", footer)
}

func (m Model) viewResult() string {
	header := stylize("Quiz results", m.noColor, lipgloss.Color("33"))
	lines := []string{
		header,
		"",
		"Score:      " + strconv.Itoa(m.result.Score) + "/" + strconv.Itoa(m.result.Total),
		"Percentage: " + formatPercent(m.result.Percentage),
		"Time:       " + formatElapsed(m.result.Elapsed),
		"Date:       " + m.result.CompletedAt.Format("2006-01-02 15:04:05"),
		"",
		stylize(tierMessage(m.result.Tier()), m.noColor, tierColor(m.result.Tier())),
		"",
		m.review.View(),
		"",
		stylize("press any key to exit", m.noColor, lipgloss.Color("244")),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
