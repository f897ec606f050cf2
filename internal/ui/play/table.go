package play

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const reviewQuestionWidth = 44

// reviewStyles returns table styles for the answer review.
func reviewStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

func reviewColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Question", Width: reviewQuestionWidth},
		{Title: "Result", Width: 8},
	}
}

// reviewRows converts answered questions into table rows.
func reviewRows(history []answerRecord) []table.Row {
	rows := make([]table.Row, 0, len(history))
	for i, record := range history {
		verdict := "wrong"
		if record.correct {
			verdict = "correct"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			truncate(record.text, reviewQuestionWidth),
			verdict,
		})
	}
	return rows
}

// newReviewTable builds the per-question review shown on the result
// screen.
func newReviewTable(history []answerRecord, noColor bool) table.Model {
	t := table.New(
		table.WithColumns(reviewColumns()),
		table.WithRows(reviewRows(history)),
		table.WithFocused(false),
		table.WithHeight(len(history)+1),
	)
	t.SetStyles(reviewStyles(noColor))
	return t
}

func truncate(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return string(runes[:width-3]) + "..."
}
