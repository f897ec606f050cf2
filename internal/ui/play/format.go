package play

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"trivium/internal/quiz"
)

// formatPercent renders a percentage with one decimal place.
func formatPercent(percentage float64) string {
	return strconv.FormatFloat(percentage, 'f', 1, 64) + "%"
}

// formatElapsed renders elapsed time rounded to whole seconds.
func formatElapsed(elapsed time.Duration) string {
	return elapsed.Round(time.Second).String()
}

// scoreLine renders running progress after an answer.
func scoreLine(score, position, total int) string {
	return "Score: " + strconv.Itoa(score) + "/" + strconv.Itoa(position) + " answered, " + strconv.Itoa(total) + " total"
}

// tierMessage maps a performance band to its closing message.
func tierMessage(tier quiz.Tier) string {
	switch tier {
	case quiz.TierMaster:
		return "Outstanding! You're a quiz master!"
	case quiz.TierGreat:
		return "Great job! Keep it up!"
	case quiz.TierGood:
		return "Good effort! Room for improvement."
	default:
		return "Keep practicing! You'll do better next time."
	}
}

// tierColor selects a color for a performance band.
func tierColor(tier quiz.Tier) lipgloss.Color {
	switch tier {
	case quiz.TierMaster:
		return lipgloss.Color("42")
	case quiz.TierGreat:
		return lipgloss.Color("220")
	case quiz.TierGood:
		return lipgloss.Color("39")
	default:
		return lipgloss.Color("244")
	}
}
