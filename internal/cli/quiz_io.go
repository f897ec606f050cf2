package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"trivium/internal/question"
	"trivium/internal/quiz"
)

// runSessionPlain drives a session over line-oriented input until it
// completes, then prints the result. It reports ok=false when input
// ended mid-session; the partial session is simply discarded.
func runSessionPlain(session *quiz.Session, reader *bufio.Reader, out io.Writer) (bool, error) {
	for !session.Complete() {
		current, err := session.Current()
		if err != nil {
			return false, err
		}
		printQuestion(out, current, session.Position()+1, session.Total())

		outcome, ok, err := promptAnswer(session, reader, out, len(current.Options))
		if err != nil || !ok {
			return ok, err
		}
		printOutcome(out, current, outcome)

		if !session.Complete() {
			ok, err := pressEnter(reader, out)
			if err != nil || !ok {
				return ok, err
			}
		}
	}

	result, err := session.Finish()
	if err != nil {
		return false, err
	}
	printResult(out, result)
	return true, nil
}

// promptAnswer reads answers until the session accepts one. Malformed
// and out-of-range input never consumes the turn.
func promptAnswer(session *quiz.Session, reader *bufio.Reader, out io.Writer, optionCount int) (quiz.Outcome, bool, error) {
	for {
		choice, ok, err := promptSelection(reader, out, "Your answer", optionCount)
		if err != nil || !ok {
			return quiz.Outcome{}, ok, err
		}
		outcome, err := session.Submit(choice - 1)
		if errors.Is(err, quiz.ErrInvalidChoice) {
			fmt.Fprintf(out, "Please enter a number between 1 and %d.\n", optionCount)
			continue
		}
		if err != nil {
			return quiz.Outcome{}, false, err
		}
		return outcome, true, nil
	}
}

func printQuestion(out io.Writer, q question.Question, number, total int) {
	fmt.Fprintf(out, "\nQuestion %d/%d\n", number, total)
	fmt.Fprintf(out, "Category: %s | Difficulty: %s\n\n", q.Category, q.Difficulty)
	fmt.Fprintf(out, "%s\n\n", q.Text)
	for i, option := range q.Options {
		fmt.Fprintf(out, "%d. %s\n", i+1, option)
	}
}

func printOutcome(out io.Writer, q question.Question, outcome quiz.Outcome) {
	if outcome.Correct {
		fmt.Fprintln(out, "\nCorrect!")
		return
	}
	fmt.Fprintf(out, "\nWrong! The correct answer was %d. %s\n", outcome.CorrectIndex+1, q.Options[outcome.CorrectIndex])
}

func printResult(out io.Writer, result quiz.Result) {
	fmt.Fprintln(out, "\nQuiz results")
	fmt.Fprintf(out, "Score:      %d/%d\n", result.Score, result.Total)
	fmt.Fprintf(out, "Percentage: %.1f%%\n", result.Percentage)
	fmt.Fprintf(out, "Time:       %s\n", result.Elapsed.Round(time.Second))
	fmt.Fprintf(out, "Date:       %s\n", result.CompletedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "\n%s\n", tierMessage(result.Tier()))
}

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
