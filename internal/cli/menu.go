package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"trivium/internal/question"
	"trivium/internal/quiz"
)

// runMenu drives the top-level interactive menu over the built-in
// catalog. EOF anywhere is a clean exit; an in-flight session's partial
// score is discarded without being reported.
func runMenu(stdin io.Reader, stdout, stderr io.Writer) int {
	reader := bufio.NewReader(stdin)
	bank := question.Default()

	for {
		printMenu(stdout)
		line, err := readLine(reader)
		if err == io.EOF && strings.TrimSpace(line) == "" {
			fmt.Fprintln(stdout, "\nThanks for playing!")
			return ExitOK
		}
		if err != nil && err != io.EOF {
			fmt.Fprintf(stderr, "read input: %v\n", err)
			return ExitError
		}

		switch strings.TrimSpace(line) {
		case "1":
			if code, done := menuFullQuiz(bank, reader, stdout, stderr); done {
				return code
			}
		case "2":
			if code, done := menuPractice(bank, reader, stdout, stderr); done {
				return code
			}
		case "3":
			fmt.Fprintln(stdout, "\nThanks for playing!")
			return ExitOK
		default:
			fmt.Fprintln(stdout, "Please enter 1, 2, or 3.")
		}
	}
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out, "\nMain menu")
	fmt.Fprintln(out, "1. Start full quiz")
	fmt.Fprintln(out, "2. Practice by category")
	fmt.Fprintln(out, "3. Exit")
}

// menuFullQuiz runs one shuffled full quiz. done=true means the menu
// loop should stop with the given exit code.
func menuFullQuiz(bank *question.Bank, reader *bufio.Reader, stdout, stderr io.Writer) (int, bool) {
	session, err := quiz.New(bank.All(), newRand(0))
	if err != nil {
		fmt.Fprintf(stderr, "start quiz: %v\n", err)
		return ExitError, true
	}
	return finishMenuSession(session, reader, stdout, stderr)
}

// menuPractice lists categories, takes a selection, and runs a shuffled
// session over the matching questions. The bank itself is never touched.
func menuPractice(bank *question.Bank, reader *bufio.Reader, stdout, stderr io.Writer) (int, bool) {
	counts := bank.Categories()
	fmt.Fprintln(stdout, "\nAvailable categories")
	for i, count := range counts {
		fmt.Fprintf(stdout, "%d. %s (%s)\n", i+1, count.Label, countNoun(count.Count))
	}

	choice, ok, err := promptSelection(reader, stdout, "Select category", len(counts))
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return ExitError, true
	}
	if !ok {
		fmt.Fprintln(stdout, "\nThanks for playing!")
		return ExitOK, true
	}

	session, err := quiz.NewPractice(bank, counts[choice-1].Label, newRand(0))
	if err != nil {
		fmt.Fprintf(stderr, "start practice: %v\n", err)
		return ExitError, true
	}
	return finishMenuSession(session, reader, stdout, stderr)
}

func finishMenuSession(session *quiz.Session, reader *bufio.Reader, stdout, stderr io.Writer) (int, bool) {
	ok, err := runSessionPlain(session, reader, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "run quiz: %v\n", err)
		return ExitError, true
	}
	if !ok {
		fmt.Fprintln(stdout, "\nThanks for playing!")
		return ExitOK, true
	}
	return ExitOK, false
}

func countNoun(count int) string {
	if count == 1 {
		return "1 question"
	}
	return fmt.Sprintf("%d questions", count)
}
