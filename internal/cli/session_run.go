package cli

import (
	"bufio"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"trivium/internal/quiz"
	"trivium/internal/ui/play"
)

// runSession resolves the UI mode and drives the session to completion
// through the matching driver.
func runSession(session *quiz.Session, opts quizOptions, stdin io.Reader, stdout, stderr io.Writer) int {
	decision, err := resolveUIMode(opts.uiMode, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return ExitUsage
	}
	if decision.warning != "" {
		fmt.Fprintln(stderr, decision.warning)
	}
	if decision.useLive {
		return runSessionLive(session, opts.noColor, stdin, stdout, stderr)
	}

	reader := bufio.NewReader(stdin)
	ok, err := runSessionPlain(session, reader, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "run quiz: %v\n", err)
		return ExitError
	}
	if !ok {
		fmt.Fprintln(stdout, "\nThanks for playing!")
	}
	return ExitOK
}

// runSessionLive runs the Bubble Tea quiz UI over the session. Quitting
// mid-session is a clean exit; the partial score is discarded.
func runSessionLive(session *quiz.Session, noColor bool, stdin io.Reader, stdout, stderr io.Writer) int {
	model := play.NewModel(session, play.Options{NoColor: noColor})
	program := tea.NewProgram(model, tea.WithInput(stdin), tea.WithOutput(stdout))
	final, err := program.Run()
	if err != nil {
		fmt.Fprintf(stderr, "run quiz ui: %v\n", err)
		return ExitError
	}
	if finalModel, ok := final.(play.Model); ok && finalModel.Aborted() {
		fmt.Fprintln(stdout, "Thanks for playing!")
	}
	return ExitOK
}
