package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"trivium/internal/question"
	"trivium/internal/quiz"
)

// runPractice builds the handler for the practice command.
func runPractice(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		var opts quizOptions
		addQuizFlags(flags, &opts)
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bank, err := loadBank(opts.questionsPath)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}

		category := strings.TrimSpace(flags.Arg(0))
		if category == "" {
			// One reader for the selection and the quiz itself, so
			// buffered input is not lost between the two.
			reader := bufio.NewReader(stdin)
			stdin = reader
			chosen, code, done := selectCategory(bank, reader, stdout, stderr)
			if done {
				return code
			}
			category = chosen
		}

		session, err := quiz.NewPractice(bank, category, newRand(opts.seed))
		if err != nil {
			if errors.Is(err, quiz.ErrNoQuestionsInCategory) {
				fmt.Fprintf(stderr, "No questions in category %q.\n", category)
				fmt.Fprintln(stderr, "Run \"trivium categories\" to list available categories.")
				return ExitError
			}
			fmt.Fprintf(stderr, "start practice: %v\n", err)
			return ExitError
		}

		return runSession(session, opts, stdin, stdout, stderr)
	}
}

// selectCategory lists categories and prompts for one. done=true means
// the command should stop with the given exit code.
func selectCategory(bank *question.Bank, reader *bufio.Reader, stdout, stderr io.Writer) (string, int, bool) {
	counts := bank.Categories()
	fmt.Fprintln(stdout, "Available categories")
	for i, count := range counts {
		fmt.Fprintf(stdout, "%d. %s (%s)\n", i+1, count.Label, countNoun(count.Count))
	}
	choice, ok, err := promptSelection(reader, stdout, "Select category", len(counts))
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return "", ExitError, true
	}
	if !ok {
		return "", ExitOK, true
	}
	return counts[choice-1].Label, ExitOK, false
}
