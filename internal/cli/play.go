package cli

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"trivium/internal/quiz"
)

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
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
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bank, err := loadBank(opts.questionsPath)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}

		var rng *rand.Rand
		if !opts.noShuffle {
			rng = newRand(opts.seed)
		}
		session, err := quiz.New(bank.All(), rng)
		if err != nil {
			fmt.Fprintf(stderr, "start quiz: %v\n", err)
			return ExitError
		}

		return runSession(session, opts, stdin, stdout, stderr)
	}
}
