package cli

import (
	"flag"
	"math/rand"
	"strings"
	"time"

	"trivium/internal/question"
)

// quizOptions holds the flags shared by the play and practice commands.
type quizOptions struct {
	questionsPath string
	seed          int64
	noShuffle     bool
	uiMode        string
	noColor       bool
}

func addQuizFlags(flags *flag.FlagSet, opts *quizOptions) {
	flags.StringVar(&opts.questionsPath, "questions", "", "Path to a YAML or JSON question file (default: built-in catalog)")
	flags.Int64Var(&opts.seed, "seed", 0, "Shuffle seed (default: time-based)")
	flags.BoolVar(&opts.noShuffle, "no-shuffle", false, "Keep the catalog order instead of shuffling")
	flags.StringVar(&opts.uiMode, "ui", "auto", "UI mode: auto, live, or plain")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable color output")
}

// loadBank resolves the question bank for a command: the built-in
// catalog, or a validated question file when a path was given.
func loadBank(path string) (*question.Bank, error) {
	if strings.TrimSpace(path) == "" {
		return question.Default(), nil
	}
	return question.LoadBank(path)
}

// newRand seeds a random source; zero means seed from the wall clock.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
