package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"trivium/internal/cli"
	"trivium/internal/question"
)

type featureState struct {
	questionsPath string
	tmpDir        string
	stdout        bytes.Buffer
	stderr        bytes.Buffer
	exitCode      int
	ran           bool
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a question file with a single three-option question$`, state.aSingleQuestionFile)
	ctx.Step(`^a question file with an out-of-range correct index$`, state.aBrokenQuestionFile)
	ctx.Step(`^I play a full quiz in catalog order answering every question correctly$`, state.iPlayFullQuizAllCorrect)
	ctx.Step(`^I run "([^"]*)"$`, state.iRunCommand)
	ctx.Step(`^I run "([^"]*)" with input:$`, state.iRunCommandWithInput)
	ctx.Step(`^I run the menu with input:$`, state.iRunMenuWithInput)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]*)"$`, state.theErrorOutputContains)
}

func (s *featureState) reset() {
	s.questionsPath = ""
	s.tmpDir = ""
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.ran = false
}

func (s *featureState) cleanup() {
	if s.tmpDir != "" {
		_ = os.RemoveAll(s.tmpDir)
	}
}

func (s *featureState) writeQuestionsFile(content string) error {
	dir, err := os.MkdirTemp("", "trivium-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.tmpDir = dir
	s.questionsPath = filepath.Join(dir, "questions.yml")
	if err := os.WriteFile(s.questionsPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write questions file: %w", err)
	}
	return nil
}

func (s *featureState) aSingleQuestionFile() error {
	return s.writeQuestionsFile(`version: 1
questions:
  - question: "2+2?"
    options: ["3", "4", "5"]
    correct_index: 1
    category: Math
    difficulty: Easy
`)
}

func (s *featureState) aBrokenQuestionFile() error {
	return s.writeQuestionsFile(`version: 1
questions:
  - question: "2+2?"
    options: ["3", "4"]
    correct_index: 5
    category: Math
    difficulty: Easy
`)
}

func (s *featureState) iPlayFullQuizAllCorrect() error {
	questions := question.Default().All()
	var script strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&script, "%d\n", q.CorrectIndex+1)
		if i < len(questions)-1 {
			script.WriteString("\n")
		}
	}
	return s.run([]string{"play", "--no-shuffle", "--ui", "plain"}, script.String())
}

func (s *featureState) iRunCommand(command string) error {
	return s.run(s.parseArgs(command), "")
}

func (s *featureState) iRunCommandWithInput(command string, input *godog.DocString) error {
	return s.run(s.parseArgs(command), input.Content+"\n")
}

func (s *featureState) iRunMenuWithInput(input *godog.DocString) error {
	return s.run(nil, input.Content+"\n")
}

// parseArgs splits a command line, substituting the <questions>
// placeholder with the scenario's question file path.
func (s *featureState) parseArgs(command string) []string {
	fields := strings.Fields(command)
	for i, field := range fields {
		if field == "<questions>" {
			fields[i] = s.questionsPath
		}
	}
	return fields
}

func (s *featureState) run(args []string, stdin string) error {
	s.exitCode = cli.Run(args, strings.NewReader(stdin), &s.stdout, &s.stderr)
	s.ran = true
	return nil
}

func (s *featureState) theExitCodeIs(expected int) error {
	if !s.ran {
		return fmt.Errorf("no command was run")
	}
	if s.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %q)", expected, s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputContains(expected string) error {
	if !strings.Contains(s.stdout.String(), expected) {
		return fmt.Errorf("expected %q in output:\n%s", expected, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(expected string) error {
	if !strings.Contains(s.stderr.String(), expected) {
		return fmt.Errorf("expected %q in error output:\n%s", expected, s.stderr.String())
	}
	return nil
}
