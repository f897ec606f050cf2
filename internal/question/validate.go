package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question file validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeFile trims whitespace and validates a question file.
func NormalizeFile(file File) (File, error) {
	collector := &issueCollector{}
	if file.Version == 0 {
		collector.add("version", "is required")
	} else if file.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}
	if len(file.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	for i, q := range file.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		q.Text = strings.TrimSpace(q.Text)
		if q.Text == "" {
			collector.add(prefix+".question", "is required")
		}

		q.Options = normalizeStringSlice(q.Options)
		if len(q.Options) < 2 {
			collector.add(prefix+".options", "must include at least two entries")
		}
		for optionIndex, option := range q.Options {
			if option == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
			}
		}

		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			collector.add(prefix+".correct_index", fmt.Sprintf("must be between 0 and %d", len(q.Options)-1))
		}

		q.Category = strings.TrimSpace(q.Category)
		if q.Category == "" {
			collector.add(prefix+".category", "is required")
		}
		q.Difficulty = strings.TrimSpace(q.Difficulty)
		if q.Difficulty == "" {
			collector.add(prefix+".difficulty", "is required")
		}

		file.Questions[i] = q
	}

	if err := collector.result(); err != nil {
		return File{}, err
	}
	return file, nil
}

// validateQuestions enforces the bank-level invariants: non-empty text,
// at least two options, and a correct index inside the option range.
// Category and difficulty stay free-form here.
func validateQuestions(questions []Question) error {
	collector := &issueCollector{}
	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(q.Text) == "" {
			collector.add(prefix+".question", "is required")
		}
		if len(q.Options) < 2 {
			collector.add(prefix+".options", "must include at least two entries")
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			collector.add(prefix+".correct_index", fmt.Sprintf("must be between 0 and %d", len(q.Options)-1))
		}
	}
	return collector.result()
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
