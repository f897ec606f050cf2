package question

import "errors"

// ErrEmptyBank rejects building a bank without questions.
var ErrEmptyBank = errors.New("question bank is empty")

// Bank is an immutable ordered catalog of questions. Accessors hand out
// copies, so a bank can back any number of sessions without aliasing.
type Bank struct {
	questions []Question
}

// CategoryCount pairs a category label with its question count.
type CategoryCount struct {
	Label string
	Count int
}

// NewBank validates questions and builds a bank over a copy of them.
func NewBank(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	owned := make([]Question, len(questions))
	copy(owned, questions)
	return &Bank{questions: owned}, nil
}

// Len returns the number of questions in the bank.
func (bank *Bank) Len() int {
	return len(bank.questions)
}

// All returns the full catalog in insertion order.
func (bank *Bank) All() []Question {
	out := make([]Question, len(bank.questions))
	copy(out, bank.questions)
	return out
}

// Categories returns the distinct category labels with per-category
// counts, in first-seen order over the catalog. The order is stable
// across calls, which keeps menu numbering consistent.
func (bank *Bank) Categories() []CategoryCount {
	indexByLabel := map[string]int{}
	counts := []CategoryCount{}
	for _, q := range bank.questions {
		if i, seen := indexByLabel[q.Category]; seen {
			counts[i].Count++
			continue
		}
		indexByLabel[q.Category] = len(counts)
		counts = append(counts, CategoryCount{Label: q.Category, Count: 1})
	}
	return counts
}

// FilterByCategory returns the questions whose category equals label
// exactly, preserving their relative order. The result is empty when no
// question matches; callers must not start a session over it.
func (bank *Bank) FilterByCategory(label string) []Question {
	filtered := []Question{}
	for _, q := range bank.questions {
		if q.Category == label {
			filtered = append(filtered, q)
		}
	}
	return filtered
}
