package quiz

import (
	"math/rand"

	"trivium/internal/question"
)

// Shuffle returns a uniformly shuffled copy of questions drawn from rng.
// The input slice is never modified, so a bank's order survives any
// number of shuffled sessions.
func Shuffle(questions []question.Question, rng *rand.Rand) []question.Question {
	shuffled := make([]question.Question, len(questions))
	copy(shuffled, questions)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
