package quiz

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"trivium/internal/question"
)

// Outcome reports the result of one submitted answer. CorrectIndex is
// always set so a driver can reveal the right option after a miss.
type Outcome struct {
	Correct      bool
	CorrectIndex int
}

// Session drives a single play-through over a fixed question order. It is
// single-use and single-owner: construct one per play-through, feed it
// answers until Complete, then read its Result. Every rejected call
// leaves the session exactly as it was.
type Session struct {
	id        string
	questions []question.Question
	position  int
	score     int
	startedAt time.Time
	clock     Clock
	result    *Result
}

// Option configures a session at construction.
type Option func(*Session)

// WithClock overrides the clock used for StartedAt and Elapsed.
func WithClock(clock Clock) Option {
	return func(session *Session) {
		session.clock = clock
	}
}

// New builds a session over questions. A non-nil rng fixes the session
// order to a uniform random permutation; nil preserves the input order.
// The input slice is copied either way.
func New(questions []question.Question, rng *rand.Rand, opts ...Option) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuestionSet
	}
	session := &Session{
		id:    uuid.New().String(),
		clock: realClock{},
	}
	for _, opt := range opts {
		opt(session)
	}
	if rng != nil {
		session.questions = Shuffle(questions, rng)
	} else {
		session.questions = make([]question.Question, len(questions))
		copy(session.questions, questions)
	}
	session.startedAt = session.clock.Now()
	return session, nil
}

// NewPractice filters bank questions by category and builds a session
// over the matches. It fails with ErrNoQuestionsInCategory before any
// session exists when the filter comes back empty.
func NewPractice(bank *question.Bank, category string, rng *rand.Rand, opts ...Option) (*Session, error) {
	filtered := bank.FilterByCategory(category)
	if len(filtered) == 0 {
		return nil, ErrNoQuestionsInCategory
	}
	return New(filtered, rng, opts...)
}

// ID returns the session identifier.
func (session *Session) ID() string {
	return session.id
}

// Total returns the number of questions in the session.
func (session *Session) Total() int {
	return len(session.questions)
}

// Position returns the index of the next unanswered question.
func (session *Session) Position() int {
	return session.position
}

// Score returns the number of correct answers so far.
func (session *Session) Score() int {
	return session.score
}

// StartedAt returns the session construction time.
func (session *Session) StartedAt() time.Time {
	return session.startedAt
}

// Complete reports whether every question has been answered.
func (session *Session) Complete() bool {
	return session.position == len(session.questions)
}

// Current returns the question at the cursor. It fails with
// ErrSessionComplete once every question has been answered.
func (session *Session) Current() (question.Question, error) {
	if session.Complete() {
		return question.Question{}, ErrSessionComplete
	}
	return session.questions[session.position], nil
}

// Submit checks choice against the current question. An out-of-range
// choice fails with ErrInvalidChoice without consuming the turn, so a
// driver can re-prompt. A valid choice advances the cursor by one and
// counts the score on a match.
func (session *Session) Submit(choice int) (Outcome, error) {
	current, err := session.Current()
	if err != nil {
		return Outcome{}, err
	}
	if choice < 0 || choice >= len(current.Options) {
		return Outcome{}, ErrInvalidChoice
	}
	outcome := Outcome{
		Correct:      choice == current.CorrectIndex,
		CorrectIndex: current.CorrectIndex,
	}
	if outcome.Correct {
		session.score++
	}
	session.position++
	return outcome, nil
}

// Finish produces the session result. It fails with ErrSessionNotComplete
// while questions remain. The first call computes the result; repeat
// calls return the same cached value.
func (session *Session) Finish() (Result, error) {
	if !session.Complete() {
		return Result{}, ErrSessionNotComplete
	}
	if session.result != nil {
		return *session.result, nil
	}
	now := session.clock.Now()
	result := Result{
		Score:       session.score,
		Total:       len(session.questions),
		Percentage:  100 * float64(session.score) / float64(len(session.questions)),
		Elapsed:     now.Sub(session.startedAt),
		CompletedAt: now,
	}
	session.result = &result
	return result, nil
}
