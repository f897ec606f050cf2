package quiz

import "errors"

// ErrEmptyQuestionSet indicates a session was constructed without questions.
var ErrEmptyQuestionSet = errors.New("empty question set")

// ErrInvalidChoice indicates an answer index outside the current question's options.
var ErrInvalidChoice = errors.New("choice out of range")

// ErrSessionComplete indicates an operation that needs an active session.
var ErrSessionComplete = errors.New("session is complete")

// ErrSessionNotComplete indicates Finish was called with questions remaining.
var ErrSessionNotComplete = errors.New("session is not complete")

// ErrNoQuestionsInCategory indicates a category filter matched nothing.
var ErrNoQuestionsInCategory = errors.New("no questions in category")
