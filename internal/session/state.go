package session

import (
	"errors"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/scoring"
)

// Phase represents the lifecycle phase of an assessment session.
type Phase int

const (
	PhaseActive   Phase = iota // Collecting answers
	PhaseComplete              // Result computed; the session is read-only
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

var (
	// ErrAnswerRequired is returned by Next when the current question has
	// no recorded answer.
	ErrAnswerRequired = errors.New("select an answer to continue")

	// ErrCompleted is returned by every mutating call once the result has
	// been computed.
	ErrCompleted = errors.New("assessment already completed")

	// ErrOptionOutOfRange is returned by Select for an index outside the
	// current question's options.
	ErrOptionOutOfRange = errors.New("option index out of range")

	// ErrNoQuestions is returned by New for an empty question set.
	ErrNoQuestions = errors.New("question set is empty")
)

// QuestionSet is the ordered question source a Collector walks through.
type QuestionSet interface {
	scoring.QuestionSource
	Len() int
	At(i int) catalog.Question
}
