package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/scoring"
)

// Collector owns the answer map for one assessment run. It tracks the
// current question, gates forward navigation on the current question being
// answered, and computes the result exactly once when the last question is
// passed.
type Collector struct {
	id        string
	questions QuestionSet
	index     int
	answers   scoring.Answers
	phase     Phase
	result    *scoring.Result

	startTime   time.Time
	completedAt time.Time
}

// New starts a collector at the first question with an empty answer map.
func New(qs QuestionSet) (*Collector, error) {
	if qs == nil || qs.Len() == 0 {
		return nil, ErrNoQuestions
	}
	return &Collector{
		id:        uuid.New().String(),
		questions: qs,
		answers:   scoring.Answers{},
		phase:     PhaseActive,
		startTime: time.Now(),
	}, nil
}

// ID returns the session identifier used for log correlation.
func (c *Collector) ID() string { return c.id }

// Phase returns the current lifecycle phase.
func (c *Collector) Phase() Phase { return c.phase }

// Complete reports whether the result has been computed.
func (c *Collector) Complete() bool { return c.phase == PhaseComplete }

// Index returns the zero-based position of the current question.
func (c *Collector) Index() int { return c.index }

// Len returns the number of questions in the session.
func (c *Collector) Len() int { return c.questions.Len() }

// IsFirst reports whether the current question is the first one.
func (c *Collector) IsFirst() bool { return c.index == 0 }

// IsLast reports whether the current question is the last one.
func (c *Collector) IsLast() bool { return c.index == c.questions.Len()-1 }

// Current returns the question at the current position.
func (c *Collector) Current() catalog.Question {
	return c.questions.At(c.index)
}

// Answer returns the recorded option for a question ID.
func (c *Collector) Answer(questionID string) (string, bool) {
	a, ok := c.answers[questionID]
	return a, ok
}

// CurrentAnswer returns the recorded option for the current question.
func (c *Collector) CurrentAnswer() (string, bool) {
	return c.Answer(c.Current().ID)
}

// Answers returns a copy of the answer map.
func (c *Collector) Answers() scoring.Answers {
	return c.answers.Clone()
}

// Answered returns the number of questions with a recorded answer.
func (c *Collector) Answered() int {
	n := 0
	for i := range c.questions.Len() {
		if _, ok := c.answers[c.questions.At(i).ID]; ok {
			n++
		}
	}
	return n
}

// Record stores option as the answer for questionID, replacing any earlier
// answer. IDs are not checked against the question set; the calculator
// skips unknown ones.
func (c *Collector) Record(questionID, option string) error {
	if c.Complete() {
		return ErrCompleted
	}
	c.answers[questionID] = option
	return nil
}

// Select records the option at index i for the current question.
func (c *Collector) Select(i int) error {
	if c.Complete() {
		return ErrCompleted
	}
	q := c.Current()
	if i < 0 || i >= len(q.Options) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOptionOutOfRange, i, len(q.Options))
	}
	return c.Record(q.ID, q.Options[i])
}

// CanAdvance reports whether the current question has been answered.
func (c *Collector) CanAdvance() bool {
	if c.Complete() {
		return false
	}
	_, ok := c.CurrentAnswer()
	return ok
}

// Previous moves back one question. It is a no-op on the first question and
// never changes recorded answers.
func (c *Collector) Previous() error {
	if c.Complete() {
		return ErrCompleted
	}
	if c.index > 0 {
		c.index--
	}
	return nil
}

// Next moves forward one question. On the last question it scores the
// answer map, marks the session complete and returns the result; otherwise
// the returned result is nil.
func (c *Collector) Next() (*scoring.Result, error) {
	if c.Complete() {
		return nil, ErrCompleted
	}
	if !c.CanAdvance() {
		return nil, ErrAnswerRequired
	}

	if !c.IsLast() {
		c.index++
		return nil, nil
	}

	r := scoring.Calculate(c.answers.Clone(), c.questions)
	c.result = &r
	c.phase = PhaseComplete
	c.completedAt = time.Now()
	return &r, nil
}

// Result returns the computed result once the session is complete.
func (c *Collector) Result() (scoring.Result, bool) {
	if c.result == nil {
		return scoring.Result{}, false
	}
	return *c.result, true
}

// Progress returns the completion percentage shown while answering.
func (c *Collector) Progress() float64 {
	return Progress(c.index, c.questions.Len())
}

// Elapsed returns the time spent so far, or the total once complete.
func (c *Collector) Elapsed() time.Duration {
	if c.Complete() {
		return c.completedAt.Sub(c.startTime)
	}
	return time.Since(c.startTime)
}
