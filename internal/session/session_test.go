package session

import (
	"errors"
	"maps"
	"reflect"
	"testing"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/scoring"
)

func newCollector(t *testing.T) *Collector {
	t.Helper()
	c, err := New(catalog.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// answerThrough answers every question and advances, stopping on the last
// question without passing it. Technical questions get the correct answer;
// the rest get option idx, or their last option when they have fewer.
func answerThrough(t *testing.T, c *Collector, idx int) {
	t.Helper()
	answer := func() {
		q := c.Current()
		if key, ok := catalog.Default().CorrectAnswer(q.ID); ok {
			if err := c.Record(q.ID, key); err != nil {
				t.Fatalf("Record(%s): %v", q.ID, err)
			}
			return
		}
		if err := c.Select(min(idx, len(q.Options)-1)); err != nil {
			t.Fatalf("Select on %s: %v", q.ID, err)
		}
	}
	for !c.IsLast() {
		answer()
		r, err := c.Next()
		if err != nil {
			t.Fatalf("Next at %d: %v", c.Index(), err)
		}
		if r != nil {
			t.Fatalf("Next at %d returned a result before the last question", c.Index())
		}
	}
	answer()
}

func mustAnswer(t *testing.T, c *Collector, id string) string {
	t.Helper()
	a, ok := c.Answer(id)
	if !ok {
		t.Fatalf("no answer recorded for %s", id)
	}
	return a
}

func TestNew_StartsAtFirstQuestion(t *testing.T) {
	c := newCollector(t)

	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
	if c.Phase() != PhaseActive {
		t.Errorf("Phase = %v, want active", c.Phase())
	}
	if got := c.Current().ID; got != "p1" {
		t.Errorf("Current().ID = %q, want p1", got)
	}
	if len(c.Answers()) != 0 {
		t.Errorf("expected no answers, got %v", c.Answers())
	}
	if c.ID() == "" {
		t.Error("expected a session ID")
	}
	if !c.IsFirst() || c.IsLast() {
		t.Errorf("IsFirst = %v, IsLast = %v, want true, false", c.IsFirst(), c.IsLast())
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	a := newCollector(t)
	b := newCollector(t)
	if a.ID() == b.ID() {
		t.Errorf("two collectors share ID %q", a.ID())
	}
}

func TestNew_NilQuestionSet(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("New(nil) error = %v, want ErrNoQuestions", err)
	}
}

func TestRecord_LastWriteWins(t *testing.T) {
	c := newCollector(t)

	for _, opt := range []string{"Agree", "Disagree", "Disagree"} {
		if err := c.Record("p1", opt); err != nil {
			t.Fatalf("Record(p1, %q): %v", opt, err)
		}
	}

	if got := mustAnswer(t, c, "p1"); got != "Disagree" {
		t.Errorf("answer = %q, want Disagree", got)
	}
	if n := len(c.Answers()); n != 1 {
		t.Errorf("len(Answers) = %d, want 1", n)
	}
}

func TestRecord_AcceptsUnknownID(t *testing.T) {
	c := newCollector(t)
	if err := c.Record("nope", "x"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	mustAnswer(t, c, "nope")
}

func TestSelect(t *testing.T) {
	c := newCollector(t)

	if err := c.Select(4); err != nil {
		t.Fatalf("Select(4): %v", err)
	}
	a, ok := c.CurrentAnswer()
	if !ok || a != "Strongly Agree" {
		t.Errorf("CurrentAnswer = %q, %v, want Strongly Agree, true", a, ok)
	}
}

func TestSelect_OutOfRange(t *testing.T) {
	c := newCollector(t)

	for _, idx := range []int{-1, 5, 100} {
		err := c.Select(idx)
		if !errors.Is(err, ErrOptionOutOfRange) {
			t.Errorf("Select(%d) error = %v, want ErrOptionOutOfRange", idx, err)
		}
	}
	if len(c.Answers()) != 0 {
		t.Errorf("out-of-range selects recorded %v", c.Answers())
	}
}

func TestNext_RequiresAnswer(t *testing.T) {
	c := newCollector(t)

	if c.CanAdvance() {
		t.Error("CanAdvance = true before answering")
	}
	r, err := c.Next()
	if !errors.Is(err, ErrAnswerRequired) {
		t.Errorf("Next error = %v, want ErrAnswerRequired", err)
	}
	if r != nil {
		t.Errorf("Next returned result %+v", r)
	}
	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
}

func TestNext_Advances(t *testing.T) {
	c := newCollector(t)

	if err := c.Select(2); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !c.CanAdvance() {
		t.Fatal("CanAdvance = false after answering")
	}

	r, err := c.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r != nil {
		t.Errorf("Next returned result %+v on the first question", r)
	}
	if c.Index() != 1 || c.Current().ID != "p2" {
		t.Errorf("at %d (%s), want 1 (p2)", c.Index(), c.Current().ID)
	}
	if c.CanAdvance() {
		t.Error("CanAdvance = true on an unanswered question")
	}
}

func TestPrevious_NoOpAtStart(t *testing.T) {
	c := newCollector(t)
	if err := c.Previous(); err != nil {
		t.Fatalf("Previous: %v", err)
	}
	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
}

func TestPrevious_KeepsAnswers(t *testing.T) {
	c := newCollector(t)

	if err := c.Select(3); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Next(); err != nil {
		t.Fatal(err)
	}
	if err := c.Select(1); err != nil {
		t.Fatal(err)
	}
	if err := c.Previous(); err != nil {
		t.Fatalf("Previous: %v", err)
	}

	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
	if got := mustAnswer(t, c, "p1"); got != "Agree" {
		t.Errorf("p1 = %q, want Agree", got)
	}
	if got := mustAnswer(t, c, "p2"); got != "Disagree" {
		t.Errorf("p2 = %q, want Disagree", got)
	}

	// Answered questions can be passed again without re-answering.
	if !c.CanAdvance() {
		t.Error("CanAdvance = false on an answered question")
	}
}

func TestNext_LastQuestionComputesResult(t *testing.T) {
	c := newCollector(t)
	answerThrough(t, c, 4)

	r, err := c.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r == nil {
		t.Fatal("expected a result on the last question")
	}

	if !c.Complete() || c.Phase() != PhaseComplete {
		t.Errorf("Complete = %v, Phase = %v, want complete", c.Complete(), c.Phase())
	}
	if r.Psychometric != 125 {
		t.Errorf("Psychometric = %v, want 125", r.Psychometric)
	}
	if r.Technical != 100 {
		t.Errorf("Technical = %v, want 100", r.Technical)
	}
	if r.Tier != scoring.TierYes {
		t.Errorf("Tier = %q, want %q", r.Tier, scoring.TierYes)
	}
	if n := c.Answered(); n != 14 {
		t.Errorf("Answered = %d, want 14", n)
	}

	stored, ok := c.Result()
	if !ok {
		t.Fatal("Result not available after completion")
	}
	if !reflect.DeepEqual(*r, stored) {
		t.Errorf("stored result %+v differs from returned %+v", stored, *r)
	}
}

func TestCompleted_IsOneWay(t *testing.T) {
	c := newCollector(t)
	answerThrough(t, c, 0)
	if _, err := c.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}

	before := c.Answers()

	if err := c.Record("p1", "Agree"); !errors.Is(err, ErrCompleted) {
		t.Errorf("Record error = %v, want ErrCompleted", err)
	}
	if err := c.Select(1); !errors.Is(err, ErrCompleted) {
		t.Errorf("Select error = %v, want ErrCompleted", err)
	}
	if err := c.Previous(); !errors.Is(err, ErrCompleted) {
		t.Errorf("Previous error = %v, want ErrCompleted", err)
	}
	if _, err := c.Next(); !errors.Is(err, ErrCompleted) {
		t.Errorf("Next error = %v, want ErrCompleted", err)
	}
	if c.CanAdvance() {
		t.Error("CanAdvance = true after completion")
	}
	if !maps.Equal(before, c.Answers()) {
		t.Errorf("answers changed after completion: %v -> %v", before, c.Answers())
	}
}

func TestReanswerReplacesContribution(t *testing.T) {
	c := newCollector(t)
	answerThrough(t, c, 0)

	// Jump back to w4 (cognitive), change the answer, then walk forward.
	for c.Current().ID != "w4" {
		if err := c.Previous(); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Select(4); err != nil {
		t.Fatal(err)
	}
	if err := c.Select(2); err != nil {
		t.Fatal(err)
	}
	for !c.IsLast() {
		if _, err := c.Next(); err != nil {
			t.Fatal(err)
		}
	}

	r, err := c.Next()
	if err != nil || r == nil {
		t.Fatalf("Next = %v, %v, want a result", r, err)
	}
	if got := r.Dimension(catalog.DimensionCognitive); got != 60 {
		t.Errorf("cognitive = %v, want 60", got)
	}
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	c := newCollector(t)
	if err := c.Select(0); err != nil {
		t.Fatal(err)
	}

	a := c.Answers()
	a["p1"] = "tampered"
	a["extra"] = "x"

	if got := mustAnswer(t, c, "p1"); got != "Strongly Disagree" {
		t.Errorf("p1 = %q, want Strongly Disagree", got)
	}
	if n := len(c.Answers()); n != 1 {
		t.Errorf("len(Answers) = %d, want 1", n)
	}
}

func TestResult_BeforeCompletion(t *testing.T) {
	c := newCollector(t)
	if _, ok := c.Result(); ok {
		t.Error("Result available before completion")
	}
	if s := c.Summary("x"); s != nil {
		t.Errorf("Summary = %+v, want nil", s)
	}
}

func TestSummary(t *testing.T) {
	c := newCollector(t)
	answerThrough(t, c, 4)
	if _, err := c.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}

	s := c.Summary(catalog.Default().Title())
	if s == nil {
		t.Fatal("expected a summary after completion")
	}
	if s.SessionID != c.ID() {
		t.Errorf("SessionID = %q, want %q", s.SessionID, c.ID())
	}
	if s.Title != "Cold Chain Specialist Assessment" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.Answered != 14 || s.Total != 14 {
		t.Errorf("Answered/Total = %d/%d, want 14/14", s.Answered, s.Total)
	}
	if s.Result.Tier != scoring.TierYes {
		t.Errorf("Tier = %q, want %q", s.Result.Tier, scoring.TierYes)
	}
	if len(s.Roles) != 4 {
		t.Errorf("len(Roles) = %d, want 4", len(s.Roles))
	}
	if s.Guidance.Title == "" {
		t.Error("expected guidance title")
	}
}
