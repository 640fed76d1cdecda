package assessment

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/logger"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens/results"
	"github.com/abhisek/careerfit/internal/session"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

// Options configures an assessment run.
type Options struct {
	Catalog *catalog.Catalog

	// Results is passed on to the results screen. Its Retake factory is
	// filled in by the assessment.
	Results results.Options

	Logger *zap.Logger
}

// AssessmentScreen walks the user through the catalog one question at a time.
type AssessmentScreen struct {
	opts      Options
	keys      keyMap
	collector *session.Collector
	list      components.OptionList

	notice             string
	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.StatusProvider = (*AssessmentScreen)(nil)
var _ screen.BackHandler = (*AssessmentScreen)(nil)

// New starts a fresh assessment over opts.Catalog.
func New(opts Options) *AssessmentScreen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Results.Logger == nil {
		opts.Results.Logger = opts.Logger
	}

	s := &AssessmentScreen{opts: opts, keys: defaultKeys()}

	if opts.Catalog == nil {
		s.errMsg = session.ErrNoQuestions.Error()
		return s
	}
	c, err := session.New(opts.Catalog)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.collector = c
	s.loadQuestion()

	opts.Logger.Info("assessment started",
		zap.String(logger.FieldSessionID, c.ID()),
		zap.Int("questions", c.Len()))
	return s
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

// Status shows the question counter in the header.
func (s *AssessmentScreen) Status() string {
	if s.collector == nil {
		return ""
	}
	return fmt.Sprintf("Q %d/%d", s.collector.Index()+1, s.collector.Len())
}

// HandlesBack keeps Esc from discarding answers without a confirmation.
func (s *AssessmentScreen) HandlesBack() bool {
	return s.collector != nil
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	}
	prev := s.keys.Prev
	prev.SetEnabled(!s.collector.IsFirst())
	return layout.HintsFromBindings(
		s.keys.Down,
		s.keys.Choose,
		s.keys.Next,
		prev,
		s.keys.Quit,
	)
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuitConfirm {
		switch kmsg.String() {
		case "y", "Y":
			s.opts.Logger.Info("assessment abandoned",
				zap.String(logger.FieldSessionID, s.collector.ID()),
				zap.Int("answered", s.collector.Answered()))
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Quit):
		s.showingQuitConfirm = true
	case key.Matches(kmsg, s.keys.Up):
		s.list = s.list.Up()
	case key.Matches(kmsg, s.keys.Down):
		s.list = s.list.Down()
	case key.Matches(kmsg, s.keys.Choose):
		s.choose(s.list.Cursor)
	case key.Matches(kmsg, s.keys.Pick):
		s.choose(int(kmsg.String()[0] - '1'))
	case key.Matches(kmsg, s.keys.Prev):
		return s.previous()
	case key.Matches(kmsg, s.keys.Next):
		return s.next()
	}
	return s, nil
}

// choose records option i for the current question.
func (s *AssessmentScreen) choose(i int) {
	if err := s.collector.Select(i); err != nil {
		// Digits past the last option are ignored.
		if !errors.Is(err, session.ErrOptionOutOfRange) {
			s.opts.Logger.Warn("select failed", zap.Error(err))
		}
		return
	}
	s.notice = ""
	s.list.Cursor = i
	s.list.Chosen = i

	q := s.collector.Current()
	s.opts.Logger.Debug("answer recorded",
		zap.String(logger.FieldSessionID, s.collector.ID()),
		zap.String(logger.FieldQuestionID, q.ID),
		zap.Int("option", i))
}

func (s *AssessmentScreen) previous() (screen.Screen, tea.Cmd) {
	if err := s.collector.Previous(); err != nil {
		return s, nil
	}
	s.notice = ""
	s.loadQuestion()
	return s, nil
}

func (s *AssessmentScreen) next() (screen.Screen, tea.Cmd) {
	res, err := s.collector.Next()
	if err != nil {
		if errors.Is(err, session.ErrAnswerRequired) {
			s.notice = "Select an answer to continue"
		}
		return s, nil
	}
	s.notice = ""

	if res == nil {
		s.loadQuestion()
		return s, nil
	}

	summary := s.collector.Summary(s.opts.Catalog.Title())
	s.opts.Logger.Info("assessment completed",
		zap.String(logger.FieldSessionID, s.collector.ID()),
		zap.Float64(logger.FieldOverall, res.Overall),
		zap.String(logger.FieldTier, string(res.Tier)),
		zap.Duration("duration", summary.Duration))

	ropts := s.opts.Results
	opts := s.opts
	ropts.Retake = func() screen.Screen { return New(opts) }
	next := results.New(summary, ropts)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// loadQuestion resets the option list for the current question, keeping
// any answer already recorded for it.
func (s *AssessmentScreen) loadQuestion() {
	q := s.collector.Current()
	chosen := -1
	if a, ok := s.collector.CurrentAnswer(); ok {
		chosen = q.OptionIndex(a)
	}
	s.list = components.NewOptionList(q.Options, chosen)
}
