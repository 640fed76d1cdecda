package results

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/logger"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/session"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

// Options configures the results screen.
type Options struct {
	// Retake builds a fresh assessment. When nil the retake action is hidden.
	Retake func() screen.Screen

	// ReportDir and ReportFormat control where "save report" writes.
	ReportDir    string
	ReportFormat report.Format

	Logger *zap.Logger
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Save   key.Binding
	Retake key.Binding
	Home   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save report")),
		Retake: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retake")),
		Home:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "home")),
	}
}

// reportSavedMsg reports the outcome of writing the report file.
type reportSavedMsg struct {
	Path string
	Err  error
}

// ResultsScreen displays the scored outcome of one assessment.
type ResultsScreen struct {
	summary *session.Summary
	opts    Options
	keys    keyMap

	offset    int
	maxOffset int
	status    string
	statusErr bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for a completed assessment.
func New(summary *session.Summary, opts Options) *ResultsScreen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ReportDir == "" {
		opts.ReportDir = "."
	}
	if opts.ReportFormat == "" {
		opts.ReportFormat = report.FormatText
	}

	keys := defaultKeys()
	keys.Retake.SetEnabled(opts.Retake != nil)

	return &ResultsScreen{
		summary: summary,
		opts:    opts,
		keys:    keys,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(s.keys.Down, s.keys.Save, s.keys.Retake, s.keys.Home)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportSavedMsg:
		if msg.Err != nil {
			s.opts.Logger.Error("save report failed", zap.Error(msg.Err))
			s.status, s.statusErr = "Could not save report: "+msg.Err.Error(), true
			return s, nil
		}
		s.opts.Logger.Info("report saved", zap.String("path", msg.Path))
		s.status, s.statusErr = "Report saved to "+msg.Path, false
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Up):
			s.offset = max(s.offset-1, 0)
		case key.Matches(msg, s.keys.Down):
			s.offset = min(s.offset+1, s.maxOffset)
		case key.Matches(msg, s.keys.Save):
			return s, s.save()
		case key.Matches(msg, s.keys.Retake):
			next := s.opts.Retake()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case key.Matches(msg, s.keys.Home):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// save writes the report off the UI loop.
func (s *ResultsScreen) save() tea.Cmd {
	summary := s.summary
	if summary == nil {
		return nil
	}
	dir, format := s.opts.ReportDir, s.opts.ReportFormat
	s.opts.Logger.Debug("saving report",
		zap.String(logger.FieldSessionID, summary.SessionID),
		zap.String("format", string(format)))
	return func() tea.Msg {
		path, err := report.WriteFile(dir, summary, format)
		return reportSavedMsg{Path: path, Err: err}
	}
}
