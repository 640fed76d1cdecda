package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens/assessment"
	"github.com/abhisek/careerfit/internal/screens/home"
	"github.com/abhisek/careerfit/internal/screens/results"
	"github.com/abhisek/careerfit/internal/screens/welcome"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

// Options holds the dependencies the screens need.
type Options struct {
	Catalog *catalog.Catalog
	Logger  *zap.Logger

	ReportDir    string
	ReportFormat report.Format

	// SkipSplash starts on the landing screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the splash screen.
func newAppModel(opts Options) AppModel {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	aopts := assessment.Options{
		Catalog: opts.Catalog,
		Logger:  opts.Logger,
		Results: results.Options{
			ReportDir:    opts.ReportDir,
			ReportFormat: opts.ReportFormat,
			Logger:       opts.Logger,
		},
	}
	newHome := func() screen.Screen {
		return home.New(func() screen.Screen { return assessment.New(aopts) }, opts.Catalog.Len())
	}

	var first screen.Screen
	if opts.SkipSplash {
		first = newHome()
	} else {
		first = welcome.New(newHome)
	}
	return AppModel{
		router: router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// footerHints prefers the active screen's own hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
