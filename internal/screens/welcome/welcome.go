package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// thermometerRows fill from the bottom as the splash plays.
var thermometerRows = []string{
	"   ╭─╮   ",
	"   │%s│ 8°",
	"   │%s│   ",
	"   │%s│   ",
	"   │%s│ 2°",
	"  ╭┴─┴╮  ",
	"  │ ● │  ",
	"  ╰───╯  ",
}

// columnRows are the rows of the thermometer column, top to bottom.
const columnRows = 4

var sparkleFrames = []string{"❄", "✻"}

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the landing
// screen. Any key skips straight to the landing screen.
type WelcomeScreen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by nextFactory.
func New(nextFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		nextFactory: nextFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// level returns how many thermometer rows are filled.
func (w *WelcomeScreen) level() int {
	filled := int(w.elapsed * columnRows / phase2End)
	return min(filled, columnRows)
}

func (w *WelcomeScreen) renderThermometer() string {
	filled := w.level()
	lines := make([]string, 0, len(thermometerRows))
	col := 0
	for _, row := range thermometerRows {
		if strings.Contains(row, "%s") {
			cell := " "
			if columnRows-col <= filled {
				cell = "█"
			}
			row = strings.Replace(row, "%s", cell, 1)
			col++
		}
		lines = append(lines, row)
	}
	return lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Join(lines, "\n"))
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	art := w.renderThermometer()

	if w.elapsed >= phase1End {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		s := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)
		art = lipgloss.JoinHorizontal(lipgloss.Center, s+"  ", art, "  "+s)
	}
	sections = append(sections, art)

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Should I Become a Cold Chain Specialist?"),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
