package home

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next topic")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev topic")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// HomeScreen is the landing screen: what the role is, and a menu to start
// the assessment.
type HomeScreen struct {
	menu   components.Menu
	keys   keyMap
	panels []panel
	tab    int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the landing screen. startAssessment builds a fresh assessment
// each time it is chosen; questionCount is shown next to the menu entry.
func New(startAssessment func() screen.Screen, questionCount int) *HomeScreen {
	items := []components.MenuItem{
		{
			Label: "START ASSESSMENT",
			Hint:  fmt.Sprintf("%d questions", questionCount),
			Action: func() tea.Cmd {
				s := startAssessment()
				return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
			},
		},
		{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:   components.NewMenu(items),
		keys:   defaultKeys(),
		panels: panels(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(
		h.menu.Keys.Up,
		h.menu.Keys.Down,
		h.menu.Keys.Select,
		h.keys.NextTab,
		h.keys.Quit,
	)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(kmsg, h.keys.NextTab):
			h.tab = (h.tab + 1) % len(h.panels)
			return h, nil
		case key.Matches(kmsg, h.keys.PrevTab):
			h.tab = (h.tab - 1 + len(h.panels)) % len(h.panels)
			return h, nil
		case key.Matches(kmsg, h.keys.Quit):
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)

	var sections []string

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render(headline)))
	if !compact {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.TextDim).Render(tagline)))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.renderTabs()))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.renderPanel(cw, compact)))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(h.menu.View())))

	if !compact {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(footnote)))
	}

	return strings.Join(sections, "\n\n")
}

func (h *HomeScreen) renderTabs() string {
	tabs := make([]string, 0, len(h.panels))
	for i, p := range h.panels {
		if i == h.tab {
			tabs = append(tabs, theme.Selected.Underline(true).Render(p.Title))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Title))
		}
	}
	return strings.Join(tabs, "   ")
}

func (h *HomeScreen) renderPanel(cw int, compact bool) string {
	p := h.panels[h.tab]
	inner := max(cw-6, 10)

	var b strings.Builder
	if !compact || len(p.Items) == 0 {
		b.WriteString(lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render(p.Intro))
		b.WriteString("\n\n")
	}
	for i, item := range p.Items {
		bullet := lipgloss.NewStyle().Foreground(theme.Success).Render("✓ ")
		b.WriteString(bullet + lipgloss.NewStyle().Width(inner-2).Foreground(theme.Text).Render(item))
		if i < len(p.Items)-1 {
			b.WriteString("\n")
		}
	}

	return theme.Card.Width(cw).Render(b.String())
}

// contentWidth returns the shared width of the landing sections.
func contentWidth(width int) int {
	return max(min(width-8, 90), 40)
}
