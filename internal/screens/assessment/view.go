package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, s.collector.Answered())
	}
	return s.renderQuestion(width, height)
}

func (s *AssessmentScreen) renderQuestion(width, height int) string {
	c := s.collector
	q := c.Current()
	cw := max(min(width-8, 80), 40)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString("\n")

	// Progress.
	label := fmt.Sprintf("Question %d of %d", c.Index()+1, c.Len())
	b.WriteString(center(components.NewProgressBar(label, c.Progress()/100, true, cw).View()))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Width(cw).Foreground(theme.Secondary).Bold(true).
		Render(catalog.CategoryDisplayName(q.Category) + " · " + formatLabel(q.Format))))
	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		b.WriteString("\n")
		b.WriteString(layout.Divider(width))
	}
	b.WriteString("\n\n")

	// Question and options.
	b.WriteString(center(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text)))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().Width(cw).Render(s.list.View())))
	b.WriteString("\n\n")

	if s.notice != "" {
		b.WriteString(center(theme.Warn.Render(s.notice)))
		b.WriteString("\n\n")
	}

	nextLabel := "Next"
	if c.IsLast() {
		nextLabel = "See Results"
	}
	b.WriteString(center(components.ButtonRow(
		components.NewButton("Previous", !c.IsFirst()),
		components.NewButton(nextLabel, c.CanAdvance()),
	)))

	return b.String()
}

// formatLabel names how a question's options are laid out.
func formatLabel(f catalog.Format) string {
	switch f {
	case catalog.FormatLikert:
		return "Rating scale"
	case catalog.FormatMultipleChoice:
		return "Multiple choice"
	case catalog.FormatScenario:
		return "Scenario"
	default:
		return string(f)
	}
}

func renderQuitConfirm(width, answered int) string {
	line := func(str string, style lipgloss.Style) string {
		return style.Width(width).Align(lipgloss.Center).Render(str)
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(line("Leave the assessment?", lipgloss.NewStyle().Foreground(theme.Text).Bold(true)))
	b.WriteString("\n")
	b.WriteString(line(fmt.Sprintf("Your %d answers will be discarded.", answered),
		lipgloss.NewStyle().Foreground(theme.TextDim)))
	b.WriteString("\n\n")
	b.WriteString(line("[Y] Yes, leave", lipgloss.NewStyle().Foreground(theme.Error)))
	b.WriteString("\n")
	b.WriteString(line("[N] No, keep going", lipgloss.NewStyle().Foreground(theme.Primary)))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Could not start the assessment: %s\n\n  Press any key to go back.", errMsg))
}
