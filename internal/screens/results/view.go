package results

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

const (
	scoreLabelWidth = 14
	bandWidth       = 32
)

func (s *ResultsScreen) View(width, height int) string {
	if s.summary == nil {
		return ""
	}

	lines := strings.Split(s.render(width), "\n")

	s.maxOffset = max(len(lines)-height, 0)
	s.offset = min(s.offset, s.maxOffset)

	end := min(s.offset+height, len(lines))
	return strings.Join(lines[s.offset:end], "\n")
}

// render builds the full, unscrolled results page.
func (s *ResultsScreen) render(width int) string {
	sum := s.summary
	r := sum.Result
	cw := max(min(width-8, 80), 40)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	// Headline.
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.TierColor(string(r.Tier))).
		Bold(true).
		Render(sum.Guidance.Title)))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(sum.Guidance.Description)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Answered %d of %d", sum.Answered, sum.Total)
	if sum.Duration > 0 {
		mins := int(sum.Duration.Minutes())
		secs := int(sum.Duration.Seconds()) % 60
		stats += fmt.Sprintf("        Time: %d:%02d", mins, secs)
	}
	b.WriteString(center(theme.Hint.Render(stats)))
	b.WriteString("\n\n")

	// Scores.
	b.WriteString(layout.Section("Scores", width))
	b.WriteString("\n\n")
	barWidth := max(cw-bandWidth, 20)
	b.WriteString(center(scoreRow("Overall", r.Overall, r.Tier.Label(), barWidth, theme.TierColor(string(r.Tier)))))
	b.WriteString("\n")
	b.WriteString(center(scoreRow("Technical", r.Technical, scoring.TechnicalBand(r.Technical), barWidth, nil)))
	b.WriteString("\n")
	b.WriteString(center(scoreRow("Psychometric", r.Psychometric, scoring.PsychometricBand(r.Psychometric), barWidth, nil)))
	b.WriteString("\n\n")

	// WISCAR.
	b.WriteString(layout.Section("WISCAR", width))
	b.WriteString("\n\n")
	var dims []string
	for _, d := range catalog.AllDimensions() {
		bar := components.ScoreBar(catalog.DimensionDisplayName(d), r.Dimension(d), scoreLabelWidth, cw)
		bar.Fill = theme.Primary
		dims = append(dims, bar.View())
	}
	b.WriteString(center(strings.Join(dims, "\n")))
	b.WriteString("\n\n")

	// Roles.
	b.WriteString(layout.Section("Career roles", width))
	b.WriteString("\n\n")
	var roles []string
	for _, rf := range sum.Roles {
		fit := lipgloss.NewStyle().
			Foreground(theme.FitColor(string(rf.Fit))).
			Bold(true).
			Render(fmt.Sprintf("[%s]", rf.Fit))
		title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(rf.Title)
		desc := lipgloss.NewStyle().Width(cw - 2).Foreground(theme.TextDim).Render(rf.Description)
		roles = append(roles, title+"  "+fit+"\n  "+desc)
	}
	b.WriteString(center(lipgloss.NewStyle().Width(cw).Render(strings.Join(roles, "\n"))))
	b.WriteString("\n\n")

	// Next steps.
	b.WriteString(layout.Section("Next steps", width))
	b.WriteString("\n\n")
	var steps []string
	for i, step := range sum.Guidance.NextSteps {
		steps = append(steps, fmt.Sprintf("%d. %s", i+1, step))
	}
	b.WriteString(center(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(strings.Join(steps, "\n"))))

	if s.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.statusErr {
			style = theme.Warn
		}
		b.WriteString("\n\n")
		b.WriteString(center(style.Render(s.status)))
	}

	return b.String()
}

// scoreRow renders a score bar followed by its band description.
func scoreRow(label string, score float64, band string, barWidth int, fill color.Color) string {
	bar := components.ScoreBar(label, score, scoreLabelWidth, barWidth)
	bar.Fill = fill
	return bar.View() + "  " + lipgloss.NewStyle().
		Width(bandWidth-2).
		Foreground(theme.TextDim).
		Render(band)
}
