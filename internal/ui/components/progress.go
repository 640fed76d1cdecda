package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label string
	// LabelWidth pads the label so stacked bars line up. Zero means no padding.
	LabelWidth int
	// Percent is the filled fraction in [0, 1]; values outside are clamped.
	Percent float64
	// Suffix replaces the percentage text when set, e.g. a raw score.
	Suffix      string
	ShowPercent bool
	Width       int
	// Fill overrides the filled color. Nil uses the theme's secondary color.
	Fill color.Color
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// ScoreBar builds a bar for a 0-100 score. Scores above 100 fill the bar
// while the suffix still shows the real value.
func ScoreBar(label string, score float64, labelWidth, width int) ProgressBar {
	return ProgressBar{
		Label:      label,
		LabelWidth: labelWidth,
		Percent:    score / 100,
		Suffix:     fmt.Sprintf("%.0f", score),
		Width:      width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		label := p.Label
		if pad := p.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	}

	tail := ""
	switch {
	case p.Suffix != "":
		tail = fmt.Sprintf("  %4s", p.Suffix)
	case p.ShowPercent:
		tail = fmt.Sprintf("  %3d%%", int(clamp01(p.Percent)*100))
	}

	barWidth := max(p.Width-lipgloss.Width(result)-len(tail), 4)

	filled := int(float64(barWidth) * clamp01(p.Percent))
	empty := barWidth - filled

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if tail != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(tail)
	}

	return result
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
