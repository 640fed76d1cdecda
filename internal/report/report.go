package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/session"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat accepts the format names used by flags and config.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want text, markdown or json)", s)
	}
}

// Render writes the report for s to w.
func Render(w io.Writer, s *session.Summary, f Format) error {
	if s == nil {
		return fmt.Errorf("render report: no summary")
	}
	switch f {
	case FormatText:
		return renderText(w, newView(s))
	case FormatMarkdown:
		return renderMarkdown(w, newView(s))
	case FormatJSON:
		return renderJSON(w, s)
	default:
		return fmt.Errorf("render report: unknown format %q", f)
	}
}

// scoreLine is one labelled score with its rounded display value.
type scoreLine struct {
	Label string
	Value int
	Bar   string
	Note  string
}

// view is the display model shared by the text and markdown renderers.
type view struct {
	Title      string
	SessionID  string
	Answered   int
	Total      int
	Duration   string
	Tier       scoring.Tier
	TierLabel  string
	Guidance   scoring.Guidance
	Overall    scoreLine
	Technical  scoreLine
	Psycho     scoreLine
	Dimensions []scoreLine
	Roles      []scoring.RoleFit
}

func newView(s *session.Summary) view {
	r := s.Result
	v := view{
		Title:     s.Title,
		SessionID: s.SessionID,
		Answered:  s.Answered,
		Total:     s.Total,
		Tier:      r.Tier,
		TierLabel: r.Tier.Label(),
		Guidance:  s.Guidance,
		Roles:     s.Roles,
		Overall:   scoreLine{Label: "Overall", Value: Round(r.Overall), Bar: Bar(r.Overall, barWidth)},
		Technical: scoreLine{
			Label: "Technical",
			Value: Round(r.Technical),
			Bar:   Bar(r.Technical, barWidth),
			Note:  scoring.TechnicalBand(r.Technical),
		},
		Psycho: scoreLine{
			Label: "Psychometric",
			Value: Round(r.Psychometric),
			Bar:   Bar(r.Psychometric, barWidth),
			Note:  scoring.PsychometricBand(r.Psychometric),
		},
	}
	if v.Title == "" {
		v.Title = "Career Fit Assessment"
	}
	if s.Duration > 0 {
		v.Duration = s.Duration.Round(time.Second).String()
	}
	for _, d := range catalog.AllDimensions() {
		val := r.Dimension(d)
		v.Dimensions = append(v.Dimensions, scoreLine{
			Label: catalog.DimensionDisplayName(d),
			Value: Round(val),
			Bar:   Bar(val, barWidth),
		})
	}
	return v
}

const barWidth = 20

// Round rounds a score half away from zero for display.
func Round(v float64) int {
	return int(math.Round(v))
}

// Bar draws a fixed-width bar for a 0-100 score. Values above 100 fill the
// bar; the number printed next to it still shows the real value.
func Bar(v float64, width int) string {
	if width <= 0 {
		return ""
	}
	pct := min(max(v, 0), 100)
	filled := int(math.Round(pct / 100 * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// document is the JSON report shape.
type document struct {
	Title     string            `json:"title"`
	SessionID string            `json:"session_id,omitempty"`
	Answered  int               `json:"answered"`
	Total     int               `json:"total"`
	Duration  float64           `json:"duration_seconds,omitempty"`
	Scores    scoring.Result    `json:"scores"`
	Bands     bands             `json:"bands"`
	Guidance  scoring.Guidance  `json:"recommendation"`
	Roles     []scoring.RoleFit `json:"roles"`
}

type bands struct {
	Technical    string `json:"technical"`
	Psychometric string `json:"psychometric"`
}

func renderJSON(w io.Writer, s *session.Summary) error {
	doc := document{
		Title:     s.Title,
		SessionID: s.SessionID,
		Answered:  s.Answered,
		Total:     s.Total,
		Duration:  s.Duration.Seconds(),
		Scores:    s.Result,
		Bands: bands{
			Technical:    scoring.TechnicalBand(s.Result.Technical),
			Psychometric: scoring.PsychometricBand(s.Result.Psychometric),
		},
		Guidance: s.Guidance,
		Roles:    s.Roles,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
