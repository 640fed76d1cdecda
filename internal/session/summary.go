package session

import (
	"time"

	"github.com/abhisek/careerfit/internal/scoring"
)

// Summary holds the data displayed on the results screen and written to
// reports.
type Summary struct {
	SessionID string
	Title     string
	Duration  time.Duration
	Answered  int
	Total     int
	Result    scoring.Result
	Guidance  scoring.Guidance
	Roles     []scoring.RoleFit
}

// BuildSummary derives a summary from a result. The title names the
// assessment; duration is zero for batch scoring.
func BuildSummary(sessionID, title string, answered, total int, duration time.Duration, r scoring.Result) *Summary {
	return &Summary{
		SessionID: sessionID,
		Title:     title,
		Duration:  duration,
		Answered:  answered,
		Total:     total,
		Result:    r,
		Guidance:  scoring.GuidanceFor(r.Tier),
		Roles:     scoring.RoleFits(r),
	}
}

// Summary builds the summary for a completed collector. It returns nil
// while the session is still active.
func (c *Collector) Summary(title string) *Summary {
	r, ok := c.Result()
	if !ok {
		return nil
	}
	return BuildSummary(c.id, title, c.Answered(), c.questions.Len(), c.Elapsed(), r)
}
