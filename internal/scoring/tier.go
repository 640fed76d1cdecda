package scoring

import "slices"

// Tier is the three-way recommendation derived from the overall score.
type Tier string

const (
	TierYes   Tier = "yes"   // Strong fit
	TierMaybe Tier = "maybe" // Developmental fit
	TierNo    Tier = "no"    // Limited fit
)

// Tier thresholds on the overall score. Both are inclusive lower bounds.
const (
	StrongFitThreshold        = 85.0
	DevelopmentalFitThreshold = 65.0
)

// Classify maps an overall score to a recommendation tier.
func Classify(overall float64) Tier {
	switch {
	case overall >= StrongFitThreshold:
		return TierYes
	case overall >= DevelopmentalFitThreshold:
		return TierMaybe
	default:
		return TierNo
	}
}

// Label returns a short display label for a tier.
func (t Tier) Label() string {
	switch t {
	case TierYes:
		return "Strong fit"
	case TierMaybe:
		return "Developmental fit"
	case TierNo:
		return "Limited fit"
	default:
		return "Unknown"
	}
}

// Guidance is the fixed narrative shown for a tier.
type Guidance struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	NextSteps   []string `json:"next_steps"`
}

var guidance = map[Tier]Guidance{
	TierYes: {
		Title:       "Strong Fit - Recommended",
		Description: "You have excellent potential for success as a Cold Chain Specialist. Your skills, motivation, and aptitude align well with the role requirements.",
		NextSteps: []string{
			"Enroll in cold chain management certification courses",
			"Gain hands-on experience through internships",
			"Study temperature monitoring technologies",
			"Learn regulatory compliance standards (FDA, WHO)",
		},
	},
	TierMaybe: {
		Title:       "Potential Fit - Development Needed",
		Description: "You show promise for Cold Chain roles but would benefit from targeted skill development and experience in key areas.",
		NextSteps: []string{
			"Take foundational courses in supply chain management",
			"Develop technical skills in refrigeration and monitoring systems",
			"Gain experience in quality assurance or logistics",
			"Build knowledge of regulatory requirements",
		},
	},
	TierNo: {
		Title:       "Limited Fit - Consider Alternatives",
		Description: "Based on your responses, other career paths may be more suitable. Consider related roles that match your strengths better.",
		NextSteps: []string{
			"Explore general supply chain coordinator roles",
			"Consider warehouse operations positions",
			"Look into quality control assistant roles",
			"Evaluate logistics planning opportunities",
		},
	},
}

// GuidanceFor returns the title, description and next steps for a tier.
// Unknown tiers get the limited-fit guidance.
func GuidanceFor(t Tier) Guidance {
	g, ok := guidance[t]
	if !ok {
		g = guidance[TierNo]
	}
	g.NextSteps = slices.Clone(g.NextSteps)
	return g
}
