package scoring

import "github.com/abhisek/careerfit/internal/catalog"

// Fit is a coarse per-role suitability label.
type Fit string

const (
	FitHigh   Fit = "High"
	FitMedium Fit = "Medium"
	FitLow    Fit = "Low"
)

// Role is a named career path the assessment reports on.
type Role struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RoleFit pairs a role with the fit derived from a result.
type RoleFit struct {
	Role
	Fit Fit `json:"fit"`
}

// roleRule decides the fit for one role. Rules are independent of each other.
type roleRule struct {
	role Role
	fit  func(r Result) Fit
}

var roleRules = []roleRule{
	{
		role: Role{
			Title:       "Cold Chain Manager",
			Description: "Oversee refrigerated supply chains ensuring compliance and efficiency",
		},
		fit: func(r Result) Fit {
			switch {
			case r.Overall >= 80:
				return FitHigh
			case r.Overall >= 60:
				return FitMedium
			default:
				return FitLow
			}
		},
	},
	{
		role: Role{
			Title:       "Pharmaceutical Cold Chain Technician",
			Description: "Handle temperature-sensitive drug storage & transport",
		},
		fit: func(r Result) Fit {
			if r.Technical >= 70 && r.Dimension(catalog.DimensionCognitive) >= 70 {
				return FitHigh
			}
			return FitMedium
		},
	},
	{
		role: Role{
			Title:       "Quality Assurance Specialist",
			Description: "Monitor regulatory compliance and quality controls",
		},
		fit: func(r Result) Fit {
			if r.Dimension(catalog.DimensionWill) >= 70 && r.Technical >= 60 {
				return FitHigh
			}
			return FitMedium
		},
	},
	{
		role: Role{
			Title:       "Supply Chain Analyst",
			Description: "Analyze data to optimize cold chain performance",
		},
		fit: func(r Result) Fit {
			if r.Dimension(catalog.DimensionCognitive) >= 75 {
				return FitHigh
			}
			return FitMedium
		},
	},
}

// RoleFits evaluates every role rule against r, in display order.
func RoleFits(r Result) []RoleFit {
	fits := make([]RoleFit, 0, len(roleRules))
	for _, rule := range roleRules {
		fits = append(fits, RoleFit{Role: rule.role, Fit: rule.fit(r)})
	}
	return fits
}

// TechnicalBand describes technical readiness for a technical score.
func TechnicalBand(technical float64) string {
	switch {
	case technical >= 80:
		return "Ready for technical training"
	case technical >= 60:
		return "Some foundation needed"
	default:
		return "Foundational knowledge gaps"
	}
}

// PsychometricBand describes personality fit for a psychometric score.
func PsychometricBand(psychometric float64) string {
	switch {
	case psychometric >= 85:
		return "Strong personality fit"
	case psychometric >= 65:
		return "Good potential with development"
	default:
		return "Consider alternative roles"
	}
}
