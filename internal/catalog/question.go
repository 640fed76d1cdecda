package catalog

import "slices"

// Category groups questions into assessment sections.
type Category string

const (
	CategoryPsychometric Category = "psychometric"
	CategoryTechnical    Category = "technical"
	CategoryWISCAR       Category = "wiscar"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryPsychometric,
		CategoryTechnical,
		CategoryWISCAR,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryPsychometric:
		return "Psychometric"
	case CategoryTechnical:
		return "Technical"
	case CategoryWISCAR:
		return "WISCAR"
	default:
		return string(c)
	}
}

// Dimension is one of the six WISCAR traits.
type Dimension string

const (
	DimensionWill               Dimension = "will"
	DimensionInterest           Dimension = "interest"
	DimensionSkill              Dimension = "skill"
	DimensionCognitive          Dimension = "cognitive"
	DimensionAbilityToLearn     Dimension = "ability_to_learn"
	DimensionRealWorldAlignment Dimension = "real_world_alignment"
)

// AllDimensions returns the six WISCAR dimensions in framework order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionWill,
		DimensionInterest,
		DimensionSkill,
		DimensionCognitive,
		DimensionAbilityToLearn,
		DimensionRealWorldAlignment,
	}
}

// DimensionDisplayName returns the short label used in charts and reports.
func DimensionDisplayName(d Dimension) string {
	switch d {
	case DimensionWill:
		return "Will"
	case DimensionInterest:
		return "Interest"
	case DimensionSkill:
		return "Skill"
	case DimensionCognitive:
		return "Cognitive"
	case DimensionAbilityToLearn:
		return "Learning"
	case DimensionRealWorldAlignment:
		return "Alignment"
	default:
		return string(d)
	}
}

// Format is how a question's options are presented.
type Format string

const (
	FormatLikert         Format = "likert"          // Rating scale, weakest to strongest
	FormatMultipleChoice Format = "multiple-choice" // Single choice with one correct option
	FormatScenario       Format = "scenario"        // Single choice framed as a situation
)

// Question is a single catalog entry.
type Question struct {
	ID        string
	Text      string
	Format    Format
	Options   []string
	Category  Category
	Dimension Dimension // Empty when the question feeds no WISCAR dimension
}

// HasDimension reports whether the question contributes to a WISCAR dimension.
func (q Question) HasDimension() bool {
	return q.Dimension != ""
}

func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// OptionIndex returns the 0-based position of option in the question's
// option list by exact match, or -1 if it is not one of the options.
func (q Question) OptionIndex(option string) int {
	for i, o := range q.Options {
		if o == option {
			return i
		}
	}
	return -1
}
