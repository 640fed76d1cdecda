package scoring

import (
	"maps"

	"github.com/abhisek/careerfit/internal/catalog"
)

// Per-question weights.
const (
	DimensionWeight    = 20 // Points per 1-based option index for a WISCAR dimension
	PsychometricWeight = 5  // Points per 1-based option index for a psychometric question
	TechnicalPoints    = 25 // Points for each correct technical answer
)

// Answers maps a question ID to the exact option label selected for it.
type Answers map[string]string

// Clone returns an independent copy of the answer map.
func (a Answers) Clone() Answers {
	if a == nil {
		return Answers{}
	}
	return maps.Clone(a)
}

// QuestionSource resolves questions and technical answer key entries by ID.
type QuestionSource interface {
	Question(id string) (catalog.Question, bool)
	CorrectAnswer(id string) (string, bool)
}

// Result holds every score derived from one completed answer set.
type Result struct {
	// Dimensions always holds all six WISCAR keys. Totals are summed across
	// every question declaring the dimension and are not normalised, so a
	// dimension fed by two questions can reach 200.
	Dimensions   map[catalog.Dimension]float64 `json:"wiscar"`
	Technical    float64                       `json:"technical"`
	Psychometric float64                       `json:"psychometric"`
	Overall      float64                       `json:"overall"`
	Tier         Tier                          `json:"tier"`
}

// Dimension returns the total for d, or 0 if it was never answered.
func (r Result) Dimension(d catalog.Dimension) float64 {
	return r.Dimensions[d]
}

// NewResult returns a zero result with all six dimensions present.
func NewResult() Result {
	dims := make(map[catalog.Dimension]float64, len(catalog.AllDimensions()))
	for _, d := range catalog.AllDimensions() {
		dims[d] = 0
	}
	return Result{Dimensions: dims, Tier: Classify(0)}
}

// Calculate scores an answer set against the questions in src.
//
// Answers for IDs the source does not know are skipped. Answers that match
// none of the question's options count as index -1 and contribute nothing.
func Calculate(answers Answers, src QuestionSource) Result {
	r := NewResult()

	for id, answer := range answers {
		q, ok := src.Question(id)
		if !ok {
			continue
		}

		weight := float64(q.OptionIndex(answer) + 1)

		if q.HasDimension() {
			r.Dimensions[q.Dimension] += weight * DimensionWeight
		}

		switch q.Category {
		case catalog.CategoryTechnical:
			if correct, ok := src.CorrectAnswer(id); ok && answer == correct {
				r.Technical += TechnicalPoints
			}
		case catalog.CategoryPsychometric:
			r.Psychometric += weight * PsychometricWeight
		}
	}

	var sum float64
	for _, d := range catalog.AllDimensions() {
		sum += r.Dimensions[d]
	}
	r.Overall = sum / float64(len(catalog.AllDimensions()))
	r.Tier = Classify(r.Overall)

	return r
}
