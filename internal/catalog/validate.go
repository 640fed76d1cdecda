package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// validateQuestions performs all structural checks on a question set and its
// answer key. Returns a combined error describing all problems found, or nil.
func validateQuestions(questions []Question, answerKey map[string]string) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "catalog has no questions")
	}

	idSet := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question with empty ID: %q", q.Text))
			continue
		}
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true
	}

	for _, q := range questions {
		prefix := fmt.Sprintf("question %q", q.ID)

		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("%s: option list is empty", prefix))
		}
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if seen[o] {
				errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, o))
			}
			seen[o] = true
		}

		if !slices.Contains(AllCategories(), q.Category) {
			errs = append(errs, fmt.Sprintf("%s: unknown category %q", prefix, q.Category))
		}
		if q.HasDimension() && !slices.Contains(AllDimensions(), q.Dimension) {
			errs = append(errs, fmt.Sprintf("%s: unknown dimension %q", prefix, q.Dimension))
		}
		switch q.Format {
		case FormatLikert, FormatMultipleChoice, FormatScenario:
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown format %q", prefix, q.Format))
		}

		if q.Category == CategoryTechnical {
			if q.HasDimension() {
				errs = append(errs, fmt.Sprintf("%s: technical questions cannot declare a dimension", prefix))
			}
			answer, ok := answerKey[q.ID]
			if !ok {
				errs = append(errs, fmt.Sprintf("%s: technical question has no answer key entry", prefix))
			} else if q.OptionIndex(answer) < 0 {
				errs = append(errs, fmt.Sprintf("%s: answer key %q is not one of the options", prefix, answer))
			}
		}
	}

	var dangling []string
	for id := range answerKey {
		if !idSet[id] {
			dangling = append(dangling, id)
		}
	}
	slices.Sort(dangling)
	for _, id := range dangling {
		errs = append(errs, fmt.Sprintf("answer key references nonexistent question %q", id))
	}

	if len(errs) > 0 {
		return fmt.Errorf("question catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
