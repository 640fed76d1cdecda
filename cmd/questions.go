package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions and their options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cfg.Catalog)
		if err != nil {
			return err
		}

		category, _ := cmd.Flags().GetString("category")
		dimension, _ := cmd.Flags().GetString("dimension")
		questions, err := selectQuestions(cat, catalog.Category(category), catalog.Dimension(dimension))
		if err != nil {
			return err
		}

		printQuestions(cmd.OutOrStdout(), cat, questions)
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("category", "", "only list one category: psychometric, technical or wiscar")
	questionsCmd.Flags().String("dimension", "", "only list questions feeding one WISCAR dimension, e.g. cognitive")
}

// selectQuestions filters the catalog by category and dimension. Empty
// filters match everything; both filters together must both match.
func selectQuestions(cat *catalog.Catalog, category catalog.Category, dimension catalog.Dimension) ([]catalog.Question, error) {
	questions := cat.Questions()
	if dimension != "" {
		questions = cat.ByDimension(dimension)
	}
	if category != "" {
		var filtered []catalog.Question
		for _, q := range questions {
			if q.Category == category {
				filtered = append(filtered, q)
			}
		}
		questions = filtered
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions found for category %q and dimension %q", category, dimension)
	}
	return questions, nil
}

// printQuestions lists questions with 1-based option numbers. The answer
// key is never printed.
func printQuestions(w io.Writer, cat *catalog.Catalog, questions []catalog.Question) {
	title := cat.Title()
	if v := cat.Version(); v != "" {
		title += " " + v
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("─", 72))

	for _, q := range questions {
		dim := "-"
		if q.HasDimension() {
			dim = catalog.DimensionDisplayName(q.Dimension)
		}
		fmt.Fprintf(w, "\n%-4s  %-12s  %-9s  %s\n", q.ID, catalog.CategoryDisplayName(q.Category), dim, q.Text)
		for i, opt := range q.Options {
			fmt.Fprintf(w, "      %d) %s\n", i+1, opt)
		}
	}

	fmt.Fprintf(w, "\n%d questions\n", len(questions))
}
