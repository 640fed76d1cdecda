package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/logger"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/session"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of answers without the interactive assessment",
	Long: "Score reads answers keyed by question ID from a YAML or JSON file (or stdin with -)\n" +
		"and from --answer flags, then prints the report. Flags override the file.",
	Example: `  careerfit score --answers answers.yaml
  careerfit score --answer t1="2°C to 8°C" --answer w4=Good --format json
  cat answers.json | careerfit score --answers -`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().String("answers", "", "YAML or JSON file mapping question ID to option text (- for stdin)")
	scoreCmd.Flags().StringArray("answer", nil, "a single answer as id=option (repeatable)")
}

func runScore(cmd *cobra.Command, args []string) error {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("answers")
	pairs, _ := cmd.Flags().GetStringArray("answer")
	if file == "" && len(pairs) == 0 {
		return fmt.Errorf("no answers given: use --answers or --answer")
	}

	answers, err := collectAnswers(cmd.InOrStdin(), file, pairs)
	if err != nil {
		return err
	}

	answered := checkAnswers(log, cat, answers)
	r := scoring.Calculate(answers, cat)
	log.Debug("scored answers",
		zap.Int("answered", answered),
		zap.Float64(logger.FieldOverall, r.Overall),
		zap.String(logger.FieldTier, string(r.Tier)))

	summary := session.BuildSummary("", cat.Title(), answered, cat.Len(), 0, r)
	return report.Render(cmd.OutOrStdout(), summary, format)
}

// collectAnswers merges the answers file (if any) with id=option pairs.
// Pairs win over the file.
func collectAnswers(stdin io.Reader, file string, pairs []string) (scoring.Answers, error) {
	answers := scoring.Answers{}

	if file != "" {
		var r io.Reader = stdin
		if file != "-" {
			f, err := os.Open(file)
			if err != nil {
				return nil, fmt.Errorf("open answers: %w", err)
			}
			defer f.Close()
			r = f
		}
		fromFile, err := readAnswers(r)
		if err != nil {
			return nil, err
		}
		for id, opt := range fromFile {
			answers[id] = opt
		}
	}

	fromFlags, err := parseAnswerPairs(pairs)
	if err != nil {
		return nil, err
	}
	for id, opt := range fromFlags {
		answers[id] = opt
	}
	return answers, nil
}

// readAnswers decodes a YAML (or JSON) mapping of question ID to option.
func readAnswers(r io.Reader) (scoring.Answers, error) {
	var answers scoring.Answers
	if err := yaml.NewDecoder(r).Decode(&answers); err != nil {
		if errors.Is(err, io.EOF) {
			return scoring.Answers{}, nil
		}
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	if answers == nil {
		answers = scoring.Answers{}
	}
	return answers, nil
}

// parseAnswerPairs parses id=option flags. The option is everything after
// the first '='.
func parseAnswerPairs(pairs []string) (scoring.Answers, error) {
	answers := make(scoring.Answers, len(pairs))
	for _, p := range pairs {
		id, opt, ok := strings.Cut(p, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid --answer %q: want id=option", p)
		}
		answers[id] = strings.TrimSpace(opt)
	}
	return answers, nil
}

// checkAnswers warns about answers that cannot score and returns how many
// answers belong to catalog questions.
func checkAnswers(log *zap.Logger, cat *catalog.Catalog, answers scoring.Answers) int {
	answered := 0
	for id, opt := range answers {
		q, ok := cat.Question(id)
		if !ok {
			log.Warn("unknown question, answer ignored", zap.String(logger.FieldQuestionID, id))
			continue
		}
		answered++
		if q.OptionIndex(opt) < 0 {
			log.Warn("answer is not one of the options and scores nothing",
				zap.String(logger.FieldQuestionID, id),
				zap.String("answer", opt))
		}
	}
	return answered
}
