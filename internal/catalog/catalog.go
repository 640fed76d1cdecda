package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
)

//go:embed questions.json
var seedJSON []byte

// document is the on-disk shape of a catalog.
type document struct {
	Title     string            `json:"title"`
	Version   string            `json:"version"`
	Questions []questionDoc     `json:"questions"`
	AnswerKey map[string]string `json:"answer_key"`
}

type questionDoc struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Format    string   `json:"format"`
	Options   []string `json:"options"`
	Category  string   `json:"category"`
	Dimension string   `json:"dimension"`
}

// Catalog is an ordered, immutable set of questions with an answer key for
// the technical section.
type Catalog struct {
	title     string
	version   string
	questions []Question
	byID      map[string]int
	answerKey map[string]string
}

// def is the process-wide catalog built from the embedded seed at init.
var def *Catalog

func init() {
	c, err := Load(seedJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded question catalog: %v", err))
	}
	def = c
}

// Default returns the built-in Cold Chain Specialist catalog.
func Default() *Catalog {
	return def
}

// Load parses, schema-checks and validates a catalog document.
func Load(data []byte) (*Catalog, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if doc.Version != "" && !semver.IsValid(doc.Version) {
		return nil, fmt.Errorf("catalog version %q is not a semantic version", doc.Version)
	}

	questions := make([]Question, 0, len(doc.Questions))
	for _, qd := range doc.Questions {
		questions = append(questions, Question{
			ID:        qd.ID,
			Text:      qd.Text,
			Format:    Format(qd.Format),
			Options:   qd.Options,
			Category:  Category(qd.Category),
			Dimension: Dimension(qd.Dimension),
		})
	}

	c, err := New(doc.Title, questions, doc.AnswerKey)
	if err != nil {
		return nil, err
	}
	c.version = semver.Canonical(doc.Version)
	return c, nil
}

// LoadFile reads a catalog document from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// New builds a catalog from questions in display order. It returns an error
// describing every structural problem found.
func New(title string, questions []Question, answerKey map[string]string) (*Catalog, error) {
	if err := validateQuestions(questions, answerKey); err != nil {
		return nil, err
	}

	c := &Catalog{
		title:     title,
		questions: make([]Question, len(questions)),
		byID:      make(map[string]int, len(questions)),
		answerKey: make(map[string]string, len(answerKey)),
	}
	for i, q := range questions {
		c.questions[i] = q.clone()
		c.byID[q.ID] = i
	}
	for id, answer := range answerKey {
		c.answerKey[id] = answer
	}
	return c, nil
}

// Title returns the assessment title.
func (c *Catalog) Title() string {
	return c.title
}

// Version returns the canonical semantic version of the catalog document,
// or "" when the document did not declare one.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// At returns the question at position i in display order.
func (c *Catalog) At(i int) Question {
	return c.questions[i].clone()
}

// Questions returns all questions in display order.
func (c *Catalog) Questions() []Question {
	result := make([]Question, len(c.questions))
	for i, q := range c.questions {
		result[i] = q.clone()
	}
	return result
}

// Question looks up a question by ID.
func (c *Catalog) Question(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i].clone(), true
}

// CorrectAnswer returns the answer key entry for a technical question.
func (c *Catalog) CorrectAnswer(id string) (string, bool) {
	a, ok := c.answerKey[id]
	return a, ok
}

// ByCategory returns the questions of one category in display order.
func (c *Catalog) ByCategory(cat Category) []Question {
	var result []Question
	for _, q := range c.questions {
		if q.Category == cat {
			result = append(result, q.clone())
		}
	}
	return result
}

// ByDimension returns the questions feeding one WISCAR dimension.
func (c *Catalog) ByDimension(d Dimension) []Question {
	var result []Question
	for _, q := range c.questions {
		if q.Dimension == d {
			result = append(result, q.clone())
		}
	}
	return result
}
