package catalog

import (
	"strings"
	"testing"
)

// wantErrContaining fails unless err is non-nil and mentions every want.
func wantErrContaining(t *testing.T, err error, want ...string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error mentioning %q, got nil", want)
	}
	for _, w := range want {
		if !strings.Contains(err.Error(), w) {
			t.Errorf("error should mention %q, got: %v", w, err)
		}
	}
}

func TestValidate_SeedCatalogPasses(t *testing.T) {
	err := validateQuestions(Default().Questions(), map[string]string{
		"t1": "2°C to 8°C",
		"t2": "FDA",
		"t3": "Immediately quarantine affected products and assess impact",
		"t4": "36 hours",
	})
	if err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestValidateQuestions_Empty(t *testing.T) {
	err := validateQuestions(nil, nil)
	wantErrContaining(t, err, "no questions")
}

func TestValidateQuestions_DetectsDuplicateID(t *testing.T) {
	qs := []Question{
		likert("a", DimensionWill),
		likert("a", DimensionSkill),
	}
	err := validateQuestions(qs, nil)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate question ID") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateQuestions_DetectsEmptyOptions(t *testing.T) {
	q := likert("a", DimensionWill)
	q.Options = nil
	err := validateQuestions([]Question{q}, nil)
	wantErrContaining(t, err, "option list is empty")
}

func TestValidateQuestions_DetectsDuplicateOption(t *testing.T) {
	q := likert("a", DimensionWill)
	q.Options = []string{"Low", "High", "Low"}
	err := validateQuestions([]Question{q}, nil)
	wantErrContaining(t, err, `duplicate option "Low"`)
}

func TestValidateQuestions_TechnicalWithDimension(t *testing.T) {
	q := technical("t", "B")
	q.Dimension = DimensionCognitive
	err := validateQuestions([]Question{q}, map[string]string{"t": "B"})
	wantErrContaining(t, err, "cannot declare a dimension")
}

func TestValidateQuestions_TechnicalWithoutAnswerKey(t *testing.T) {
	err := validateQuestions([]Question{technical("t", "B")}, nil)
	wantErrContaining(t, err, "no answer key entry")
}

func TestValidateQuestions_AnswerKeyNotAnOption(t *testing.T) {
	err := validateQuestions([]Question{technical("t", "B")}, map[string]string{"t": "Z"})
	wantErrContaining(t, err, "not one of the options")
}

func TestValidateQuestions_DanglingAnswerKey(t *testing.T) {
	err := validateQuestions([]Question{likert("a", DimensionWill)}, map[string]string{"ghost": "x"})
	wantErrContaining(t, err, `nonexistent question "ghost"`)
}

func TestValidateQuestions_UnknownEnums(t *testing.T) {
	q := Question{
		ID:        "a",
		Text:      "?",
		Format:    Format("essay"),
		Options:   []string{"x"},
		Category:  Category("mystery"),
		Dimension: Dimension("charisma"),
	}
	err := validateQuestions([]Question{q}, nil)
	wantErrContaining(t, err,
		`unknown category "mystery"`,
		`unknown dimension "charisma"`,
		`unknown format "essay"`)
}

func TestValidateQuestions_ReportsAllProblems(t *testing.T) {
	q := likert("a", DimensionWill)
	q.Options = nil
	err := validateQuestions([]Question{q, technical("t", "B")}, nil)
	wantErrContaining(t, err, "option list is empty", "no answer key entry")
}

func TestLoad_SchemaRejectsMissingOptions(t *testing.T) {
	doc := `{"questions":[{"id":"a","text":"?","format":"likert","category":"wiscar"}]}`
	_, err := Load([]byte(doc))
	wantErrContaining(t, err, "schema validation failed")
}

func TestLoad_SchemaRejectsUnknownField(t *testing.T) {
	doc := `{"questions":[{"id":"a","text":"?","format":"likert","options":["x"],"category":"wiscar","weight":3}]}`
	if _, err := Load([]byte(doc)); err == nil {
		t.Fatal("expected schema to reject an unknown field")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load([]byte(`{"questions": [`))
	wantErrContaining(t, err, "invalid JSON")
}

func TestLoad_Minimal(t *testing.T) {
	doc := `{
		"title": "Mini",
		"questions": [
			{"id":"q1","text":"Rate it","format":"likert","options":["Low","High"],"category":"wiscar","dimension":"skill"},
			{"id":"q2","text":"Pick","format":"scenario","options":["A","B"],"category":"technical"}
		],
		"answer_key": {"q2": "B"}
	}`
	c, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Title() != "Mini" || c.Len() != 2 {
		t.Errorf("Title/Len = %q/%d, want Mini/2", c.Title(), c.Len())
	}
	if q, ok := c.Question("q1"); !ok || q.Dimension != DimensionSkill {
		t.Errorf("q1 = %+v, %v, want skill dimension", q, ok)
	}
	if answer, ok := c.CorrectAnswer("q2"); !ok || answer != "B" {
		t.Errorf("CorrectAnswer(q2) = %q, %v, want B, true", answer, ok)
	}
}

func TestLoad_Version(t *testing.T) {
	if got := Default().Version(); got != "v1.0.0" {
		t.Errorf("Default().Version() = %q, want v1.0.0", got)
	}

	tests := []struct {
		version string
		want    string
	}{
		{`"version":"v1.2",`, "v1.2.0"},
		{"", ""},
	}
	for _, tt := range tests {
		doc := `{` + tt.version + `"questions":[{"id":"a","text":"?","format":"likert","options":["x"],"category":"wiscar"}]}`
		c, err := Load([]byte(doc))
		if err != nil {
			t.Fatalf("Load(%s): %v", doc, err)
		}
		if got := c.Version(); got != tt.want {
			t.Errorf("Version() = %q, want %q", got, tt.want)
		}
	}
}

func TestLoad_InvalidVersion(t *testing.T) {
	doc := `{"version":"1.0","questions":[{"id":"a","text":"?","format":"likert","options":["x"],"category":"wiscar"}]}`
	_, err := Load([]byte(doc))
	wantErrContaining(t, err, "not a semantic version")
}

func likert(id string, d Dimension) Question {
	return Question{
		ID:        id,
		Text:      "Rate " + id,
		Format:    FormatLikert,
		Options:   []string{"Low", "Mid", "High"},
		Category:  CategoryWISCAR,
		Dimension: d,
	}
}

func technical(id string, options ...string) Question {
	return Question{
		ID:       id,
		Text:     "Pick " + id,
		Format:   FormatMultipleChoice,
		Options:  append([]string{"A"}, options...),
		Category: CategoryTechnical,
	}
}
