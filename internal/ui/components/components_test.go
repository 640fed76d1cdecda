package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "disabled", Disabled: true},
		{Label: "first"},
		{Label: "skip", Disabled: true},
		{Label: "last"},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("after down Selected = %d, want 3", m.Selected)
	}

	m, _ = m.Update(keyPress('k'))
	if m.Selected != 1 {
		t.Errorf("after k Selected = %d, want 1", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected action to run on enter")
	}
}

func TestMenu_View(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Start", Hint: "14 questions"}, {Label: "Quit"}})
	v := m.View()
	if !strings.Contains(v, "▸ Start") {
		t.Errorf("selected item not marked:\n%s", v)
	}
	if !strings.Contains(v, "14 questions") {
		t.Errorf("hint for selected item missing:\n%s", v)
	}
}

func TestOptionList_Navigation(t *testing.T) {
	l := NewOptionList([]string{"a", "b", "c"}, -1)
	if l.Cursor != 0 || l.Chosen != -1 {
		t.Fatalf("got cursor %d chosen %d", l.Cursor, l.Chosen)
	}

	l = l.Up()
	if l.Cursor != 0 {
		t.Errorf("Up at top moved cursor to %d", l.Cursor)
	}
	l = l.Down().Down().Down()
	if l.Cursor != 2 {
		t.Errorf("Down past end: cursor %d, want 2", l.Cursor)
	}
}

func TestOptionList_StartsOnChosen(t *testing.T) {
	l := NewOptionList([]string{"a", "b", "c"}, 2)
	if l.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", l.Cursor)
	}
	if !strings.Contains(l.View(), "3) c ✓") {
		t.Errorf("chosen option not marked:\n%s", l.View())
	}

	l = NewOptionList([]string{"a"}, 5)
	if l.Chosen != -1 {
		t.Errorf("out-of-range chosen kept: %d", l.Chosen)
	}
}

func TestScoreBar(t *testing.T) {
	v := ScoreBar("Will", 200, 10, 60).View()
	if !strings.Contains(v, "Will") || !strings.Contains(v, "200") {
		t.Errorf("score bar missing label or value:\n%s", v)
	}
}

func TestProgressBar_ShowPercent(t *testing.T) {
	v := NewProgressBar("", 0.5, true, 40).View()
	if !strings.Contains(v, "50%") {
		t.Errorf("expected 50%% in %q", v)
	}
}

func TestButtonRow(t *testing.T) {
	row := ButtonRow(NewButton("Back", false), NewButton("Next", true))
	if !strings.Contains(row, "Back") || !strings.Contains(row, "Next") {
		t.Errorf("row missing labels:\n%s", row)
	}
}
