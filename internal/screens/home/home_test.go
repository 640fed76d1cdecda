package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "assessment" }
func (s *stubScreen) Title() string                          { return "Assessment" }

func newHome() (*HomeScreen, *int) {
	calls := 0
	h := New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}, 14)
	return h, &calls
}

func TestHome_Title(t *testing.T) {
	h, _ := newHome()
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want %q", h.Title(), "Home")
	}
}

func TestHome_ViewShowsRoleAndMenu(t *testing.T) {
	h, _ := newHome()
	view := h.View(100, 40)

	for _, want := range []string{headline, "START ASSESSMENT", "14 questions", "Temperature Management"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHome_StartAssessmentPushesFreshScreen(t *testing.T) {
	h, calls := newHome()

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*stubScreen); !ok {
		t.Errorf("pushed %T, want the assessment screen", msg.Screen)
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if *calls != 2 {
		t.Errorf("factory called %d times, want 2 (each start builds a new assessment)", *calls)
	}
}

func TestHome_TabsCycle(t *testing.T) {
	h, _ := newHome()
	n := len(h.panels)

	h.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if h.tab != 1 {
		t.Errorf("tab = %d after Tab, want 1", h.tab)
	}
	if !strings.Contains(h.View(100, 40), "Cold Chain Manager") {
		t.Error("careers tab should list Cold Chain Manager")
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	h.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if h.tab != n-1 {
		t.Errorf("tab = %d after wrapping left, want %d", h.tab, n-1)
	}
	if !strings.Contains(h.View(100, 40), "WISCAR framework analysis") {
		t.Error("assessment tab should describe the WISCAR analysis")
	}
}

func TestHome_Quit(t *testing.T) {
	h, _ := newHome()

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on QUIT")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("QUIT produced %T, want tea.QuitMsg", cmd())
	}

	_, cmd = h.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected a command on q")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q produced %T, want tea.QuitMsg", cmd())
	}
}

func TestHome_KeyHints(t *testing.T) {
	h, _ := newHome()
	if n := len(h.KeyHints()); n != 5 {
		t.Errorf("len(KeyHints) = %d, want 5", n)
	}
}
