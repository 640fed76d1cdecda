package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/careerfit/internal/ui/theme"
)

// OptionList renders a question's options with a movable cursor and a
// marker on the option currently recorded as the answer.
type OptionList struct {
	Options []string
	Cursor  int
	Chosen  int // -1 when nothing is chosen
}

// NewOptionList creates a list with the cursor on the chosen option, or on
// the first option when chosen is -1.
func NewOptionList(options []string, chosen int) OptionList {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	} else {
		chosen = -1
	}
	return OptionList{Options: options, Cursor: cursor, Chosen: chosen}
}

// Up moves the cursor one option up.
func (l OptionList) Up() OptionList {
	if l.Cursor > 0 {
		l.Cursor--
	}
	return l
}

// Down moves the cursor one option down.
func (l OptionList) Down() OptionList {
	if l.Cursor < len(l.Options)-1 {
		l.Cursor++
	}
	return l
}

// View renders the options, numbered from 1.
func (l OptionList) View() string {
	var b strings.Builder
	for i, opt := range l.Options {
		prefix := "  "
		if i == l.Cursor {
			prefix = "▸ "
		}
		mark := "  "
		if i == l.Chosen {
			mark = " ✓"
		}
		line := fmt.Sprintf("%s%d) %s%s", prefix, i+1, opt, mark)

		style := theme.Unselected
		switch {
		case i == l.Chosen:
			style = theme.Chosen
		case i == l.Cursor:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		if i < len(l.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
