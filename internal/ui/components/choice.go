package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplanner/internal/ui/theme"
)

// Choice is a single-select row of options. Selected is -1 until the user
// picks one.
type Choice struct {
	Label    string
	Options  []string
	Selected int
	Cursor   int
	Err      string
	Focused  bool
}

func NewChoice(label string, options []string) Choice {
	return Choice{Label: label, Options: options, Selected: -1}
}

// Update moves the cursor with left/right and selects with space or enter.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || !c.Focused {
		return c, nil
	}
	switch k.String() {
	case "left", "h":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "right", "l":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ", "enter":
		c.Selected = c.Cursor
	}
	return c, nil
}

// Value returns the selected option or "".
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

func (c Choice) View() string {
	parts := make([]string, len(c.Options))
	for i, opt := range c.Options {
		mark := "( )"
		if i == c.Selected {
			mark = "(•)"
		}
		text := mark + " " + opt
		if c.Focused && i == c.Cursor {
			parts[i] = theme.Selected.Render(text)
		} else {
			parts[i] = theme.Unselected.Render(text)
		}
	}
	return renderField(c.Label, strings.Join(parts, "   "), c.Err, c.Focused)
}
