package components

import "github.com/abhisek/studyplanner/internal/ui/theme"

// Button renders a submit control. A busy button shows Busy in place of
// its label.
type Button struct {
	Label    string
	Busy     string
	Focused  bool
	Disabled bool
	Loading  bool
}

func (b Button) View() string {
	label := b.Label
	if b.Loading && b.Busy != "" {
		label = b.Busy
	}
	if b.Focused && !b.Disabled && !b.Loading {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}
