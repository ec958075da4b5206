package components

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplanner/internal/ui/theme"
)

// Field is a labelled single-line input with an inline error.
type Field struct {
	Label string
	Err   string

	// Numeric drops keys that cannot appear in a decimal number.
	Numeric bool

	input textinput.Model
}

func NewField(label, placeholder string) Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	return Field{Label: label, input: ti}
}

func (f *Field) Focus() tea.Cmd { return f.input.Focus() }
func (f *Field) Blur()          { f.input.Blur() }
func (f Field) Focused() bool   { return f.input.Focused() }
func (f Field) Value() string   { return f.input.Value() }

func (f *Field) SetValue(v string) { f.input.SetValue(v) }

func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	if f.Numeric {
		if k, ok := msg.(tea.KeyPressMsg); ok && !numericKey(k.String()) {
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f Field) View() string {
	return renderField(f.Label, f.input.View(), f.Err, f.input.Focused())
}

func numericKey(key string) bool {
	if len(key) != 1 {
		// Navigation and editing keys.
		return true
	}
	c := key[0]
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}

// Area is a labelled multi-line input with an inline error.
type Area struct {
	Label string
	Err   string

	input textarea.Model
}

func NewArea(label, placeholder string, width, height int) Area {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetWidth(width)
	ta.SetHeight(height)
	return Area{Label: label, input: ta}
}

func (a *Area) Focus() tea.Cmd { return a.input.Focus() }
func (a *Area) Blur()          { a.input.Blur() }
func (a Area) Focused() bool   { return a.input.Focused() }
func (a Area) Value() string   { return a.input.Value() }

func (a *Area) SetValue(v string) { a.input.SetValue(v) }

func (a Area) Update(msg tea.Msg) (Area, tea.Cmd) {
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a Area) View() string {
	return renderField(a.Label, a.input.View(), a.Err, a.input.Focused())
}

func renderField(label, input, errMsg string, focused bool) string {
	var b strings.Builder
	if focused {
		b.WriteString(theme.Selected.Render(label))
	} else {
		b.WriteString(theme.Label.Render(label))
	}
	b.WriteString("\n")
	b.WriteString(input)
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.FieldError.Render(errMsg))
	}
	return b.String()
}
