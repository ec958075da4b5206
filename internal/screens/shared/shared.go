// Package shared has rendering helpers used by several screens.
package shared

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplanner/internal/forms"
	"github.com/abhisek/studyplanner/internal/ui/theme"
)

// ContentWidth is the width of the screen sections for a terminal width.
func ContentWidth(width int) int {
	w := width - 4
	if w > 90 {
		w = 90
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Center places content horizontally centered at the top of the area,
// cutting lines that do not fit.
func Center(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}

// RenderNotice renders n, or "" when there is no notice.
func RenderNotice(n forms.Notice, width int) string {
	var style lipgloss.Style
	switch n.Kind {
	case forms.NoticeSuccess:
		style = theme.NoticeSuccess
	case forms.NoticeError:
		style = theme.NoticeError
	default:
		return ""
	}
	return style.Width(width).Render(lipgloss.NewStyle().Bold(true).Render(n.Title) + "  " + n.Message)
}
