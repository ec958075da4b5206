package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplanner/internal/ui/theme"
)

// ScoreBar renders a labelled 0-100 score as a horizontal bar.
func ScoreBar(label string, score float64, width int) string {
	head := lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	tail := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  %s", strconv.FormatFloat(score, 'f', -1, 64)))

	barWidth := width - lipgloss.Width(head) - lipgloss.Width(tail)
	if barWidth < 4 {
		barWidth = 4
	}
	filled := int(float64(barWidth) * score / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	return head +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		tail
}
