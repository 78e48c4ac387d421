package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/storenamer/internal/models"
	"github.com/Rorical/storenamer/ui/styles"
)

const maxLoadingDots = 3

func phaseBadge(phase models.Phase) string {
	var color lipgloss.Color
	switch phase {
	case models.Loading:
		color = styles.PhaseLoadingColor
	case models.Success:
		color = styles.PhaseSuccessColor
	case models.Failed:
		color = styles.PhaseFailedColor
	default:
		color = styles.PhaseIdleColor
	}
	return styles.PhaseStyle(color).Render("[" + strings.ToUpper(phase.String()) + "]")
}

// RenderStatus draws the bottom bar: a phase badge followed by the status
// text. While loading the text is padded so the dots do not shift the bar.
func RenderStatus(phase models.Phase, status string, loadingDots int, width int) string {
	text := status
	if phase == models.Loading {
		dots := loadingDots % (maxLoadingDots + 1)
		text += strings.Repeat(".", dots) + strings.Repeat(" ", maxLoadingDots-dots)
	}
	return styles.StatusStyle(width).Render(phaseBadge(phase) + " " + text)
}
