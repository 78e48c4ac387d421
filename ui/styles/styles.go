package styles

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("38")
	muted   = lipgloss.Color("245")
	danger  = lipgloss.Color("160")
	success = lipgloss.Color("42")
	shopify = lipgloss.Color("#008060")
)

func contentWidth(width int) int {
	if width <= 4 {
		return 0
	}
	return width - 4
}

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 2)
}

func SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Padding(0, 2)
}

func NoticeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Padding(0, 2)
}

func InputStyle(width int, focused bool) lipgloss.Style {
	border := lipgloss.Color("240")
	if focused {
		border = accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(contentWidth(width))
}

func PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)
}

func ErrorStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(danger).
		Border(lipgloss.NormalBorder()).
		BorderForeground(danger).
		Padding(0, 1).
		Width(contentWidth(width))
}

func NameStyle(selected bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		Padding(0, 1).
		MarginLeft(2)
	if selected {
		return style.
			Foreground(accent).
			BorderForeground(accent).
			Bold(true)
	}
	return style.BorderForeground(lipgloss.Color("240"))
}

func CopiedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(success).
		Bold(true)
}

func LinkStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(shopify).
		Underline(true)
}

func FooterStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(muted).
		Padding(0, 2)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

// PhaseStyle colors the phase badge in the status bar.
func PhaseStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(color).
		Background(lipgloss.Color("235")).
		Bold(true)
}

var (
	PhaseIdleColor    = muted
	PhaseLoadingColor = accent
	PhaseSuccessColor = success
	PhaseFailedColor  = danger
)
