package components

import (
	"strings"

	"github.com/Rorical/storenamer/ui/styles"
)

func RenderHeader(notices []string) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle().Render("AI Store Name Generator") + "\n")
	b.WriteString(styles.SubtitleStyle().Render("Create the perfect name for your store in seconds") + "\n\n")
	for _, notice := range notices {
		b.WriteString(styles.NoticeStyle().Render(notice) + "\n")
	}
	if len(notices) > 0 {
		b.WriteString("\n")
	}

	return b.String()
}

func RenderError(message string, width int) string {
	if message == "" {
		return ""
	}
	return styles.ErrorStyle(width).Render(message) + "\n"
}
