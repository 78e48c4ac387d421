package components

import (
	"github.com/Rorical/storenamer/ui/styles"
)

const placeholder = "Describe your store type, products, target audience, and style..."

func RenderInput(input string, focused bool, width int) string {
	content := input
	if content == "" {
		content = styles.PlaceholderStyle().Render(placeholder)
	} else if focused {
		content += "█"
	}
	return styles.InputStyle(width, focused).Render(content)
}
