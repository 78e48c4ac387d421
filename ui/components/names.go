package components

import (
	"strings"

	"github.com/Rorical/storenamer/ui/styles"
)

// ShopifyTrialURL is the static call to action shown under the results.
const ShopifyTrialURL = "https://www.shopify.com/free-trial-offer"

func RenderNames(names []string, cursor, copiedIndex int, focused bool) string {
	if len(names) == 0 {
		return ""
	}

	var b strings.Builder
	for i, name := range names {
		selected := focused && i == cursor
		line := styles.NameStyle(selected).Render(name)
		if i == copiedIndex {
			line += "  " + styles.CopiedStyle().Render("Copied!")
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FooterStyle().Render("Start free on Shopify: "+styles.LinkStyle().Render(ShopifyTrialURL)) + "\n")

	return b.String()
}

func RenderHelp(focused bool) string {
	help := "enter generate • tab results • ctrl+u clear • esc quit"
	if focused {
		help = "↑/↓ select • enter/c copy • tab edit • esc quit"
	}
	return styles.FooterStyle().Render(help)
}
