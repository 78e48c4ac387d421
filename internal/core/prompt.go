package core

import (
	"fmt"
	"strings"
)

// RequestedNames is how many names the instruction asks for. Replies are not
// truncated or padded to this count.
const RequestedNames = 5

const promptTemplate = "Generate %d creative, memorable, and catchy store names based on this description: %s. " +
	"Consider the store type, target audience, and industry. " +
	"The names should be unique, brandable, and available as .com domains. " +
	"Each name should be 1-3 words maximum. " +
	"Return only the store names, one per line, without any additional text or explanations."

// BuildPrompt embeds the description, as typed, into the instruction.
func BuildPrompt(description string) string {
	return fmt.Sprintf(promptTemplate, RequestedNames, description)
}

// ParseNames splits a reply into names: one per line, trimmed, blank lines
// dropped, order kept.
func ParseNames(text string) []string {
	names := make([]string, 0, RequestedNames)
	for _, line := range strings.Split(text, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names
}
