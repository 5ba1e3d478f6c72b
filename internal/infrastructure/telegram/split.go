package telegram

import "strings"

// SplitMessage breaks text into chunks no longer than limit, preferring
// blank-line boundaries so article sections stay intact. A single paragraph
// longer than limit is hard-cut.
func SplitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var parts []string
	var current strings.Builder

	for _, paragraph := range strings.Split(text, "\n\n") {
		for len(paragraph) > limit {
			if current.Len() > 0 {
				parts = append(parts, strings.TrimSpace(current.String()))
				current.Reset()
			}
			parts = append(parts, paragraph[:limit])
			paragraph = paragraph[limit:]
		}

		if current.Len() > 0 && current.Len()+len(paragraph)+2 > limit {
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
		}

		current.WriteString(paragraph)
		current.WriteString("\n\n")
	}

	if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
		parts = append(parts, trimmed)
	}

	return parts
}
