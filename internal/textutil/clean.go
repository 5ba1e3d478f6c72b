// Package textutil provides the two normalization flavors used by ingestion
// and annotation. Both are idempotent and fail open: on any internal failure
// the original input comes back unchanged.
package textutil

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// maxIngestLen caps lenient output; longer text is cut and marked.
const maxIngestLen = 500

// CleanLenient strips markup, collapses whitespace runs to single spaces, and
// caps the result at 500 characters with a trailing ellipsis. Used at feed
// ingestion where content may carry arbitrary HTML.
func CleanLenient(text string) string {
	if text == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}

	cleaned := collapseWhitespace(doc.Text())
	return Truncate(cleaned, maxIngestLen)
}

// CleanStrict additionally removes any character outside letters, digits,
// whitespace, and basic punctuation. Used before sentiment and summary
// analysis where stray symbols skew scoring.
func CleanStrict(text string) string {
	if text == "" {
		return ""
	}

	cleaned := stripTags(text)
	cleaned = filterRunes(cleaned)
	return collapseWhitespace(cleaned)
}

// Truncate cuts text to max runes, appending an ellipsis when it actually cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// stripTags removes anything between angle brackets without parsing; the
// strict flavor never needs entity decoding.
func stripTags(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	depth := 0
	for _, r := range text {
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// filterRunes keeps letters and digits in any script; feed text is not
// ASCII-only and accented names must survive intact.
func filterRunes(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return r
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return r
		case r == '.' || r == ',' || r == '!' || r == '?' || r == '-' || r == '_':
			return r
		default:
			return -1
		}
	}, text)
}
