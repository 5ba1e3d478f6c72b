package annotate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"cryptodigest/internal/textutil"
)

const (
	shortBodyLen     = 50
	minSentenceLen   = 20
	maxGoodSentences = 2
	fallbackBodyLen  = 200
	rescueBodyLen    = 150
	minSummaryLen    = 30
	maxSummaryLen    = 400
)

// Runs of sentence-ending punctuation count as a single delimiter.
var sentenceEndExpr = regexp.MustCompile(`[.!?]+`)

// Summarize builds a bounded extractive summary from title and body without a
// trained model. It always returns a non-empty string for non-empty input.
func Summarize(title, body string) string {
	title = textutil.CleanStrict(title)
	body = textutil.CleanStrict(body)

	var summary string
	if utf8.RuneCountInString(body) < shortBodyLen {
		summary = strings.TrimSpace(title + ". " + body)
	} else {
		summary = leadingSentences(body)
	}

	// Too thin to stand alone: rebuild from the title and the body head.
	// The rescue always ends in an ellipsis, cut or not.
	if utf8.RuneCountInString(summary) < minSummaryLen {
		head := []rune(body)
		if len(head) > rescueBodyLen {
			head = head[:rescueBodyLen]
		}
		summary = title + ". " + string(head) + "..."
	}
	if utf8.RuneCountInString(summary) > maxSummaryLen {
		summary = textutil.Truncate(summary, maxSummaryLen)
	}

	return strings.TrimSpace(summary)
}

// leadingSentences joins up to the first two sentences longer than 20
// characters; when none qualify it falls back to the body head.
func leadingSentences(body string) string {
	sentences := sentenceEndExpr.Split(body, -1)

	var good []string
	for _, sentence := range sentences {
		trimmed := strings.TrimSpace(sentence)
		if utf8.RuneCountInString(trimmed) > minSentenceLen {
			good = append(good, trimmed)
			if len(good) == maxGoodSentences {
				break
			}
		}
	}

	if len(good) == 0 {
		return textutil.Truncate(body, fallbackBodyLen)
	}

	summary := strings.Join(good, ". ")
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	return summary
}
