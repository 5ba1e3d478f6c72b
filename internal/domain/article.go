package domain

import (
	"strings"
	"time"
)

// Article is the normalized news item produced by ingestion. Every article
// surviving the fetch stage has a non-empty Title and Link.
type Article struct {
	Title          string
	Summary        string
	Link           string
	Published      string
	SourceName     string
	SourceTitle    string
	GUID           string
	FetchedAt      time.Time
	RelevanceScore int
}

// Sentiment is the discrete category assigned by the classifier.
type Sentiment string

const (
	SentimentBullish         Sentiment = "BULLISH"
	SentimentSlightlyBullish Sentiment = "SLIGHTLY_BULLISH"
	SentimentNeutral         Sentiment = "NEUTRAL"
	SentimentSlightlyBearish Sentiment = "SLIGHTLY_BEARISH"
	SentimentBearish         Sentiment = "BEARISH"
)

// Display renders the category for user-facing output.
func (s Sentiment) Display() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// AnnotatedArticle is an Article plus the per-article annotation: a regenerated
// extractive summary, a sentiment category with its display glyph, and a short
// insight sentence. It is a value object; never mutated after creation.
type AnnotatedArticle struct {
	Article   Article
	Summary   string
	Emoji     string
	Sentiment Sentiment
	Insight   string
}
