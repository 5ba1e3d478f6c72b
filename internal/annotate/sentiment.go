package annotate

import (
	"unicode/utf8"

	"cryptodigest/internal/domain"
	"cryptodigest/internal/ports"
	"cryptodigest/internal/textutil"
)

const minClassifiableLen = 5

// cautionGlyph marks articles classified without a usable signal.
const cautionGlyph = "⚠️"

// sentimentGlyphs maps each category to its fixed display glyph.
var sentimentGlyphs = map[domain.Sentiment]string{
	domain.SentimentBullish:         "\U0001f680",
	domain.SentimentBearish:         "\U0001f43b",
	domain.SentimentSlightlyBullish: "\U0001f4c8",
	domain.SentimentSlightlyBearish: "\U0001f4c9",
	domain.SentimentNeutral:         cautionGlyph,
}

// Glyph returns the display glyph for a category, caution for unknown ones.
func Glyph(s domain.Sentiment) string {
	if glyph, ok := sentimentGlyphs[s]; ok {
		return glyph
	}
	return cautionGlyph
}

// Classifier maps cleaned text onto a discrete sentiment category through a
// fixed threshold ladder over the scorer's compound polarity. A nil scorer is
// the degraded mode: every input classifies NEUTRAL for the process lifetime.
type Classifier struct {
	scorer ports.PolarityScorer
}

// NewClassifier resolves the scorer once; pass nil for degraded mode.
func NewClassifier(scorer ports.PolarityScorer) *Classifier {
	return &Classifier{scorer: scorer}
}

// Classify returns the display glyph and category for the text. It never
// fails: unusable input or a missing scorer yields NEUTRAL with the caution
// glyph.
func (c *Classifier) Classify(text string) (string, domain.Sentiment) {
	if c.scorer == nil {
		return cautionGlyph, domain.SentimentNeutral
	}

	cleaned := textutil.CleanStrict(text)
	if utf8.RuneCountInString(cleaned) < minClassifiableLen {
		return cautionGlyph, domain.SentimentNeutral
	}

	compound := c.scorer.Compound(cleaned)

	// Threshold ladder; evaluation order matters, first match wins.
	var category domain.Sentiment
	switch {
	case compound >= 0.2:
		category = domain.SentimentBullish
	case compound <= -0.2:
		category = domain.SentimentBearish
	case compound >= 0.05:
		category = domain.SentimentSlightlyBullish
	case compound <= -0.05:
		category = domain.SentimentSlightlyBearish
	default:
		category = domain.SentimentNeutral
	}

	return Glyph(category), category
}
