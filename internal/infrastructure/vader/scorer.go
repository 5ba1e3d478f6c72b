// Package vader adapts the govader lexicon analyzer to the PolarityScorer
// port. The analyzer is built once at startup; when construction is skipped
// the classifier runs in degraded mode instead.
package vader

import (
	"github.com/jonreiter/govader"

	"cryptodigest/internal/ports"
)

// Scorer wraps a govader analyzer.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

var _ ports.PolarityScorer = (*Scorer)(nil)

// NewScorer builds the lexicon analyzer.
func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the compound polarity score in [-1, 1].
func (s *Scorer) Compound(text string) float64 {
	return s.analyzer.PolarityScores(text).Compound
}
