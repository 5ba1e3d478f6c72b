package news

import (
	"sort"
	"strings"

	"cryptodigest/internal/domain"
)

// Scoring weights. Empirically chosen constants preserved as behavioral
// contracts; tests rely on them.
const (
	titleKeywordWeight   = 3
	summaryKeywordWeight = 1
	trustedSourceBonus   = 2
)

// importantKeywords raise an article's relevance. Matches are substring
// checks against the lower-cased title and summary, cumulative and uncapped.
var importantKeywords = []string{
	"bitcoin", "btc", "ethereum", "eth", "crypto", "blockchain",
	"defi", "nft", "regulation", "sec", "etf", "adoption",
	"price", "market", "trading", "investment", "bull", "bear",
}

// Ranker scores articles by topical keywords and source trust, then orders
// them by score.
type Ranker struct {
	trusted map[string]struct{}
}

// NewRanker records which source names receive the trust bonus.
func NewRanker(trustedSources []string) *Ranker {
	trusted := make(map[string]struct{}, len(trustedSources))
	for _, name := range trustedSources {
		trusted[name] = struct{}{}
	}
	return &Ranker{trusted: trusted}
}

// Rank assigns each article its relevance score and returns the articles
// sorted by score descending. Ties keep their original relative order via an
// explicit (score desc, index asc) comparison over decorated entries.
func (r *Ranker) Rank(articles []domain.Article) []domain.Article {
	if len(articles) == 0 {
		return nil
	}

	type decorated struct {
		index   int
		article domain.Article
	}

	entries := make([]decorated, len(articles))
	for i, article := range articles {
		article.RelevanceScore = r.Score(article)
		entries[i] = decorated{index: i, article: article}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].article.RelevanceScore != entries[j].article.RelevanceScore {
			return entries[i].article.RelevanceScore > entries[j].article.RelevanceScore
		}
		return entries[i].index < entries[j].index
	})

	ranked := make([]domain.Article, len(entries))
	for i, entry := range entries {
		ranked[i] = entry.article
	}
	return ranked
}

// Score computes the relevance score for a single article.
func (r *Ranker) Score(article domain.Article) int {
	title := strings.ToLower(article.Title)
	summary := strings.ToLower(article.Summary)

	score := 0
	for _, keyword := range importantKeywords {
		if strings.Contains(title, keyword) {
			score += titleKeywordWeight
		}
		if strings.Contains(summary, keyword) {
			score += summaryKeywordWeight
		}
	}

	if _, ok := r.trusted[article.SourceName]; ok {
		score += trustedSourceBonus
	}

	return score
}
