package news

import (
	"strings"

	"cryptodigest/internal/domain"
)

// similarityThreshold is the word-overlap ratio above which two titles are
// considered the same story. Kept as a behavioral contract; tests rely on it.
const similarityThreshold = 0.7

// Dedupe collapses near-duplicate articles by title word overlap. The first
// occurrence of each cluster wins and relative order is preserved. Each
// candidate is compared against every already-accepted title, which is O(n²)
// on purpose: volumes are tens to low hundreds per run.
func Dedupe(articles []domain.Article) []domain.Article {
	if len(articles) == 0 {
		return nil
	}

	unique := make([]domain.Article, 0, len(articles))
	accepted := make([]map[string]struct{}, 0, len(articles))

	for _, article := range articles {
		words := titleWords(article.Title)

		duplicate := false
		for _, seen := range accepted {
			if titleSimilarity(words, seen) > similarityThreshold {
				duplicate = true
				break
			}
		}

		if !duplicate {
			accepted = append(accepted, words)
			unique = append(unique, article)
		}
	}

	return unique
}

func titleWords(title string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(strings.TrimSpace(title))) {
		words[word] = struct{}{}
	}
	return words
}

// titleSimilarity is |intersection| / max(|a|, |b|), not Jaccard over the
// union. Empty sets never match anything.
func titleSimilarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	common := 0
	for word := range a {
		if _, ok := b[word]; ok {
			common++
		}
	}

	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}

	return float64(common) / float64(larger)
}
