package annotate

import (
	"fmt"

	"cryptodigest/internal/domain"
	"cryptodigest/internal/ports"
)

// ArticleAnnotator produces the full per-article annotation: regenerated
// summary, sentiment classification on title+summary, and a keyword insight.
type ArticleAnnotator struct {
	classifier *Classifier
}

var _ ports.Annotator = (*ArticleAnnotator)(nil)

// NewArticleAnnotator wires the sentiment classifier.
func NewArticleAnnotator(classifier *Classifier) *ArticleAnnotator {
	return &ArticleAnnotator{classifier: classifier}
}

// Annotate builds the AnnotatedArticle for one ingested article. Articles
// that lost their required fields somewhere upstream are rejected so the
// pipeline can drop them instead of emitting garbage annotation.
func (a *ArticleAnnotator) Annotate(article domain.Article) (domain.AnnotatedArticle, error) {
	if article.Title == "" || article.Link == "" {
		return domain.AnnotatedArticle{}, fmt.Errorf("article %q missing title or link", article.GUID)
	}

	summary := Summarize(article.Title, article.Summary)
	emoji, category := a.classifier.Classify(article.Title + " " + summary)
	insight := GenerateInsight(article.Title, summary, category)

	return domain.AnnotatedArticle{
		Article:   article,
		Summary:   summary,
		Emoji:     emoji,
		Sentiment: category,
		Insight:   insight,
	}, nil
}
