package annotate

import (
	"testing"

	"cryptodigest/internal/domain"
)

func TestAnnotateProducesFullAnnotation(t *testing.T) {
	t.Parallel()

	annotator := NewArticleAnnotator(NewClassifier(&stubScorer{compound: 0.3}))

	article := domain.Article{
		Title:   "Bitcoin Rallies Past Resistance",
		Summary: "Traders cheered as the price broke out to new highs for the year.",
		Link:    "https://example.com/1",
	}

	annotated, err := annotator.Annotate(article)
	if err != nil {
		t.Fatalf("Annotate error: %v", err)
	}

	if annotated.Summary == "" {
		t.Fatal("expected regenerated summary")
	}
	if annotated.Sentiment != domain.SentimentBullish {
		t.Fatalf("expected BULLISH, got %s", annotated.Sentiment)
	}
	if annotated.Emoji != Glyph(domain.SentimentBullish) {
		t.Fatalf("unexpected glyph: %q", annotated.Emoji)
	}
	if annotated.Insight == "" {
		t.Fatal("expected non-empty insight")
	}
	if annotated.Article.Link != article.Link {
		t.Fatal("expected original article carried through")
	}
}

func TestAnnotateRejectsIncompleteArticle(t *testing.T) {
	t.Parallel()

	annotator := NewArticleAnnotator(NewClassifier(nil))

	if _, err := annotator.Annotate(domain.Article{Title: "No Link"}); err == nil {
		t.Fatal("expected error for article without link")
	}
	if _, err := annotator.Annotate(domain.Article{Link: "https://example.com"}); err == nil {
		t.Fatal("expected error for article without title")
	}
}
