package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"cryptodigest/internal/domain"
)

type stubSource struct {
	articles []domain.Article
}

func (s *stubSource) LatestNews(ctx context.Context) []domain.Article {
	return s.articles
}

type stubAnnotator struct {
	failTitle string
	jitter    bool
}

func (s *stubAnnotator) Annotate(article domain.Article) (domain.AnnotatedArticle, error) {
	if s.jitter {
		time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
	}
	if article.Title == s.failTitle {
		return domain.AnnotatedArticle{}, errors.New("annotation blew up")
	}
	return domain.AnnotatedArticle{
		Article:   article,
		Summary:   article.Title + " summarized",
		Emoji:     "⚠️",
		Sentiment: domain.SentimentNeutral,
		Insight:   "insight",
	}, nil
}

func articlesNamed(n int) []domain.Article {
	articles := make([]domain.Article, n)
	for i := range articles {
		articles[i] = domain.Article{
			Title: fmt.Sprintf("article-%02d", i),
			Link:  fmt.Sprintf("https://example.com/%d", i),
		}
	}
	return articles
}

func TestBuildPreservesRankOrder(t *testing.T) {
	t.Parallel()

	source := &stubSource{articles: articlesNamed(20)}
	pipeline := NewDigestPipeline(DigestDeps{
		Source:    source,
		Annotator: &stubAnnotator{jitter: true},
		Workers:   4,
	})

	annotated := pipeline.Build(context.Background())
	if len(annotated) != 20 {
		t.Fatalf("expected 20 annotated articles, got %d", len(annotated))
	}

	for i, article := range annotated {
		want := fmt.Sprintf("article-%02d", i)
		if article.Article.Title != want {
			t.Fatalf("order broken at %d: got %q", i, article.Article.Title)
		}
	}
}

func TestBuildDropsFailedAnnotations(t *testing.T) {
	t.Parallel()

	source := &stubSource{articles: articlesNamed(5)}
	pipeline := NewDigestPipeline(DigestDeps{
		Source:    source,
		Annotator: &stubAnnotator{failTitle: "article-02"},
	})

	annotated := pipeline.Build(context.Background())
	if len(annotated) != 4 {
		t.Fatalf("expected 4 annotated articles, got %d", len(annotated))
	}

	for _, article := range annotated {
		if article.Article.Title == "article-02" {
			t.Fatal("failed article leaked into output")
		}
	}
}

func TestBuildEmptySource(t *testing.T) {
	t.Parallel()

	pipeline := NewDigestPipeline(DigestDeps{
		Source:    &stubSource{},
		Annotator: &stubAnnotator{},
	})

	if got := pipeline.Build(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty digest, got %d articles", len(got))
	}
}
