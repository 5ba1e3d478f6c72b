package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"cryptodigest/internal/render"
)

func testService(source *stubSource) *DigestService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pipeline := NewDigestPipeline(DigestDeps{
		Source:    source,
		Annotator: &stubAnnotator{},
		Logger:    logger,
	})
	return NewDigestService(pipeline, render.NewFormatter(10), logger)
}

func TestDailyDigestRendersArticles(t *testing.T) {
	t.Parallel()

	service := testService(&stubSource{articles: articlesNamed(3)})

	message := service.DailyDigest(context.Background())
	if !strings.Contains(message, "CRYPTO DIGEST") {
		t.Fatal("missing digest header")
	}
	for _, title := range []string{"article-00", "article-01", "article-02"} {
		if !strings.Contains(message, title) {
			t.Fatalf("digest missing %q", title)
		}
	}
}

func TestDailyDigestEmptyPipeline(t *testing.T) {
	t.Parallel()

	service := testService(&stubSource{})

	message := service.DailyDigest(context.Background())
	if !strings.Contains(message, "No news articles available right now.") {
		t.Fatalf("expected no-news message, got %q", message)
	}
}

func TestTrendingRendersGroups(t *testing.T) {
	t.Parallel()

	service := testService(&stubSource{articles: articlesNamed(2)})

	message := service.Trending(context.Background())
	if !strings.Contains(message, "NEUTRAL DEVELOPMENTS") {
		t.Fatal("expected neutral group from stub annotations")
	}
}
