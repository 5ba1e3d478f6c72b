package ports

import (
	"context"
	"time"

	"cryptodigest/internal/domain"
)

// FeedSource retrieves and normalizes one feed. A malformed feed surfaces as an
// error; the caller decides whether that aborts anything (it never does).
type FeedSource interface {
	Fetch(ctx context.Context, sourceName, sourceURL string) ([]domain.Article, error)
}

// NewsSource produces the ranked, deduplicated article set for the current
// moment. An empty result is a first-class state, not an error.
type NewsSource interface {
	LatestNews(ctx context.Context) []domain.Article
}

// Annotator attaches summary, sentiment, and insight to one article.
type Annotator interface {
	Annotate(article domain.Article) (domain.AnnotatedArticle, error)
}

// PolarityScorer computes a compound sentiment score in [-1, 1] for cleaned
// text. A nil scorer represents the degraded mode resolved at startup.
type PolarityScorer interface {
	Compound(text string) float64
}

// SubscriberStore persists chat subscriptions for the daily broadcast.
type SubscriberStore interface {
	AddSubscriber(ctx context.Context, sub domain.Subscriber) error
	SetSubscribed(ctx context.Context, chatID int64, subscribed bool) (bool, error)
	IsSubscribed(ctx context.Context, chatID int64) (bool, error)
	SubscribedIDs(ctx context.Context) ([]int64, error)
	TouchLastActive(ctx context.Context, chatID int64) error
}

// Scheduler controls when the daily broadcast runs.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
