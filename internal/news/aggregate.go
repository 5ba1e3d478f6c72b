package news

import (
	"context"
	"log/slog"
	"time"

	"cryptodigest/internal/config"
	"cryptodigest/internal/domain"
	"cryptodigest/internal/ports"
)

// Aggregator runs the ingestion pipeline: fetch every configured source in
// order, deduplicate, rank, cap. A failing source contributes nothing; zero
// articles overall is a first-class empty result.
type Aggregator struct {
	fetcher    ports.FeedSource
	ranker     *Ranker
	sources    []config.SourceConfig
	totalLimit int
	fetchDelay time.Duration
	logger     *slog.Logger
}

var _ ports.NewsSource = (*Aggregator)(nil)

// AggregatorDeps wires the aggregator's collaborators and knobs.
type AggregatorDeps struct {
	Fetcher    ports.FeedSource
	Ranker     *Ranker
	Sources    []config.SourceConfig
	TotalLimit int
	FetchDelay time.Duration
	Logger     *slog.Logger
}

// NewAggregator constructs the ingestion entry point.
func NewAggregator(deps AggregatorDeps) *Aggregator {
	return &Aggregator{
		fetcher:    deps.Fetcher,
		ranker:     deps.Ranker,
		sources:    deps.Sources,
		totalLimit: deps.TotalLimit,
		fetchDelay: deps.FetchDelay,
		logger:     deps.Logger,
	}
}

// LatestNews fetches all sources sequentially with a politeness pause between
// requests, then dedupes, ranks, and truncates to the total limit.
func (a *Aggregator) LatestNews(ctx context.Context) []domain.Article {
	var all []domain.Article

	for i, source := range a.sources {
		articles, err := a.fetcher.Fetch(ctx, source.Name, source.URL)
		if err != nil {
			a.warn("source fetch failed", "source", source.Name, "error", err)
		} else {
			all = append(all, articles...)
		}

		if i < len(a.sources)-1 && !a.pause(ctx) {
			break
		}
	}

	if len(all) == 0 {
		a.warn("no articles fetched from any source")
		return nil
	}

	unique := Dedupe(all)
	a.debug("deduplicated articles", "fetched", len(all), "unique", len(unique))

	ranked := a.ranker.Rank(unique)
	if a.totalLimit > 0 && len(ranked) > a.totalLimit {
		ranked = ranked[:a.totalLimit]
	}

	a.debug("aggregation done", "articles", len(ranked))
	return ranked
}

// pause sleeps the inter-source delay; returns false when the context ends.
func (a *Aggregator) pause(ctx context.Context) bool {
	if a.fetchDelay <= 0 {
		return true
	}

	timer := time.NewTimer(a.fetchDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (a *Aggregator) debug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}

func (a *Aggregator) warn(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}
