package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"cryptodigest/internal/domain"
	"cryptodigest/internal/ports"
	"cryptodigest/internal/textutil"
)

const defaultTimeout = 15 * time.Second

// Fetcher retrieves one RSS/Atom feed and normalizes its entries into
// articles. Entries missing a title or link are dropped; a single bad entry
// never fails the batch.
type Fetcher struct {
	parser       *gofeed.Parser
	maxPerSource int
	timeout      time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

var _ ports.FeedSource = (*Fetcher)(nil)

// NewFetcher wires an HTTP client; maxPerSource caps entries taken per feed.
func NewFetcher(client *http.Client, maxPerSource int, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = "CryptoDigest/1.0"

	return &Fetcher{
		parser:       parser,
		maxPerSource: maxPerSource,
		timeout:      defaultTimeout,
		logger:       logger,
		now:          time.Now,
	}
}

// Fetch downloads and parses the feed at sourceURL. A slow source times out
// and surfaces as an error; the aggregator treats that as an empty result.
func (f *Fetcher) Fetch(ctx context.Context, sourceName, sourceURL string) ([]domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(sourceURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", sourceName, err)
	}

	if parsed == nil || len(parsed.Items) == 0 {
		f.warn("feed has no entries", "source", sourceName)
		return nil, nil
	}

	sourceTitle := parsed.Title
	if sourceTitle == "" {
		sourceTitle = sourceName
	}

	items := parsed.Items
	if f.maxPerSource > 0 && len(items) > f.maxPerSource {
		items = items[:f.maxPerSource]
	}

	fetchedAt := f.now().UTC()
	articles := make([]domain.Article, 0, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}

		title := textutil.CleanLenient(item.Title)
		if title == "" || item.Link == "" {
			continue
		}

		body := item.Description
		if body == "" {
			body = item.Content
		}

		guid := item.GUID
		if guid == "" {
			guid = fmt.Sprintf("%s_%d", sourceName, i)
		}

		articles = append(articles, domain.Article{
			Title:       title,
			Summary:     textutil.CleanLenient(body),
			Link:        item.Link,
			Published:   item.Published,
			SourceName:  sourceName,
			SourceTitle: sourceTitle,
			GUID:        guid,
			FetchedAt:   fetchedAt,
		})
	}

	f.debug("fetched source", "source", sourceName, "articles", len(articles))
	return articles, nil
}

func (f *Fetcher) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}

func (f *Fetcher) warn(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Warn(msg, args...)
	}
}
