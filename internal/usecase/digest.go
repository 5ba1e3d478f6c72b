package usecase

import (
	"context"
	"log/slog"
	"sync"

	"cryptodigest/internal/domain"
	"cryptodigest/internal/ports"
)

// defaultAnnotateWorkers bounds concurrent annotation. Annotations share no
// mutable state, so a small pool is safe; results are reassembled by original
// index to keep the ranker's order.
const defaultAnnotateWorkers = 4

// DigestPipeline is the top-level operation external callers invoke: gather
// the ranked article set and annotate every article. A failed annotation
// drops that article, never the batch.
type DigestPipeline struct {
	source    ports.NewsSource
	annotator ports.Annotator
	workers   int
	logger    *slog.Logger
}

// DigestDeps wires the pipeline collaborators.
type DigestDeps struct {
	Source    ports.NewsSource
	Annotator ports.Annotator
	Workers   int
	Logger    *slog.Logger
}

// NewDigestPipeline constructs the pipeline.
func NewDigestPipeline(deps DigestDeps) *DigestPipeline {
	workers := deps.Workers
	if workers <= 0 {
		workers = defaultAnnotateWorkers
	}
	return &DigestPipeline{
		source:    deps.Source,
		annotator: deps.Annotator,
		workers:   workers,
		logger:    deps.Logger,
	}
}

// Build returns the ordered, annotated article set for the current moment.
// The result may be empty; it is never an error.
func (p *DigestPipeline) Build(ctx context.Context) []domain.AnnotatedArticle {
	articles := p.source.LatestNews(ctx)
	if len(articles) == 0 {
		return nil
	}

	p.debug("annotating articles", "count", len(articles))

	results := make([]*domain.AnnotatedArticle, len(articles))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				annotated, err := p.annotator.Annotate(articles[i])
				if err != nil {
					p.warn("annotation failed, dropping article",
						"title", articles[i].Title, "error", err)
					continue
				}
				results[i] = &annotated
			}
		}()
	}

dispatch:
	for i := range articles {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	annotated := make([]domain.AnnotatedArticle, 0, len(articles))
	for _, result := range results {
		if result != nil {
			annotated = append(annotated, *result)
		}
	}

	p.debug("digest built", "articles", len(annotated))
	return annotated
}

func (p *DigestPipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *DigestPipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
