package usecase

import (
	"context"
	"log/slog"
	"time"

	"cryptodigest/internal/render"
)

// DigestService pairs the pipeline with the formatter: it is what the bot
// and the scheduler call to get ready-to-send text. An empty pipeline result
// renders as the "no news" message, never as an error.
type DigestService struct {
	pipeline  *DigestPipeline
	formatter *render.Formatter
	logger    *slog.Logger
}

// NewDigestService wires pipeline and formatter.
func NewDigestService(pipeline *DigestPipeline, formatter *render.Formatter, logger *slog.Logger) *DigestService {
	return &DigestService{pipeline: pipeline, formatter: formatter, logger: logger}
}

// DailyDigest renders the full digest message for the current moment.
func (s *DigestService) DailyDigest(ctx context.Context) string {
	started := time.Now()

	articles := s.pipeline.Build(ctx)
	message := s.formatter.DailyDigest(articles)

	s.logger.Info("daily digest generated",
		"articles", len(articles), "duration", time.Since(started).Round(time.Millisecond))
	return message
}

// Trending renders the sentiment-grouped trending view.
func (s *DigestService) Trending(ctx context.Context) string {
	return s.formatter.Trending(s.pipeline.Build(ctx))
}
