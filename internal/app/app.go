package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cryptodigest/internal/annotate"
	"cryptodigest/internal/config"
	"cryptodigest/internal/infrastructure/feed"
	"cryptodigest/internal/infrastructure/scheduler"
	"cryptodigest/internal/infrastructure/storage"
	"cryptodigest/internal/infrastructure/telegram"
	"cryptodigest/internal/infrastructure/vader"
	"cryptodigest/internal/logging"
	"cryptodigest/internal/news"
	"cryptodigest/internal/render"
	"cryptodigest/internal/usecase"
)

// Application wires configuration to the digest pipeline, the bot, and the
// daily broadcast scheduler.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	bot       *telegram.Bot
	scheduler *scheduler.Daily
	store     *storage.SQLiteRepository
}

// New builds a runnable application instance. The sentiment scorer is
// resolved here, once; the classifier degrades to NEUTRAL only if it is
// absent for the whole process lifetime.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open subscriber store: %w", err)
	}

	fetcher := feed.NewFetcher(nil, cfg.News.MaxPerSource, baseLogger.With("component", "feed"))

	aggregator := news.NewAggregator(news.AggregatorDeps{
		Fetcher:    fetcher,
		Ranker:     news.NewRanker(cfg.News.TrustedSources),
		Sources:    cfg.News.Sources,
		TotalLimit: cfg.News.TotalLimit,
		FetchDelay: time.Duration(cfg.News.FetchDelayMillis) * time.Millisecond,
		Logger:     baseLogger.With("component", "aggregator"),
	})

	classifier := annotate.NewClassifier(vader.NewScorer())
	annotator := annotate.NewArticleAnnotator(classifier)

	pipeline := usecase.NewDigestPipeline(usecase.DigestDeps{
		Source:    aggregator,
		Annotator: annotator,
		Logger:    baseLogger.With("component", "pipeline"),
	})

	formatter := render.NewFormatter(cfg.News.DigestCount)
	service := usecase.NewDigestService(pipeline, formatter, baseLogger.With("component", "digest"))

	bot, err := telegram.NewBot(cfg.Telegram.BotToken, service, store, formatter,
		baseLogger.With("component", "bot"))
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("start telegram bot: %w", err)
	}

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		bot:       bot,
		scheduler: scheduler.NewDaily(cfg.Scheduler.Hour, cfg.Scheduler.Minute),
		store:     store,
	}, nil
}

// Run starts the daily broadcast and serves bot updates until ctx ends.
func (a *Application) Run(ctx context.Context) error {
	defer a.store.Close()

	err := a.scheduler.Start(ctx, func(t time.Time) {
		a.logger.Info("daily broadcast triggered", "at", t.UTC().Format(time.RFC3339))
		a.bot.BroadcastDigest(ctx)
	})
	if err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer func() { _ = a.scheduler.Stop(context.Background()) }()

	return a.bot.Run(ctx)
}
