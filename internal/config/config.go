package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv    = "CRYPTODIGEST_CONFIG"
	databasePathEnv  = "DATABASE_PATH"
	telegramTokenEnv = "TELEGRAM_BOT_TOKEN"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Database  DatabaseConfig  `yaml:"database"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	News      NewsConfig      `yaml:"news"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DatabaseConfig points at the on-disk subscriber store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// TelegramConfig wires the bot credentials.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
}

// SchedulerConfig defines when the daily digest broadcast fires (UTC).
type SchedulerConfig struct {
	Hour   int `yaml:"hour"`
	Minute int `yaml:"minute"`
}

// SourceConfig describes one RSS feed. Order in the list is fetch order.
type SourceConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// fileConfig mirrors Config for YAML decoding. The scheduler block is a
// pointer so an explicit 00:00 broadcast time is distinguishable from an
// absent block.
type fileConfig struct {
	Logging   LoggingConfig    `yaml:"logging"`
	Database  DatabaseConfig   `yaml:"database"`
	Telegram  TelegramConfig   `yaml:"telegram"`
	Scheduler *SchedulerConfig `yaml:"scheduler"`
	News      NewsConfig       `yaml:"news"`
}

// NewsConfig groups the ingestion and ranking knobs.
type NewsConfig struct {
	Sources          []SourceConfig `yaml:"sources"`
	MaxPerSource     int            `yaml:"maxPerSource"`
	TotalLimit       int            `yaml:"totalLimit"`
	DigestCount      int            `yaml:"digestCount"`
	TrustedSources   []string       `yaml:"trustedSources"`
	FetchDelayMillis int            `yaml:"fetchDelayMillis"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg fileConfig
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.News.Sources) == 0 {
		cfg.News.Sources = defaultConfig().News.Sources
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databasePathEnv); v != "" {
		c.Database.Path = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Telegram.BotToken = v
	}
}

func mergeConfig(base Config, override fileConfig) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Database.Path != "" {
		base.Database = override.Database
	}

	if override.Telegram.BotToken != "" {
		base.Telegram = override.Telegram
	}

	if override.Scheduler != nil {
		base.Scheduler = *override.Scheduler
	}

	if len(override.News.Sources) > 0 {
		base.News.Sources = override.News.Sources
	}
	if override.News.MaxPerSource > 0 {
		base.News.MaxPerSource = override.News.MaxPerSource
	}
	if override.News.TotalLimit > 0 {
		base.News.TotalLimit = override.News.TotalLimit
	}
	if override.News.DigestCount > 0 {
		base.News.DigestCount = override.News.DigestCount
	}
	if len(override.News.TrustedSources) > 0 {
		base.News.TrustedSources = override.News.TrustedSources
	}
	if override.News.FetchDelayMillis > 0 {
		base.News.FetchDelayMillis = override.News.FetchDelayMillis
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging:   LoggingConfig{Level: "info"},
		Database:  DatabaseConfig{Path: "users.db"},
		Telegram:  TelegramConfig{BotToken: ""},
		Scheduler: SchedulerConfig{Hour: 9, Minute: 0},
		News: NewsConfig{
			Sources: []SourceConfig{
				{Name: "coindesk", URL: "https://www.coindesk.com/arc/outboundfeeds/rss/"},
				{Name: "cointelegraph", URL: "https://cointelegraph.com/rss"},
				{Name: "decrypt", URL: "https://decrypt.co/feed"},
				{Name: "coinmarketcap", URL: "https://coinmarketcap.com/headlines/rss"},
				{Name: "cryptonews", URL: "https://cryptonews.com/news/feed"},
			},
			MaxPerSource:     15,
			TotalLimit:       50,
			DigestCount:      10,
			TrustedSources:   []string{"coindesk", "cointelegraph"},
			FetchDelayMillis: 500,
		},
	}
}
