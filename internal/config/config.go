package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	TelegramBotToken    string `env:"TELEGRAM_BOT_TOKEN,required"`
	TelegramPollTimeout int    `env:"TELEGRAM_POLL_TIMEOUT,default=60"`

	DBPath string `env:"DB_PATH,default=alerts.db"`

	CoinGeckoBaseURL string        `env:"COINGECKO_BASE_URL,default=https://api.coingecko.com/api/v3"`
	CoinGeckoTimeout time.Duration `env:"COINGECKO_TIMEOUT,default=10s"`

	CheckInterval time.Duration `env:"CHECK_INTERVAL,default=30s"`
	PriceCacheTTL time.Duration `env:"PRICE_CACHE_TTL,default=30s"`

	MaxAlertsPerUser int     `env:"MAX_ALERTS_PER_USER,default=1000"`
	MinTargetPrice   float64 `env:"MIN_TARGET_PRICE,default=0.000001"`
	MaxTargetPrice   float64 `env:"MAX_TARGET_PRICE,default=1000000000"`

	MetricsPort int    `env:"METRICS_PORT,default=9090"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
}

func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
