package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/config"
	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/delivery/telegram"
	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/infra/coingecko"
	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/infra/db"
	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/infra/log"
	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/infra/metrics"
	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/usecase"
	"go.uber.org/zap"
)

type App struct {
	bot        *telegram.Bot
	checker    *usecase.AlertChecker
	coinIndex  *usecase.CoinIndex
	metricsSrv *http.Server
	logger     *zap.Logger
	cleanupFn  func() error
}

func New(cfg config.Config) (*App, error) {
	logger, err := log.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.Open(cfg.DBPath, logger)
	if err != nil {
		return nil, err
	}

	alertRepo := db.NewAlertRepository(dbConn)
	alertUC := usecase.NewAlertUsecase(alertRepo, logger)

	gecko := coingecko.NewClient(cfg.CoinGeckoBaseURL, cfg.CoinGeckoTimeout, logger)
	priceCache := usecase.NewPriceCache(gecko, cfg.PriceCacheTTL, logger)
	coinIndex := usecase.NewCoinIndex(gecko, logger)

	botMetrics := metrics.New()

	api, err := telegram.NewAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, err
	}

	notifier := telegram.NewNotifier(api, logger)
	checker := usecase.NewAlertChecker(alertUC, priceCache, coinIndex, notifier, botMetrics, logger, cfg.CheckInterval)

	limits := telegram.AlertLimits{
		MaxPerUser: cfg.MaxAlertsPerUser,
		MinTarget:  cfg.MinTargetPrice,
		MaxTarget:  cfg.MaxTargetPrice,
	}
	handlers := telegram.NewHandlers(alertUC, priceCache, coinIndex, limits, logger)
	bot := telegram.NewBot(api, handlers, cfg.TelegramPollTimeout)

	cleanup := func() error {
		sqlDB, err := dbConn.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return &App{
		bot:        bot,
		checker:    checker,
		coinIndex:  coinIndex,
		metricsSrv: botMetrics.Server(cfg.MetricsPort),
		logger:     logger,
		cleanupFn:  cleanup,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("mycoinsalert service starting")

	go func() {
		if err := a.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()

	if err := a.coinIndex.Load(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	go a.checker.Run(ctx)

	a.logger.Info("mycoinsalert service started")
	return a.bot.Start(ctx)
}

func (a *App) Shutdown() {
	a.logger.Info("mycoinsalert service shutting down")
	if err := a.metricsSrv.Close(); err != nil {
		a.logger.Warn("failed to close metrics server", zap.Error(err))
	}
	if a.cleanupFn != nil {
		if err := a.cleanupFn(); err != nil {
			a.logger.Warn("failed to close database", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
