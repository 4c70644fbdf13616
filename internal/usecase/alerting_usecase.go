package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/domain"
	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/infra/metrics"
	"go.uber.org/zap"
)

// Notifier delivers one formatted message to a user. Delivery is
// fire-and-forget from the checker's perspective; there is no retry.
type Notifier interface {
	Notify(userID int64, text string) error
}

// CoinNamer resolves a coin id to its display name.
type CoinNamer interface {
	DisplayName(coinID string) string
}

// AlertChecker is the evaluation loop: on a fixed interval it loads every
// stored alert, batches one price lookup per distinct coin, evaluates each
// alert against the fresh price, and delivers one consolidated message per
// user. Triggered alerts are removed the moment the checker decides to
// notify, so each alert fires at most once.
type AlertChecker struct {
	alerts   *AlertUsecase
	prices   *PriceCache
	coins    CoinNamer
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
	interval time.Duration
}

func NewAlertChecker(
	alerts *AlertUsecase,
	prices *PriceCache,
	coins CoinNamer,
	notifier Notifier,
	m *metrics.Metrics,
	logger *zap.Logger,
	interval time.Duration,
) *AlertChecker {
	return &AlertChecker{
		alerts:   alerts,
		prices:   prices,
		coins:    coins,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		interval: interval,
	}
}

// Run cycles until ctx is cancelled. Every collaborator already converts its
// faults to safe defaults, and a recover guard catches anything else, so a
// bad cycle never terminates the loop.
func (c *AlertChecker) Run(ctx context.Context) {
	c.logger.Info("alert checker started", zap.Duration("interval", c.interval))
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		c.CheckAlerts(ctx)
		select {
		case <-ctx.Done():
			c.logger.Info("alert checker stopped")
			return
		case <-ticker.C:
		}
	}
}

// CheckAlerts performs a single evaluation cycle.
func (c *AlertChecker) CheckAlerts(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("panic in alert check cycle", zap.Any("panic", r))
		}
	}()

	c.metrics.CheckCycles.Inc()

	alerts := c.alerts.GetAllAlerts(ctx)
	c.metrics.ActiveAlerts.Set(float64(len(alerts)))
	if len(alerts) == 0 {
		return
	}

	prices := c.prices.GetPrices(ctx, uniqueCoinIDs(alerts))

	triggered := make(map[int64][]string)
	for _, alert := range alerts {
		price, ok := prices[alert.CoinID]
		if !ok {
			// Price unavailable this cycle; the alert stays armed.
			continue
		}
		if !alert.Triggered(price) {
			continue
		}

		// Remove first: if the user deleted the alert between our read and
		// now, the delete no-ops and we skip the notification too.
		if !c.alerts.RemoveTriggered(ctx, alert.ID) {
			continue
		}

		c.metrics.AlertsTriggered.Inc()
		c.logger.Info("alert triggered",
			zap.Uint("alert_id", alert.ID),
			zap.Int64("user_id", alert.UserID),
			zap.String("coin_id", alert.CoinID),
			zap.Float64("target", alert.TargetPrice),
			zap.Float64("price", price))

		triggered[alert.UserID] = append(triggered[alert.UserID], fmt.Sprintf(
			"• %s: %s\n  Target: %s %s",
			c.coins.DisplayName(alert.CoinID),
			FormatPrice(price),
			alert.Direction(),
			FormatPrice(alert.TargetPrice),
		))
	}

	for userID, lines := range triggered {
		text := "🎯 Target(s) reached!\n\n" + strings.Join(lines, "\n\n")
		if err := c.notifier.Notify(userID, text); err != nil {
			c.metrics.NotificationsFailed.Inc()
			c.logger.Warn("failed to notify user", zap.Int64("user_id", userID), zap.Error(err))
			continue
		}
		c.metrics.NotificationsSent.Inc()
	}
}

func uniqueCoinIDs(alerts []domain.Alert) []string {
	seen := make(map[string]struct{}, len(alerts))
	coinIDs := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		if _, ok := seen[alert.CoinID]; ok {
			continue
		}
		seen[alert.CoinID] = struct{}{}
		coinIDs = append(coinIDs, alert.CoinID)
	}
	return coinIDs
}
