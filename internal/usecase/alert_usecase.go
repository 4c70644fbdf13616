package usecase

import (
	"context"
	"errors"

	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/domain"
	"go.uber.org/zap"
)

// AlertUsecase is the alert store as the rest of the bot sees it. Storage
// faults never escape this layer: they are logged and converted to safe
// defaults (false, empty list, zero), so neither the command handlers nor the
// checker loop have an error path to mishandle.
type AlertUsecase struct {
	alerts domain.AlertRepository
	logger *zap.Logger
}

func NewAlertUsecase(alerts domain.AlertRepository, logger *zap.Logger) *AlertUsecase {
	return &AlertUsecase{alerts: alerts, logger: logger}
}

// AddAlert inserts a new alert. A false return means either a duplicate
// (user, coin, target, direction) tuple or a storage fault; duplicates are a
// policy outcome, not an error.
func (u *AlertUsecase) AddAlert(ctx context.Context, userID int64, coinID string, target float64, isGreaterThan bool) bool {
	alert := &domain.Alert{
		UserID:        userID,
		CoinID:        coinID,
		TargetPrice:   target,
		IsGreaterThan: isGreaterThan,
	}
	if err := u.alerts.Create(ctx, alert); err != nil {
		if errors.Is(err, domain.ErrDuplicateAlert) {
			u.logger.Debug("duplicate alert rejected",
				zap.Int64("user_id", userID),
				zap.String("coin_id", coinID),
				zap.Float64("target", target))
			return false
		}
		u.logger.Error("failed to add alert", zap.Int64("user_id", userID), zap.Error(err))
		return false
	}
	return true
}

// GetUserAlerts returns the user's alerts ordered by creation time ascending.
func (u *AlertUsecase) GetUserAlerts(ctx context.Context, userID int64) []domain.Alert {
	alerts, err := u.alerts.ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("failed to list user alerts", zap.Int64("user_id", userID), zap.Error(err))
		return nil
	}
	return alerts
}

// GetAllAlerts returns every stored alert across all users.
func (u *AlertUsecase) GetAllAlerts(ctx context.Context) []domain.Alert {
	alerts, err := u.alerts.ListAll(ctx)
	if err != nil {
		u.logger.Error("failed to list alerts", zap.Error(err))
		return nil
	}
	return alerts
}

func (u *AlertUsecase) RemoveAlertByID(ctx context.Context, alertID uint, userID int64) bool {
	if err := u.alerts.DeleteOwned(ctx, userID, alertID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			u.logger.Error("failed to remove alert", zap.Uint("alert_id", alertID), zap.Error(err))
		}
		return false
	}
	return true
}

// RemoveAlertByIndex removes the alert at the zero-based index into the
// user's creation-ordered list and returns the removed coin id. An
// out-of-range index leaves the store unchanged.
func (u *AlertUsecase) RemoveAlertByIndex(ctx context.Context, userID int64, index int) (bool, string) {
	alerts, err := u.alerts.ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("failed to list alerts for removal", zap.Int64("user_id", userID), zap.Error(err))
		return false, ""
	}
	if index < 0 || index >= len(alerts) {
		return false, ""
	}

	target := alerts[index]
	if err := u.alerts.Delete(ctx, target.ID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			u.logger.Error("failed to remove alert by index", zap.Uint("alert_id", target.ID), zap.Error(err))
		}
		return false, ""
	}
	return true, target.CoinID
}

func (u *AlertUsecase) RemoveAlertsByCoin(ctx context.Context, userID int64, coinID string) bool {
	if err := u.alerts.DeleteByCoin(ctx, userID, coinID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			u.logger.Error("failed to remove alerts by coin",
				zap.Int64("user_id", userID),
				zap.String("coin_id", coinID),
				zap.Error(err))
		}
		return false
	}
	return true
}

func (u *AlertUsecase) RemoveAllForUser(ctx context.Context, userID int64) bool {
	if err := u.alerts.DeleteAllByUser(ctx, userID); err != nil {
		u.logger.Error("failed to remove all alerts", zap.Int64("user_id", userID), zap.Error(err))
		return false
	}
	return true
}

// RemoveTriggered deletes an alert the checker has decided to notify on, so
// a one-shot alert fires exactly once.
func (u *AlertUsecase) RemoveTriggered(ctx context.Context, alertID uint) bool {
	if err := u.alerts.Delete(ctx, alertID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			u.logger.Error("failed to remove triggered alert", zap.Uint("alert_id", alertID), zap.Error(err))
		}
		return false
	}
	return true
}

func (u *AlertUsecase) CountForUser(ctx context.Context, userID int64) int {
	count, err := u.alerts.CountByUser(ctx, userID)
	if err != nil {
		u.logger.Error("failed to count alerts", zap.Int64("user_id", userID), zap.Error(err))
		return 0
	}
	return int(count)
}
