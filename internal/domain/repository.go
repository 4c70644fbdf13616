package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateAlert = errors.New("alert already exists")
)

// AlertRepository is the storage contract for alerts. Implementations return
// ErrDuplicateAlert when the (user, coin, target, direction) uniqueness
// constraint is violated and ErrNotFound when a delete matches no rows.
type AlertRepository interface {
	Create(ctx context.Context, alert *Alert) error
	ListByUser(ctx context.Context, userID int64) ([]Alert, error)
	ListAll(ctx context.Context) ([]Alert, error)
	Delete(ctx context.Context, alertID uint) error
	DeleteOwned(ctx context.Context, userID int64, alertID uint) error
	DeleteByCoin(ctx context.Context, userID int64, coinID string) error
	DeleteAllByUser(ctx context.Context, userID int64) error
	CountByUser(ctx context.Context, userID int64) (int64, error)
}
