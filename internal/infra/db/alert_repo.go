package db

import (
	"context"
	"errors"

	"github.com/KhunHtetzNaing/MyCoinsAlert/internal/domain"
	"gorm.io/gorm"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	model := mapAlertToModel(*alert)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateAlert
		}
		return err
	}
	alert.ID = model.ID
	alert.CreatedAt = model.CreatedAt
	return nil
}

func (r *AlertRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Alert, error) {
	var models []alertModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return mapAlertsToDomain(models), nil
}

func (r *AlertRepository) ListAll(ctx context.Context) ([]domain.Alert, error) {
	var models []alertModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return mapAlertsToDomain(models), nil
}

func (r *AlertRepository) Delete(ctx context.Context, alertID uint) error {
	result := r.db.WithContext(ctx).Delete(&alertModel{}, alertID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AlertRepository) DeleteOwned(ctx context.Context, userID int64, alertID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", alertID, userID).
		Delete(&alertModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AlertRepository) DeleteByCoin(ctx context.Context, userID int64, coinID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND coin_id = ?", userID, coinID).
		Delete(&alertModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AlertRepository) DeleteAllByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&alertModel{}).Error
}

func (r *AlertRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&alertModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func mapAlertsToDomain(models []alertModel) []domain.Alert {
	alerts := make([]domain.Alert, 0, len(models))
	for _, model := range models {
		alerts = append(alerts, domain.Alert{
			ID:            model.ID,
			UserID:        model.UserID,
			CoinID:        model.CoinID,
			TargetPrice:   model.TargetPrice,
			IsGreaterThan: model.IsGreaterThan,
			CreatedAt:     model.CreatedAt,
		})
	}
	return alerts
}

func mapAlertToModel(alert domain.Alert) alertModel {
	return alertModel{
		ID:            alert.ID,
		UserID:        alert.UserID,
		CoinID:        alert.CoinID,
		TargetPrice:   alert.TargetPrice,
		IsGreaterThan: alert.IsGreaterThan,
		CreatedAt:     alert.CreatedAt,
	}
}
