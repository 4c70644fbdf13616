package db

import "time"

// alertModel carries the composite uniqueness constraint: a user may not hold
// two alerts for the same coin, target and direction.
type alertModel struct {
	ID            uint    `gorm:"primaryKey"`
	UserID        int64   `gorm:"not null;index;uniqueIndex:idx_alerts_dedup,priority:1"`
	CoinID        string  `gorm:"not null;uniqueIndex:idx_alerts_dedup,priority:2"`
	TargetPrice   float64 `gorm:"not null;uniqueIndex:idx_alerts_dedup,priority:3"`
	IsGreaterThan bool    `gorm:"not null;uniqueIndex:idx_alerts_dedup,priority:4"`
	CreatedAt     time.Time
}

func (alertModel) TableName() string {
	return "alerts"
}
