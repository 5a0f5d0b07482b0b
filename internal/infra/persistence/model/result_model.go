package model

import "time"

// ResultModel mirrors the 'results' table. Hit is stored in the 'result' column.
type ResultModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	UserID    int64   `gorm:"not null;index:idx_results_user_id"`
	X         int     `gorm:"column:x;not null"`
	Y         float64 `gorm:"column:y;not null"`
	R         int     `gorm:"column:r;not null"`
	Hit       bool    `gorm:"column:result;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResultModel) TableName() string {
	return "results"
}
