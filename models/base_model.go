package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm tablolarda ortak olan alanlar.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
