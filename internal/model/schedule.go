package model

import "time"

// Schedule 每周固定活动时段
type Schedule struct {
	ID          uint64 `gorm:"primaryKey"`
	ClubID      uint64 `gorm:"not null;index"`
	DayOfWeek   int    `gorm:"not null"` // 0=周日 ... 6=周六
	Time        string `gorm:"size:8;not null"`
	Duration    int    `gorm:"not null"` // 分钟
	Description string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
