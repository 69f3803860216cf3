package model

import "time"

const (
	ContributionPending = "pending"
	ContributionPaid    = "paid"
)

// MonthlyContribution 每月会费，(club_id, user_id, month) 唯一，
// 金额在生成时从 club.membership_fee 快照
type MonthlyContribution struct {
	ID        uint64  `gorm:"primaryKey"`
	ClubID    uint64  `gorm:"not null;index;uniqueIndex:uk_club_user_month"`
	UserID    uint64  `gorm:"not null;index;uniqueIndex:uk_club_user_month"`
	Amount    float64 `gorm:"not null"`
	Month     string  `gorm:"size:7;not null;uniqueIndex:uk_club_user_month"`
	Status    string  `gorm:"size:16;not null;default:'pending'"`
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
