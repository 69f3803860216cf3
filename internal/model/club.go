package model

import "time"

type Club struct {
	ID            uint64 `gorm:"primaryKey"`
	Name          string `gorm:"size:64;not null"`
	Description   string `gorm:"type:text"`
	MembershipFee float64 `gorm:"not null;default:0"`
	OwnerID       uint64  `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Membership struct {
	ID        uint64 `gorm:"primaryKey"`
	ClubID    uint64 `gorm:"not null;index;uniqueIndex:uk_club_user"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_club_user"`
	JoinedAt  time.Time
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
