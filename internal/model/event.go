package model

import "time"

const (
	EventFree = "free"
	EventPaid = "paid"
)

type Event struct {
	ID          uint64 `gorm:"primaryKey"`
	ClubID      uint64 `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Location    string `gorm:"size:200"`
	StartsAt    time.Time `gorm:"not null;index"`
	EndsAt      *time.Time
	EventType   string  `gorm:"size:16;not null;default:'free'"`
	Price       float64 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Attendance struct {
	ID           uint64 `gorm:"primaryKey"`
	EventID      uint64 `gorm:"not null;index;uniqueIndex:uk_event_user"`
	UserID       uint64 `gorm:"not null;index;uniqueIndex:uk_event_user"`
	RegisteredAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Attendance) TableName() string { return "attendance" }

type EventPayment struct {
	ID        uint64  `gorm:"primaryKey"`
	EventID   uint64  `gorm:"not null;index;uniqueIndex:uk_event_payer"`
	UserID    uint64  `gorm:"not null;index;uniqueIndex:uk_event_payer"`
	Amount    float64 `gorm:"not null"`
	Status    string  `gorm:"size:16;not null;default:'paid'"`
	PaidAt    time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
