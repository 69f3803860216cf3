package model

import "time"

// Payment 类型常量，对应 payments.type
const (
	PaymentMembership   = "membership"
	PaymentEvent        = "event_payment"
	PaymentContribution = "monthly_contribution"
	PaymentManualIncome = "manual_income"
)

const FinanceExpense = "expense"

// Payment 俱乐部收入流水（只追加，不修改）
type Payment struct {
	ID          uint64  `gorm:"primaryKey"`
	ClubID      uint64  `gorm:"not null;index"`
	UserID      *uint64 `gorm:"index"`
	Amount      float64 `gorm:"not null"`
	Type        string  `gorm:"size:32;not null;default:'membership'"`
	Description string  `gorm:"size:255"`
	EventID     *uint64
	Month       string `gorm:"size:7"`
	PaidAt      time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Finance 俱乐部非收入流水，目前只有 expense（只追加）
type Finance struct {
	ID          uint64  `gorm:"primaryKey"`
	ClubID      uint64  `gorm:"not null;index"`
	Type        string  `gorm:"size:16;not null"`
	Description string  `gorm:"size:255;not null"`
	Amount      float64 `gorm:"not null"`
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PaymentOutbox 流水事件监控表
type PaymentOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	PaymentID uint64 `gorm:"not null;index"`
	ClubID    uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PaymentOutbox) TableName() string { return "payment_outbox" }
