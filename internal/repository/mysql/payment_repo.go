package mysql

import (
	"encoding/json"
	"time"

	"Club_Manager/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

// EventPaymentInfo 活动缴费行加用户名和邮箱
type EventPaymentInfo struct {
	model.EventPayment
	UserName  string
	UserEmail string
}

// Append 追加一条收入流水，同一事务里写 outbox 行，
// 发送留给调用方在提交后尽力而为
func (r *PaymentRepository) Append(p *model.Payment) (*model.PaymentOutbox, error) {
	var outbox *model.PaymentOutbox
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if p.PaidAt.IsZero() {
			p.PaidAt = time.Now()
		}
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		ob, err := newOutboxRow(p)
		if err != nil {
			return err
		}
		if err := tx.Create(ob).Error; err != nil {
			return err
		}
		outbox = ob
		return nil
	})
	return outbox, err
}

// AppendEventPayment 活动缴费：event_payments 行和俱乐部流水一起提交。
// (event_id, user_id) 唯一键挡住重复缴费
func (r *PaymentRepository) AppendEventPayment(ep *model.EventPayment, p *model.Payment) (*model.PaymentOutbox, error) {
	var outbox *model.PaymentOutbox
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if ep.PaidAt.IsZero() {
			ep.PaidAt = time.Now()
		}
		if err := tx.Create(ep).Error; err != nil {
			return err
		}
		pRepo := &PaymentRepository{DB: tx}
		ob, err := pRepo.Append(p)
		if err != nil {
			return err
		}
		outbox = ob
		return nil
	})
	return outbox, err
}

func (r *PaymentRepository) ListByClub(clubID uint64) ([]model.Payment, error) {
	var list []model.Payment
	err := r.DB.Where("club_id = ?", clubID).
		Order("paid_at DESC").
		Find(&list).Error
	return list, err
}

func (r *PaymentRepository) ListEventPayments(eventID uint64) ([]EventPaymentInfo, error) {
	var list []EventPaymentInfo
	err := r.DB.Model(&model.EventPayment{}).
		Select("event_payments.*, users.name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = event_payments.user_id").
		Where("event_payments.event_id = ?", eventID).
		Scan(&list).Error
	return list, err
}

func (r *PaymentRepository) MarkOutboxSent(id uint64) error {
	return r.DB.Model(&model.PaymentOutbox{}).Where("id = ?", id).Update("status", 1).Error
}

func newOutboxRow(p *model.Payment) (*model.PaymentOutbox, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return &model.PaymentOutbox{
		PaymentID: p.ID,
		ClubID:    p.ClubID,
		Payload:   string(payload),
	}, nil
}
