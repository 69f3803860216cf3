package mysql

import (
	"time"

	"Club_Manager/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContributionRepository struct {
	DB *gorm.DB
}

// ContributionInfo 会费行加用户名和邮箱
type ContributionInfo struct {
	model.MonthlyContribution
	UserName  string
	UserEmail string
}

// GenerateForMembers 给每个成员插入当月 pending 会费。
// 幂等插入：(club_id, user_id, month) 唯一键加 DoNothing，
// 已有的行（包括已缴的）一律不动
func (r *ContributionRepository) GenerateForMembers(clubID uint64, userIDs []uint64, amount float64, month string) error {
	if len(userIDs) == 0 {
		return nil
	}
	rows := make([]model.MonthlyContribution, 0, len(userIDs))
	for _, uid := range userIDs {
		rows = append(rows, model.MonthlyContribution{
			ClubID: clubID,
			UserID: uid,
			Amount: amount,
			Month:  month,
			Status: model.ContributionPending,
		})
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "club_id"}, {Name: "user_id"}, {Name: "month"}},
		DoNothing: true,
	}).Create(&rows).Error
}

func (r *ContributionRepository) FindByID(id uint64) (*model.MonthlyContribution, error) {
	var c model.MonthlyContribution
	err := r.DB.First(&c, id).Error
	return &c, err
}

func (r *ContributionRepository) ListByClubMonth(clubID uint64, month string) ([]ContributionInfo, error) {
	var list []ContributionInfo
	err := r.DB.Model(&model.MonthlyContribution{}).
		Select("monthly_contributions.*, users.name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = monthly_contributions.user_id").
		Where("monthly_contributions.club_id = ? AND monthly_contributions.month = ?", clubID, month).
		Order("monthly_contributions.created_at DESC").
		Scan(&list).Error
	return list, err
}

// MarkPaid pending -> paid，同一事务里追加流水。
// WHERE 带 status 条件，已缴的行不会再动，也不会重复记账；
// paid=false 表示这笔已经缴过
func (r *ContributionRepository) MarkPaid(c *model.MonthlyContribution, paidAt time.Time) (*model.PaymentOutbox, bool, error) {
	var (
		outbox *model.PaymentOutbox
		paid   bool
	)
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.MonthlyContribution{}).
			Where("id = ? AND status = ?", c.ID, model.ContributionPending).
			Updates(map[string]any{"status": model.ContributionPaid, "paid_at": paidAt})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		paid = true

		userID := c.UserID
		pRepo := &PaymentRepository{DB: tx}
		ob, err := pRepo.Append(&model.Payment{
			ClubID: c.ClubID,
			UserID: &userID,
			Amount: c.Amount,
			Type:   model.PaymentContribution,
			Month:  c.Month,
			PaidAt: paidAt,
		})
		if err != nil {
			return err
		}
		outbox = ob
		return nil
	})
	return outbox, paid, err
}
