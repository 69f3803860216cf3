package mysql

import (
	"Club_Manager/internal/model"

	"gorm.io/gorm"
)

type ClubRepository struct {
	DB *gorm.DB
}

// ClubWithOwner 列表展示时带上群主名字
type ClubWithOwner struct {
	model.Club
	OwnerName string
}

func (r *ClubRepository) Create(club *model.Club) error {
	return r.DB.Create(club).Error
}

func (r *ClubRepository) FindByID(id uint64) (*model.Club, error) {
	var club model.Club
	err := r.DB.First(&club, id).Error
	return &club, err
}

func (r *ClubRepository) ListWithOwner() ([]ClubWithOwner, error) {
	var list []ClubWithOwner
	err := r.DB.Model(&model.Club{}).
		Select("clubs.*, users.name AS owner_name").
		Joins("LEFT JOIN users ON users.id = clubs.owner_id").
		Order("clubs.name").
		Scan(&list).Error
	return list, err
}

func (r *ClubRepository) Update(id uint64, name, description string, fee float64) error {
	return r.DB.Model(&model.Club{}).Where("id = ?", id).Updates(map[string]any{
		"name":           name,
		"description":    description,
		"membership_fee": fee,
	}).Error
}

// DeleteCascade 删除俱乐部及全部关联行，一个事务内完成，不留孤儿
func (r *ClubRepository) DeleteCascade(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		eventIDs := tx.Model(&model.Event{}).Select("id").Where("club_id = ?", id)

		if err := tx.Where("event_id IN (?)", eventIDs).Delete(&model.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id IN (?)", eventIDs).Delete(&model.EventPayment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.Membership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.Event{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.Finance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.Schedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.MonthlyContribution{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.PaymentOutbox{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Club{}, id).Error
	})
}
