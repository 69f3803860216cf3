package mysql

import (
	"time"

	"Club_Manager/internal/model"

	"gorm.io/gorm"
)

type FinanceRepository struct {
	DB *gorm.DB
}

func (r *FinanceRepository) Append(f *model.Finance) error {
	if f.Date.IsZero() {
		f.Date = time.Now()
	}
	return r.DB.Create(f).Error
}

func (r *FinanceRepository) ListByClub(clubID uint64) ([]model.Finance, error) {
	var list []model.Finance
	err := r.DB.Where("club_id = ?", clubID).
		Order("date DESC").
		Find(&list).Error
	return list, err
}
