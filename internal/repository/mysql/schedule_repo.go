package mysql

import (
	"Club_Manager/internal/model"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	DB *gorm.DB
}

func (r *ScheduleRepository) Create(s *model.Schedule) error {
	return r.DB.Create(s).Error
}

func (r *ScheduleRepository) FindByID(id uint64) (*model.Schedule, error) {
	var s model.Schedule
	err := r.DB.First(&s, id).Error
	return &s, err
}

func (r *ScheduleRepository) ListByClub(clubID uint64) ([]model.Schedule, error) {
	var list []model.Schedule
	err := r.DB.Where("club_id = ?", clubID).
		Order("day_of_week, time").
		Find(&list).Error
	return list, err
}

func (r *ScheduleRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Schedule{}, id).Error
}
