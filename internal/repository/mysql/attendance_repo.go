package mysql

import (
	"Club_Manager/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

// AttendeeInfo 报名行加用户名和邮箱
type AttendeeInfo struct {
	model.Attendance
	UserName  string
	UserEmail string
}

func (r *AttendanceRepository) Register(a *model.Attendance) error {
	return r.DB.Create(a).Error
}

func (r *AttendanceRepository) Unregister(eventID, userID uint64) error {
	return r.DB.Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&model.Attendance{}).Error
}

func (r *AttendanceRepository) IsRegistered(eventID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Attendance{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *AttendanceRepository) CountByEvent(eventID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attendance{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

func (r *AttendanceRepository) ListByEvent(eventID uint64) ([]AttendeeInfo, error) {
	var list []AttendeeInfo
	err := r.DB.Model(&model.Attendance{}).
		Select("attendance.*, users.name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = attendance.user_id").
		Where("attendance.event_id = ?", eventID).
		Scan(&list).Error
	return list, err
}
