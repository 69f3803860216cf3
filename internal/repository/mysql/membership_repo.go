package mysql

import (
	"Club_Manager/internal/model"

	"gorm.io/gorm"
)

type MembershipRepository struct {
	DB *gorm.DB
}

// MemberInfo 成员行加用户名和邮箱
type MemberInfo struct {
	model.Membership
	UserName  string
	UserEmail string
}

func (r *MembershipRepository) Create(member *model.Membership) error {
	return r.DB.Create(member).Error
}

func (r *MembershipRepository) Exists(clubID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Membership{}).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *MembershipRepository) Remove(clubID, userID uint64) error {
	return r.DB.Where("club_id = ? AND user_id = ?", clubID, userID).
		Delete(&model.Membership{}).Error
}

func (r *MembershipRepository) ListByClub(clubID uint64) ([]MemberInfo, error) {
	var list []MemberInfo
	err := r.DB.Model(&model.Membership{}).
		Select("memberships.*, users.name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = memberships.user_id").
		Where("memberships.club_id = ?", clubID).
		Order("memberships.joined_at DESC").
		Scan(&list).Error
	return list, err
}
