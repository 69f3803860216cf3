package mysql

import (
	"Club_Manager/internal/model"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

type Totals struct {
	TotalClubs       int64
	TotalUsers       int64
	TotalEvents      int64
	TotalMemberships int64
	TotalIncome      float64
	TotalExpenses    float64
}

type OwnerClubCount struct {
	OwnerName string
	ClubCount int64
}

type MonthCount struct {
	Month string
	Count int64
}

type MonthTotal struct {
	Month string
	Total float64
}

func (r *StatsRepository) Totals() (*Totals, error) {
	var t Totals
	if err := r.DB.Model(&model.Club{}).Count(&t.TotalClubs).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.User{}).Count(&t.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.Event{}).Count(&t.TotalEvents).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.Membership{}).Count(&t.TotalMemberships).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.Payment{}).
		Select("COALESCE(SUM(amount), 0)").Scan(&t.TotalIncome).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.Finance{}).
		Where("type = ?", model.FinanceExpense).
		Select("COALESCE(SUM(amount), 0)").Scan(&t.TotalExpenses).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *StatsRepository) ClubsByOwner() ([]OwnerClubCount, error) {
	var list []OwnerClubCount
	err := r.DB.Model(&model.User{}).
		Select("users.name AS owner_name, COUNT(clubs.id) AS club_count").
		Joins("LEFT JOIN clubs ON clubs.owner_id = users.id").
		Group("users.id, users.name").
		Scan(&list).Error
	return list, err
}

func (r *StatsRepository) EventsByMonth() ([]MonthCount, error) {
	var list []MonthCount
	err := r.DB.Model(&model.Event{}).
		Select("DATE_FORMAT(starts_at, '%Y-%m') AS month, COUNT(*) AS count").
		Group("DATE_FORMAT(starts_at, '%Y-%m')").
		Order("month DESC").
		Scan(&list).Error
	return list, err
}

func (r *StatsRepository) PaymentsByMonth() ([]MonthTotal, error) {
	var list []MonthTotal
	err := r.DB.Model(&model.Payment{}).
		Select("DATE_FORMAT(paid_at, '%Y-%m') AS month, SUM(amount) AS total").
		Group("DATE_FORMAT(paid_at, '%Y-%m')").
		Order("month DESC").
		Scan(&list).Error
	return list, err
}
