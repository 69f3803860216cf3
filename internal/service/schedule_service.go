package service

import (
	"errors"
	"fmt"

	"Club_Manager/internal/model"
	"Club_Manager/internal/policy"
	"Club_Manager/internal/repository/mysql"

	"gorm.io/gorm"
)

type ScheduleService struct {
	repo       *mysql.ScheduleRepository
	clubRepo   *mysql.ClubRepository
	memberRepo *mysql.MembershipRepository
}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{
		repo:       &mysql.ScheduleRepository{DB: mysql.DB},
		clubRepo:   &mysql.ClubRepository{DB: mysql.DB},
		memberRepo: &mysql.MembershipRepository{DB: mysql.DB},
	}
}

func (s *ScheduleService) ListByClub(actor policy.Actor, clubID uint64) ([]model.Schedule, error) {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	isMember, err := s.memberRepo.Exists(clubID, actor.ID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessClub(actor, club, isMember) {
		return nil, ErrAccessDenied
	}
	return s.repo.ListByClub(clubID)
}

func (s *ScheduleService) Add(actor policy.Actor, clubID uint64, dayOfWeek int, timeOfDay string, duration int, description string) (*model.Schedule, error) {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageClub(actor, club) {
		return nil, ErrAccessDenied
	}
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, fmt.Errorf("%w: day of week must be 0-6", ErrInvalidParams)
	}
	if timeOfDay == "" {
		return nil, fmt.Errorf("%w: time is required", ErrInvalidParams)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidParams)
	}

	schedule := &model.Schedule{
		ClubID:      clubID,
		DayOfWeek:   dayOfWeek,
		Time:        timeOfDay,
		Duration:    duration,
		Description: description,
	}
	if err := s.repo.Create(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// Delete 权限按 schedule 所属俱乐部判断
func (s *ScheduleService) Delete(actor policy.Actor, scheduleID uint64) error {
	schedule, err := s.repo.FindByID(scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}
	club, err := loadClub(s.clubRepo, schedule.ClubID)
	if err != nil {
		return err
	}
	if !policy.CanManageClub(actor, club) {
		return ErrAccessDenied
	}
	return s.repo.Delete(scheduleID)
}
