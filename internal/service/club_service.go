package service

import (
	"errors"
	"fmt"

	"Club_Manager/internal/model"
	"Club_Manager/internal/policy"
	"Club_Manager/internal/repository/mysql"

	"gorm.io/gorm"
)

type ClubService struct {
	repo *mysql.ClubRepository
}

func NewClubService() *ClubService {
	return &ClubService{
		repo: &mysql.ClubRepository{DB: mysql.DB},
	}
}

func (s *ClubService) List() ([]mysql.ClubWithOwner, error) {
	return s.repo.ListWithOwner()
}

func (s *ClubService) Create(actor policy.Actor, name, description string, fee float64) (*model.Club, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: club name is required", ErrInvalidParams)
	}
	if fee < 0 {
		return nil, fmt.Errorf("%w: membership fee cannot be negative", ErrInvalidParams)
	}

	club := &model.Club{
		Name:          name,
		Description:   description,
		MembershipFee: fee,
		OwnerID:       actor.ID,
	}
	if err := s.repo.Create(club); err != nil {
		return nil, err
	}
	return club, nil
}

func (s *ClubService) Update(actor policy.Actor, clubID uint64, name, description string, fee float64) error {
	club, err := s.findClub(clubID)
	if err != nil {
		return err
	}
	if !policy.CanManageClub(actor, club) {
		return ErrAccessDenied
	}
	if name == "" {
		return fmt.Errorf("%w: club name is required", ErrInvalidParams)
	}
	if fee < 0 {
		return fmt.Errorf("%w: membership fee cannot be negative", ErrInvalidParams)
	}
	return s.repo.Update(clubID, name, description, fee)
}

// Delete 级联删除所有关联数据，事务见仓储层
func (s *ClubService) Delete(actor policy.Actor, clubID uint64) error {
	club, err := s.findClub(clubID)
	if err != nil {
		return err
	}
	if !policy.CanManageClub(actor, club) {
		return ErrAccessDenied
	}
	return s.repo.DeleteCascade(clubID)
}

func (s *ClubService) findClub(clubID uint64) (*model.Club, error) {
	return loadClub(s.repo, clubID)
}

// loadClub 各个 service 共用的俱乐部查找，找不到统一映射成 ErrClubNotFound
func loadClub(repo *mysql.ClubRepository, clubID uint64) (*model.Club, error) {
	club, err := repo.FindByID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return club, nil
}
