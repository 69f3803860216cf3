package service

import (
	"time"

	"Club_Manager/internal/model"
	"Club_Manager/internal/policy"
	"Club_Manager/internal/repository/mysql"
)

type MembershipService struct {
	repo     *mysql.MembershipRepository
	clubRepo *mysql.ClubRepository
}

func NewMembershipService() *MembershipService {
	return &MembershipService{
		repo:     &mysql.MembershipRepository{DB: mysql.DB},
		clubRepo: &mysql.ClubRepository{DB: mysql.DB},
	}
}

func (s *MembershipService) Members(actor policy.Actor, clubID uint64) ([]mysql.MemberInfo, error) {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	isMember, err := s.repo.Exists(clubID, actor.ID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessClub(actor, club, isMember) {
		return nil, ErrAccessDenied
	}
	return s.repo.ListByClub(clubID)
}

// AddMember 群主/管理员手动拉人
func (s *MembershipService) AddMember(actor policy.Actor, clubID, userID uint64) error {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if !policy.CanManageClub(actor, club) {
		return ErrAccessDenied
	}
	return s.join(clubID, userID)
}

func (s *MembershipService) Join(actor policy.Actor, clubID uint64) error {
	if _, err := loadClub(s.clubRepo, clubID); err != nil {
		return err
	}
	return s.join(clubID, actor.ID)
}

func (s *MembershipService) join(clubID, userID uint64) error {
	exists, err := s.repo.Exists(clubID, userID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyMember
	}
	return s.repo.Create(&model.Membership{
		ClubID:   clubID,
		UserID:   userID,
		JoinedAt: time.Now(),
	})
}

// Leave 群主不能通过 leave 退出自己的俱乐部
func (s *MembershipService) Leave(actor policy.Actor, clubID uint64) error {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return err
	}
	exists, err := s.repo.Exists(clubID, actor.ID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotMember
	}
	if club.OwnerID == actor.ID {
		return ErrOwnerCannotLeave
	}
	return s.repo.Remove(clubID, actor.ID)
}

func (s *MembershipService) RemoveMember(actor policy.Actor, clubID, userID uint64) error {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if !policy.CanManageClub(actor, club) {
		return ErrAccessDenied
	}
	return s.repo.Remove(clubID, userID)
}
