package service

import (
	"errors"
	"time"

	"Club_Manager/internal/model"
	"Club_Manager/internal/pkg"
	"Club_Manager/internal/policy"
	"Club_Manager/internal/repository/mysql"

	"gorm.io/gorm"
)

type ContributionService struct {
	repo       *mysql.ContributionRepository
	clubRepo   *mysql.ClubRepository
	memberRepo *mysql.MembershipRepository
	smtp       pkg.SMTPConfig
}

func NewContributionService(smtp pkg.SMTPConfig) *ContributionService {
	return &ContributionService{
		repo:       &mysql.ContributionRepository{DB: mysql.DB},
		clubRepo:   &mysql.ClubRepository{DB: mysql.DB},
		memberRepo: &mysql.MembershipRepository{DB: mysql.DB},
		smtp:       smtp,
	}
}

// MonthKey 月份键固定用 UTC，避免服务器时区不同生成两套键
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// ContributionOverview 当月会费 + 成员名单
type ContributionOverview struct {
	Contributions []mysql.ContributionInfo
	Members       []mysql.MemberInfo
	CurrentMonth  string
}

func (s *ContributionService) Overview(actor policy.Actor, clubID uint64) (*ContributionOverview, error) {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageClub(actor, club) {
		return nil, ErrAccessDenied
	}

	month := MonthKey(time.Now())
	contributions, err := s.repo.ListByClubMonth(clubID, month)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.ListByClub(clubID)
	if err != nil {
		return nil, err
	}
	return &ContributionOverview{
		Contributions: contributions,
		Members:       members,
		CurrentMonth:  month,
	}, nil
}

// Generate 给每个成员生成当月 pending 会费，金额快照自 club.membership_fee。
// 重复调用幂等：唯一键 + DoNothing，已有的行（含已缴）不动
func (s *ContributionService) Generate(actor policy.Actor, clubID uint64) (string, error) {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return "", err
	}
	if !policy.CanManageClub(actor, club) {
		return "", ErrAccessDenied
	}

	members, err := s.memberRepo.ListByClub(clubID)
	if err != nil {
		return "", err
	}

	month := MonthKey(time.Now())
	userIDs := make([]uint64, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}
	if err := s.repo.GenerateForMembers(clubID, userIDs, club.MembershipFee, month); err != nil {
		return "", err
	}

	s.notifyMembers(club, members, month)
	return month, nil
}

// notifyMembers 会费提醒邮件，尽力而为；SMTP 没配置就跳过
func (s *ContributionService) notifyMembers(club *model.Club, members []mysql.MemberInfo, month string) {
	if s.smtp.Host == "" {
		return
	}
	body := pkg.ContributionNoticeHTML(club.Name, month, club.MembershipFee)
	for _, m := range members {
		if m.UserEmail == "" {
			continue
		}
		if err := pkg.SendEmail(s.smtp, m.UserEmail, "月度会费提醒", body); err != nil {
			pkg.Log.Warnf("contribution notice to %s: %v", m.UserEmail, err)
		}
	}
}

// MarkPaid pending -> paid，并追加一条 monthly_contribution 流水。
// 已缴的返回 ErrContributionPaid，不会重复记账
func (s *ContributionService) MarkPaid(actor policy.Actor, contributionID uint64) error {
	contribution, err := s.repo.FindByID(contributionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContributionNotFound
		}
		return err
	}
	club, err := loadClub(s.clubRepo, contribution.ClubID)
	if err != nil {
		return err
	}
	if !policy.CanManageClub(actor, club) {
		return ErrAccessDenied
	}

	outbox, paid, err := s.repo.MarkPaid(contribution, time.Now())
	if err != nil {
		return err
	}
	if !paid {
		return ErrContributionPaid
	}
	publishPaymentEvent(outbox)
	return nil
}
