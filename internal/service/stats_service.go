package service

import (
	"fmt"
	"strings"

	"Club_Manager/internal/policy"
	"Club_Manager/internal/repository/mysql"
)

type StatsService struct {
	repo *mysql.StatsRepository
}

func NewStatsService() *StatsService {
	return &StatsService{
		repo: &mysql.StatsRepository{DB: mysql.DB},
	}
}

// Statistics 全局统计，只有管理员能看
type Statistics struct {
	mysql.Totals
	ClubsByOwner    []mysql.OwnerClubCount
	EventsByMonth   []mysql.MonthCount
	PaymentsByMonth []mysql.MonthTotal
}

func (s *StatsService) Overview(actor policy.Actor) (*Statistics, error) {
	if !policy.CanModerateUsers(actor) {
		return nil, ErrAccessDenied
	}

	totals, err := s.repo.Totals()
	if err != nil {
		return nil, err
	}
	clubsByOwner, err := s.repo.ClubsByOwner()
	if err != nil {
		return nil, err
	}
	eventsByMonth, err := s.repo.EventsByMonth()
	if err != nil {
		return nil, err
	}
	paymentsByMonth, err := s.repo.PaymentsByMonth()
	if err != nil {
		return nil, err
	}

	return &Statistics{
		Totals:          *totals,
		ClubsByOwner:    clubsByOwner,
		EventsByMonth:   eventsByMonth,
		PaymentsByMonth: paymentsByMonth,
	}, nil
}

// ExportCSV 导出统计报表，布局：总览一段，再按块列出分组数据
func (s *StatsService) ExportCSV(actor policy.Actor) (string, error) {
	stats, err := s.Overview(actor)
	if err != nil {
		return "", err
	}
	return BuildStatisticsCSV(stats), nil
}

func BuildStatisticsCSV(stats *Statistics) string {
	var b strings.Builder
	b.WriteString("应用统计\n\n")

	b.WriteString("基本指标\n")
	fmt.Fprintf(&b, "俱乐部总数,%d\n", stats.TotalClubs)
	fmt.Fprintf(&b, "用户总数,%d\n", stats.TotalUsers)
	fmt.Fprintf(&b, "活动总数,%d\n", stats.TotalEvents)
	fmt.Fprintf(&b, "成员总数,%d\n", stats.TotalMemberships)
	fmt.Fprintf(&b, "总收入,%g\n", stats.TotalIncome)
	fmt.Fprintf(&b, "总支出,%g\n", stats.TotalExpenses)
	fmt.Fprintf(&b, "总余额,%g\n\n", stats.TotalIncome-stats.TotalExpenses)

	b.WriteString("各群主俱乐部分布\n")
	b.WriteString("群主,俱乐部数量\n")
	for _, c := range stats.ClubsByOwner {
		fmt.Fprintf(&b, "%s,%d\n", c.OwnerName, c.ClubCount)
	}

	b.WriteString("\n每月活动\n")
	b.WriteString("月份,活动数量\n")
	for _, e := range stats.EventsByMonth {
		fmt.Fprintf(&b, "%s,%d\n", e.Month, e.Count)
	}

	b.WriteString("\n每月收入\n")
	b.WriteString("月份,收入合计\n")
	for _, p := range stats.PaymentsByMonth {
		fmt.Fprintf(&b, "%s,%g\n", p.Month, p.Total)
	}

	return b.String()
}
