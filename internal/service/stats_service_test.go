package service

import (
	"strings"
	"testing"

	"Club_Manager/internal/repository/mysql"
)

func TestBuildStatisticsCSV(t *testing.T) {
	stats := &Statistics{
		Totals: mysql.Totals{
			TotalClubs:       2,
			TotalUsers:       5,
			TotalEvents:      3,
			TotalMemberships: 7,
			TotalIncome:      1500,
			TotalExpenses:    400,
		},
		ClubsByOwner: []mysql.OwnerClubCount{
			{OwnerName: "张三", ClubCount: 2},
		},
		EventsByMonth: []mysql.MonthCount{
			{Month: "2026-08", Count: 3},
		},
		PaymentsByMonth: []mysql.MonthTotal{
			{Month: "2026-08", Total: 1500},
		},
	}

	csv := BuildStatisticsCSV(stats)

	for _, want := range []string{
		"应用统计",
		"俱乐部总数,2",
		"总余额,1100",
		"张三,2",
		"2026-08,3",
		"2026-08,1500",
	} {
		if !strings.Contains(csv, want) {
			t.Errorf("csv missing %q\n%s", want, csv)
		}
	}

	// 分组块之间要有空行隔开
	if !strings.Contains(csv, "\n\n各群主俱乐部分布") {
		t.Error("owner block should start after a blank line")
	}
}
