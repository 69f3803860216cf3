package service

import (
	"testing"
	"time"
)

func TestMonthKey(t *testing.T) {
	// 东八区的 10 月 1 日早上，UTC 还在 9 月 30 日
	cst := time.FixedZone("CST", 8*3600)
	local := time.Date(2026, 10, 1, 6, 0, 0, 0, cst)

	if got := MonthKey(local); got != "2026-09" {
		t.Errorf("month key = %q, want 2026-09", got)
	}
	if got := MonthKey(time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)); got != "2026-02" {
		t.Errorf("month key = %q, want 2026-02", got)
	}
}
