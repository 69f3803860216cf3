package service

import (
	"errors"
	"testing"
	"time"

	"Club_Manager/internal/model"
	"Club_Manager/internal/repository/mysql"
)

func TestValidateEvent(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)
	beforeStart := future.Add(-time.Hour)
	afterStart := future.Add(2 * time.Hour)

	cases := []struct {
		name          string
		in            EventInput
		requireFuture bool
		wantErr       bool
	}{
		{"valid free", EventInput{Title: "训练", StartsAt: future, EventType: model.EventFree}, true, false},
		{"valid paid", EventInput{Title: "比赛", StartsAt: future, EventType: model.EventPaid, Price: 100}, true, false},
		{"missing title", EventInput{StartsAt: future, EventType: model.EventFree}, true, true},
		{"missing start", EventInput{Title: "x", EventType: model.EventFree}, true, true},
		{"start in past on create", EventInput{Title: "x", StartsAt: past, EventType: model.EventFree}, true, true},
		{"start in past on update ok", EventInput{Title: "x", StartsAt: past, EventType: model.EventFree}, false, false},
		{"end before start", EventInput{Title: "x", StartsAt: future, EndsAt: &beforeStart, EventType: model.EventFree}, true, true},
		{"end after start", EventInput{Title: "x", StartsAt: future, EndsAt: &afterStart, EventType: model.EventFree}, true, false},
		{"paid without price", EventInput{Title: "x", StartsAt: future, EventType: model.EventPaid}, true, true},
		{"unknown type", EventInput{Title: "x", StartsAt: future, EventType: "vip"}, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEvent(tc.in, now, tc.requireFuture)
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr && !errors.Is(err, ErrInvalidParams) {
				t.Errorf("error should wrap ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	event := model.Event{ID: 1, Title: "集训", EventType: model.EventPaid, Price: 1000}
	attendees := []mysql.AttendeeInfo{
		{Attendance: model.Attendance{EventID: 1, UserID: 10}, UserName: "甲"},
		{Attendance: model.Attendance{EventID: 1, UserID: 20}, UserName: "乙"},
	}
	payments := []mysql.EventPaymentInfo{
		{EventPayment: model.EventPayment{EventID: 1, UserID: 10, Amount: 1000}},
	}

	report := Reconcile(event, attendees, payments)

	if report.TotalRevenue != 1000 {
		t.Errorf("total revenue = %v, want 1000", report.TotalRevenue)
	}
	if report.PaidCount != 1 {
		t.Errorf("paid count = %d, want 1", report.PaidCount)
	}
	if report.UnpaidCount != 1 {
		t.Errorf("unpaid count = %d, want 1", report.UnpaidCount)
	}
	if len(report.UnpaidAttendees) != 1 || report.UnpaidAttendees[0].UserID != 20 {
		t.Errorf("unpaid attendees = %+v, want only user 20", report.UnpaidAttendees)
	}
}

// 缴费的人可以比报名的人多（比如没报名但交了钱），计数不允许出现负数
func TestReconcileMorePaymentsThanAttendees(t *testing.T) {
	event := model.Event{ID: 2, EventType: model.EventPaid, Price: 50}
	payments := []mysql.EventPaymentInfo{
		{EventPayment: model.EventPayment{EventID: 2, UserID: 10, Amount: 50}},
		{EventPayment: model.EventPayment{EventID: 2, UserID: 20, Amount: 50}},
	}

	report := Reconcile(event, nil, payments)

	if report.UnpaidCount != 0 {
		t.Errorf("unpaid count = %d, want 0", report.UnpaidCount)
	}
	if report.TotalRevenue != 100 {
		t.Errorf("total revenue = %v, want 100", report.TotalRevenue)
	}
}
