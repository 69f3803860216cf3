package service

import (
	"testing"

	"Club_Manager/internal/model"
)

func TestSummarize(t *testing.T) {
	payments := []model.Payment{
		{Amount: 100, Type: model.PaymentMembership},
		{Amount: 250, Type: model.PaymentEvent},
		{Amount: 50, Type: model.PaymentManualIncome},
	}
	finances := []model.Finance{
		{Amount: 120, Type: model.FinanceExpense},
		{Amount: 30, Type: model.FinanceExpense},
	}

	income, expenses, balance := Summarize(payments, finances)

	if income != 400 {
		t.Errorf("income = %v, want 400", income)
	}
	if expenses != 150 {
		t.Errorf("expenses = %v, want 150", expenses)
	}
	if balance != 250 {
		t.Errorf("balance = %v, want 250", balance)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	income, expenses, balance := Summarize(nil, nil)
	if income != 0 || expenses != 0 || balance != 0 {
		t.Errorf("empty summarize = (%v, %v, %v), want zeros", income, expenses, balance)
	}
}
