package service

import (
	"fmt"

	"Club_Manager/internal/model"
	"Club_Manager/internal/policy"
	"Club_Manager/internal/repository/mysql"
)

type FinanceService struct {
	paymentRepo *mysql.PaymentRepository
	financeRepo *mysql.FinanceRepository
	clubRepo    *mysql.ClubRepository
}

func NewFinanceService() *FinanceService {
	return &FinanceService{
		paymentRepo: &mysql.PaymentRepository{DB: mysql.DB},
		financeRepo: &mysql.FinanceRepository{DB: mysql.DB},
		clubRepo:    &mysql.ClubRepository{DB: mysql.DB},
	}
}

// FinanceOverview 余额每次现算，不落库
type FinanceOverview struct {
	Payments      []model.Payment
	Finances      []model.Finance
	TotalIncome   float64
	TotalExpenses float64
	Balance       float64
}

// Summarize balance = 收入流水合计 - 支出合计
func Summarize(payments []model.Payment, finances []model.Finance) (income, expenses, balance float64) {
	for _, p := range payments {
		income += p.Amount
	}
	for _, f := range finances {
		if f.Type == model.FinanceExpense {
			expenses += f.Amount
		}
	}
	return income, expenses, income - expenses
}

func (s *FinanceService) Overview(actor policy.Actor, clubID uint64) (*FinanceOverview, error) {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageClub(actor, club) {
		return nil, ErrAccessDenied
	}

	payments, err := s.paymentRepo.ListByClub(clubID)
	if err != nil {
		return nil, err
	}
	finances, err := s.financeRepo.ListByClub(clubID)
	if err != nil {
		return nil, err
	}

	income, expenses, balance := Summarize(payments, finances)
	return &FinanceOverview{
		Payments:      payments,
		Finances:      finances,
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       balance,
	}, nil
}

// AddIncome 手工收入，只追加
func (s *FinanceService) AddIncome(actor policy.Actor, clubID uint64, amount float64, description string, userID *uint64) error {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if !policy.CanManageClub(actor, club) {
		return ErrAccessDenied
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidParams)
	}

	outbox, err := s.paymentRepo.Append(&model.Payment{
		ClubID:      clubID,
		UserID:      userID,
		Amount:      amount,
		Type:        model.PaymentManualIncome,
		Description: description,
	})
	if err != nil {
		return err
	}
	publishPaymentEvent(outbox)
	return nil
}

// AddExpense 支出必须带说明
func (s *FinanceService) AddExpense(actor policy.Actor, clubID uint64, amount float64, description string) error {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if !policy.CanManageClub(actor, club) {
		return ErrAccessDenied
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidParams)
	}
	if description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidParams)
	}

	return s.financeRepo.Append(&model.Finance{
		ClubID:      clubID,
		Type:        model.FinanceExpense,
		Description: description,
		Amount:      amount,
	})
}
