package service

import (
	"errors"
	"fmt"
	"time"

	"Club_Manager/internal/model"
	"Club_Manager/internal/policy"
	"Club_Manager/internal/repository/mysql"

	"gorm.io/gorm"
)

type EventService struct {
	repo        *mysql.EventRepository
	clubRepo    *mysql.ClubRepository
	memberRepo  *mysql.MembershipRepository
	attendRepo  *mysql.AttendanceRepository
	paymentRepo *mysql.PaymentRepository
}

func NewEventService() *EventService {
	return &EventService{
		repo:        &mysql.EventRepository{DB: mysql.DB},
		clubRepo:    &mysql.ClubRepository{DB: mysql.DB},
		memberRepo:  &mysql.MembershipRepository{DB: mysql.DB},
		attendRepo:  &mysql.AttendanceRepository{DB: mysql.DB},
		paymentRepo: &mysql.PaymentRepository{DB: mysql.DB},
	}
}

// EventInput 创建/更新共用的字段
type EventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      *time.Time
	EventType   string
	Price       float64
}

// ValidateEvent 创建时 requireFuture=true：开始时间必须在未来；
// 更新已有活动时只校验字段本身
func ValidateEvent(in EventInput, now time.Time, requireFuture bool) error {
	if in.Title == "" || in.StartsAt.IsZero() {
		return fmt.Errorf("%w: title and start time are required", ErrInvalidParams)
	}
	if requireFuture && !in.StartsAt.After(now) {
		return fmt.Errorf("%w: start time must be in the future", ErrInvalidParams)
	}
	if in.EndsAt != nil && !in.EndsAt.After(in.StartsAt) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidParams)
	}
	switch in.EventType {
	case model.EventFree:
		// 免费活动不管价格
	case model.EventPaid:
		if in.Price <= 0 {
			return fmt.Errorf("%w: paid event needs a positive price", ErrInvalidParams)
		}
	default:
		return fmt.Errorf("%w: invalid event type", ErrInvalidParams)
	}
	return nil
}

func (s *EventService) ListByClub(actor policy.Actor, clubID uint64) ([]model.Event, error) {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(actor, club); err != nil {
		return nil, err
	}
	return s.repo.ListByClub(clubID)
}

func (s *EventService) Create(actor policy.Actor, clubID uint64, in EventInput) (*model.Event, error) {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageClub(actor, club) {
		return nil, ErrAccessDenied
	}
	if err := ValidateEvent(in, time.Now(), true); err != nil {
		return nil, err
	}

	event := &model.Event{
		ClubID:      clubID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		EventType:   in.EventType,
		Price:       in.Price,
	}
	if err := s.repo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Update(actor policy.Actor, clubID, eventID uint64, in EventInput) error {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return err
	}
	if !policy.CanManageClub(actor, club) {
		return ErrAccessDenied
	}
	event, err := s.repo.FindByClubAndID(clubID, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	if err := ValidateEvent(in, time.Now(), false); err != nil {
		return err
	}

	event.Title = in.Title
	event.Description = in.Description
	event.Location = in.Location
	event.StartsAt = in.StartsAt
	event.EndsAt = in.EndsAt
	event.EventType = in.EventType
	event.Price = in.Price
	return s.repo.Update(event)
}

// EventDetail 单个活动详情，带报名数和当前用户是否已报名
type EventDetail struct {
	model.Event
	AttendanceCount int64
	IsRegistered    bool
}

func (s *EventService) Get(actor policy.Actor, clubID, eventID uint64) (*EventDetail, error) {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(actor, club); err != nil {
		return nil, err
	}
	event, err := s.repo.FindByClubAndID(clubID, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	count, err := s.attendRepo.CountByEvent(eventID)
	if err != nil {
		return nil, err
	}
	registered, err := s.attendRepo.IsRegistered(eventID, actor.ID)
	if err != nil {
		return nil, err
	}
	return &EventDetail{Event: *event, AttendanceCount: count, IsRegistered: registered}, nil
}

func (s *EventService) Register(actor policy.Actor, eventID uint64) error {
	if _, err := s.findEvent(eventID); err != nil {
		return err
	}
	registered, err := s.attendRepo.IsRegistered(eventID, actor.ID)
	if err != nil {
		return err
	}
	if registered {
		return ErrAlreadyRegistered
	}
	return s.attendRepo.Register(&model.Attendance{
		EventID:      eventID,
		UserID:       actor.ID,
		RegisteredAt: time.Now(),
	})
}

// Unregister 幂等：没报名也视为成功
func (s *EventService) Unregister(actor policy.Actor, eventID uint64) error {
	return s.attendRepo.Unregister(eventID, actor.ID)
}

// RecordPayment 登记一笔活动缴费，event_payments 和俱乐部流水同事务落库。
// 同一 (event, user) 第二次登记会被唯一键挡住，映射成 ErrAlreadyPaid
func (s *EventService) RecordPayment(actor policy.Actor, eventID, userID uint64, amount float64) error {
	event, err := s.findEvent(eventID)
	if err != nil {
		return err
	}
	club, err := loadClub(s.clubRepo, event.ClubID)
	if err != nil {
		return err
	}
	if !policy.CanManageClub(actor, club) {
		return ErrAccessDenied
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidParams)
	}

	uid := userID
	eid := eventID
	outbox, err := s.paymentRepo.AppendEventPayment(
		&model.EventPayment{
			EventID: eventID,
			UserID:  userID,
			Amount:  amount,
			Status:  "paid",
		},
		&model.Payment{
			ClubID:  event.ClubID,
			UserID:  &uid,
			Amount:  amount,
			Type:    model.PaymentEvent,
			EventID: &eid,
		},
	)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyPaid
		}
		return err
	}
	publishPaymentEvent(outbox)
	return nil
}

// EventReport 收费活动的缴费对账视图
type EventReport struct {
	model.Event
	Payments        []mysql.EventPaymentInfo
	Attendees       []mysql.AttendeeInfo
	TotalRevenue    float64
	PaidCount       int
	UnpaidCount     int
	UnpaidAttendees []mysql.AttendeeInfo
}

// Reconcile 按 user_id 做差集：报名了但没有缴费记录的算未缴
func Reconcile(event model.Event, attendees []mysql.AttendeeInfo, payments []mysql.EventPaymentInfo) EventReport {
	paidBy := make(map[uint64]bool, len(payments))
	total := 0.0
	for _, p := range payments {
		paidBy[p.UserID] = true
		total += p.Amount
	}

	unpaid := make([]mysql.AttendeeInfo, 0)
	for _, a := range attendees {
		if !paidBy[a.UserID] {
			unpaid = append(unpaid, a)
		}
	}

	unpaidCount := len(attendees) - len(payments)
	if unpaidCount < 0 {
		unpaidCount = 0
	}

	return EventReport{
		Event:           event,
		Payments:        payments,
		Attendees:       attendees,
		TotalRevenue:    total,
		PaidCount:       len(payments),
		UnpaidCount:     unpaidCount,
		UnpaidAttendees: unpaid,
	}
}

// PaymentsReport 俱乐部全部收费活动的对账
func (s *EventService) PaymentsReport(actor policy.Actor, clubID uint64) ([]EventReport, error) {
	club, err := loadClub(s.clubRepo, clubID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageClub(actor, club) {
		return nil, ErrAccessDenied
	}

	events, err := s.repo.ListPaidByClub(clubID)
	if err != nil {
		return nil, err
	}

	reports := make([]EventReport, 0, len(events))
	for _, event := range events {
		payments, err := s.paymentRepo.ListEventPayments(event.ID)
		if err != nil {
			return nil, err
		}
		attendees, err := s.attendRepo.ListByEvent(event.ID)
		if err != nil {
			return nil, err
		}
		reports = append(reports, Reconcile(event, attendees, payments))
	}
	return reports, nil
}

func (s *EventService) checkAccess(actor policy.Actor, club *model.Club) error {
	isMember, err := s.memberRepo.Exists(club.ID, actor.ID)
	if err != nil {
		return err
	}
	if !policy.CanAccessClub(actor, club, isMember) {
		return ErrAccessDenied
	}
	return nil
}

func (s *EventService) findEvent(eventID uint64) (*model.Event, error) {
	event, err := s.repo.FindByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}
