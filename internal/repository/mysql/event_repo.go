package mysql

import (
	"Club_Manager/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func (r *EventRepository) Create(event *model.Event) error {
	return r.DB.Create(event).Error
}

func (r *EventRepository) FindByID(id uint64) (*model.Event, error) {
	var event model.Event
	err := r.DB.First(&event, id).Error
	return &event, err
}

func (r *EventRepository) FindByClubAndID(clubID, eventID uint64) (*model.Event, error) {
	var event model.Event
	err := r.DB.Where("id = ? AND club_id = ?", eventID, clubID).First(&event).Error
	return &event, err
}

func (r *EventRepository) ListByClub(clubID uint64) ([]model.Event, error) {
	var list []model.Event
	err := r.DB.Where("club_id = ?", clubID).
		Order("starts_at DESC").
		Find(&list).Error
	return list, err
}

// ListPaidByClub 只取收费活动，对账页面用
func (r *EventRepository) ListPaidByClub(clubID uint64) ([]model.Event, error) {
	var list []model.Event
	err := r.DB.Where("club_id = ? AND event_type = ?", clubID, model.EventPaid).
		Order("starts_at DESC").
		Find(&list).Error
	return list, err
}

func (r *EventRepository) Update(event *model.Event) error {
	return r.DB.Model(&model.Event{}).Where("id = ?", event.ID).Updates(map[string]any{
		"title":       event.Title,
		"description": event.Description,
		"location":    event.Location,
		"starts_at":   event.StartsAt,
		"ends_at":     event.EndsAt,
		"event_type":  event.EventType,
		"price":       event.Price,
	}).Error
}
