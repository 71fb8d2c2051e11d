package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Update(ctx context.Context, event *domain.CalendarEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.CalendarEvent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListRange returns events starting in [from, to). Nil bounds are open.
func (r *EventRepository) ListRange(ctx context.Context, from, to *time.Time) ([]domain.CalendarEvent, error) {
	var events []domain.CalendarEvent
	query := r.db.WithContext(ctx)
	if from != nil {
		query = query.Where("start_at >= ?", from.UTC())
	}
	if to != nil {
		query = query.Where("start_at < ?", to.UTC())
	}
	err := query.Order("start_at ASC").Find(&events).Error
	return events, err
}
