package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/mapper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultEventColor = "#3b82f6"
	appointmentColor  = "#f59e0b"
)

// ProjectCalendar merges freestanding events with scheduled appointments. Only
// requests in appointment_scheduled with a scheduled time become items.
func ProjectCalendar(events []domain.CalendarEvent, requests []domain.Request) []domain.CalendarItem {
	items := make([]domain.CalendarItem, 0, len(events)+len(requests))
	for _, event := range events {
		color := event.Color
		if color == "" {
			color = defaultEventColor
		}
		items = append(items, domain.CalendarItem{
			ID:        event.ID,
			Kind:      domain.CalendarItemEvent,
			Title:     event.Title,
			Timestamp: event.StartAt,
			Color:     color,
			Summary:   event.Description,
			Completed: event.Completed,
		})
	}
	for i := range requests {
		req := &requests[i]
		if req.Status != domain.StatusAppointmentScheduled || req.ScheduledAt == nil {
			continue
		}
		items = append(items, domain.CalendarItem{
			ID:        req.ID,
			Kind:      domain.CalendarItemAppointment,
			Title:     appointmentTitle(req),
			Timestamp: *req.ScheduledAt,
			Color:     appointmentColor,
			Summary:   appointmentSummary(req),
		})
	}
	return items
}

func appointmentTitle(req *domain.Request) string {
	name := "Turno"
	if req.Client != nil && req.Client.Name != "" {
		name = "Turno: " + req.Client.Name
	}
	return name
}

func appointmentSummary(req *domain.Request) string {
	parts := []string{req.ServiceLine.Label()}
	if vehicle := req.VehicleLabel(); vehicle != "" {
		parts = append(parts, vehicle)
	}
	if req.Plate != "" {
		parts = append(parts, req.Plate)
	}
	return strings.Join(parts, " · ")
}

// GroupByDay buckets items by their calendar date in loc. Days and the items inside
// each day are in ascending time order.
func GroupByDay(items []domain.CalendarItem, loc *time.Location) []domain.CalendarDay {
	if loc == nil {
		loc = time.UTC
	}
	sorted := make([]domain.CalendarItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	days := []domain.CalendarDay{}
	for _, item := range sorted {
		item.Timestamp = item.Timestamp.In(loc)
		date := item.Timestamp.Format("2006-01-02")
		if n := len(days); n > 0 && days[n-1].Date == date {
			days[n-1].Items = append(days[n-1].Items, item)
			continue
		}
		days = append(days, domain.CalendarDay{Date: date, Items: []domain.CalendarItem{item}})
	}
	return days
}

// CalendarService manages calendar events and builds the merged calendar view
type CalendarService struct {
	events   EventStore
	requests RequestStore
	location *time.Location
	logger   *zap.Logger
}

func NewCalendarService(events EventStore, requests RequestStore, location *time.Location, logger *zap.Logger) *CalendarService {
	if location == nil {
		location = time.UTC
	}
	return &CalendarService{
		events:   events,
		requests: requests,
		location: location,
		logger:   logger,
	}
}

// ResolveLocation returns the named IANA zone, or the default zone when name is empty
func (s *CalendarService) ResolveLocation(name string) (*time.Location, error) {
	if name == "" {
		return s.location, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"tz": "Unknown time zone"}}
	}
	return loc, nil
}

// Calendar returns the merged view for [from, to) grouped by day in the tz zone
func (s *CalendarService) Calendar(ctx context.Context, from, to *time.Time, tz string) ([]domain.CalendarDay, error) {
	loc, err := s.ResolveLocation(tz)
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && !to.After(*from) {
		return nil, &ValidationError{Fields: map[string]string{"to": "Must be after from"}}
	}

	events, err := s.events.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	requests, err := s.requests.ListScheduled(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return GroupByDay(ProjectCalendar(events, requests), loc), nil
}

func (s *CalendarService) ListEvents(ctx context.Context, from, to *time.Time) ([]domain.CalendarEventDTO, error) {
	events, err := s.events.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	dtos := make([]domain.CalendarEventDTO, len(events))
	for i := range events {
		dtos[i] = mapper.ToCalendarEventDTO(&events[i])
	}
	return dtos, nil
}

func (s *CalendarService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEventDTO, error) {
	event, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToCalendarEventDTO(event)
	return &dto, nil
}

func (s *CalendarService) get(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	return event, nil
}

func (s *CalendarService) Create(ctx context.Context, in *domain.CreateCalendarEventRequest) (*domain.CalendarEventDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := checkEventRange(in.StartAt, in.EndAt); err != nil {
		return nil, err
	}

	event := &domain.CalendarEvent{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		StartAt:     in.StartAt.UTC(),
		Category:    in.Category,
		Color:       in.Color,
		RequestID:   in.RequestID,
	}
	if in.EndAt != nil {
		end := in.EndAt.UTC()
		event.EndAt = &end
	}
	if event.Color == "" {
		event.Color = defaultEventColor
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	s.logger.Info("calendar event created", zap.String("event_id", event.ID.String()))
	dto := mapper.ToCalendarEventDTO(event)
	return &dto, nil
}

func (s *CalendarService) Update(ctx context.Context, id uuid.UUID, in *domain.UpdateCalendarEventRequest) (*domain.CalendarEventDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	event, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		event.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.StartAt != nil {
		event.StartAt = in.StartAt.UTC()
	}
	if in.EndAt != nil {
		end := in.EndAt.UTC()
		event.EndAt = &end
	}
	if in.Category != nil {
		event.Category = *in.Category
	}
	if in.Color != nil {
		event.Color = *in.Color
	}
	if in.Completed != nil {
		event.Completed = *in.Completed
	}
	if err := checkEventRange(event.StartAt, event.EndAt); err != nil {
		return nil, err
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}
	dto := mapper.ToCalendarEventDTO(event)
	return &dto, nil
}

// ToggleCompleted flips the completion flag of an event
func (s *CalendarService) ToggleCompleted(ctx context.Context, id uuid.UUID) (*domain.CalendarEventDTO, error) {
	event, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Completed = !event.Completed
	if err := s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}
	dto := mapper.ToCalendarEventDTO(event)
	return &dto, nil
}

func (s *CalendarService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	s.logger.Info("calendar event deleted", zap.String("event_id", id.String()))
	return nil
}

func checkEventRange(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return &ValidationError{Fields: map[string]string{"endAt": "Must not be before startAt"}}
	}
	return nil
}
