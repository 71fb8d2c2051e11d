package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/repository"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buenosAires(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	return loc
}

func TestGroupByDay(t *testing.T) {
	loc := buenosAires(t)
	lateNight := time.Date(2024, 5, 1, 23, 59, 0, 0, loc)
	afterMidnight := time.Date(2024, 5, 2, 0, 1, 0, 0, loc)
	morning := time.Date(2024, 5, 2, 9, 30, 0, 0, loc)

	items := []domain.CalendarItem{
		{ID: uuid.New(), Title: "morning", Timestamp: morning.UTC()},
		{ID: uuid.New(), Title: "after midnight", Timestamp: afterMidnight.UTC()},
		{ID: uuid.New(), Title: "late night", Timestamp: lateNight.UTC()},
	}

	days := service.GroupByDay(items, loc)
	require.Len(t, days, 2)

	assert.Equal(t, "2024-05-01", days[0].Date)
	require.Len(t, days[0].Items, 1)
	assert.Equal(t, "late night", days[0].Items[0].Title)

	assert.Equal(t, "2024-05-02", days[1].Date)
	require.Len(t, days[1].Items, 2)
	assert.Equal(t, "after midnight", days[1].Items[0].Title)
	assert.Equal(t, "morning", days[1].Items[1].Title)
}

func TestGroupByDay_ZoneDecidesTheDay(t *testing.T) {
	// 01:30 UTC is still the previous evening in Buenos Aires
	ts := time.Date(2024, 5, 2, 1, 30, 0, 0, time.UTC)
	items := []domain.CalendarItem{{ID: uuid.New(), Timestamp: ts}}

	assert.Equal(t, "2024-05-02", service.GroupByDay(items, time.UTC)[0].Date)
	assert.Equal(t, "2024-05-01", service.GroupByDay(items, buenosAires(t))[0].Date)
	assert.Empty(t, service.GroupByDay(nil, time.UTC))
}

func TestProjectCalendar(t *testing.T) {
	at := time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC)
	events := []domain.CalendarEvent{
		{BaseModel: domain.BaseModel{ID: uuid.New()}, Title: "Comprar lámparas", StartAt: at.Add(-time.Hour)},
	}
	requests := []domain.Request{
		{
			BaseModel:    domain.BaseModel{ID: uuid.New()},
			ServiceLine:  domain.ServiceLinePuntual,
			Status:       domain.StatusAppointmentScheduled,
			ScheduledAt:  &at,
			VehicleMake:  "Ford",
			VehicleModel: "Focus",
			Client:       &domain.Client{Name: "Luis"},
		},
		{
			BaseModel:   domain.BaseModel{ID: uuid.New()},
			Status:      domain.StatusAppointmentScheduled,
			ServiceLine: domain.ServiceLineDemo,
		},
		{
			BaseModel:   domain.BaseModel{ID: uuid.New()},
			Status:      domain.StatusContacted,
			ScheduledAt: &at,
		},
	}

	items := service.ProjectCalendar(events, requests)
	require.Len(t, items, 2)

	assert.Equal(t, domain.CalendarItemEvent, items[0].Kind)
	assert.NotEmpty(t, items[0].Color)

	assert.Equal(t, domain.CalendarItemAppointment, items[1].Kind)
	assert.Equal(t, requests[0].ID, items[1].ID)
	assert.Equal(t, "Turno: Luis", items[1].Title)
	assert.Contains(t, items[1].Summary, "Ford Focus")
	assert.True(t, at.Equal(items[1].Timestamp))
}

func TestCalendarService_EventsAndCalendar(t *testing.T) {
	db := testutil.SetupTestDB(t)
	requests := repository.NewRequestRepository(db)
	svc := service.NewCalendarService(repository.NewEventRepository(db), requests, buenosAires(t), zap.NewNop())
	ctx := context.Background()

	start := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, &domain.CreateCalendarEventRequest{Title: "Retiro de repuestos", StartAt: start})
	require.NoError(t, err)
	assert.False(t, created.Completed)
	assert.Equal(t, "#3b82f6", created.Color)

	toggled, err := svc.ToggleCompleted(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	client := testutil.CreateTestClient(t, db, "Ana", "ana@example.com")
	req := testutil.CreateTestRequest(t, db, client.ID, domain.ServiceLinePuntual, domain.StatusAppointmentScheduled)
	scheduled := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	require.NoError(t, requests.UpdateFields(ctx, req.ID, map[string]interface{}{"scheduled_at": scheduled}, nil))

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	days, err := svc.Calendar(ctx, &from, &to, "")
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, domain.CalendarItemEvent, days[0].Items[0].Kind)
	assert.Equal(t, domain.CalendarItemAppointment, days[1].Items[0].Kind)

	_, err = svc.Calendar(ctx, &from, &to, "Mars/Olympus")
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), service.ErrEventNotFound)
}

func TestCalendarService_RejectsEndBeforeStart(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewCalendarService(repository.NewEventRepository(db), repository.NewRequestRepository(db), time.UTC, zap.NewNop())

	start := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err := svc.Create(context.Background(), &domain.CreateCalendarEventRequest{Title: "x", StartAt: start, EndAt: &end})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
