package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/notify"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/repository"
)

// ClientStore persists clients
type ClientStore interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	List(ctx context.Context, page, pageSize int, search string) ([]domain.Client, int64, error)
}

// RequestStore persists requests and their detail rows
type RequestStore interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	List(ctx context.Context, filters repository.RequestFilters, page, pageSize int) ([]domain.Request, int64, error)
	ListScheduled(ctx context.Context, from, to *time.Time) ([]domain.Request, error)
	ListCoverageEnding(ctx context.Context, from, to time.Time) ([]domain.Request, error)
	UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}, expectedVersion *int) error
	UpdateCoverage(ctx context.Context, requestID uuid.UUID, updates map[string]interface{}) error
	UpdateWithCoverage(ctx context.Context, id uuid.UUID, updates, coverage map[string]interface{}, expectedVersion *int) error
	AppendPhotos(ctx context.Context, id uuid.UUID, urls []string) error
	AppendAttachments(ctx context.Context, id uuid.UUID, urls []string, extra map[string]interface{}) error
}

// EventStore persists calendar events
type EventStore interface {
	Create(ctx context.Context, event *domain.CalendarEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error)
	Update(ctx context.Context, event *domain.CalendarEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListRange(ctx context.Context, from, to *time.Time) ([]domain.CalendarEvent, error)
}

// InsumoStore persists the expense ledger
type InsumoStore interface {
	Create(ctx context.Context, insumo *domain.Insumo) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Insumo, error)
	Update(ctx context.Context, insumo *domain.Insumo) error
	List(ctx context.Context, filters repository.InsumoFilters, page, pageSize int) ([]domain.Insumo, int64, error)
	ListAll(ctx context.Context, filters repository.InsumoFilters) ([]domain.Insumo, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	Restore(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}

// Sender queues operator notifications without blocking
type Sender interface {
	Send(msg notify.Message)
}

// Publisher pushes live events to connected admins
type Publisher interface {
	Publish(eventType string, data interface{})
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, interface{}) {}

type nopSender struct{}

func (nopSender) Send(notify.Message) {}

func clampPage(page, pageSize int) (int, int) {
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}
	if page < 1 {
		page = 1
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
