package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStaleVersion is returned when a versioned update matched no row
var ErrStaleVersion = errors.New("request version is stale")

// ErrCoverageNotFound is returned when a coverage request has no detail row
var ErrCoverageNotFound = errors.New("coverage detail not found")

const appendRetries = 3

// RequestFilters narrows the admin request list
type RequestFilters struct {
	ServiceLine *domain.ServiceLine
	Status      *domain.RequestStatus
	From        *time.Time
	To          *time.Time
	ClientEmail string
	Search      string
}

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create inserts the request and its service line detail in one transaction
func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(req).Error; err != nil {
			return err
		}
		switch {
		case req.Puntual != nil:
			req.Puntual.RequestID = req.ID
			return tx.Create(req.Puntual).Error
		case req.Cobertura != nil:
			req.Cobertura.RequestID = req.ID
			return tx.Create(req.Cobertura).Error
		case req.Demo != nil:
			req.Demo.RequestID = req.ID
			return tx.Create(req.Demo).Error
		}
		return nil
	})
}

func (r *RequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	var req domain.Request
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Puntual").
		Preload("Cobertura").
		Preload("Demo").
		Where("id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) List(ctx context.Context, filters RequestFilters, page, pageSize int) ([]domain.Request, int64, error) {
	var requests []domain.Request
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Request{})
	query = applyRequestFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Select("requests.*").
		Preload("Client").
		Preload("Cobertura").
		Offset(offset).
		Limit(pageSize).
		Order("requests.created_at DESC").
		Find(&requests).Error
	return requests, total, err
}

func applyRequestFilters(query *gorm.DB, f RequestFilters) *gorm.DB {
	if f.ServiceLine != nil {
		query = query.Where("requests.service_line = ?", *f.ServiceLine)
	}
	if f.Status != nil {
		query = query.Where("requests.status = ?", *f.Status)
	}
	if f.From != nil {
		query = query.Where("requests.created_at >= ?", f.From.UTC())
	}
	if f.To != nil {
		query = query.Where("requests.created_at < ?", f.To.UTC())
	}
	if f.ClientEmail != "" || f.Search != "" {
		query = query.Joins("JOIN clients ON clients.id = requests.client_id")
	}
	if f.ClientEmail != "" {
		query = query.Where("clients.email = ?", f.ClientEmail)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where(
			"LOWER(clients.name) LIKE ? OR LOWER(requests.vehicle_make) LIKE ? OR LOWER(requests.vehicle_model) LIKE ? OR LOWER(requests.plate) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return query
}

// ListScheduled returns appointment_scheduled requests with a scheduled time in [from, to)
func (r *RequestRepository) ListScheduled(ctx context.Context, from, to *time.Time) ([]domain.Request, error) {
	var requests []domain.Request
	query := r.db.WithContext(ctx).
		Preload("Client").
		Where("status = ? AND scheduled_at IS NOT NULL", domain.StatusAppointmentScheduled)
	if from != nil {
		query = query.Where("scheduled_at >= ?", from.UTC())
	}
	if to != nil {
		query = query.Where("scheduled_at < ?", to.UTC())
	}
	err := query.Order("scheduled_at ASC").Find(&requests).Error
	return requests, err
}

// ListCoverageEnding returns coverage applications whose coverage_end falls in [from, to)
func (r *RequestRepository) ListCoverageEnding(ctx context.Context, from, to time.Time) ([]domain.Request, error) {
	var requests []domain.Request
	err := r.db.WithContext(ctx).
		Select("requests.*").
		Joins("JOIN service_cobertura ON service_cobertura.request_id = requests.id").
		Where("service_cobertura.coverage_end >= ? AND service_cobertura.coverage_end < ?", from.UTC(), to.UTC()).
		Where("requests.status <> ?", domain.StatusCancelled).
		Preload("Client").
		Preload("Cobertura").
		Order("service_cobertura.coverage_end ASC").
		Find(&requests).Error
	return requests, err
}

// UpdateFields applies column updates and bumps the version. With expectedVersion set the
// row must still carry that version, otherwise ErrStaleVersion is returned.
func (r *RequestRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}, expectedVersion *int) error {
	values := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		values[k] = v
	}
	values["version"] = gorm.Expr("version + 1")

	query := r.db.WithContext(ctx).Model(&domain.Request{}).Where("id = ?", id)
	if expectedVersion != nil {
		query = query.Where("version = ?", *expectedVersion)
	}
	result := query.Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missOrStale(ctx, id)
	}
	return nil
}

// UpdateCoverage updates the coverage detail row of a request
func (r *RequestRepository) UpdateCoverage(ctx context.Context, requestID uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&domain.CoberturaDetail{}).Where("request_id = ?", requestID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCoverageNotFound
	}
	return nil
}

// UpdateWithCoverage applies the request columns and, when given, the coverage detail
// columns in one transaction. Nothing is written unless both succeed.
func (r *RequestRepository) UpdateWithCoverage(ctx context.Context, id uuid.UUID, updates, coverage map[string]interface{}, expectedVersion *int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &RequestRepository{db: tx}
		if err := txRepo.UpdateFields(ctx, id, updates, expectedVersion); err != nil {
			return err
		}
		if len(coverage) == 0 {
			return nil
		}
		return txRepo.UpdateCoverage(ctx, id, coverage)
	})
}

// AppendPhotos appends customer photo URLs
func (r *RequestRepository) AppendPhotos(ctx context.Context, id uuid.UUID, urls []string) error {
	return r.appendURLs(ctx, id, "photos", urls, nil)
}

// AppendAttachments appends admin attachment URLs, applying extra column updates in the
// same write (the quote flow uses this to force the status).
func (r *RequestRepository) AppendAttachments(ctx context.Context, id uuid.UUID, urls []string, extra map[string]interface{}) error {
	return r.appendURLs(ctx, id, "attachments", urls, extra)
}

// appendURLs does a read-modify-write guarded by the version column and retries when
// another writer got in between, so concurrent appends are never lost.
func (r *RequestRepository) appendURLs(ctx context.Context, id uuid.UUID, column string, urls []string, extra map[string]interface{}) error {
	for attempt := 0; attempt < appendRetries; attempt++ {
		var current domain.Request
		if err := r.db.WithContext(ctx).Select("id", column, "version").Where("id = ?", id).First(&current).Error; err != nil {
			return err
		}

		list := current.Photos
		if column == "attachments" {
			list = current.Attachments
		}
		merged := make(domain.StringList, 0, len(list)+len(urls))
		merged = append(merged, list...)
		merged = append(merged, urls...)

		updates := map[string]interface{}{column: merged}
		for k, v := range extra {
			updates[k] = v
		}

		err := r.UpdateFields(ctx, id, updates, &current.Version)
		if errors.Is(err, ErrStaleVersion) {
			continue
		}
		return err
	}
	return fmt.Errorf("append to %s: %w", column, ErrStaleVersion)
}

func (r *RequestRepository) missOrStale(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Request{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return ErrStaleVersion
}
