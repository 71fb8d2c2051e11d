package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/mapper"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/realtime"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/repository"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/storage"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RequestService is the admin side of the request lifecycle
type RequestService struct {
	requests  RequestStore
	uploads   *UploadService
	publisher Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewRequestService(requests RequestStore, uploads *UploadService, publisher Publisher, logger *zap.Logger) *RequestService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &RequestService{
		requests:  requests,
		uploads:   uploads,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for completion timestamps
func (s *RequestService) WithClock(now func() time.Time) *RequestService {
	s.now = now
	return s
}

func (s *RequestService) GetByID(ctx context.Context, id uuid.UUID) (*domain.RequestDTO, error) {
	req, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToRequestDTO(req)
	return &dto, nil
}

func (s *RequestService) get(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return req, nil
}

func (s *RequestService) List(ctx context.Context, filters repository.RequestFilters, page, pageSize int) (*domain.PaginatedResponse, error) {
	if filters.Status != nil && !filters.Status.IsValid() {
		return nil, &ValidationError{Fields: map[string]string{"status": "Unknown status"}}
	}
	if filters.ServiceLine != nil && !filters.ServiceLine.IsValid() {
		return nil, &ValidationError{Fields: map[string]string{"serviceLine": "Unknown service line"}}
	}
	page, pageSize = clampPage(page, pageSize)

	requests, total, err := s.requests.List(ctx, filters, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	dtos := make([]domain.RequestDTO, len(requests))
	for i := range requests {
		dtos[i] = mapper.ToRequestDTO(&requests[i])
	}

	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// Update applies an admin edit. Any known status may be assigned. Entering a terminal
// status stamps completed_at; leaving one clears it. When the write fails the error
// carries the record as currently stored.
func (s *RequestService) Update(ctx context.Context, id uuid.UUID, in *domain.UpdateRequestRequest) (*domain.RequestDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, &ValidationError{Fields: map[string]string{"status": "Unknown status"}}
	}
	if in.MonthlyFee != nil && in.MonthlyFee.IsNegative() {
		return nil, &ValidationError{Fields: map[string]string{"monthlyFee": domain.GetValidationMessage("gte")}}
	}

	current, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	coverage, err := coverageUpdates(in)
	if err != nil {
		return nil, err
	}
	if len(coverage) > 0 && current.ServiceLine != domain.ServiceLineCobertura {
		return nil, ErrNotCoverage
	}

	updates := make(map[string]interface{})
	if in.Status != nil && *in.Status != current.Status {
		updates["status"] = *in.Status
		switch {
		case in.Status.IsTerminal() && !current.Status.IsTerminal():
			updates["completed_at"] = s.now().UTC()
		case !in.Status.IsTerminal() && current.Status.IsTerminal():
			updates["completed_at"] = nil
		}
	}
	if in.AdminNotes != nil {
		updates["admin_notes"] = *in.AdminNotes
	}
	if in.ClearSchedule {
		updates["scheduled_at"] = nil
	} else if in.ScheduledAt != nil {
		updates["scheduled_at"] = in.ScheduledAt.UTC()
	}

	if err := s.requests.UpdateWithCoverage(ctx, id, updates, coverage, in.Version); err != nil {
		return nil, s.updateFailure(ctx, id, "update request", err)
	}

	updated, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if status, ok := updates["status"]; ok {
		s.logger.Info("request status changed",
			zap.String("request_id", id.String()),
			zap.String("from", string(current.Status)),
			zap.Any("to", status),
		)
	}

	dto := mapper.ToRequestDTO(updated)
	s.publisher.Publish(realtime.EventRequestUpdated, dto)
	return &dto, nil
}

func coverageUpdates(in *domain.UpdateRequestRequest) (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	if in.MonthlyFee != nil {
		updates["monthly_fee"] = *in.MonthlyFee
	}
	for _, date := range []struct {
		column, field string
		value         *string
	}{
		{"coverage_start", "coverageStart", in.CoverageStart},
		{"coverage_end", "coverageEnd", in.CoverageEnd},
	} {
		if date.value == nil {
			continue
		}
		if *date.value == "" {
			updates[date.column] = nil
			continue
		}
		day, err := time.Parse("2006-01-02", *date.value)
		if err != nil {
			return nil, &ValidationError{Fields: map[string]string{date.field: domain.GetValidationMessage("datetime")}}
		}
		updates[date.column] = datatypes.Date(day)
	}
	return updates, nil
}

// updateFailure maps a failed write and attaches a fresh read of the record. Only a
// missing request row is a not-found; a missing coverage row is a storage failure.
func (s *RequestService) updateFailure(ctx context.Context, id uuid.UUID, op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRequestNotFound
	}

	var current interface{}
	if req, getErr := s.requests.GetByID(ctx, id); getErr == nil {
		dto := mapper.ToRequestDTO(req)
		current = &dto
	} else {
		s.logger.Warn("failed to refetch request after failed update",
			zap.String("request_id", id.String()),
			zap.Error(getErr),
		)
	}

	if errors.Is(err, repository.ErrStaleVersion) {
		return &ConflictError{Current: current}
	}
	s.logger.Error("failed to persist request change",
		zap.String("request_id", id.String()),
		zap.String("op", op),
		zap.Error(err),
	)
	return &DatabaseError{Op: op, Err: err, Current: current}
}

// AddAttachments uploads admin files one by one and appends the ones that made it
func (s *RequestService) AddAttachments(ctx context.Context, id uuid.UUID, files []FileUpload) (*domain.AttachmentResultDTO, error) {
	return s.addFiles(ctx, id, files, false)
}

// AddPhotos adds customer photos received outside the public form. Only images are accepted.
func (s *RequestService) AddPhotos(ctx context.Context, id uuid.UUID, files []FileUpload) (*domain.AttachmentResultDTO, error) {
	return s.addFiles(ctx, id, files, true)
}

func (s *RequestService) addFiles(ctx context.Context, id uuid.UUID, files []FileUpload, photos bool) (*domain.AttachmentResultDTO, error) {
	if len(files) == 0 {
		return nil, &ValidationError{Fields: map[string]string{"files": domain.GetValidationMessage("required")}}
	}
	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}

	prefix := storage.PrefixAttachments
	if photos {
		prefix = storage.PrefixPhotos
	}
	uploaded := s.uploads.UploadBatch(ctx, prefix, files, photos)
	if uploaded.Uploaded() > 0 {
		var err error
		if photos {
			err = s.requests.AppendPhotos(ctx, id, uploaded.URLs)
		} else {
			err = s.requests.AppendAttachments(ctx, id, uploaded.URLs, nil)
		}
		if err != nil {
			return nil, s.updateFailure(ctx, id, "append files", err)
		}
	}

	updated, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToRequestDTO(updated)
	if uploaded.Uploaded() > 0 {
		s.publisher.Publish(realtime.EventRequestUpdated, dto)
	}

	return &domain.AttachmentResultDTO{
		Request:  dto,
		Uploaded: uploaded.Uploaded(),
		Failed:   uploaded.FailedCount(),
	}, nil
}
