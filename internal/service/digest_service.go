package service

import (
	"context"
	"fmt"
	"time"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/notify"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/repository"
	"go.uber.org/zap"
)

const (
	digestPendingLimit = 100
	coverageNoticeDays = 7
)

// DigestService builds the operator summaries sent by the scheduler
type DigestService struct {
	requests RequestStore
	sender   Sender
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

func NewDigestService(requests RequestStore, sender Sender, location *time.Location, logger *zap.Logger) *DigestService {
	if sender == nil {
		sender = nopSender{}
	}
	if location == nil {
		location = time.UTC
	}
	return &DigestService{
		requests: requests,
		sender:   sender,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock replaces the clock that picks "today"
func (s *DigestService) WithClock(now func() time.Time) *DigestService {
	s.now = now
	return s
}

func (s *DigestService) today() (time.Time, time.Time) {
	now := s.now().In(s.location)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	return start, start.AddDate(0, 0, 1)
}

// SendDaily queues today's appointments and the pending requests to the operator
func (s *DigestService) SendDaily(ctx context.Context) error {
	start, end := s.today()

	appointments, err := s.requests.ListScheduled(ctx, &start, &end)
	if err != nil {
		return fmt.Errorf("failed to list appointments: %w", err)
	}
	pendingStatus := domain.StatusPending
	pending, total, err := s.requests.List(ctx, repository.RequestFilters{Status: &pendingStatus}, 1, digestPendingLimit)
	if err != nil {
		return fmt.Errorf("failed to list pending requests: %w", err)
	}

	if len(appointments) == 0 && total == 0 {
		s.logger.Debug("daily digest skipped, nothing to report")
		return nil
	}

	s.sender.Send(notify.DigestMessage(start, appointments, pending, s.location))
	s.logger.Info("daily digest queued",
		zap.Int("appointments", len(appointments)),
		zap.Int64("pending", total),
	)
	return nil
}

// SendCoverageEnding warns about coverage plans whose end date falls in the next week
func (s *DigestService) SendCoverageEnding(ctx context.Context) error {
	start, _ := s.today()
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, coverageNoticeDays)

	ending, err := s.requests.ListCoverageEnding(ctx, from, to)
	if err != nil {
		return fmt.Errorf("failed to list coverage plans: %w", err)
	}
	if len(ending) == 0 {
		return nil
	}

	s.sender.Send(notify.CoverageEndingMessage(start, ending, s.location))
	s.logger.Info("coverage renewal notice queued", zap.Int("requests", len(ending)))
	return nil
}
