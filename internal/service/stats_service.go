package service

import (
	"context"
	"fmt"
	"time"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const seriesMonths = 12

// StatsStore runs the aggregate queries behind the business summary
type StatsStore interface {
	Revenue(ctx context.Context, from, to time.Time) (*repository.RevenueTotals, error)
	CancelledCount(ctx context.Context, from, to time.Time) (int64, error)
	Expenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	NewRequests(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatus(ctx context.Context, from, to time.Time) ([]repository.StatusTotal, error)
	CountByServiceLine(ctx context.Context, from, to time.Time) ([]repository.ServiceLineTotal, error)
}

// StatsService reports revenue, expenses and request volume per calendar month of
// the shop's time zone. Revenue counts the quoted amount of requests completed as
// repaired or repaired_invoiced in the month; cancelled requests are counted apart.
type StatsService struct {
	stats    StatsStore
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

func NewStatsService(stats StatsStore, location *time.Location, logger *zap.Logger) *StatsService {
	if location == nil {
		location = time.UTC
	}
	return &StatsService{
		stats:    stats,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock replaces the clock that picks the current month
func (s *StatsService) WithClock(now func() time.Time) *StatsService {
	s.now = now
	return s
}

func (s *StatsService) parseMonth(month string) (time.Time, error) {
	if month == "" {
		now := s.now().In(s.location)
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location), nil
	}
	start, err := time.ParseInLocation("2006-01", month, s.location)
	if err != nil {
		return time.Time{}, &ValidationError{Fields: map[string]string{"month": "Must be a month in YYYY-MM format"}}
	}
	return start, nil
}

// Month summarises one "YYYY-MM" month; empty means the current one
func (s *StatsService) Month(ctx context.Context, month string) (*domain.MonthlyStats, error) {
	start, err := s.parseMonth(month)
	if err != nil {
		return nil, err
	}
	return s.month(ctx, start)
}

func (s *StatsService) month(ctx context.Context, start time.Time) (*domain.MonthlyStats, error) {
	end := start.AddDate(0, 1, 0)
	// purchase dates carry no zone
	dayStart := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 1, 0)

	revenue, err := s.stats.Revenue(ctx, start, end)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.stats.CancelledCount(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.stats.Expenses(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	created, err := s.stats.NewRequests(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.stats.CountByStatus(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byLine, err := s.stats.CountByServiceLine(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := &domain.MonthlyStats{
		Month:         start.Format("2006-01"),
		Revenue:       revenue.Amount,
		Expenses:      expenses,
		Net:           revenue.Amount.Sub(expenses),
		CompletedJobs: revenue.Jobs,
		CancelledJobs: cancelled,
		NewRequests:   created,
		ByStatus:      make([]domain.StatusCount, len(byStatus)),
		ByServiceLine: make([]domain.ServiceLineCount, len(byLine)),
	}
	for i, row := range byStatus {
		result.ByStatus[i] = domain.StatusCount{Status: row.Status, Count: row.Count}
	}
	for i, row := range byLine {
		result.ByServiceLine[i] = domain.ServiceLineCount{ServiceLine: row.ServiceLine, Count: row.Count}
	}
	return result, nil
}

// Series returns the twelve months ending with month, oldest first, plus totals
func (s *StatsService) Series(ctx context.Context, month string) (*domain.StatsSeries, error) {
	last, err := s.parseMonth(month)
	if err != nil {
		return nil, err
	}

	series := &domain.StatsSeries{
		Months:        make([]domain.MonthlyStats, 0, seriesMonths),
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalNet:      decimal.Zero,
	}
	for i := seriesMonths - 1; i >= 0; i-- {
		stats, err := s.month(ctx, last.AddDate(0, -i, 0))
		if err != nil {
			return nil, fmt.Errorf("failed to build stats series: %w", err)
		}
		series.Months = append(series.Months, *stats)
		series.TotalRevenue = series.TotalRevenue.Add(stats.Revenue)
		series.TotalExpenses = series.TotalExpenses.Add(stats.Expenses)
	}
	series.TotalNet = series.TotalRevenue.Sub(series.TotalExpenses)
	return series, nil
}
