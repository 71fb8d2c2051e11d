package repository

// Aggregates for the monthly business summary. Queries are built with squirrel and
// executed through gorm so both PostgreSQL and SQLite run the same statements.

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RevenueTotals is the billable side of a period
type RevenueTotals struct {
	Amount decimal.Decimal
	Jobs   int64
}

// StatusTotal is one row of a GROUP BY status
type StatusTotal struct {
	Status domain.RequestStatus
	Count  int64
}

// ServiceLineTotal is one row of a GROUP BY service_line
type ServiceLineTotal struct {
	ServiceLine domain.ServiceLine
	Count       int64
}

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func revenueStatuses() []string {
	var statuses []string
	for _, s := range domain.AllRequestStatuses {
		if s.CountsAsRevenue() {
			statuses = append(statuses, string(s))
		}
	}
	return statuses
}

// Revenue sums quoted amounts of requests completed as repaired in [from, to)
func (r *StatsRepository) Revenue(ctx context.Context, from, to time.Time) (*RevenueTotals, error) {
	query := sq.Select("COALESCE(SUM(quoted_amount), 0) AS amount", "COUNT(*) AS jobs").
		From("requests").
		Where(sq.Eq{"status": revenueStatuses()}).
		Where(sq.GtOrEq{"completed_at": from.UTC()}).
		Where(sq.Lt{"completed_at": to.UTC()})

	var totals RevenueTotals
	if err := r.scan(ctx, query, &totals); err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return &totals, nil
}

// CancelledCount counts requests that were closed as cancelled in [from, to)
func (r *StatsRepository) CancelledCount(ctx context.Context, from, to time.Time) (int64, error) {
	query := sq.Select("COUNT(*)").
		From("requests").
		Where(sq.Eq{"status": string(domain.StatusCancelled)}).
		Where(sq.GtOrEq{"completed_at": from.UTC()}).
		Where(sq.Lt{"completed_at": to.UTC()})

	var count int64
	if err := r.scan(ctx, query, &count); err != nil {
		return 0, fmt.Errorf("failed to count cancelled requests: %w", err)
	}
	return count, nil
}

// Expenses sums active insumos purchased in [from, to)
func (r *StatsRepository) Expenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := sq.Select("COALESCE(SUM(total_price), 0) AS total").
		From("insumos").
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.GtOrEq{"purchased_at": from.UTC()}).
		Where(sq.Lt{"purchased_at": to.UTC()})

	var row struct {
		Total decimal.Decimal
	}
	if err := r.scan(ctx, query, &row); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return row.Total, nil
}

// NewRequests counts requests created in [from, to)
func (r *StatsRepository) NewRequests(ctx context.Context, from, to time.Time) (int64, error) {
	query := sq.Select("COUNT(*)").
		From("requests").
		Where(sq.GtOrEq{"created_at": from.UTC()}).
		Where(sq.Lt{"created_at": to.UTC()})

	var count int64
	if err := r.scan(ctx, query, &count); err != nil {
		return 0, fmt.Errorf("failed to count new requests: %w", err)
	}
	return count, nil
}

// CountByStatus groups requests created in [from, to) by their current status
func (r *StatsRepository) CountByStatus(ctx context.Context, from, to time.Time) ([]StatusTotal, error) {
	query := sq.Select("status", "COUNT(*) AS count").
		From("requests").
		Where(sq.GtOrEq{"created_at": from.UTC()}).
		Where(sq.Lt{"created_at": to.UTC()}).
		GroupBy("status").
		OrderBy("status")

	var rows []StatusTotal
	if err := r.scan(ctx, query, &rows); err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}
	return rows, nil
}

// CountByServiceLine groups requests created in [from, to) by service line
func (r *StatsRepository) CountByServiceLine(ctx context.Context, from, to time.Time) ([]ServiceLineTotal, error) {
	query := sq.Select("service_line", "COUNT(*) AS count").
		From("requests").
		Where(sq.GtOrEq{"created_at": from.UTC()}).
		Where(sq.Lt{"created_at": to.UTC()}).
		GroupBy("service_line").
		OrderBy("service_line")

	var rows []ServiceLineTotal
	if err := r.scan(ctx, query, &rows); err != nil {
		return nil, fmt.Errorf("failed to count by service line: %w", err)
	}
	return rows, nil
}

func (r *StatsRepository) scan(ctx context.Context, query sq.SelectBuilder, dest interface{}) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Raw(sqlStr, args...).Scan(dest).Error
}
