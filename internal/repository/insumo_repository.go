package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"gorm.io/gorm"
)

// InsumoFilters narrows the expense ledger
type InsumoFilters struct {
	From           *time.Time
	To             *time.Time
	Category       string
	IncludeDeleted bool
}

type InsumoRepository struct {
	db *gorm.DB
}

func NewInsumoRepository(db *gorm.DB) *InsumoRepository {
	return &InsumoRepository{db: db}
}

func (r *InsumoRepository) Create(ctx context.Context, insumo *domain.Insumo) error {
	return r.db.WithContext(ctx).Create(insumo).Error
}

// GetByID returns the row whether or not it is soft deleted
func (r *InsumoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Insumo, error) {
	var insumo domain.Insumo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&insumo).Error; err != nil {
		return nil, err
	}
	return &insumo, nil
}

func (r *InsumoRepository) Update(ctx context.Context, insumo *domain.Insumo) error {
	return r.db.WithContext(ctx).Save(insumo).Error
}

func (r *InsumoRepository) List(ctx context.Context, filters InsumoFilters, page, pageSize int) ([]domain.Insumo, int64, error) {
	var insumos []domain.Insumo
	var total int64

	query := r.filtered(ctx, filters)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("purchased_at DESC, created_at DESC").Find(&insumos).Error
	return insumos, total, err
}

// ListAll returns every row matching the filters, oldest purchase first
func (r *InsumoRepository) ListAll(ctx context.Context, filters InsumoFilters) ([]domain.Insumo, error) {
	var insumos []domain.Insumo
	err := r.filtered(ctx, filters).Order("purchased_at ASC, created_at ASC").Find(&insumos).Error
	return insumos, err
}

func (r *InsumoRepository) filtered(ctx context.Context, f InsumoFilters) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&domain.Insumo{})
	if !f.IncludeDeleted {
		query = query.Where("deleted_at IS NULL")
	}
	if f.From != nil {
		query = query.Where("purchased_at >= ?", f.From.UTC())
	}
	if f.To != nil {
		query = query.Where("purchased_at < ?", f.To.UTC())
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	return query
}

// SoftDelete sets deleted_at and touches no other column
func (r *InsumoRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.setDeletedAt(ctx, id, at.UTC())
}

// Restore clears deleted_at and touches no other column
func (r *InsumoRepository) Restore(ctx context.Context, id uuid.UUID) error {
	return r.setDeletedAt(ctx, id, nil)
}

func (r *InsumoRepository) setDeletedAt(ctx context.Context, id uuid.UUID, value interface{}) error {
	result := r.db.WithContext(ctx).Model(&domain.Insumo{}).Where("id = ?", id).UpdateColumn("deleted_at", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HardDelete removes the row permanently
func (r *InsumoRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Insumo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
