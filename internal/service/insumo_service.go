package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/mapper"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const insumoSheet = "Insumos"

var insumoColumns = []interface{}{
	"Fecha", "Producto", "Cantidad", "Total", "Proveedor", "Comprado por", "Categoría", "Medio de pago", "Notas",
}

// InsumoQuery is the admin list query. Month is "YYYY-MM".
type InsumoQuery struct {
	Month          string
	Category       string
	IncludeDeleted bool
	Page           int
	PageSize       int
}

// MonthRange returns [first day, first day of next month) for a "YYYY-MM" value
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Fields: map[string]string{"month": "Must be a month in YYYY-MM format"}}
	}
	return start, start.AddDate(0, 1, 0), nil
}

func (q InsumoQuery) filters() (repository.InsumoFilters, error) {
	filters := repository.InsumoFilters{
		Category:       q.Category,
		IncludeDeleted: q.IncludeDeleted,
	}
	if q.Month != "" {
		from, to, err := MonthRange(q.Month)
		if err != nil {
			return filters, err
		}
		filters.From, filters.To = &from, &to
	}
	return filters, nil
}

// InsumoService manages the expense ledger. Deletion is soft by default and can be
// undone; only an explicit permanent delete removes the row.
type InsumoService struct {
	insumos InsumoStore
	logger  *zap.Logger
	now     func() time.Time
}

func NewInsumoService(insumos InsumoStore, logger *zap.Logger) *InsumoService {
	return &InsumoService{
		insumos: insumos,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *InsumoService) get(ctx context.Context, id uuid.UUID) (*domain.Insumo, error) {
	insumo, err := s.insumos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsumoNotFound
		}
		return nil, fmt.Errorf("failed to get insumo: %w", err)
	}
	return insumo, nil
}

func (s *InsumoService) GetByID(ctx context.Context, id uuid.UUID) (*domain.InsumoDTO, error) {
	insumo, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToInsumoDTO(insumo)
	return &dto, nil
}

func (s *InsumoService) List(ctx context.Context, q InsumoQuery) (*domain.PaginatedResponse, error) {
	filters, err := q.filters()
	if err != nil {
		return nil, err
	}
	page, pageSize := clampPage(q.Page, q.PageSize)

	insumos, total, err := s.insumos.List(ctx, filters, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list insumos: %w", err)
	}

	dtos := make([]domain.InsumoDTO, len(insumos))
	for i := range insumos {
		dtos[i] = mapper.ToInsumoDTO(&insumos[i])
	}

	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *InsumoService) Create(ctx context.Context, in *domain.CreateInsumoRequest) (*domain.InsumoDTO, error) {
	insumo := &domain.Insumo{}
	if err := applyInsumo(insumo, in); err != nil {
		return nil, err
	}
	if err := s.insumos.Create(ctx, insumo); err != nil {
		return nil, fmt.Errorf("failed to create insumo: %w", err)
	}

	s.logger.Info("insumo created",
		zap.String("insumo_id", insumo.ID.String()),
		zap.String("total", insumo.TotalPrice.StringFixed(2)),
	)
	dto := mapper.ToInsumoDTO(insumo)
	return &dto, nil
}

func (s *InsumoService) Update(ctx context.Context, id uuid.UUID, in *domain.UpdateInsumoRequest) (*domain.InsumoDTO, error) {
	insumo, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyInsumo(insumo, in); err != nil {
		return nil, err
	}
	if err := s.insumos.Update(ctx, insumo); err != nil {
		return nil, fmt.Errorf("failed to update insumo: %w", err)
	}
	dto := mapper.ToInsumoDTO(insumo)
	return &dto, nil
}

func applyInsumo(insumo *domain.Insumo, in *domain.CreateInsumoRequest) error {
	if err := validateInput(in); err != nil {
		return err
	}
	fields := map[string]string{}
	if in.Quantity.IsNegative() {
		fields["quantity"] = domain.GetValidationMessage("gte")
	}
	if in.TotalPrice.IsNegative() {
		fields["totalPrice"] = domain.GetValidationMessage("gte")
	}
	day, err := time.Parse("2006-01-02", in.PurchasedAt)
	if err != nil {
		fields["purchasedAt"] = domain.GetValidationMessage("datetime")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	quantity := in.Quantity
	if quantity.IsZero() {
		quantity = decimal.NewFromInt(1)
	}
	insumo.Product = strings.TrimSpace(in.Product)
	insumo.Quantity = quantity
	insumo.TotalPrice = in.TotalPrice
	insumo.Vendor = in.Vendor
	insumo.PurchasedBy = in.PurchasedBy
	insumo.PurchasedAt = datatypes.Date(day)
	insumo.Category = in.Category
	insumo.PaymentMethod = in.PaymentMethod
	insumo.Notes = in.Notes
	return nil
}

// SoftDelete hides the row from lists and totals. Only deleted_at changes.
func (s *InsumoService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.insumos.SoftDelete(ctx, id, s.now().UTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInsumoNotFound
		}
		return fmt.Errorf("failed to delete insumo: %w", err)
	}
	s.logger.Info("insumo deleted", zap.String("insumo_id", id.String()))
	return nil
}

// Restore undoes a soft delete
func (s *InsumoService) Restore(ctx context.Context, id uuid.UUID) (*domain.InsumoDTO, error) {
	if err := s.insumos.Restore(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsumoNotFound
		}
		return nil, fmt.Errorf("failed to restore insumo: %w", err)
	}
	s.logger.Info("insumo restored", zap.String("insumo_id", id.String()))
	return s.GetByID(ctx, id)
}

// HardDelete removes the row for good
func (s *InsumoService) HardDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.insumos.HardDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInsumoNotFound
		}
		return fmt.Errorf("failed to delete insumo: %w", err)
	}
	s.logger.Warn("insumo permanently deleted", zap.String("insumo_id", id.String()))
	return nil
}

// ExportXLSX writes the active rows of a month (or every active row when month is
// empty) to a workbook with a totals row at the bottom.
func (s *InsumoService) ExportXLSX(ctx context.Context, month, category string) ([]byte, error) {
	filters, err := InsumoQuery{Month: month, Category: category}.filters()
	if err != nil {
		return nil, err
	}
	insumos, err := s.insumos.ListAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list insumos: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("failed to close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", insumoSheet); err != nil {
		return nil, fmt.Errorf("failed to prepare workbook: %w", err)
	}
	if err := f.SetSheetRow(insumoSheet, "A1", &insumoColumns); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	if err := f.SetRowStyle(insumoSheet, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	total := decimal.Zero
	for i := range insumos {
		item := &insumos[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			mapper.FormatDate(item.PurchasedAt),
			item.Product,
			item.Quantity.InexactFloat64(),
			item.TotalPrice.InexactFloat64(),
			item.Vendor,
			item.PurchasedBy,
			item.Category,
			item.PaymentMethod,
			item.Notes,
		}
		if err := f.SetSheetRow(insumoSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
		total = total.Add(item.TotalPrice)
	}

	totalRow := len(insumos) + 2
	labelCell, _ := excelize.CoordinatesToCellName(3, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(4, totalRow)
	if err := f.SetCellValue(insumoSheet, labelCell, "TOTAL"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(insumoSheet, totalCell, total.InexactFloat64()); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(insumoSheet, totalRow, totalRow, bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(insumoSheet, "B", "B", 32); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
