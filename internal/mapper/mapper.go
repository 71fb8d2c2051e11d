package mapper

import (
	"time"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"gorm.io/datatypes"
)

const (
	timestampLayout = time.RFC3339
	dateLayout      = "2006-01-02"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// FormatDate renders a date column as YYYY-MM-DD
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

func formatOptionalDate(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return FormatDate(*d)
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// ToClientDTO converts Client to ClientDTO
func ToClientDTO(client *domain.Client) domain.ClientDTO {
	return domain.ClientDTO{
		ID:        client.ID,
		Name:      client.Name,
		Phone:     client.Phone,
		Email:     client.Email,
		Location:  client.Location,
		CreatedAt: formatTime(client.CreatedAt),
		UpdatedAt: formatTime(client.UpdatedAt),
	}
}

// ToClientWithRequestsDTO converts a client and its preloaded requests
func ToClientWithRequestsDTO(client *domain.Client) domain.ClientWithRequestsDTO {
	requests := make([]domain.RequestDTO, len(client.Requests))
	for i := range client.Requests {
		requests[i] = ToRequestDTO(&client.Requests[i])
	}
	return domain.ClientWithRequestsDTO{
		ClientDTO: ToClientDTO(client),
		Requests:  requests,
	}
}

// ToRequestDTO converts Request to RequestDTO including whichever detail row is loaded
func ToRequestDTO(req *domain.Request) domain.RequestDTO {
	dto := domain.RequestDTO{
		ID:           req.ID,
		ClientID:     req.ClientID,
		ServiceLine:  req.ServiceLine,
		Status:       req.Status,
		StatusLabel:  req.Status.Label(),
		VehicleMake:  req.VehicleMake,
		VehicleModel: req.VehicleModel,
		VehicleYear:  req.VehicleYear,
		Plate:        req.Plate,
		DamageType:   req.DamageType,
		DamageZones:  nonNil(req.DamageZones),
		DamageNotes:  req.DamageNotes,
		Photos:       nonNil(req.Photos),
		AdminNotes:   req.AdminNotes,
		Attachments:  nonNil(req.Attachments),
		ScheduledAt:  formatOptionalTime(req.ScheduledAt),
		CompletedAt:  formatOptionalTime(req.CompletedAt),
		QuotedAmount: req.QuotedAmount,
		Version:      req.Version,
		CreatedAt:    formatTime(req.CreatedAt),
		UpdatedAt:    formatTime(req.UpdatedAt),
	}

	if req.Client != nil {
		client := ToClientDTO(req.Client)
		dto.Client = &client
	}
	if p := req.Puntual; p != nil {
		dto.Puntual = &domain.PuntualDetailDTO{
			PreferredContact: p.PreferredContact,
			PreferredTime:    p.PreferredTime,
		}
	}
	if c := req.Cobertura; c != nil {
		dto.Cobertura = &domain.CoberturaDetailDTO{
			Franchise:      c.Franchise,
			PaintOriginal:  c.PaintOriginal,
			DamageCategory: c.DamageCategory,
			PlanTier:       c.PlanTier,
			Qualified:      c.Qualified,
			Message:        c.Message,
			MonthlyFee:     c.MonthlyFee,
			CoverageStart:  formatOptionalDate(c.CoverageStart),
			CoverageEnd:    formatOptionalDate(c.CoverageEnd),
			PaymentLink:    c.PaymentLink,
		}
	}
	if d := req.Demo; d != nil {
		dto.Demo = &domain.DemoDetailDTO{
			PreferredDate: formatOptionalDate(d.PreferredDate),
			Address:       d.Address,
			VehicleCount:  d.VehicleCount,
		}
	}
	return dto
}

// ToCalendarEventDTO converts CalendarEvent to CalendarEventDTO
func ToCalendarEventDTO(event *domain.CalendarEvent) domain.CalendarEventDTO {
	return domain.CalendarEventDTO{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		StartAt:     formatTime(event.StartAt),
		EndAt:       formatOptionalTime(event.EndAt),
		Category:    event.Category,
		Color:       event.Color,
		Completed:   event.Completed,
		RequestID:   event.RequestID,
		CreatedAt:   formatTime(event.CreatedAt),
		UpdatedAt:   formatTime(event.UpdatedAt),
	}
}

// ToInsumoDTO converts Insumo to InsumoDTO
func ToInsumoDTO(insumo *domain.Insumo) domain.InsumoDTO {
	return domain.InsumoDTO{
		ID:            insumo.ID,
		Product:       insumo.Product,
		Quantity:      insumo.Quantity,
		TotalPrice:    insumo.TotalPrice,
		Vendor:        insumo.Vendor,
		PurchasedBy:   insumo.PurchasedBy,
		PurchasedAt:   FormatDate(insumo.PurchasedAt),
		Category:      insumo.Category,
		PaymentMethod: insumo.PaymentMethod,
		Notes:         insumo.Notes,
		DeletedAt:     formatOptionalTime(insumo.DeletedAt),
		CreatedAt:     formatTime(insumo.CreatedAt),
		UpdatedAt:     formatTime(insumo.UpdatedAt),
	}
}
