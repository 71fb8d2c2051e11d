package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns an id when the caller did not set one.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// ServiceLine identifies which public form produced a request
type ServiceLine string

const (
	ServiceLinePuntual   ServiceLine = "puntual"
	ServiceLineCobertura ServiceLine = "cobertura"
	ServiceLineDemo      ServiceLine = "demo"
)

// IsValid reports whether the service line is one of the known values
func (s ServiceLine) IsValid() bool {
	switch s {
	case ServiceLinePuntual, ServiceLineCobertura, ServiceLineDemo:
		return true
	}
	return false
}

// Label returns the Spanish name of the service line
func (s ServiceLine) Label() string {
	switch s {
	case ServiceLinePuntual:
		return "Presupuesto puntual"
	case ServiceLineCobertura:
		return "Plan de cobertura"
	case ServiceLineDemo:
		return "Servicio demo"
	default:
		return string(s)
	}
}

// Client is the identity of a requester. Clients are shared by requests and never deleted.
type Client struct {
	BaseModel
	Name     string    `gorm:"type:varchar(200);not null"`
	Phone    string    `gorm:"type:varchar(50)"`
	Email    string    `gorm:"type:varchar(255);not null;index"`
	Location string    `gorm:"type:varchar(300)"`
	Requests []Request `gorm:"foreignKey:ClientID"`
}

// Request is a customer submission for one of the service lines
type Request struct {
	BaseModel
	ClientID     uuid.UUID       `gorm:"type:uuid;not null;index;column:client_id"`
	Client       *Client         `gorm:"foreignKey:ClientID"`
	ServiceLine  ServiceLine     `gorm:"type:varchar(20);not null;index;column:service_line"`
	Status       RequestStatus   `gorm:"type:varchar(50);not null;default:'pending';index"`
	VehicleMake  string          `gorm:"type:varchar(100);column:vehicle_make"`
	VehicleModel string          `gorm:"type:varchar(100);column:vehicle_model"`
	VehicleYear  int             `gorm:"column:vehicle_year"`
	Plate        string          `gorm:"type:varchar(20)"`
	DamageType   string          `gorm:"type:varchar(100);column:damage_type"`
	DamageZones  StringList      `gorm:"column:damage_zones"`
	DamageNotes  string          `gorm:"type:text;column:damage_notes"`
	Photos       StringList      `gorm:"column:photos"`
	AdminNotes   string          `gorm:"type:text;column:admin_notes"`
	Attachments  StringList      `gorm:"column:attachments"`
	ScheduledAt  *time.Time      `gorm:"column:scheduled_at;index"`
	CompletedAt  *time.Time      `gorm:"column:completed_at;index"`
	QuotedAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0;column:quoted_amount"`
	Version      int             `gorm:"not null;default:1"`

	Puntual   *PuntualDetail   `gorm:"foreignKey:RequestID"`
	Cobertura *CoberturaDetail `gorm:"foreignKey:RequestID"`
	Demo      *DemoDetail      `gorm:"foreignKey:RequestID"`
}

// VehicleLabel returns "make model year" with empty parts skipped
func (r *Request) VehicleLabel() string {
	label := r.VehicleMake
	if r.VehicleModel != "" {
		if label != "" {
			label += " "
		}
		label += r.VehicleModel
	}
	if r.VehicleYear > 0 {
		if label != "" {
			label += " "
		}
		label += strconv.Itoa(r.VehicleYear)
	}
	return label
}

// PuntualDetail holds the fields only an ad hoc repair quote carries
type PuntualDetail struct {
	BaseModel
	RequestID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:request_id"`
	PreferredContact string    `gorm:"type:varchar(50);column:preferred_contact"`
	PreferredTime    string    `gorm:"type:varchar(100);column:preferred_time"`
}

func (PuntualDetail) TableName() string {
	return "service_puntual"
}

// QualificationMessage selects the user-facing text shown after a coverage application
type QualificationMessage string

const (
	QualificationMessageSuccess      QualificationMessage = "success"
	QualificationMessageManualReview QualificationMessage = "manual_review"
	QualificationMessageSubmitted    QualificationMessage = "submitted"
)

// CoberturaDetail holds the coverage plan application and its economics
type CoberturaDetail struct {
	BaseModel
	RequestID      uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex;column:request_id"`
	Franchise      int64                `gorm:"not null;default:0"`
	PaintOriginal  bool                 `gorm:"not null;default:false;column:paint_original"`
	DamageCategory string               `gorm:"type:varchar(100);column:damage_category"`
	PlanTier       string               `gorm:"type:varchar(50);column:plan_tier"`
	Qualified      bool                 `gorm:"not null;default:false"`
	Message        QualificationMessage `gorm:"type:varchar(30);not null;default:'submitted'"`
	MonthlyFee     decimal.Decimal      `gorm:"type:numeric(14,2);not null;default:0;column:monthly_fee"`
	CoverageStart  *datatypes.Date      `gorm:"column:coverage_start"`
	CoverageEnd    *datatypes.Date      `gorm:"column:coverage_end"`
	PaymentLink    string               `gorm:"type:varchar(500);column:payment_link"`
}

func (CoberturaDetail) TableName() string {
	return "service_cobertura"
}

// DemoDetail holds the fields of a demo-service request
type DemoDetail struct {
	BaseModel
	RequestID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex;column:request_id"`
	PreferredDate *datatypes.Date `gorm:"column:preferred_date"`
	Address       string          `gorm:"type:varchar(300)"`
	VehicleCount  int             `gorm:"not null;default:1;column:vehicle_count"`
}

func (DemoDetail) TableName() string {
	return "service_demos"
}

// CalendarEvent is a freestanding reminder. RequestID is a lookup reference only.
type CalendarEvent struct {
	BaseModel
	Title       string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text"`
	StartAt     time.Time  `gorm:"not null;index;column:start_at"`
	EndAt       *time.Time `gorm:"column:end_at"`
	Category    string     `gorm:"type:varchar(50)"`
	Color       string     `gorm:"type:varchar(20);not null;default:'#3b82f6'"`
	Completed   bool       `gorm:"not null;default:false"`
	RequestID   *uuid.UUID `gorm:"type:uuid;column:request_id;index"`
}

// Insumo is an expense/supply ledger row. DeletedAt marks a recoverable soft delete.
type Insumo struct {
	BaseModel
	Product       string          `gorm:"type:varchar(200);not null"`
	Quantity      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:1"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0;column:total_price"`
	Vendor        string          `gorm:"type:varchar(200)"`
	PurchasedBy   string          `gorm:"type:varchar(100);column:purchased_by"`
	PurchasedAt   datatypes.Date  `gorm:"not null;index;column:purchased_at"`
	Category      string          `gorm:"type:varchar(100);index"`
	PaymentMethod string          `gorm:"type:varchar(50);column:payment_method"`
	Notes         string          `gorm:"type:text"`
	DeletedAt     *time.Time      `gorm:"column:deleted_at;index"`
}

// IsDeleted reports whether the row is soft deleted
func (i *Insumo) IsDeleted() bool {
	return i.DeletedAt != nil
}
