package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client DTOs

type ClientDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email"`
	Location  string    `json:"location,omitempty"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

type ClientWithRequestsDTO struct {
	ClientDTO
	Requests []RequestDTO `json:"requests"`
}

// Request DTOs

type PuntualDetailDTO struct {
	PreferredContact string `json:"preferredContact,omitempty"`
	PreferredTime    string `json:"preferredTime,omitempty"`
}

type CoberturaDetailDTO struct {
	Franchise      int64                `json:"franchise"`
	PaintOriginal  bool                 `json:"paintOriginal"`
	DamageCategory string               `json:"damageCategory,omitempty"`
	PlanTier       string               `json:"planTier,omitempty"`
	Qualified      bool                 `json:"qualified"`
	Message        QualificationMessage `json:"message"`
	MonthlyFee     decimal.Decimal      `json:"monthlyFee"`
	CoverageStart  string               `json:"coverageStart,omitempty"`
	CoverageEnd    string               `json:"coverageEnd,omitempty"`
	PaymentLink    string               `json:"paymentLink,omitempty"`
}

type DemoDetailDTO struct {
	PreferredDate string `json:"preferredDate,omitempty"`
	Address       string `json:"address,omitempty"`
	VehicleCount  int    `json:"vehicleCount"`
}

type RequestDTO struct {
	ID           uuid.UUID           `json:"id"`
	ClientID     uuid.UUID           `json:"clientId"`
	Client       *ClientDTO          `json:"client,omitempty"`
	ServiceLine  ServiceLine         `json:"serviceLine"`
	Status       RequestStatus       `json:"status"`
	StatusLabel  string              `json:"statusLabel"`
	VehicleMake  string              `json:"vehicleMake,omitempty"`
	VehicleModel string              `json:"vehicleModel,omitempty"`
	VehicleYear  int                 `json:"vehicleYear,omitempty"`
	Plate        string              `json:"plate,omitempty"`
	DamageType   string              `json:"damageType,omitempty"`
	DamageZones  []string            `json:"damageZones"`
	DamageNotes  string              `json:"damageNotes,omitempty"`
	Photos       []string            `json:"photos"`
	AdminNotes   string              `json:"adminNotes,omitempty"`
	Attachments  []string            `json:"attachments"`
	ScheduledAt  *string             `json:"scheduledAt,omitempty"`
	CompletedAt  *string             `json:"completedAt,omitempty"`
	QuotedAmount decimal.Decimal     `json:"quotedAmount"`
	Version      int                 `json:"version"`
	Puntual      *PuntualDetailDTO   `json:"puntual,omitempty"`
	Cobertura    *CoberturaDetailDTO `json:"cobertura,omitempty"`
	Demo         *DemoDetailDTO      `json:"demo,omitempty"`
	CreatedAt    string              `json:"createdAt"`
	UpdatedAt    string              `json:"updatedAt"`
}

// IntakeResultDTO is returned to the public site after a form submission
type IntakeResultDTO struct {
	RequestID    uuid.UUID            `json:"requestId"`
	Status       RequestStatus        `json:"status"`
	Message      QualificationMessage `json:"message,omitempty"`
	MessageText  string               `json:"messageText"`
	PhotosSent   int                  `json:"photosSent"`
	PhotosFailed int                  `json:"photosFailed"`
}

// AttachmentResultDTO reports the outcome of an admin attachment batch
type AttachmentResultDTO struct {
	Request  RequestDTO `json:"request"`
	Uploaded int        `json:"uploaded"`
	Failed   int        `json:"failed"`
}

// PaymentLinkDTO is a checkout link for a coverage monthly fee
type PaymentLinkDTO struct {
	RequestID    uuid.UUID       `json:"requestId"`
	PreferenceID string          `json:"preferenceId"`
	URL          string          `json:"url"`
	Amount       decimal.Decimal `json:"amount"`
}

// Calendar DTOs

type CalendarEventDTO struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartAt     string     `json:"startAt"`
	EndAt       *string    `json:"endAt,omitempty"`
	Category    string     `json:"category,omitempty"`
	Color       string     `json:"color"`
	Completed   bool       `json:"completed"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// CalendarItemKind tells event rows apart from projected appointments
type CalendarItemKind string

const (
	CalendarItemEvent       CalendarItemKind = "event"
	CalendarItemAppointment CalendarItemKind = "appointment"
)

// CalendarItem is one entry of the merged calendar. Appointment items are read-only
// projections of a request; edit the request to change them.
type CalendarItem struct {
	ID        uuid.UUID        `json:"id"`
	Kind      CalendarItemKind `json:"kind"`
	Title     string           `json:"title"`
	Timestamp time.Time        `json:"timestamp"`
	Color     string           `json:"color"`
	Summary   string           `json:"summary,omitempty"`
	Completed bool             `json:"completed"`
}

// CalendarDay groups items that share a local calendar date
type CalendarDay struct {
	Date  string         `json:"date"`
	Items []CalendarItem `json:"items"`
}

// Insumo DTOs

type InsumoDTO struct {
	ID            uuid.UUID       `json:"id"`
	Product       string          `json:"product"`
	Quantity      decimal.Decimal `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Vendor        string          `json:"vendor,omitempty"`
	PurchasedBy   string          `json:"purchasedBy,omitempty"`
	PurchasedAt   string          `json:"purchasedAt"`
	Category      string          `json:"category,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	DeletedAt     *string         `json:"deletedAt,omitempty"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

// Stats DTOs

type StatusCount struct {
	Status RequestStatus `json:"status"`
	Count  int64         `json:"count"`
}

type ServiceLineCount struct {
	ServiceLine ServiceLine `json:"serviceLine"`
	Count       int64       `json:"count"`
}

// MonthlyStats summarises one calendar month of the business
type MonthlyStats struct {
	Month         string             `json:"month"`
	Revenue       decimal.Decimal    `json:"revenue"`
	Expenses      decimal.Decimal    `json:"expenses"`
	Net           decimal.Decimal    `json:"net"`
	CompletedJobs int64              `json:"completedJobs"`
	CancelledJobs int64              `json:"cancelledJobs"`
	NewRequests   int64              `json:"newRequests"`
	ByStatus      []StatusCount      `json:"byStatus"`
	ByServiceLine []ServiceLineCount `json:"byServiceLine"`
}

type StatsSeries struct {
	Months        []MonthlyStats  `json:"months"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalNet      decimal.Decimal `json:"totalNet"`
}

// Auth DTOs

type AuthSessionDTO struct {
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Pagination response wrapper
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// Public form values. Each submission is decoded once into one of these and never
// mutated afterwards; validation runs on the whole value before any I/O.

type ContactInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	Phone    string `json:"phone" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Location string `json:"location,omitempty" validate:"max=300"`
}

type VehicleInput struct {
	Make  string `json:"make" validate:"required,max=100"`
	Model string `json:"model" validate:"required,max=100"`
	// Year is kept as submitted; unparseable values count as 0
	Year  string `json:"year" validate:"max=10"`
	Plate string `json:"plate,omitempty" validate:"max=20"`
}

type PuntualIntakeRequest struct {
	Contact          ContactInput `json:"contact" validate:"required"`
	Vehicle          VehicleInput `json:"vehicle" validate:"required"`
	DamageType       string       `json:"damageType" validate:"required,max=100"`
	DamageZones      []string     `json:"damageZones,omitempty" validate:"max=30,dive,max=100"`
	DamageNotes      string       `json:"damageNotes,omitempty" validate:"max=4000"`
	PreferredContact string       `json:"preferredContact,omitempty" validate:"omitempty,oneof=whatsapp phone email"`
	PreferredTime    string       `json:"preferredTime,omitempty" validate:"max=100"`
}

type CoberturaIntakeRequest struct {
	Contact ContactInput `json:"contact" validate:"required"`
	Vehicle VehicleInput `json:"vehicle" validate:"required"`
	// Franchise is the insurance deductible as typed by the customer
	Franchise      string   `json:"franchise" validate:"max=20"`
	PaintOriginal  bool     `json:"paintOriginal"`
	DamageCategory string   `json:"damageCategory,omitempty" validate:"max=100"`
	PlanTier       string   `json:"planTier,omitempty" validate:"max=50"`
	DamageZones    []string `json:"damageZones,omitempty" validate:"max=30,dive,max=100"`
	DamageNotes    string   `json:"damageNotes,omitempty" validate:"max=4000"`
}

type DemoIntakeRequest struct {
	Contact       ContactInput `json:"contact" validate:"required"`
	Vehicle       VehicleInput `json:"vehicle" validate:"required"`
	PreferredDate string       `json:"preferredDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Address       string       `json:"address,omitempty" validate:"max=300"`
	VehicleCount  int          `json:"vehicleCount,omitempty" validate:"gte=0,lte=100"`
	DamageNotes   string       `json:"damageNotes,omitempty" validate:"max=4000"`
}

// Admin request DTOs

type UpdateRequestRequest struct {
	Status        *RequestStatus   `json:"status,omitempty"`
	AdminNotes    *string          `json:"adminNotes,omitempty" validate:"omitempty,max=10000"`
	ScheduledAt   *time.Time       `json:"scheduledAt,omitempty"`
	ClearSchedule bool             `json:"clearSchedule,omitempty"`
	MonthlyFee    *decimal.Decimal `json:"monthlyFee,omitempty"`
	CoverageStart *string          `json:"coverageStart,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CoverageEnd   *string          `json:"coverageEnd,omitempty" validate:"omitempty,datetime=2006-01-02"`
	// Version enables the optimistic concurrency check when present
	Version *int `json:"version,omitempty" validate:"omitempty,gte=1"`
}

type QuoteLineItemInput struct {
	Zone        string          `json:"zone" validate:"required,max=100"`
	HitCount    string          `json:"hitCount,omitempty" validate:"max=20"`
	Size        string          `json:"size,omitempty" validate:"max=50"`
	Complexity  string          `json:"complexity,omitempty" validate:"max=50"`
	Expectation string          `json:"expectation,omitempty" validate:"omitempty,oneof=baja media alta"`
	Price       decimal.Decimal `json:"price"`
	Observation string          `json:"observation,omitempty" validate:"max=500"`
}

type GenerateQuoteRequest struct {
	Items          []QuoteLineItemInput `json:"items" validate:"required,min=1,max=60,dive"`
	IsCombo        bool                 `json:"isCombo"`
	ValidityDays   int                  `json:"validityDays,omitempty" validate:"gte=0,lte=365"`
	IssueDate      *time.Time           `json:"issueDate,omitempty"`
	DamageLevel    string               `json:"damageLevel,omitempty" validate:"max=50"`
	VehicleSegment string               `json:"vehicleSegment,omitempty" validate:"max=50"`
	PaintType      string               `json:"paintType,omitempty" validate:"max=50"`
	TechnicalRisk  string               `json:"technicalRisk,omitempty" validate:"max=50"`
	Observations   []string             `json:"observations,omitempty" validate:"max=20,dive,max=200"`
	Techniques     []string             `json:"techniques,omitempty" validate:"max=20,dive,max=200"`
}

// Calendar event DTOs

type CreateCalendarEventRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description,omitempty" validate:"max=4000"`
	StartAt     time.Time  `json:"startAt" validate:"required"`
	EndAt       *time.Time `json:"endAt,omitempty"`
	Category    string     `json:"category,omitempty" validate:"max=50"`
	Color       string     `json:"color,omitempty" validate:"omitempty,hexcolor"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type UpdateCalendarEventRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=4000"`
	StartAt     *time.Time `json:"startAt,omitempty"`
	EndAt       *time.Time `json:"endAt,omitempty"`
	Category    *string    `json:"category,omitempty" validate:"omitempty,max=50"`
	Color       *string    `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Completed   *bool      `json:"completed,omitempty"`
}

// Insumo DTOs

type CreateInsumoRequest struct {
	Product       string          `json:"product" validate:"required,max=200"`
	Quantity      decimal.Decimal `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Vendor        string          `json:"vendor,omitempty" validate:"max=200"`
	PurchasedBy   string          `json:"purchasedBy,omitempty" validate:"max=100"`
	PurchasedAt   string          `json:"purchasedAt" validate:"required,datetime=2006-01-02"`
	Category      string          `json:"category,omitempty" validate:"max=100"`
	PaymentMethod string          `json:"paymentMethod,omitempty" validate:"omitempty,oneof=efectivo transferencia debito credito mercadopago otro"`
	Notes         string          `json:"notes,omitempty" validate:"max=4000"`
}

type UpdateInsumoRequest = CreateInsumoRequest

// Auth DTOs

type LoginRequest struct {
	Password string `json:"password" validate:"required,max=200"`
}
