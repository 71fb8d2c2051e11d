package service

import (
	"strconv"
	"strings"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
)

// QualificationInput is what the coverage form asks about the vehicle
type QualificationInput struct {
	Year           int
	Franchise      int64
	PaintOriginal  bool
	DamageCategory string
	// PlanTier is recorded but does not affect the outcome
	PlanTier string
}

// QualificationResult is the outcome of the coverage pre-qualification
type QualificationResult struct {
	Qualified bool
	Status    domain.RequestStatus
	Message   domain.QualificationMessage
	Text      string
}

// Thresholds are the configurable limits of the pre-qualification rule
type Thresholds struct {
	MinVehicleYear         int
	MinFranchise           int64
	ExcludedDamageCategory string
}

// ThresholdsFromConfig reads the qualification thresholds
func ThresholdsFromConfig(cfg config.QualificationConfig) Thresholds {
	return Thresholds{
		MinVehicleYear:         cfg.MinVehicleYear,
		MinFranchise:           cfg.MinFranchise,
		ExcludedDamageCategory: cfg.ExcludedDamageCategory,
	}
}

const (
	messageSuccessText = "¡Tu vehículo precalifica para el plan de cobertura! " +
		"Te contactaremos para coordinar la inspección y el alta."
	messageManualReviewText = "Recibimos tu solicitud. Un asesor revisará los datos de tu vehículo " +
		"y te contactará para confirmar si puede acceder al plan."
	messageSubmittedText = "Recibimos tu solicitud. Te contactaremos a la brevedad."
)

// MessageText returns the user-facing text of a qualification message variant
func MessageText(msg domain.QualificationMessage) string {
	switch msg {
	case domain.QualificationMessageSuccess:
		return messageSuccessText
	case domain.QualificationMessageManualReview:
		return messageManualReviewText
	default:
		return messageSubmittedText
	}
}

// Qualify applies the pre-qualification rule. It is a pure function of its inputs.
func Qualify(in QualificationInput, th Thresholds) QualificationResult {
	qualified := in.PaintOriginal &&
		in.Year >= th.MinVehicleYear &&
		in.Franchise >= th.MinFranchise &&
		in.DamageCategory != th.ExcludedDamageCategory

	if qualified {
		return QualificationResult{
			Qualified: true,
			Status:    domain.StatusPreQualified,
			Message:   domain.QualificationMessageSuccess,
			Text:      messageSuccessText,
		}
	}
	return QualificationResult{
		Status:  domain.StatusManualReview,
		Message: domain.QualificationMessageManualReview,
		Text:    messageManualReviewText,
	}
}

// ParseYear reads a model year as typed; anything unparseable counts as 0
func ParseYear(s string) int {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year < 0 {
		return 0
	}
	return year
}

// ParseFranchise reads a deductible amount, tolerating "$", spaces and thousands dots.
// Decimals after a comma are dropped. Anything unparseable counts as 0.
func ParseFranchise(s string) int64 {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	s = strings.NewReplacer("$", "", ".", "", " ", "").Replace(s)
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
