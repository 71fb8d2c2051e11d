package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/payment"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PaymentService creates checkout links for the coverage plan monthly fee
type PaymentService struct {
	requests RequestStore
	gateway  payment.Gateway
	logger   *zap.Logger
}

// NewPaymentService creates the service. A nil gateway disables payment links.
func NewPaymentService(requests RequestStore, gateway payment.Gateway, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		requests: requests,
		gateway:  gateway,
		logger:   logger,
	}
}

// CreateLink creates a checkout for the monthly fee of a coverage application and
// stores the link on it
func (s *PaymentService) CreateLink(ctx context.Context, id uuid.UUID) (*domain.PaymentLinkDTO, error) {
	if s.gateway == nil {
		return nil, ErrPaymentsDisabled
	}

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	if req.ServiceLine != domain.ServiceLineCobertura || req.Cobertura == nil {
		return nil, ErrNotCoverage
	}
	fee := req.Cobertura.MonthlyFee
	if !fee.IsPositive() {
		return nil, &ValidationError{Fields: map[string]string{"monthlyFee": "Set a monthly fee before creating a payment link"}}
	}

	checkout := payment.CheckoutRequest{
		Reference: req.ID.String(),
		Title:     fmt.Sprintf("%s - %s", domain.ServiceLineCobertura.Label(), req.VehicleLabel()),
		Amount:    fee,
	}
	if req.Client != nil {
		checkout.PayerName = req.Client.Name
		checkout.PayerEmail = req.Client.Email
	}

	created, err := s.gateway.CreateCheckout(ctx, checkout)
	if err != nil {
		s.logger.Error("failed to create checkout", zap.String("request_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	if err := s.requests.UpdateCoverage(ctx, id, map[string]interface{}{"payment_link": created.URL}); err != nil {
		return nil, &DatabaseError{Op: "store payment link", Err: err}
	}

	s.logger.Info("payment link created",
		zap.String("request_id", id.String()),
		zap.String("preference_id", created.PreferenceID),
	)
	return &domain.PaymentLinkDTO{
		RequestID:    id,
		PreferenceID: created.PreferenceID,
		URL:          created.URL,
		Amount:       fee,
	}, nil
}
