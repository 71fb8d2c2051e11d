// Package payment creates checkout links for coverage plan fees.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrMissingAccessToken = errors.New("missing mercado pago access token")
	ErrNotConfigured      = errors.New("payment gateway not configured")
	ErrInvalidAmount      = errors.New("checkout amount must be positive")
)

// CheckoutRequest describes a single-item checkout
type CheckoutRequest struct {
	Reference  string
	Title      string
	Amount     decimal.Decimal
	PayerName  string
	PayerEmail string
}

// Checkout is a created payment preference
type Checkout struct {
	PreferenceID string
	URL          string
}

// Gateway creates checkout links
type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
}

// MercadoPagoGateway creates Checkout Pro preferences
type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
	cfg      config.MercadoPagoConfig
	logger   *zap.Logger
}

// NewMercadoPagoGateway builds the gateway. Mock mode needs no credentials.
func NewMercadoPagoGateway(cfg config.MercadoPagoConfig, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if cfg.CurrencyID == "" {
		cfg.CurrencyID = "ARS"
	}
	if cfg.Mock {
		logger.Info("mercado pago gateway in mock mode")
		return &MercadoPagoGateway{mockMode: true, cfg: cfg, logger: logger}, nil
	}
	if cfg.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create mercado pago config: %w", err)
	}
	return &MercadoPagoGateway{client: preference.NewClient(sdkCfg), cfg: cfg, logger: logger}, nil
}

// preferencePayload builds the request body; it is decoded into the SDK request type
func (g *MercadoPagoGateway) preferencePayload(req CheckoutRequest) map[string]any {
	amount, _ := req.Amount.Round(2).Float64()
	payload := map[string]any{
		"external_reference": req.Reference,
		"items": []map[string]any{{
			"id":          req.Reference,
			"title":       req.Title,
			"quantity":    1,
			"unit_price":  amount,
			"currency_id": g.cfg.CurrencyID,
		}},
		"payer": map[string]any{
			"name":  req.PayerName,
			"email": req.PayerEmail,
		},
	}
	if g.cfg.SuccessURL != "" {
		payload["back_urls"] = map[string]any{
			"success": g.cfg.SuccessURL,
			"failure": g.cfg.FailureURL,
			"pending": g.cfg.PendingURL,
		}
		payload["auto_return"] = "approved"
	}
	return payload
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	raw, err := json.Marshal(g.preferencePayload(req))
	if err != nil {
		return nil, fmt.Errorf("failed to encode preference: %w", err)
	}

	if g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.logger.Info("mock checkout created", zap.String("reference", req.Reference), zap.String("preference_id", id))
		return &Checkout{
			PreferenceID: id,
			URL:          "https://www.mercadopago.com.ar/checkout/v1/redirect?pref_id=mock-" + id,
		}, nil
	}
	if g.client == nil {
		return nil, ErrNotConfigured
	}

	var sdkReq preference.Request
	if err := json.Unmarshal(raw, &sdkReq); err != nil {
		return nil, fmt.Errorf("failed to build preference request: %w", err)
	}

	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		return nil, fmt.Errorf("failed to create preference: %w", err)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read preference response: %w", err)
	}
	var created struct {
		ID        string `json:"id"`
		InitPoint string `json:"init_point"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("failed to read preference response: %w", err)
	}

	g.logger.Info("checkout created", zap.String("reference", req.Reference), zap.String("preference_id", created.ID))
	return &Checkout{PreferenceID: created.ID, URL: created.InitPoint}, nil
}
