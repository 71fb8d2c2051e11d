package payment

import (
	"context"
	"testing"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(config.MercadoPagoConfig{}, zap.NewNop())
	assert.ErrorIs(t, err, ErrMissingAccessToken)
}

func TestMercadoPagoGateway_Mock(t *testing.T) {
	g, err := NewMercadoPagoGateway(config.MercadoPagoConfig{Mock: true}, zap.NewNop())
	require.NoError(t, err)

	checkout, err := g.CreateCheckout(context.Background(), CheckoutRequest{
		Reference: "req-1",
		Title:     "Plan de cobertura",
		Amount:    decimal.NewFromInt(25000),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, checkout.PreferenceID)
	assert.Contains(t, checkout.URL, "pref_id=mock-")

	_, err = g.CreateCheckout(context.Background(), CheckoutRequest{Reference: "req-1", Amount: decimal.Zero})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestPreferencePayload(t *testing.T) {
	g := &MercadoPagoGateway{cfg: config.MercadoPagoConfig{CurrencyID: "ARS", SuccessURL: "https://dsp.test/ok"}}
	payload := g.preferencePayload(CheckoutRequest{
		Reference:  "req-1",
		Title:      "Cuota",
		Amount:     decimal.RequireFromString("1999.999"),
		PayerEmail: "ana@example.com",
	})

	items := payload["items"].([]map[string]any)
	require.Len(t, items, 1)
	assert.Equal(t, 2000.0, items[0]["unit_price"])
	assert.Equal(t, "ARS", items[0]["currency_id"])
	assert.Equal(t, "approved", payload["auto_return"])
	assert.Equal(t, "req-1", payload["external_reference"])
}
