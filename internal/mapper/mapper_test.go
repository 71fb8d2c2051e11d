package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestToRequestDTO(t *testing.T) {
	scheduled := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	start := datatypes.Date(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	req := &domain.Request{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		ServiceLine: domain.ServiceLineCobertura,
		Status:      domain.StatusAppointmentScheduled,
		ScheduledAt: &scheduled,
		Client:      &domain.Client{Name: "Ana", Email: "ana@example.com"},
		Cobertura:   &domain.CoberturaDetail{Franchise: 300000, CoverageStart: &start},
	}

	dto := mapper.ToRequestDTO(req)
	assert.Equal(t, "Turno agendado", dto.StatusLabel)
	require.NotNil(t, dto.ScheduledAt)
	assert.Equal(t, "2025-03-10T14:30:00Z", *dto.ScheduledAt)
	require.NotNil(t, dto.Client)
	assert.Equal(t, "Ana", dto.Client.Name)
	require.NotNil(t, dto.Cobertura)
	assert.Equal(t, "2025-04-01", dto.Cobertura.CoverageStart)
	assert.Empty(t, dto.Cobertura.CoverageEnd)
	assert.Nil(t, dto.Puntual)
	assert.NotNil(t, dto.Photos)
	assert.Empty(t, dto.Photos)
}

func TestToInsumoDTO(t *testing.T) {
	deleted := time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)
	insumo := &domain.Insumo{
		Product:     "Pegamento",
		PurchasedAt: datatypes.Date(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
		DeletedAt:   &deleted,
	}

	dto := mapper.ToInsumoDTO(insumo)
	assert.Equal(t, "2025-05-01", dto.PurchasedAt)
	require.NotNil(t, dto.DeletedAt)
}
