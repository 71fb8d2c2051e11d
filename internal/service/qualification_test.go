package service_test

import (
	"testing"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"github.com/stretchr/testify/assert"
)

var defaultThresholds = service.Thresholds{
	MinVehicleYear:         2010,
	MinFranchise:           300000,
	ExcludedDamageCategory: "Large impact",
}

func TestQualify(t *testing.T) {
	tests := []struct {
		name    string
		input   service.QualificationInput
		status  domain.RequestStatus
		message domain.QualificationMessage
	}{
		{
			name:    "recent vehicle with high franchise and original paint",
			input:   service.QualificationInput{Year: 2021, Franchise: 350000, PaintOriginal: true, DamageCategory: "minor"},
			status:  domain.StatusPreQualified,
			message: domain.QualificationMessageSuccess,
		},
		{
			name:    "year below threshold",
			input:   service.QualificationInput{Year: 2005, Franchise: 350000, PaintOriginal: true, DamageCategory: "minor"},
			status:  domain.StatusManualReview,
			message: domain.QualificationMessageManualReview,
		},
		{
			name:    "franchise below threshold",
			input:   service.QualificationInput{Year: 2021, Franchise: 200000, PaintOriginal: true, DamageCategory: "minor"},
			status:  domain.StatusManualReview,
			message: domain.QualificationMessageManualReview,
		},
		{
			name:    "unparseable year counts as zero",
			input:   service.QualificationInput{Year: service.ParseYear(""), Franchise: 350000, PaintOriginal: true, DamageCategory: "minor"},
			status:  domain.StatusManualReview,
			message: domain.QualificationMessageManualReview,
		},
		{
			name:    "repainted vehicle",
			input:   service.QualificationInput{Year: 2021, Franchise: 350000, DamageCategory: "minor"},
			status:  domain.StatusManualReview,
			message: domain.QualificationMessageManualReview,
		},
		{
			name:    "excluded damage category",
			input:   service.QualificationInput{Year: 2021, Franchise: 350000, PaintOriginal: true, DamageCategory: "Large impact"},
			status:  domain.StatusManualReview,
			message: domain.QualificationMessageManualReview,
		},
		{
			name:    "thresholds are inclusive",
			input:   service.QualificationInput{Year: 2010, Franchise: 300000, PaintOriginal: true},
			status:  domain.StatusPreQualified,
			message: domain.QualificationMessageSuccess,
		},
		{
			name:    "plan tier does not matter",
			input:   service.QualificationInput{Year: 2021, Franchise: 350000, PaintOriginal: true, PlanTier: "premium"},
			status:  domain.StatusPreQualified,
			message: domain.QualificationMessageSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.Qualify(tt.input, defaultThresholds)
			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, tt.message, result.Message)
			assert.Equal(t, tt.status == domain.StatusPreQualified, result.Qualified)
			assert.Equal(t, service.MessageText(tt.message), result.Text)

			again := service.Qualify(tt.input, defaultThresholds)
			assert.Equal(t, result, again)
		})
	}
}

func TestParseYear(t *testing.T) {
	assert.Equal(t, 2019, service.ParseYear("2019"))
	assert.Equal(t, 2019, service.ParseYear(" 2019 "))
	assert.Equal(t, 0, service.ParseYear(""))
	assert.Equal(t, 0, service.ParseYear("dos mil"))
	assert.Equal(t, 0, service.ParseYear("-5"))
}

func TestParseFranchise(t *testing.T) {
	tests := map[string]int64{
		"350000":     350000,
		"$ 350.000":  350000,
		"350.000,50": 350000,
		"$1.200.000": 1200000,
		"":           0,
		"no sé":      0,
		"-100":       0,
		" 300 000 ":  300000,
	}
	for in, want := range tests {
		assert.Equal(t, want, service.ParseFranchise(in), in)
	}
}
