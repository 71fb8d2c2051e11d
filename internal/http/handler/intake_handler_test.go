package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func puntualForm(email string) domain.PuntualIntakeRequest {
	return domain.PuntualIntakeRequest{
		Contact:     domain.ContactInput{Name: "Ana Pérez", Phone: "11 5555-0000", Email: email},
		Vehicle:     domain.VehicleInput{Make: "Toyota", Model: "Corolla", Year: "2019"},
		DamageType:  "Granizo",
		DamageZones: []string{"Capot"},
	}
}

func TestIntakeHandler_SubmitPuntual_JSON(t *testing.T) {
	f := newFixture(t)

	w := httptest.NewRecorder()
	f.intake.SubmitPuntual(w, jsonRequest(t, http.MethodPost, "/intake/puntual", puntualForm("ana@example.com")))

	require.Equal(t, http.StatusCreated, w.Code)
	var result domain.IntakeResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, domain.StatusPending, result.Status)
	assert.Zero(t, result.PhotosSent)
	assert.NotEmpty(t, result.MessageText)
}

func TestIntakeHandler_SubmitPuntual_Multipart(t *testing.T) {
	f := newFixture(t)

	data, err := json.Marshal(puntualForm("ana@example.com"))
	require.NoError(t, err)
	req := multipartRequest(t, "/intake/puntual", map[string]string{"data": string(data)},
		formFile{field: "photos", name: "capot.jpg", contentType: "image/jpeg", content: "jpeg-bytes"},
		formFile{field: "photos", name: "notas.txt", contentType: "text/plain", content: "not an image"},
	)

	w := httptest.NewRecorder()
	f.intake.SubmitPuntual(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var result domain.IntakeResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.PhotosSent)
	assert.Equal(t, 1, result.PhotosFailed)

	stored, err := f.requests.GetByID(req.Context(), result.RequestID)
	require.NoError(t, err)
	require.Len(t, stored.Photos, 1)
	assert.True(t, strings.HasPrefix(stored.Photos[0], testBaseURL+"/"))
}

func TestIntakeHandler_BadForms(t *testing.T) {
	tests := []struct {
		name       string
		request    func(t *testing.T) *http.Request
		wantStatus int
		wantType   string
	}{
		{
			name: "unknown field",
			request: func(t *testing.T) *http.Request {
				return jsonRequest(t, http.MethodPost, "/intake/puntual", map[string]string{"nombre": "Ana"})
			},
			wantStatus: http.StatusBadRequest,
			wantType:   domain.ErrorTypeBadRequest,
		},
		{
			name: "multipart without data",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/intake/puntual", map[string]string{"other": "x"})
			},
			wantStatus: http.StatusBadRequest,
			wantType:   domain.ErrorTypeBadRequest,
		},
		{
			name: "missing email",
			request: func(t *testing.T) *http.Request {
				return jsonRequest(t, http.MethodPost, "/intake/puntual", puntualForm(""))
			},
			wantStatus: http.StatusBadRequest,
			wantType:   domain.ErrorTypeValidation,
		},
		{
			name: "body over the limit",
			request: func(t *testing.T) *http.Request {
				big := strings.Repeat("x", maxTestUpload+1)
				return multipartRequest(t, "/intake/puntual", map[string]string{"data": "{}"},
					formFile{field: "photos", name: "big.jpg", contentType: "image/jpeg", content: big})
			},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantType:   domain.ErrorTypeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			w := httptest.NewRecorder()
			f.intake.SubmitPuntual(w, tt.request(t))

			assert.Equal(t, tt.wantStatus, w.Code)
			problem := decodeProblem(t, w)
			assert.Equal(t, tt.wantType, problem.Type)
		})
	}
}

func TestIntakeHandler_SubmitCobertura(t *testing.T) {
	f := newFixture(t)

	form := domain.CoberturaIntakeRequest{
		Contact:        domain.ContactInput{Name: "Luis Gómez", Phone: "11 4444-0000", Email: "luis@example.com"},
		Vehicle:        domain.VehicleInput{Make: "Ford", Model: "Focus", Year: "2005"},
		Franchise:      "150000",
		PaintOriginal:  true,
		DamageCategory: "leve",
	}

	w := httptest.NewRecorder()
	f.intake.SubmitCobertura(w, jsonRequest(t, http.MethodPost, "/intake/cobertura", form))

	require.Equal(t, http.StatusCreated, w.Code)
	var result domain.IntakeResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, domain.StatusManualReview, result.Status)
	assert.Equal(t, domain.QualificationMessageManualReview, result.Message)
}
