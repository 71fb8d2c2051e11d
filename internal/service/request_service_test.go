package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/repository"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/service"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/storage"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func newRequestService(t *testing.T, db *gorm.DB, store storage.Storage) (*service.RequestService, *recordingPublisher) {
	t.Helper()
	publisher := &recordingPublisher{}
	svc := service.NewRequestService(
		repository.NewRequestRepository(db),
		newUploadService(t, store),
		publisher,
		zap.NewNop(),
	).WithClock(func() time.Time { return fixedNow })
	return svc, publisher
}

func statusPtr(s domain.RequestStatus) *domain.RequestStatus {
	return &s
}

func TestRequestService_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, publisher := newRequestService(t, db, newTestStorage(t))
	ctx := context.Background()
	client := testutil.CreateTestClient(t, db, "Ana", "ana@example.com")
	req := testutil.CreateTestRequest(t, db, client.ID, domain.ServiceLinePuntual, domain.StatusPending)

	t.Run("any known status can be assigned", func(t *testing.T) {
		dto, err := svc.Update(ctx, req.ID, &domain.UpdateRequestRequest{Status: statusPtr(domain.StatusAppointmentScheduled)})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAppointmentScheduled, dto.Status)
		assert.Nil(t, dto.CompletedAt)
		assert.Equal(t, 2, dto.Version)
	})

	t.Run("terminal status stamps completion", func(t *testing.T) {
		dto, err := svc.Update(ctx, req.ID, &domain.UpdateRequestRequest{Status: statusPtr(domain.StatusRepaired)})
		require.NoError(t, err)
		require.NotNil(t, dto.CompletedAt)
		assert.Equal(t, fixedNow.Format(time.RFC3339), *dto.CompletedAt)
	})

	t.Run("terminal requests stay editable", func(t *testing.T) {
		notes := "Cliente retiró el vehículo"
		dto, err := svc.Update(ctx, req.ID, &domain.UpdateRequestRequest{AdminNotes: &notes})
		require.NoError(t, err)
		assert.Equal(t, notes, dto.AdminNotes)
		assert.NotNil(t, dto.CompletedAt)
	})

	t.Run("leaving a terminal status clears completion", func(t *testing.T) {
		dto, err := svc.Update(ctx, req.ID, &domain.UpdateRequestRequest{Status: statusPtr(domain.StatusContacted)})
		require.NoError(t, err)
		assert.Nil(t, dto.CompletedAt)
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		_, err := svc.Update(ctx, req.ID, &domain.UpdateRequestRequest{Status: statusPtr("archived")})
		var verr *service.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "status")
	})

	assert.NotEmpty(t, publisher.published())
}

func TestRequestService_UpdateSchedule(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, _ := newRequestService(t, db, newTestStorage(t))
	ctx := context.Background()
	client := testutil.CreateTestClient(t, db, "Ana", "ana@example.com")
	req := testutil.CreateTestRequest(t, db, client.ID, domain.ServiceLinePuntual, domain.StatusContacted)

	at := time.Date(2025, 3, 12, 13, 0, 0, 0, time.UTC)
	dto, err := svc.Update(ctx, req.ID, &domain.UpdateRequestRequest{
		Status:      statusPtr(domain.StatusAppointmentScheduled),
		ScheduledAt: &at,
	})
	require.NoError(t, err)
	require.NotNil(t, dto.ScheduledAt)
	assert.Equal(t, at.Format(time.RFC3339), *dto.ScheduledAt)

	dto, err = svc.Update(ctx, req.ID, &domain.UpdateRequestRequest{ClearSchedule: true})
	require.NoError(t, err)
	assert.Nil(t, dto.ScheduledAt)
}

func TestRequestService_VersionConflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, _ := newRequestService(t, db, newTestStorage(t))
	ctx := context.Background()
	client := testutil.CreateTestClient(t, db, "Ana", "ana@example.com")
	req := testutil.CreateTestRequest(t, db, client.ID, domain.ServiceLinePuntual, domain.StatusPending)

	version := 1
	_, err := svc.Update(ctx, req.ID, &domain.UpdateRequestRequest{Status: statusPtr(domain.StatusContacted), Version: &version})
	require.NoError(t, err)

	// a second editor still holds version 1
	_, err = svc.Update(ctx, req.ID, &domain.UpdateRequestRequest{Status: statusPtr(domain.StatusCancelled), Version: &version})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrConflict))

	var conflict *service.ConflictError
	require.True(t, errors.As(err, &conflict))
	current, ok := conflict.Current.(*domain.RequestDTO)
	require.True(t, ok)
	assert.Equal(t, domain.StatusContacted, current.Status)
	assert.Equal(t, 2, current.Version)

	// without a version the last writer wins
	dto, err := svc.Update(ctx, req.ID, &domain.UpdateRequestRequest{Status: statusPtr(domain.StatusCancelled)})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, dto.Status)
}

func TestRequestService_UpdateCoverageFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, _ := newRequestService(t, db, newTestStorage(t))
	ctx := context.Background()
	client := testutil.CreateTestClient(t, db, "Ana", "ana@example.com")

	coverage := &domain.Request{
		ClientID:    client.ID,
		ServiceLine: domain.ServiceLineCobertura,
		Status:      domain.StatusPreQualified,
		Version:     1,
		Cobertura:   &domain.CoberturaDetail{Franchise: 350000, PaintOriginal: true, Qualified: true},
	}
	require.NoError(t, repository.NewRequestRepository(db).Create(ctx, coverage))

	fee := decimal.RequireFromString("15000.50")
	start, end := "2025-04-01", "2026-03-31"
	dto, err := svc.Update(ctx, coverage.ID, &domain.UpdateRequestRequest{
		MonthlyFee:    &fee,
		CoverageStart: &start,
		CoverageEnd:   &end,
	})
	require.NoError(t, err)
	require.NotNil(t, dto.Cobertura)
	assert.True(t, fee.Equal(dto.Cobertura.MonthlyFee))
	assert.Equal(t, start, dto.Cobertura.CoverageStart)
	assert.Equal(t, end, dto.Cobertura.CoverageEnd)

	puntual := testutil.CreateTestRequest(t, db, client.ID, domain.ServiceLinePuntual, domain.StatusPending)
	_, err = svc.Update(ctx, puntual.ID, &domain.UpdateRequestRequest{MonthlyFee: &fee})
	assert.ErrorIs(t, err, service.ErrNotCoverage)
}

// failingCoverageStore fails every combined request and coverage write
type failingCoverageStore struct {
	*repository.RequestRepository
	err error
}

func (s *failingCoverageStore) UpdateWithCoverage(context.Context, uuid.UUID, map[string]interface{}, map[string]interface{}, *int) error {
	return s.err
}

func TestRequestService_UpdateCoverageFailureKeepsStoredState(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	client := testutil.CreateTestClient(t, db, "Ana", "ana@example.com")
	fee := decimal.NewFromInt(100)

	t.Run("storage error returns the stored record", func(t *testing.T) {
		store := &failingCoverageStore{RequestRepository: repository.NewRequestRepository(db), err: errors.New("db down")}
		svc := service.NewRequestService(store, newUploadService(t, newTestStorage(t)), nil, zap.NewNop())
		coverage := &domain.Request{
			ClientID:    client.ID,
			ServiceLine: domain.ServiceLineCobertura,
			Status:      domain.StatusPreQualified,
			Version:     1,
			Cobertura:   &domain.CoberturaDetail{Franchise: 350000, Qualified: true},
		}
		require.NoError(t, store.Create(ctx, coverage))

		_, err := svc.Update(ctx, coverage.ID, &domain.UpdateRequestRequest{
			Status:     statusPtr(domain.StatusCancelled),
			MonthlyFee: &fee,
		})
		var dbErr *service.DatabaseError
		require.True(t, errors.As(err, &dbErr))
		current, ok := dbErr.Current.(*domain.RequestDTO)
		require.True(t, ok)
		assert.Equal(t, domain.StatusPreQualified, current.Status)
		assert.Equal(t, 1, current.Version)
	})

	t.Run("missing coverage row is not a missing request", func(t *testing.T) {
		svc, _ := newRequestService(t, db, newTestStorage(t))
		req := testutil.CreateTestRequest(t, db, client.ID, domain.ServiceLineCobertura, domain.StatusPreQualified)

		_, err := svc.Update(ctx, req.ID, &domain.UpdateRequestRequest{
			Status:     statusPtr(domain.StatusContacted),
			MonthlyFee: &fee,
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrRequestNotFound)
		var dbErr *service.DatabaseError
		assert.True(t, errors.As(err, &dbErr))

		stored, err := svc.GetByID(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPreQualified, stored.Status)
		assert.Equal(t, 1, stored.Version)
	})
}

func TestRequestService_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, _ := newRequestService(t, db, newTestStorage(t))

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrRequestNotFound)

	_, err = svc.Update(context.Background(), uuid.New(), &domain.UpdateRequestRequest{Status: statusPtr(domain.StatusContacted)})
	assert.ErrorIs(t, err, service.ErrRequestNotFound)
}

func TestRequestService_AddAttachments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := &flakyStorage{Storage: newTestStorage(t), failOn: "falla"}
	svc, _ := newRequestService(t, db, store)
	ctx := context.Background()
	client := testutil.CreateTestClient(t, db, "Ana", "ana@example.com")
	req := testutil.CreateTestRequest(t, db, client.ID, domain.ServiceLinePuntual, domain.StatusContacted)

	result, err := svc.AddAttachments(ctx, req.ID, []service.FileUpload{
		fileUpload("factura.pdf", "application/pdf", "%PDF-1.4"),
		fileUpload("falla.pdf", "application/pdf", "%PDF-1.4"),
		fileUpload("orden.pdf", "application/pdf", "%PDF-1.4"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Uploaded)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Request.Attachments, 2)
	assert.Equal(t, domain.StatusContacted, result.Request.Status)

	photos, err := svc.AddPhotos(ctx, req.ID, []service.FileUpload{
		fileUpload("lateral.jpg", "image/jpeg", "jpeg"),
		fileUpload("presupuesto.pdf", "application/pdf", "%PDF"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, photos.Uploaded)
	assert.Equal(t, 1, photos.Failed)
	assert.Len(t, photos.Request.Photos, 1)
	assert.Len(t, photos.Request.Attachments, 2)
}

func TestRequestService_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc, _ := newRequestService(t, db, newTestStorage(t))
	ctx := context.Background()
	client := testutil.CreateTestClient(t, db, "Ana", "ana@example.com")
	for i := 0; i < 3; i++ {
		testutil.CreateTestRequest(t, db, client.ID, domain.ServiceLinePuntual, domain.StatusPending)
	}
	testutil.CreateTestRequest(t, db, client.ID, domain.ServiceLineDemo, domain.StatusContacted)

	page, err := svc.List(ctx, repository.RequestFilters{Status: statusPtr(domain.StatusPending)}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Data, 2)

	_, err = svc.List(ctx, repository.RequestFilters{Status: statusPtr("nope")}, 1, 20)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
