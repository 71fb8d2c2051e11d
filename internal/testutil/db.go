// Package testutil holds shared fixtures for package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/database"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// CreateTestClient inserts a client with the given email
func CreateTestClient(t *testing.T, db *gorm.DB, name, email string) *domain.Client {
	t.Helper()
	c := &domain.Client{Name: name, Email: email, Phone: "1122334455", Location: "CABA"}
	require.NoError(t, db.Create(c).Error)
	return c
}

// CreateTestRequest inserts a request for the client with the given line and status
func CreateTestRequest(t *testing.T, db *gorm.DB, clientID uuid.UUID, line domain.ServiceLine, status domain.RequestStatus) *domain.Request {
	t.Helper()
	r := &domain.Request{
		ClientID:     clientID,
		ServiceLine:  line,
		Status:       status,
		VehicleMake:  "Toyota",
		VehicleModel: "Corolla",
		VehicleYear:  2019,
		DamageType:   "Granizo",
		DamageZones:  []string{"Capot", "Techo"},
		Version:      1,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}
