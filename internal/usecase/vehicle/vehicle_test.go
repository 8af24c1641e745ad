package vehicle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/washerhq/carwash-api/internal/apperr"
	"github.com/washerhq/carwash-api/internal/audit"
	domain "github.com/washerhq/carwash-api/internal/domain/wash"
	infraRepo "github.com/washerhq/carwash-api/internal/infra/repository"
	"github.com/washerhq/carwash-api/internal/models"
)

func setupTestRepo(t *testing.T) (domain.Repository, *audit.Dispatcher) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Vehicle{},
		&models.Appointment{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return infraRepo.NewWashGormRepository(db), audit.NewDispatcher(audit.New(db))
}

func seedCustomer(t *testing.T, repo domain.Repository) *models.Customer {
	t.Helper()

	c := &models.Customer{Name: "Elena Diaz", Email: "elena@example.com", Phone: "3005550123"}
	require.NoError(t, repo.CreateCustomer(context.Background(), c))
	return c
}

func TestCreateVehicle(t *testing.T) {
	repo, dispatcher := setupTestRepo(t)
	ctx := context.Background()

	c := seedCustomer(t, repo)

	created, err := NewCreate(repo, dispatcher).Execute(ctx, CreateInput{
		CustomerID:   c.ID,
		Model:        "Corolla",
		LicensePlate: "GHJ456",
		Type:         "sedan",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, c.ID, created.CustomerID)
}

func TestCreateVehicleMissingCustomer(t *testing.T) {
	repo, dispatcher := setupTestRepo(t)

	_, err := NewCreate(repo, dispatcher).Execute(context.Background(), CreateInput{
		CustomerID:   9999,
		Model:        "Corolla",
		LicensePlate: "GHJ456",
		Type:         "sedan",
	})

	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Customer", nf.Entity)
	assert.Equal(t, uint(9999), nf.ID)
}

func TestCreateVehiclePlateValidation(t *testing.T) {
	repo, dispatcher := setupTestRepo(t)
	ctx := context.Background()

	c := seedCustomer(t, repo)
	createUC := NewCreate(repo, dispatcher)

	_, err := createUC.Execute(ctx, CreateInput{
		CustomerID:   c.ID,
		Model:        "Corolla",
		LicensePlate: "ghj456",
		Type:         "sedan",
	})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "license_plate", ve.Field)

	_, err = createUC.Execute(ctx, CreateInput{
		CustomerID:   c.ID,
		Model:        "Corolla",
		LicensePlate: "GHJ456AAAAZ",
		Type:         "sedan",
	})
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateVehicleRelink(t *testing.T) {
	repo, dispatcher := setupTestRepo(t)
	ctx := context.Background()

	c1 := seedCustomer(t, repo)
	c2 := &models.Customer{Name: "Marco Polo", Email: "marco@example.com", Phone: "3005550199"}
	require.NoError(t, repo.CreateCustomer(ctx, c2))

	created, err := NewCreate(repo, dispatcher).Execute(ctx, CreateInput{
		CustomerID:   c1.ID,
		Model:        "Corolla",
		LicensePlate: "GHJ456",
		Type:         "sedan",
	})
	require.NoError(t, err)

	updateUC := NewUpdate(repo, dispatcher)

	missing := uint(7777)
	_, err = updateUC.Execute(ctx, created.ID, UpdateInput{CustomerID: &missing})
	assert.True(t, apperr.IsNotFound(err))

	updated, err := updateUC.Execute(ctx, created.ID, UpdateInput{CustomerID: &c2.ID})
	require.NoError(t, err)
	assert.Equal(t, c2.ID, updated.CustomerID)
	assert.Equal(t, "Corolla", updated.Model)
	assert.Equal(t, "GHJ456", updated.LicensePlate)
}

func TestDeleteVehicleCascades(t *testing.T) {
	repo, dispatcher := setupTestRepo(t)
	ctx := context.Background()

	c := seedCustomer(t, repo)

	created, err := NewCreate(repo, dispatcher).Execute(ctx, CreateInput{
		CustomerID:   c.ID,
		Model:        "Corolla",
		LicensePlate: "GHJ456",
		Type:         "sedan",
	})
	require.NoError(t, err)

	ap := &models.Appointment{VehicleID: created.ID, Status: "completed", ServiceType: "full wash"}
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	p := &models.Payment{AppointmentID: ap.ID, Amount: 40, Date: time.Now().Add(-time.Hour)}
	require.NoError(t, repo.CreatePayment(ctx, p))

	require.NoError(t, NewDelete(repo, dispatcher).Execute(ctx, "admin", created.ID))

	_, err = repo.GetVehicle(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))
	_, err = repo.GetAppointment(ctx, ap.ID)
	assert.True(t, apperr.IsNotFound(err))
	_, err = repo.GetPayment(ctx, p.ID)
	assert.True(t, apperr.IsNotFound(err))

	// the owning customer survives
	_, err = repo.GetCustomer(ctx, c.ID)
	assert.NoError(t, err)
}
