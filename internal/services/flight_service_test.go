package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skyward/reservations/internal/apperrors"
	"skyward/reservations/internal/db/repositories"
	"skyward/reservations/internal/models/dtos"
	gormModels "skyward/reservations/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&gormModels.Flight{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func newTestService(t *testing.T) *FlightService {
	return NewFlightService(repositories.NewFlightRepository(setupTestDB(t), nil))
}

func flightInput(departure time.Time) *dtos.FlightDTO {
	return &dtos.FlightDTO{
		Airline:           "Lufthansa",
		Type:              "Boeing 737",
		Price:             299.99,
		DepartureCity:     "Berlin",
		ArrivalCity:       "Munich",
		DepartureDateTime: dtos.NewLocalDateTime(departure),
		ArrivalDateTime:   dtos.NewLocalDateTime(departure.Add(2 * time.Hour)),
		Email:             "admin@airline.com",
	}
}

func futureDeparture() time.Time {
	return time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
}

func TestFlightService_Create_DefaultsStatusToActive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, flightInput(futureDeparture()))
	require.NoError(t, err)

	assert.Equal(t, "ACTIVE", created.Status)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 299.99, created.Price)
}

func TestFlightService_Create_KeepsSuppliedStatus(t *testing.T) {
	svc := newTestService(t)

	input := flightInput(futureDeparture())
	input.Status = "delayed"

	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "DELAYED", created.Status)
}

func TestFlightService_Create_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService(t)

	input := flightInput(futureDeparture())
	input.Status = "BOARDING"

	_, err := svc.Create(context.Background(), input)

	var validation *apperrors.ValidationError
	require.True(t, errors.As(err, &validation), "expected ValidationError, got %v", err)
	assert.Equal(t, "Invalid flight status: BOARDING", validation.Message)
}

func TestFlightService_Create_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	input := flightInput(futureDeparture())
	created, err := svc.Create(ctx, input)
	require.NoError(t, err)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, input.Airline, fetched.Airline)
	assert.Equal(t, input.Type, fetched.Type)
	assert.Equal(t, input.Price, fetched.Price)
	assert.Equal(t, input.DepartureCity, fetched.DepartureCity)
	assert.Equal(t, input.ArrivalCity, fetched.ArrivalCity)
	assert.Equal(t, input.DepartureDateTime.String(), fetched.DepartureDateTime.String())
	assert.Equal(t, input.ArrivalDateTime.String(), fetched.ArrivalDateTime.String())
	assert.Equal(t, input.Email, fetched.Email)
	assert.NotZero(t, fetched.ID)
	assert.False(t, fetched.CreatedAt.IsZero())
	assert.False(t, fetched.UpdatedAt.IsZero())
}

func TestFlightService_GetByID_AbsentFails(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), 54321)

	var notFound *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFound), "expected NotFoundError, got %v", err)
	assert.Equal(t, uint(54321), notFound.ID)
}

func TestFlightService_Update_ReplacesAllFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, flightInput(futureDeparture()))
	require.NoError(t, err)

	update := flightInput(futureDeparture())
	update.Airline = "Lufthansa Premium"
	update.Price = 399.99
	update.Status = "ACTIVE"

	updated, err := svc.Update(ctx, created.ID, update)
	require.NoError(t, err)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lufthansa Premium", fetched.Airline)
	assert.Equal(t, 399.99, fetched.Price)
	assert.Equal(t, updated.Airline, fetched.Airline)
}

func TestFlightService_Update_AbsentFails(t *testing.T) {
	svc := newTestService(t)

	update := flightInput(futureDeparture())
	update.Status = "ACTIVE"

	_, err := svc.Update(context.Background(), 98765, update)

	var notFound *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFound), "expected NotFoundError, got %v", err)
}

func TestFlightService_Update_InvalidStatusFailsBeforeStore(t *testing.T) {
	// Repository over an unmigrated database: any store access would
	// surface a StoreUnavailableError, so a ValidationError proves the
	// status check fired first.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	svc := NewFlightService(repositories.NewFlightRepository(db, nil))

	update := flightInput(futureDeparture())
	update.Status = "GROUNDED"

	_, err = svc.Update(context.Background(), 1, update)

	var validation *apperrors.ValidationError
	require.True(t, errors.As(err, &validation), "expected ValidationError, got %v", err)
	assert.Equal(t, "Invalid flight status: GROUNDED", validation.Message)
}

func TestFlightService_Update_ConcurrentWritersConflict(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, flightInput(futureDeparture()))
	require.NoError(t, err)

	// Both updates start from the same stored version. With the service
	// re-reading the current version, drive the repository directly for
	// the second writer to simulate the stale read.
	repo := svc.repo
	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	winner := *stored
	winner.Airline = "Fast Writer"
	_, err = repo.Update(ctx, &winner)
	require.NoError(t, err)

	loser := *stored
	loser.Airline = "Slow Writer"
	_, err = repo.Update(ctx, &loser)

	var conflict *apperrors.ConflictError
	require.True(t, errors.As(err, &conflict), "expected ConflictError, got %v", err)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fast Writer", fetched.Airline)
}

func TestFlightService_Delete_RepeatFails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, flightInput(futureDeparture()))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	var notFound *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFound), "expected NotFoundError on repeat delete, got %v", err)
}

func TestFlightService_Search_NoPredicatesReturnsAll(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, flightInput(futureDeparture().Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	flights, err := svc.Search(ctx, "", "", "")
	require.NoError(t, err)
	assert.Len(t, flights, 3)
}

func TestFlightService_Search_CaseInsensitiveCity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, flightInput(futureDeparture()))
	require.NoError(t, err)

	flights, err := svc.Search(ctx, "berlin", "", "")
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "Berlin", flights[0].DepartureCity)

	flights, err = svc.Search(ctx, "Berlin", "", "")
	require.NoError(t, err)
	assert.Len(t, flights, 1)
}

func TestFlightService_Search_InvalidStatusFailsBeforeStore(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	svc := NewFlightService(repositories.NewFlightRepository(db, nil))

	_, err = svc.Search(context.Background(), "", "", "TAXIING")

	var validation *apperrors.ValidationError
	require.True(t, errors.As(err, &validation), "expected ValidationError, got %v", err)
	assert.Equal(t, "Invalid flight status: TAXIING", validation.Message)
}

func TestFlightService_Search_LowercaseStatusParses(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	input := flightInput(futureDeparture())
	input.Status = "CANCELLED"
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	flights, err := svc.Search(ctx, "", "", "cancelled")
	require.NoError(t, err)
	assert.Len(t, flights, 1)
}

func TestFlightService_ListByStatus_InvalidStatusFails(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ListByStatus(context.Background(), "HOLDING")

	var validation *apperrors.ValidationError
	require.True(t, errors.As(err, &validation), "expected ValidationError, got %v", err)
	assert.Equal(t, "Invalid flight status: HOLDING", validation.Message)
}

func TestFlightService_ListByDepartureCity_ExactMatch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, flightInput(futureDeparture()))
	require.NoError(t, err)

	flights, err := svc.ListByDepartureCity(ctx, "Berlin")
	require.NoError(t, err)
	assert.Len(t, flights, 1)

	// Single-field city finders are exact, unlike search.
	flights, err = svc.ListByDepartureCity(ctx, "berl")
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestFlightService_ListDepartingAfter_InclusiveBound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	departure := futureDeparture()
	_, err := svc.Create(ctx, flightInput(departure))
	require.NoError(t, err)

	flights, err := svc.ListDepartingAfter(ctx, departure)
	require.NoError(t, err)
	assert.Len(t, flights, 1)

	flights, err = svc.ListDepartingAfter(ctx, departure.Add(time.Second))
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestFlightService_RouteExists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, flightInput(futureDeparture()))
	require.NoError(t, err)

	exists, err := svc.RouteExists(ctx, "Berlin", "Munich")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.RouteExists(ctx, "Berlin", "Tokyo")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFlightService_Update_IncrementsVersionOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, flightInput(futureDeparture()))
	require.NoError(t, err)

	stored, err := svc.repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), stored.Version)

	update := flightInput(futureDeparture())
	update.Status = "ON_TIME"
	_, err = svc.Update(ctx, created.ID, update)
	require.NoError(t, err)

	stored, err = svc.repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)
	assert.Equal(t, "ON_TIME", stored.Status.String())
}
