package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"skyward/reservations/internal/apperrors"
	"skyward/reservations/internal/constants"
	"skyward/reservations/internal/metrics"
	gormModels "skyward/reservations/internal/models/gorm"
)

// FlightRepository handles flights table operations using GORM
type FlightRepository struct {
	db      *gorm.DB
	metrics *metrics.MetricsRegistry
}

// NewFlightRepository creates a new GORM-based flight repository.
// The metrics registry may be nil (tests).
func NewFlightRepository(db *gorm.DB, metricsReg *metrics.MetricsRegistry) *FlightRepository {
	return &FlightRepository{db: db, metrics: metricsReg}
}

// FindAll retrieves every flight in storage order.
func (r *FlightRepository) FindAll(ctx context.Context) ([]gormModels.Flight, error) {
	defer r.observe("find_all", time.Now())

	var flights []gormModels.Flight
	if err := r.db.WithContext(ctx).Find(&flights).Error; err != nil {
		return nil, r.translate("fetch flights", err)
	}
	return flights, nil
}

// FindByID retrieves a flight by its ID. Returns nil, nil when absent.
func (r *FlightRepository) FindByID(ctx context.Context, id uint) (*gormModels.Flight, error) {
	defer r.observe("find_by_id", time.Now())

	var flight gormModels.Flight
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&flight).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.translate("fetch flight", err)
	}
	return &flight, nil
}

// Create inserts a new flight. The store assigns id, version and both
// timestamps; whatever the caller put there is overwritten.
func (r *FlightRepository) Create(ctx context.Context, flight *gormModels.Flight) (*gormModels.Flight, error) {
	defer r.observe("create", time.Now())

	flight.ID = 0
	flight.Version = 0
	flight.CreatedAt = time.Time{}
	flight.UpdatedAt = time.Time{}

	if err := r.db.WithContext(ctx).Create(flight).Error; err != nil {
		return nil, r.translate("create flight", err)
	}
	return flight, nil
}

// Update replaces every mutable column of the flight, guarded by an
// optimistic version check: the row is only touched when the stored version
// still equals flight.Version. Zero rows affected means a concurrent writer
// got there first and the caller sees a ConflictError.
func (r *FlightRepository) Update(ctx context.Context, flight *gormModels.Flight) (*gormModels.Flight, error) {
	defer r.observe("update", time.Now())

	updates := map[string]interface{}{
		"airline":  flight.Airline,
		"type":     flight.Type,
		"price":    flight.Price,
		"dep_city": flight.DepartureCity,
		"arr_city": flight.ArrivalCity,
		"dep_dt":   flight.DepartureDateTime,
		"arr_dt":   flight.ArrivalDateTime,
		"status":   flight.Status,
		"img":      flight.ImageURL,
		"email":    flight.Email,
		"version":  flight.Version + 1,
	}

	result := r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Where("id = ? AND version = ?", flight.ID, flight.Version).
		Updates(updates)

	if result.Error != nil {
		return nil, r.translate("update flight", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, &apperrors.ConflictError{ID: flight.ID, Version: flight.Version}
	}

	return r.FindByID(ctx, flight.ID)
}

// DeleteByID removes a flight. Existence is the caller's concern; deleting
// an absent id is reported so the service can surface not-found.
func (r *FlightRepository) DeleteByID(ctx context.Context, id uint) error {
	defer r.observe("delete", time.Now())

	result := r.db.WithContext(ctx).Delete(&gormModels.Flight{}, id)
	if result.Error != nil {
		return r.translate("delete flight", result.Error)
	}
	if result.RowsAffected == 0 {
		return &apperrors.NotFoundError{ID: id}
	}
	return nil
}

// FindByDepartureCity retrieves flights departing from the given city (exact match).
func (r *FlightRepository) FindByDepartureCity(ctx context.Context, city string) ([]gormModels.Flight, error) {
	defer r.observe("find_by_departure_city", time.Now())
	return r.findWhere(ctx, "dep_city = ?", city)
}

// FindByArrivalCity retrieves flights arriving at the given city (exact match).
func (r *FlightRepository) FindByArrivalCity(ctx context.Context, city string) ([]gormModels.Flight, error) {
	defer r.observe("find_by_arrival_city", time.Now())
	return r.findWhere(ctx, "arr_city = ?", city)
}

// FindByStatus retrieves flights with the given status.
func (r *FlightRepository) FindByStatus(ctx context.Context, status constants.FlightStatus) ([]gormModels.Flight, error) {
	defer r.observe("find_by_status", time.Now())
	return r.findWhere(ctx, "status = ?", status)
}

// FindByAirlineContaining retrieves flights whose airline name contains the
// given fragment, case-insensitively.
func (r *FlightRepository) FindByAirlineContaining(ctx context.Context, airline string) ([]gormModels.Flight, error) {
	defer r.observe("find_by_airline", time.Now())
	return r.findWhere(ctx, "LOWER(airline) LIKE ?", containsPattern(airline))
}

// FindDepartingAfter retrieves flights with a departure at or after the given
// instant, soonest first.
func (r *FlightRepository) FindDepartingAfter(ctx context.Context, departure time.Time) ([]gormModels.Flight, error) {
	defer r.observe("find_departing_after", time.Now())

	var flights []gormModels.Flight
	err := r.db.WithContext(ctx).
		Where("dep_dt >= ?", departure).
		Order("dep_dt ASC").
		Find(&flights).Error
	if err != nil {
		return nil, r.translate("fetch flights", err)
	}
	return flights, nil
}

// Search retrieves flights matching every supplied predicate. City predicates
// are case-insensitive substring matches, status is exact; empty city or nil
// status means no constraint. Results come back soonest departure first.
func (r *FlightRepository) Search(ctx context.Context, departureCity, arrivalCity string, status *constants.FlightStatus) ([]gormModels.Flight, error) {
	defer r.observe("search", time.Now())

	query := r.db.WithContext(ctx).Model(&gormModels.Flight{})
	if departureCity != "" {
		query = query.Where("LOWER(dep_city) LIKE ?", containsPattern(departureCity))
	}
	if arrivalCity != "" {
		query = query.Where("LOWER(arr_city) LIKE ?", containsPattern(arrivalCity))
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var flights []gormModels.Flight
	if err := query.Order("dep_dt ASC").Find(&flights).Error; err != nil {
		return nil, r.translate("search flights", err)
	}
	return flights, nil
}

// ExistsByRoute reports whether any flight covers the exact city pair.
func (r *FlightRepository) ExistsByRoute(ctx context.Context, departureCity, arrivalCity string) (bool, error) {
	defer r.observe("exists_by_route", time.Now())

	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Where("dep_city = ? AND arr_city = ?", departureCity, arrivalCity).
		Count(&count).Error
	if err != nil {
		return false, r.translate("count flights", err)
	}
	return count > 0, nil
}

func (r *FlightRepository) findWhere(ctx context.Context, cond string, arg interface{}) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight
	if err := r.db.WithContext(ctx).Where(cond, arg).Find(&flights).Error; err != nil {
		return nil, r.translate("fetch flights", err)
	}
	return flights, nil
}

func containsPattern(fragment string) string {
	return "%" + strings.ToLower(fragment) + "%"
}

// translate maps GORM errors onto the store's failure taxonomy: constraint
// violations are the caller's input, everything else is the store's problem.
func (r *FlightRepository) translate(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return &apperrors.ValidationError{Message: fmt.Sprintf("failed to %s: %v", op, err)}
	default:
		return &apperrors.StoreUnavailableError{Err: fmt.Errorf("failed to %s: %w", op, err)}
	}
}

func (r *FlightRepository) observe(queryType string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueriesTotal.WithLabelValues(queryType).Inc()
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}
