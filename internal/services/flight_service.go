package services

import (
	"context"
	"time"

	"skyward/reservations/internal/apperrors"
	"skyward/reservations/internal/constants"
	"skyward/reservations/internal/db/repositories"
	"skyward/reservations/internal/logging"
	"skyward/reservations/internal/models/dtos"
)

// FlightService enforces domain rules on top of the flight repository. It is
// the only component handlers talk to.
type FlightService struct {
	repo *repositories.FlightRepository
}

func NewFlightService(repo *repositories.FlightRepository) *FlightService {
	return &FlightService{repo: repo}
}

// ListAll returns every flight.
func (svc *FlightService) ListAll(ctx context.Context) ([]dtos.FlightDTO, error) {
	flights, err := svc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dtos.FromEntities(flights), nil
}

// GetByID returns the flight at id or a NotFoundError.
func (svc *FlightService) GetByID(ctx context.Context, id uint) (*dtos.FlightDTO, error) {
	flight, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, &apperrors.NotFoundError{ID: id}
	}
	dto := dtos.FromEntity(flight)
	return &dto, nil
}

// Create persists a new flight. Status defaults to ACTIVE when the caller
// left it empty; id, version and timestamps are store-assigned regardless of
// what the payload carried.
func (svc *FlightService) Create(ctx context.Context, input *dtos.FlightDTO) (*dtos.FlightDTO, error) {
	status := constants.StatusActive
	if input.Status != "" {
		parsed, err := constants.ParseFlightStatus(input.Status)
		if err != nil {
			return nil, &apperrors.ValidationError{Message: "Invalid flight status: " + input.Status}
		}
		status = parsed
	}

	logging.Info("Creating new flight",
		"airline", input.Airline,
		"departure_city", input.DepartureCity,
		"arrival_city", input.ArrivalCity,
	)

	flight := input.ToEntity()
	flight.Status = status

	created, err := svc.repo.Create(ctx, flight)
	if err != nil {
		return nil, err
	}

	dto := dtos.FromEntity(created)
	return &dto, nil
}

// Update replaces every mutable field of the flight at id with the payload
// (PUT semantics: omitted fields are not preserved). The status string must
// parse before the store is touched; the repository's version check may still
// reject the write with a ConflictError under concurrent modification.
func (svc *FlightService) Update(ctx context.Context, id uint, input *dtos.FlightDTO) (*dtos.FlightDTO, error) {
	status, err := constants.ParseFlightStatus(input.Status)
	if err != nil {
		return nil, &apperrors.ValidationError{Message: "Invalid flight status: " + input.Status}
	}

	existing, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &apperrors.NotFoundError{ID: id}
	}

	logging.Info("Updating flight", "flight_id", id, "version", existing.Version)

	flight := input.ToEntity()
	flight.ID = id
	flight.Status = status
	flight.Version = existing.Version

	updated, err := svc.repo.Update(ctx, flight)
	if err != nil {
		return nil, err
	}

	dto := dtos.FromEntity(updated)
	return &dto, nil
}

// Delete removes the flight at id. A second delete of the same id fails with
// NotFoundError, never a silent no-op.
func (svc *FlightService) Delete(ctx context.Context, id uint) error {
	existing, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &apperrors.NotFoundError{ID: id}
	}

	logging.Info("Deleting flight", "flight_id", id)
	return svc.repo.DeleteByID(ctx, id)
}

// Search runs the flexible multi-predicate query. A non-empty status text is
// uppercased and parsed first; a bad value fails before the store is reached.
func (svc *FlightService) Search(ctx context.Context, departureCity, arrivalCity, statusText string) ([]dtos.FlightDTO, error) {
	var status *constants.FlightStatus
	if statusText != "" {
		parsed, err := constants.ParseFlightStatus(statusText)
		if err != nil {
			logging.Warn("Invalid flight status in search", "status", statusText)
			return nil, &apperrors.ValidationError{Message: "Invalid flight status: " + statusText}
		}
		status = &parsed
	}

	flights, err := svc.repo.Search(ctx, departureCity, arrivalCity, status)
	if err != nil {
		return nil, err
	}
	return dtos.FromEntities(flights), nil
}

// ListByStatus returns flights with the given status, with the same status
// parsing contract as Search.
func (svc *FlightService) ListByStatus(ctx context.Context, statusText string) ([]dtos.FlightDTO, error) {
	status, err := constants.ParseFlightStatus(statusText)
	if err != nil {
		logging.Warn("Invalid flight status", "status", statusText)
		return nil, &apperrors.ValidationError{Message: "Invalid flight status: " + statusText}
	}

	flights, err := svc.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return dtos.FromEntities(flights), nil
}

// ListByDepartureCity returns flights departing from the city (exact match).
func (svc *FlightService) ListByDepartureCity(ctx context.Context, city string) ([]dtos.FlightDTO, error) {
	flights, err := svc.repo.FindByDepartureCity(ctx, city)
	if err != nil {
		return nil, err
	}
	return dtos.FromEntities(flights), nil
}

// ListByArrivalCity returns flights arriving at the city (exact match).
func (svc *FlightService) ListByArrivalCity(ctx context.Context, city string) ([]dtos.FlightDTO, error) {
	flights, err := svc.repo.FindByArrivalCity(ctx, city)
	if err != nil {
		return nil, err
	}
	return dtos.FromEntities(flights), nil
}

// ListByAirline returns flights whose airline name contains the fragment.
func (svc *FlightService) ListByAirline(ctx context.Context, airline string) ([]dtos.FlightDTO, error) {
	flights, err := svc.repo.FindByAirlineContaining(ctx, airline)
	if err != nil {
		return nil, err
	}
	return dtos.FromEntities(flights), nil
}

// ListDepartingAfter returns flights departing at or after the instant,
// soonest first.
func (svc *FlightService) ListDepartingAfter(ctx context.Context, departure time.Time) ([]dtos.FlightDTO, error) {
	flights, err := svc.repo.FindDepartingAfter(ctx, departure)
	if err != nil {
		return nil, err
	}
	return dtos.FromEntities(flights), nil
}

// RouteExists reports whether any flight covers the exact city pair.
func (svc *FlightService) RouteExists(ctx context.Context, departureCity, arrivalCity string) (bool, error) {
	return svc.repo.ExistsByRoute(ctx, departureCity, arrivalCity)
}
