package api

import (
	"skyward/reservations/internal/db"
	"skyward/reservations/internal/db/repositories"
	"skyward/reservations/internal/metrics"
	"skyward/reservations/internal/services"
)

type Dependencies struct {
	FlightRepo *repositories.FlightRepository
	Flights    *services.FlightService
	Metrics    *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) *Dependencies {
	flightRepo := repositories.NewFlightRepository(db.PgDB, metricsReg)

	return &Dependencies{
		FlightRepo: flightRepo,
		Flights:    services.NewFlightService(flightRepo),
		Metrics:    metricsReg,
	}
}
