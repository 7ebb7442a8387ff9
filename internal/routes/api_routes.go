package routes

import (
	"github.com/go-chi/chi/v5"

	"skyward/reservations/internal/api"
)

// RegisterAPIRoutes registers all flight routes and handlers
// This keeps route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers) {
	r.Route("/flights", func(flights chi.Router) {
		flights.Get("/", handlers.ListFlights())
		flights.Post("/", handlers.CreateFlight())
		flights.Get("/search", handlers.SearchFlights())

		flights.Get("/departure-city/{city}", handlers.FlightsByDepartureCity())
		flights.Get("/arrival-city/{city}", handlers.FlightsByArrivalCity())
		flights.Get("/status/{status}", handlers.FlightsByStatus())
		flights.Get("/departing-after/{timestamp}", handlers.FlightsDepartingAfter())
		flights.Get("/airline/{name}", handlers.FlightsByAirline())

		flights.Get("/{id}", handlers.GetFlight())
		flights.Put("/{id}", handlers.UpdateFlight())
		flights.Delete("/{id}", handlers.DeleteFlight())
	})
}
