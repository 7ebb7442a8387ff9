package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/reservations/internal/models/dtos"
	"skyward/reservations/internal/validation"
)

// ListFlights godoc
// @Summary      List all flights
// @Tags         Flights
// @Produce      json
// @Success      200 {array} dtos.FlightDTO
// @Router       /flights [get]
func (h *Handlers) ListFlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flights, err := h.deps.Flights.ListAll(r.Context())
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, flights)
	}
}

// GetFlight handles GET /flights/{id}
func (h *Handlers) GetFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseFlightID(w, r)
		if !ok {
			return
		}

		flight, err := h.deps.Flights.GetByID(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, flight)
	}
}

// CreateFlight godoc
// @Summary      Create a flight
// @Tags         Flights
// @Accept       json
// @Produce      json
// @Param        flight body dtos.FlightDTO true "Flight payload"
// @Success      201 {object} dtos.FlightDTO
// @Failure      400 {object} dtos.ErrorResponse
// @Router       /flights [post]
func (h *Handlers) CreateFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := decodeFlightPayload(w, r)
		if !ok {
			return
		}

		created, err := h.deps.Flights.Create(r.Context(), input)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		if m := h.deps.Metrics; m != nil {
			m.FlightsCreatedTotal.Inc()
		}
		respondWithJSON(w, http.StatusCreated, created)
	}
}

// UpdateFlight handles PUT /flights/{id}: a full-field replace.
func (h *Handlers) UpdateFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseFlightID(w, r)
		if !ok {
			return
		}

		input, ok := decodeFlightPayload(w, r)
		if !ok {
			return
		}

		updated, err := h.deps.Flights.Update(r.Context(), id, input)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		if m := h.deps.Metrics; m != nil {
			m.FlightsUpdatedTotal.Inc()
		}
		respondWithJSON(w, http.StatusOK, updated)
	}
}

// DeleteFlight handles DELETE /flights/{id}
func (h *Handlers) DeleteFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseFlightID(w, r)
		if !ok {
			return
		}

		if err := h.deps.Flights.Delete(r.Context(), id); err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		if m := h.deps.Metrics; m != nil {
			m.FlightsDeletedTotal.Inc()
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// SearchFlights godoc
// @Summary      Flexible flight search
// @Description  Filters by any combination of departure city, arrival city and status.
// @Tags         Flights
// @Produce      json
// @Param        departure_city query string false "Departure city fragment"
// @Param        arrival_city   query string false "Arrival city fragment"
// @Param        status         query string false "Flight status"
// @Success      200 {array}  dtos.FlightDTO
// @Failure      400 {object} dtos.ErrorResponse
// @Router       /flights/search [get]
func (h *Handlers) SearchFlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		departureCity := q.Get("departure_city")
		arrivalCity := q.Get("arrival_city")
		status := q.Get("status")

		flights, err := h.deps.Flights.Search(r.Context(), departureCity, arrivalCity, status)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		if m := h.deps.Metrics; m != nil {
			m.SearchQueriesTotal.WithLabelValues(searchPredicates(departureCity, arrivalCity, status)).Inc()
		}
		respondWithJSON(w, http.StatusOK, flights)
	}
}

// FlightsByDepartureCity handles GET /flights/departure-city/{city}
func (h *Handlers) FlightsByDepartureCity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flights, err := h.deps.Flights.ListByDepartureCity(r.Context(), chi.URLParam(r, "city"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, flights)
	}
}

// FlightsByArrivalCity handles GET /flights/arrival-city/{city}
func (h *Handlers) FlightsByArrivalCity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flights, err := h.deps.Flights.ListByArrivalCity(r.Context(), chi.URLParam(r, "city"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, flights)
	}
}

// FlightsByStatus handles GET /flights/status/{status}
func (h *Handlers) FlightsByStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flights, err := h.deps.Flights.ListByStatus(r.Context(), chi.URLParam(r, "status"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, flights)
	}
}

// FlightsByAirline handles GET /flights/airline/{name}
func (h *Handlers) FlightsByAirline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flights, err := h.deps.Flights.ListByAirline(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, flights)
	}
}

// FlightsDepartingAfter handles GET /flights/departing-after/{timestamp}
func (h *Handlers) FlightsDepartingAfter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "timestamp")
		departure, err := time.Parse(dtos.LocalDateTimeLayout, raw)
		if err != nil {
			respondWithError(w, r, http.StatusBadRequest,
				"Invalid datetime: "+raw+", expected "+dtos.LocalDateTimeLayout, "Invalid Argument", nil)
			return
		}

		flights, err := h.deps.Flights.ListDepartingAfter(r.Context(), departure)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, flights)
	}
}

// parseFlightID extracts the numeric id path parameter, answering 400 itself
// when the value is not a positive integer.
func parseFlightID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondWithError(w, r, http.StatusBadRequest, "Invalid flight ID: "+raw, "Invalid Argument", nil)
		return 0, false
	}
	return uint(id), true
}

// decodeFlightPayload decodes and validates a flight body, answering 400
// itself on malformed JSON or field validation failures.
func decodeFlightPayload(w http.ResponseWriter, r *http.Request) (*dtos.FlightDTO, bool) {
	var input dtos.FlightDTO
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, r, http.StatusBadRequest, "Malformed request body: "+err.Error(), "Invalid Input", nil)
		return nil, false
	}

	if fieldErrors := validation.ValidateFlight(&input); len(fieldErrors) > 0 {
		respondWithError(w, r, http.StatusBadRequest, "Validation failed", "Invalid Input", fieldErrors)
		return nil, false
	}
	return &input, true
}

func searchPredicates(departureCity, arrivalCity, status string) string {
	predicates := ""
	appendPredicate := func(name, value string) {
		if value == "" {
			return
		}
		if predicates != "" {
			predicates += ","
		}
		predicates += name
	}
	appendPredicate("departure_city", departureCity)
	appendPredicate("arrival_city", arrivalCity)
	appendPredicate("status", status)
	if predicates == "" {
		return "none"
	}
	return predicates
}
