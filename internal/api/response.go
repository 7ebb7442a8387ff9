package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"skyward/reservations/internal/apperrors"
	"skyward/reservations/internal/logging"
	"skyward/reservations/internal/models/dtos"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func respondWithError(w http.ResponseWriter, r *http.Request, statusCode int, message, errorLabel string, fieldErrors map[string]string) {
	body := dtos.NewErrorResponse(statusCode, message, errorLabel, r.URL.Path, fieldErrors)
	respondWithJSON(w, statusCode, body)
}

// respondWithServiceError maps the service error taxonomy onto HTTP statuses.
// Unclassified failures are logged in full and reported with a generic body.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *apperrors.NotFoundError
	var validation *apperrors.ValidationError
	var conflict *apperrors.ConflictError
	var unavailable *apperrors.StoreUnavailableError

	switch {
	case errors.As(err, &notFound):
		logging.Warn("Flight not found", "path", r.URL.Path, "error", err.Error())
		respondWithError(w, r, http.StatusNotFound, notFound.Error(), "Flight Not Found", nil)
	case errors.As(err, &validation):
		logging.Warn("Invalid argument", "path", r.URL.Path, "error", err.Error())
		respondWithError(w, r, http.StatusBadRequest, validation.Message, "Invalid Argument", validation.FieldErrors)
	case errors.As(err, &conflict):
		logging.Warn("Concurrent modification", "path", r.URL.Path, "error", err.Error())
		respondWithError(w, r, http.StatusConflict, conflict.Error(), "Conflict", nil)
	case errors.As(err, &unavailable):
		logging.Error("Flight store unavailable", "path", r.URL.Path, "error", err.Error())
		respondWithError(w, r, http.StatusInternalServerError, "An unexpected error occurred", "Store Unavailable", nil)
	default:
		logging.Error("Unexpected error", "path", r.URL.Path, "error", err.Error())
		respondWithError(w, r, http.StatusInternalServerError, "An unexpected error occurred", "Internal Server Error", nil)
	}
}
