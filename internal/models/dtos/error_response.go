package dtos

import "time"

// ErrorResponse is the standard error body returned by every endpoint.
type ErrorResponse struct {
	Status      int               `json:"status"`
	Message     string            `json:"message"`
	Error       string            `json:"error"`
	Timestamp   LocalDateTime     `json:"timestamp"`
	Path        string            `json:"path"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// NewErrorResponse stamps the response with the current time.
func NewErrorResponse(status int, message, errorLabel, path string, fieldErrors map[string]string) ErrorResponse {
	return ErrorResponse{
		Status:      status,
		Message:     message,
		Error:       errorLabel,
		Timestamp:   NewLocalDateTime(time.Now()),
		Path:        path,
		FieldErrors: fieldErrors,
	}
}
