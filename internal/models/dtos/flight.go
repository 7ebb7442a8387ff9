package dtos

import (
	"skyward/reservations/internal/constants"
	gormModels "skyward/reservations/internal/models/gorm"
)

// FlightDTO is the external representation of a flight record. The id,
// created_at, updated_at fields are server-assigned and ignored on input.
type FlightDTO struct {
	ID                uint          `json:"id,omitempty"`
	Airline           string        `json:"airline" validate:"required,min=2,max=100"`
	Type              string        `json:"type" validate:"required,min=1,max=50"`
	Price             float64       `json:"price" validate:"required,gte=0.01,lte=999999.99"`
	DepartureCity     string        `json:"departure_city" validate:"required,min=2,max=100"`
	ArrivalCity       string        `json:"arrival_city" validate:"required,min=2,max=100"`
	DepartureDateTime LocalDateTime `json:"departure_datetime" validate:"required,future"`
	ArrivalDateTime   LocalDateTime `json:"arrival_datetime" validate:"required,future"`
	Status            string        `json:"status" validate:"omitempty,flightstatus"`
	ImageURL          string        `json:"image_url,omitempty" validate:"omitempty,url"`
	Email             string        `json:"email" validate:"required,email"`
	CreatedAt         LocalDateTime `json:"created_at"`
	UpdatedAt         LocalDateTime `json:"updated_at"`
}

// ToEntity maps the client-supplied fields onto a fresh entity. Identifier,
// version and timestamps stay zero: those are owned by the store.
func (d *FlightDTO) ToEntity() *gormModels.Flight {
	flight := &gormModels.Flight{
		Airline:           d.Airline,
		Type:              d.Type,
		Price:             d.Price,
		DepartureCity:     d.DepartureCity,
		ArrivalCity:       d.ArrivalCity,
		DepartureDateTime: d.DepartureDateTime.Time(),
		ArrivalDateTime:   d.ArrivalDateTime.Time(),
		Status:            constants.FlightStatus(d.Status),
		Email:             d.Email,
	}
	if d.ImageURL != "" {
		img := d.ImageURL
		flight.ImageURL = &img
	}
	return flight
}

// FromEntity converts a stored flight into its external representation.
func FromEntity(flight *gormModels.Flight) FlightDTO {
	dto := FlightDTO{
		ID:                flight.ID,
		Airline:           flight.Airline,
		Type:              flight.Type,
		Price:             flight.Price,
		DepartureCity:     flight.DepartureCity,
		ArrivalCity:       flight.ArrivalCity,
		DepartureDateTime: NewLocalDateTime(flight.DepartureDateTime),
		ArrivalDateTime:   NewLocalDateTime(flight.ArrivalDateTime),
		Status:            flight.Status.String(),
		Email:             flight.Email,
		CreatedAt:         NewLocalDateTime(flight.CreatedAt),
		UpdatedAt:         NewLocalDateTime(flight.UpdatedAt),
	}
	if flight.ImageURL != nil {
		dto.ImageURL = *flight.ImageURL
	}
	return dto
}

// FromEntities maps a result set in storage order.
func FromEntities(flights []gormModels.Flight) []FlightDTO {
	out := make([]FlightDTO, 0, len(flights))
	for i := range flights {
		out = append(out, FromEntity(&flights[i]))
	}
	return out
}
