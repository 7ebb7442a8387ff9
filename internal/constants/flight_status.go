package constants

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// FlightStatus mirrors the 'status' column on the flights table
type FlightStatus string

const (
	StatusActive    FlightStatus = "ACTIVE"
	StatusInactive  FlightStatus = "INACTIVE"
	StatusCancelled FlightStatus = "CANCELLED"
	StatusDelayed   FlightStatus = "DELAYED"
	StatusOnTime    FlightStatus = "ON_TIME"
)

// Stringer ­– convenient for fmt / logs
func (s FlightStatus) String() string { return string(s) }

// FlightStatuses lists every valid status value.
func FlightStatuses() []FlightStatus {
	return []FlightStatus{StatusActive, StatusInactive, StatusCancelled, StatusDelayed, StatusOnTime}
}

// ParseFlightStatus resolves a raw status string to its canonical enum value.
// Matching is case-insensitive; anything outside the enum is an error.
func ParseFlightStatus(raw string) (FlightStatus, error) {
	candidate := FlightStatus(strings.ToUpper(strings.TrimSpace(raw)))
	for _, s := range FlightStatuses() {
		if candidate == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown flight status %q", raw)
}

/* ---------- DB adapters so GORM (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (s *FlightStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = FlightStatus(v)
	case []byte:
		*s = FlightStatus(v)
	default:
		return fmt.Errorf("FlightStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s FlightStatus) Value() (driver.Value, error) { return string(s), nil }
