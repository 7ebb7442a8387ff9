package dtos

import (
	"fmt"
	"strings"
	"time"
)

// LocalDateTimeLayout is the wire format for every timestamp the API
// accepts or returns: yyyy-MM-ddTHH:mm:ss, no zone, second precision.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime wraps time.Time to serialize without a timezone suffix.
type LocalDateTime time.Time

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime(t.Truncate(time.Second))
}

func (t LocalDateTime) Time() time.Time { return time.Time(t) }

func (t LocalDateTime) IsZero() bool { return time.Time(t).IsZero() }

func (t LocalDateTime) String() string {
	return time.Time(t).Format(LocalDateTimeLayout)
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(LocalDateTimeLayout) + `"`), nil
}

func (t *LocalDateTime) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(b), `"`)
	if raw == "" || raw == "null" {
		*t = LocalDateTime{}
		return nil
	}
	parsed, err := time.Parse(LocalDateTimeLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid datetime %q, expected %s: %w", raw, LocalDateTimeLayout, err)
	}
	*t = LocalDateTime(parsed)
	return nil
}
