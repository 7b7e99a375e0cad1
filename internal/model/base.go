package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ── PostgreSQL DATE custom type ──

const dateLayout = "2006-01-02"

// DateOnly maps a PostgreSQL DATE column and serializes as YYYY-MM-DD.
// The wire format never carries a time-of-day or zone component.
type DateOnly struct {
	time.Time
}

// NewDateOnly truncates a timestamp to its calendar day.
func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDateOnly parses a YYYY-MM-DD string.
func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly{t}, nil
}

// Scan reads a DATE column value.
func (d *DateOnly) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = DateOnly{}
		return nil
	case time.Time:
		*d = NewDateOnly(v)
		return nil
	case []byte:
		parsed, err := ParseDateOnly(string(v))
		if err != nil {
			return fmt.Errorf("DateOnly.Scan: %w", err)
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDateOnly(v)
		if err != nil {
			return fmt.Errorf("DateOnly.Scan: %w", err)
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("DateOnly.Scan: unsupported type %T", src)
	}
}

// Value writes the date in ISO format.
func (d DateOnly) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}

// GormDataType tells GORM to create DATE columns for this type.
func (DateOnly) GormDataType() string { return "date" }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = DateOnly{}
		return nil
	}
	parsed, err := ParseDateOnly(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// String returns the ISO form.
func (d DateOnly) String() string { return d.Format(dateLayout) }

// AddDays returns the date shifted by n calendar days.
func (d DateOnly) AddDays(n int) DateOnly {
	return NewDateOnly(d.Time.AddDate(0, 0, n))
}

// DaysBetween returns the inclusive day span between two dates.
// DaysBetween(2024-03-05, 2024-03-07) == 3.
func DaysBetween(start, end DateOnly) int {
	return int(end.Time.Sub(start.Time).Hours()/24) + 1
}

// ── PostgreSQL TIME custom type ──

const timeLayout = "15:04:05"

// TimeOfDay maps a PostgreSQL TIME column and serializes as HH:MM:SS.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// NewTimeOfDay extracts the clock component of a timestamp.
func NewTimeOfDay(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// ParseTimeOfDay parses an HH:MM:SS string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	// TIME columns may come back with fractional seconds; drop them.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return TimeOfDay{}, err
	}
	return NewTimeOfDay(t), nil
}

// Scan reads a TIME column value. Drivers disagree on the Go type for
// TIME: pgx hands back time.Time, lib/pq a string.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		*t = NewTimeOfDay(v)
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return fmt.Errorf("TimeOfDay.Scan: %w", err)
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return fmt.Errorf("TimeOfDay.Scan: %w", err)
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("TimeOfDay.Scan: unsupported type %T", src)
	}
}

// Value writes the time in HH:MM:SS form.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// GormDataType tells GORM to create TIME columns for this type.
func (TimeOfDay) GormDataType() string { return "time" }

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = TimeOfDay{}
		return nil
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// String returns the HH:MM:SS form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Seconds returns the offset from midnight, for duration arithmetic.
func (t TimeOfDay) Seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}
