package domain

import (
	"fmt"
	"time"
)

// DayLayout is the wire format of a Day.
const DayLayout = "2006-01-02"

// Day is a date with day granularity: two instants are the same Day iff
// their year, month and day components match, time of day ignored.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the Day of t in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses a "2006-01-02" string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: date %q: %v", ErrInvalidInput, s, err)
	}
	return DayOf(t), nil
}

// String formats the day as "2006-01-02". It is also the key of the events-by-day index.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight of the day in loc.
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// MarshalText implements encoding.TextMarshaler so Day can be a JSON map key.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
