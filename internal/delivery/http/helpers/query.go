package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"wemetstudio/internal/domain"
)

// MonthQuery is the month addressed by the year and month query parameters.
type MonthQuery struct {
	Year  int
	Month time.Month
	Set   bool
}

// ParseMonthQuery reads year and month (1-12) from the query string. When
// both are absent Set is false and the caller falls back to the visible month.
// One without the other, or out-of-range values, are errors.
func ParseMonthQuery(r *http.Request) (MonthQuery, error) {
	q := r.URL.Query()
	ys, ms := q.Get("year"), q.Get("month")
	if ys == "" && ms == "" {
		return MonthQuery{}, nil
	}
	if ys == "" || ms == "" {
		return MonthQuery{}, fmt.Errorf("%w: year and month must be given together", domain.ErrInvalidInput)
	}
	year, err := strconv.Atoi(ys)
	if err != nil || year < domain.MinCalendarYear || year > domain.MaxCalendarYear {
		return MonthQuery{}, fmt.Errorf("%w: year must be between %d and %d",
			domain.ErrInvalidInput, domain.MinCalendarYear, domain.MaxCalendarYear)
	}
	month, err := strconv.Atoi(ms)
	if err != nil || month < 1 || month > 12 {
		return MonthQuery{}, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrInvalidInput)
	}
	return MonthQuery{Year: year, Month: time.Month(month), Set: true}, nil
}

// ParseIntQuery reads an optional integer query parameter, returning def when absent.
func ParseIntQuery(r *http.Request, key string, def int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
	}
	return v, nil
}
