package services

import (
	"time"

	"wemetstudio/internal/domain"
	"wemetstudio/internal/i18n"
)

// BuildMonthGrid lays out a month for locale: leading blanks up to the weekday
// of the 1st, then one cell per day. Russian and Hebrew locales start the week
// on Monday, all others on Sunday. Out-of-range months are normalized the way
// time.Date does.
func BuildMonthGrid(year int, month time.Month, locale string) domain.MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	year, month = first.Year(), first.Month()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	weekStart := time.Sunday
	if i18n.WeekStartsMonday(locale) {
		weekStart = time.Monday
	}
	leading := (int(first.Weekday()) - int(weekStart) + 7) % 7

	weekdays := make([]time.Weekday, 7)
	for i := range weekdays {
		weekdays[i] = time.Weekday((int(weekStart) + i) % 7)
	}

	cells := make([]domain.GridCell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, domain.GridCell{})
	}
	for d := 1; d <= daysInMonth; d++ {
		cells = append(cells, domain.GridCell{Day: d})
	}

	return domain.MonthGrid{
		Year:        year,
		Month:       month,
		Locale:      locale,
		WeekStart:   weekStart,
		Weekdays:    weekdays,
		Leading:     leading,
		DaysInMonth: daysInMonth,
		Cells:       cells,
	}
}
