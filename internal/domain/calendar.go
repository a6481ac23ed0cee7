package domain

import "time"

// Years the calendar can show.
const (
	MinCalendarYear = 1
	MaxCalendarYear = 9999
)

// BookingState is the state of the booking interaction.
type BookingState string

const (
	BookingStateBrowsing BookingState = "browsing"
	BookingStateBooking  BookingState = "booking"
)

// BookingView is the booking modal state: open with one selected event, or closed.
// swagger:model BookingView
type BookingView struct {
	State         BookingState `json:"state"`
	IsOpen        bool         `json:"is_open"`
	SelectedEvent *Event       `json:"selected_event"`
}

// CalendarSnapshot is a read-only copy of the calendar state.
// swagger:model CalendarSnapshot
type CalendarSnapshot struct {
	SelectedDate         Day                `json:"selected_date"`
	VisibleMonth         Day                `json:"visible_month"`
	EventsOnSelectedDate []Event            `json:"events_on_selected_date"`
	EventsByDay          map[string][]Event `json:"events_by_day"`
	Booking              BookingView        `json:"booking"`
}

// GridCell is one cell of the month view. Day is 0 for a leading blank.
type GridCell struct {
	Day       int  `json:"day"`
	Selected  bool `json:"selected,omitempty"`
	HasEvents bool `json:"has_events,omitempty"`
}

// MonthGrid is the month view layout for a locale.
// swagger:model MonthGrid
type MonthGrid struct {
	Year        int            `json:"year"`
	Month       time.Month     `json:"month"`
	Locale      string         `json:"locale"`
	WeekStart   time.Weekday   `json:"week_start"`
	Weekdays    []time.Weekday `json:"weekdays"`
	Leading     int            `json:"leading"`
	DaysInMonth int            `json:"days_in_month"`
	Cells       []GridCell     `json:"cells"`
}
