package services

import (
	"fmt"
	"sync"
	"time"

	"wemetstudio/internal/domain"
)

// DefaultSelectedDate is the date the calendar opens on.
var DefaultSelectedDate = domain.Day{Year: 2025, Month: time.October, Day: 6}

// CalendarStore owns the selected date, the visible month, the booking state
// and the derived events-by-day index of one session. Events are read from
// the event source; the index is rebuilt whenever the source version changes.
type CalendarStore struct {
	mu       sync.Mutex
	events   domain.EventSource
	selected domain.Day
	visible  domain.Day

	state           domain.BookingState
	selectedEventID int

	byDay        map[domain.Day][]domain.Event
	byDayVersion uint64
	byDayBuilt   bool
}

// NewCalendarStore returns a store in the Browsing state with initial selected.
func NewCalendarStore(events domain.EventSource, initial domain.Day) *CalendarStore {
	return &CalendarStore{
		events:   events,
		selected: initial,
		visible:  domain.Day{Year: initial.Year, Month: initial.Month, Day: 1},
		state:    domain.BookingStateBrowsing,
	}
}

// SelectDate replaces the selected date. Only the day part of date is kept.
func (c *CalendarStore) SelectDate(date time.Time) {
	c.SelectDay(domain.DayOf(date))
}

// SelectDay replaces the selected date.
func (c *CalendarStore) SelectDay(day domain.Day) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = day
}

// SelectedDate returns the selected date.
func (c *CalendarStore) SelectedDate() domain.Day {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// EventsOnSelectedDate returns the events on the selected date in catalog order.
func (c *CalendarStore) EventsOnSelectedDate() []domain.Event {
	c.mu.Lock()
	day := c.selected
	c.mu.Unlock()
	return c.EventsOn(day)
}

// EventsOn returns the events on day in catalog order.
func (c *CalendarStore) EventsOn(day domain.Day) []domain.Event {
	events, _ := c.events.Events()
	out := []domain.Event{}
	for _, e := range events {
		if e.Day() == day {
			out = append(out, e)
		}
	}
	return out
}

// EventsByDay returns the events grouped by day. The returned map is a copy.
func (c *CalendarStore) EventsByDay() map[domain.Day][]domain.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	index := c.index()
	out := make(map[domain.Day][]domain.Event, len(index))
	for day, events := range index {
		out[day] = append([]domain.Event(nil), events...)
	}
	return out
}

// HasEvents reports whether any event falls on day.
func (c *CalendarStore) HasEvents(day domain.Day) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index()[day]) > 0
}

// OpenBooking moves to the Booking state with event selected. Opening while
// already booking switches the selected event.
func (c *CalendarStore) OpenBooking(event domain.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = domain.BookingStateBooking
	c.selectedEventID = event.ID
}

// CloseBooking returns to Browsing and forgets the selected event.
func (c *CalendarStore) CloseBooking() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = domain.BookingStateBrowsing
	c.selectedEventID = 0
}

// SelectedEvent returns the event being booked.
func (c *CalendarStore) SelectedEvent() (domain.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedEvent()
}

// Booking returns the booking modal state.
func (c *CalendarStore) Booking() domain.BookingView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bookingView()
}

// PrepareBooking validates form against the event being booked. It leaves the
// state untouched; the caller closes the booking once the request is delivered.
func (c *CalendarStore) PrepareBooking(form domain.BookingForm) (domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	event, ok := c.selectedEvent()
	if !ok {
		return domain.Event{}, domain.ErrNoActiveBooking
	}
	if errs := form.Validate(event); len(errs) > 0 {
		return domain.Event{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, errs)
	}
	return event, nil
}

const (
	firstMonthIndex = domain.MinCalendarYear * 12
	lastMonthIndex  = domain.MaxCalendarYear*12 + 11
)

// ShiftMonth moves the visible month by offset months and returns its first
// day. The result stays within MinCalendarYear..MaxCalendarYear.
func (c *CalendarStore) ShiftMonth(offset int) domain.Day {
	c.mu.Lock()
	defer c.mu.Unlock()
	span := lastMonthIndex - firstMonthIndex
	offset = max(-span, min(offset, span))
	idx := c.visible.Year*12 + int(c.visible.Month) - 1 + offset
	idx = max(firstMonthIndex, min(idx, lastMonthIndex))
	c.visible = domain.Day{Year: idx / 12, Month: time.Month(idx%12 + 1), Day: 1}
	return c.visible
}

// VisibleMonth returns the first day of the visible month.
func (c *CalendarStore) VisibleMonth() domain.Day {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// MonthGrid returns the grid of the visible month with selection and event marks.
func (c *CalendarStore) MonthGrid(locale string) domain.MonthGrid {
	c.mu.Lock()
	visible := c.visible
	c.mu.Unlock()
	return c.Grid(visible.Year, visible.Month, locale)
}

// Grid returns the grid of any month with selection and event marks.
func (c *CalendarStore) Grid(year int, month time.Month, locale string) domain.MonthGrid {
	grid := BuildMonthGrid(year, month, locale)

	c.mu.Lock()
	defer c.mu.Unlock()
	index := c.index()
	for i, cell := range grid.Cells {
		if cell.Day == 0 {
			continue
		}
		day := domain.Day{Year: grid.Year, Month: grid.Month, Day: cell.Day}
		grid.Cells[i].Selected = day == c.selected
		grid.Cells[i].HasEvents = len(index[day]) > 0
	}
	return grid
}

// Snapshot returns a read-only copy of the calendar state.
func (c *CalendarStore) Snapshot() domain.CalendarSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	index := c.index()
	byDay := make(map[string][]domain.Event, len(index))
	for day, events := range index {
		byDay[day.String()] = append([]domain.Event(nil), events...)
	}
	onDay := append([]domain.Event{}, index[c.selected]...)
	return domain.CalendarSnapshot{
		SelectedDate:         c.selected,
		VisibleMonth:         c.visible,
		EventsOnSelectedDate: onDay,
		EventsByDay:          byDay,
		Booking:              c.bookingView(),
	}
}

// index returns the events-by-day index, rebuilding it when the event source
// version moved. Must be called with c.mu held.
func (c *CalendarStore) index() map[domain.Day][]domain.Event {
	if c.byDayBuilt && c.events.Version() == c.byDayVersion {
		return c.byDay
	}
	events, version := c.events.Events()
	index := make(map[domain.Day][]domain.Event)
	for _, e := range events {
		day := e.Day()
		index[day] = append(index[day], e)
	}
	c.byDay = index
	c.byDayVersion = version
	c.byDayBuilt = true
	return index
}

func (c *CalendarStore) selectedEvent() (domain.Event, bool) {
	if c.state != domain.BookingStateBooking {
		return domain.Event{}, false
	}
	return c.events.Event(c.selectedEventID)
}

func (c *CalendarStore) bookingView() domain.BookingView {
	view := domain.BookingView{State: c.state, IsOpen: c.state == domain.BookingStateBooking}
	if event, ok := c.selectedEvent(); ok {
		view.SelectedEvent = &event
	}
	return view
}
