package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"wemetstudio/internal/delivery/http/helpers"
	"wemetstudio/internal/domain"
	"wemetstudio/internal/i18n"
	"wemetstudio/internal/services"
)

// SelectDateRequest is the request body for PUT /calendar/date.
type SelectDateRequest struct {
	Date string `json:"date"`
}

// Validate implements Validator.
func (s SelectDateRequest) Validate() []string {
	if strings.TrimSpace(s.Date) == "" {
		return []string{"date is required"}
	}
	if _, err := domain.ParseDay(s.Date); err != nil {
		return []string{"date must be formatted as YYYY-MM-DD"}
	}
	return nil
}

// OpenBookingRequest is the request body for POST /calendar/booking.
type OpenBookingRequest struct {
	EventID int `json:"event_id"`
}

// Validate implements Validator.
func (o OpenBookingRequest) Validate() []string {
	if o.EventID <= 0 {
		return []string{"event_id is required"}
	}
	return nil
}

// CalendarResponse is the calendar snapshot with the selected day's events
// labelled in the session language.
type CalendarResponse struct {
	domain.CalendarSnapshot
	Events       []EventView `json:"events"`
	EmptyMessage string      `json:"empty_message,omitempty"`
}

// GridResponse is a month grid with weekday headers in the session language.
type GridResponse struct {
	domain.MonthGrid
	WeekdayNames []string `json:"weekday_names"`
}

type CalendarController struct {
	Logger     *slog.Logger
	Catalog    *services.Catalog
	Booking    *services.BookingService
	Translator *i18n.Translator
}

func NewCalendarController(logger *slog.Logger, catalog *services.Catalog, booking *services.BookingService, translator *i18n.Translator) *CalendarController {
	return &CalendarController{
		Logger:     logger,
		Catalog:    catalog,
		Booking:    booking,
		Translator: translator,
	}
}

// GetCalendar godoc
// @Summary Get the calendar state
// @Description Selected date, visible month, events on the selected date, events grouped by day and the booking modal state.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=controllers.CalendarResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /calendar [get]
func (c *CalendarController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	c.writeCalendar(w, s)
}

// SelectDate godoc
// @Summary Select a calendar date
// @Description Only the day is kept; the visible month does not move.
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SelectDateRequest true "Date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse{data=controllers.CalendarResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /calendar/date [put]
func (c *CalendarController) SelectDate(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	var req SelectDateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	day, _ := domain.ParseDay(req.Date)
	s.Calendar.SelectDay(day)
	c.writeCalendar(w, s)
}

// GetGrid godoc
// @Summary Get a month grid
// @Description Leading blanks and day cells for a month. Weeks start on Monday for ru and he locales and on Sunday otherwise. Without year and month the visible month is used; without locale the session locale.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param locale query string false "Locale, e.g. he-IL"
// @Success 200 {object} helpers.APIResponse{data=controllers.GridResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /calendar/grid [get]
func (c *CalendarController) GetGrid(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	q, err := helpers.ParseMonthQuery(r)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	lang := s.Lang()
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = i18n.Locale(lang)
	}
	var grid domain.MonthGrid
	if q.Set {
		grid = s.Calendar.Grid(q.Year, q.Month, locale)
	} else {
		grid = s.Calendar.MonthGrid(locale)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GridResponse{
		MonthGrid:    grid,
		WeekdayNames: c.Translator.WeekdayNames(lang, grid.Weekdays),
	})
}

// ShiftMonth godoc
// @Summary Move the visible month
// @Description Moves the visible month by offset months (negative goes back) and returns its grid. The selected date is unchanged.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param offset query int true "Months to move"
// @Success 200 {object} helpers.APIResponse{data=controllers.GridResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /calendar/month [post]
func (c *CalendarController) ShiftMonth(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	offset, err := helpers.ParseIntQuery(r, "offset", 0)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	s.Calendar.ShiftMonth(offset)
	lang := s.Lang()
	grid := s.Calendar.MonthGrid(i18n.Locale(lang))
	helpers.WriteJSONSuccess(w, http.StatusOK, GridResponse{
		MonthGrid:    grid,
		WeekdayNames: c.Translator.WeekdayNames(lang, grid.Weekdays),
	})
}

// OpenBooking godoc
// @Summary Open the booking modal
// @Description Selects an event and moves the calendar to the booking state. Opening while already booking switches the event.
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body OpenBookingRequest true "Event"
// @Success 200 {object} helpers.APIResponse{data=domain.BookingView}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /calendar/booking [post]
func (c *CalendarController) OpenBooking(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	var req OpenBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, found := c.Catalog.Event(req.EventID)
	if !found {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	s.Calendar.OpenBooking(event)
	helpers.WriteJSONSuccess(w, http.StatusOK, s.Calendar.Booking())
}

// CloseBooking godoc
// @Summary Close the booking modal
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.BookingView}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /calendar/booking [delete]
func (c *CalendarController) CloseBooking(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	s.Calendar.CloseBooking()
	helpers.WriteJSONSuccess(w, http.StatusOK, s.Calendar.Booking())
}

// SubmitBooking godoc
// @Summary Submit the booking form
// @Description Validates the form against the selected event, sends the request to the studio and closes the modal. Persons must be between 1 and the event's spots.
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.BookingForm true "Booking form"
// @Success 201 {object} helpers.APIResponse{data=domain.BookingRequest}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (no booking open)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar/booking/submit [post]
func (c *CalendarController) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	var form domain.BookingForm
	if !helpers.DecodeAndValidate(w, r, &form) {
		return
	}
	req, err := c.Booking.Submit(r.Context(), s, form)
	if err != nil {
		if status, _ := helpers.StatusForError(err); status >= http.StatusInternalServerError {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, req)
}

func (c *CalendarController) writeCalendar(w http.ResponseWriter, s *services.Session) {
	snap := s.Calendar.Snapshot()
	lang := s.Lang()
	resp := CalendarResponse{
		CalendarSnapshot: snap,
		Events:           eventViews(c.Translator, lang, snap.EventsOnSelectedDate),
	}
	if len(snap.EventsOnSelectedDate) == 0 {
		resp.EmptyMessage = c.Translator.T(lang, "noEvents")
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}
