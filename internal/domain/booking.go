package domain

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// BookingForm is what the guest fills in inside the booking modal.
type BookingForm struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Persons int    `json:"persons"`
}

// Validate checks the form against the selected event. Out-of-range persons
// are rejected, never clamped.
func (f BookingForm) Validate(event Event) []string {
	var errs []string
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(f.Phone) == "" && strings.TrimSpace(f.Email) == "" {
		errs = append(errs, "phone or email is required")
	}
	if f.Email != "" {
		if _, err := mail.ParseAddress(f.Email); err != nil {
			errs = append(errs, "email is invalid")
		}
	}
	if f.Persons < 1 {
		errs = append(errs, "persons must be at least 1")
	} else if f.Persons > event.Spots {
		errs = append(errs, fmt.Sprintf("persons must not exceed %d", event.Spots))
	}
	return errs
}

// BookingRequest is an accepted booking form bound to its event.
// swagger:model BookingRequest
type BookingRequest struct {
	ID          string      `json:"id"`
	Event       Event       `json:"event"`
	Form        BookingForm `json:"form"`
	Lang        string      `json:"lang"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

// BookingRequestSender forwards an accepted booking request to the studio.
type BookingRequestSender interface {
	SendBookingRequest(ctx context.Context, req *BookingRequest) error
}
