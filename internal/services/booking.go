package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"wemetstudio/internal/domain"
)

// BookingService turns an accepted booking form into a request for the studio.
type BookingService struct {
	sender     domain.BookingRequestSender
	translator domain.Translator
	clock      Clock
	logger     *slog.Logger
}

// NewBookingService returns a BookingService delivering requests through sender.
func NewBookingService(sender domain.BookingRequestSender, translator domain.Translator, clock Clock, logger *slog.Logger) *BookingService {
	return &BookingService{sender: sender, translator: translator, clock: clock, logger: logger}
}

// Submit validates form against the session's open booking, forwards the
// request and closes the booking. On any failure the booking stays open so
// the guest can correct the form or retry.
func (b *BookingService) Submit(ctx context.Context, s *Session, form domain.BookingForm) (*domain.BookingRequest, error) {
	s.bookingMu.Lock()
	defer s.bookingMu.Unlock()

	event, err := s.Calendar.PrepareBooking(form)
	if err != nil {
		return nil, err
	}

	lang := s.Lang()
	req := &domain.BookingRequest{
		ID:          uuid.New().String(),
		Event:       event,
		Form:        form,
		Lang:        lang,
		SubmittedAt: b.clock.Now(),
	}
	if err := b.sender.SendBookingRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("send booking request: %w", err)
	}

	s.Calendar.CloseBooking()
	s.Notifier.Show(b.translator.T(lang, "bookingReceived"))
	b.logger.InfoContext(ctx, "booking request sent",
		"request_id", req.ID,
		"session_id", s.ID,
		"event_id", event.ID,
		"persons", form.Persons,
	)
	return req, nil
}
