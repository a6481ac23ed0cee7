package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wemetstudio/internal/domain"
)

const bookingRequestTemplate = "booking_request"

type bookingEmailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	studioTo string
	location *time.Location
	logger   *slog.Logger
}

// NewBookingEmailService returns a BookingRequestSender that mails each
// request to the studio address using the "booking_request" template.
func NewBookingEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, studioTo string, location *time.Location, logger *slog.Logger) domain.BookingRequestSender {
	if location == nil {
		location = time.UTC
	}
	return &bookingEmailService{
		mailer:   mailer,
		renderer: renderer,
		studioTo: studioTo,
		location: location,
		logger:   logger,
	}
}

// SendBookingRequest renders and sends the booking request email.
func (s *bookingEmailService) SendBookingRequest(ctx context.Context, req *domain.BookingRequest) error {
	if req == nil {
		return fmt.Errorf("booking request is nil")
	}
	data := &domain.BookingRequestEmailData{
		RequestID:  req.ID,
		EventTitle: req.Event.Title.Get(req.Lang),
		EventDate:  req.Event.Date.In(s.location).Format("Mon, 02 Jan 2006 15:04"),
		Name:       req.Form.Name,
		Phone:      req.Form.Phone,
		Email:      req.Form.Email,
		Persons:    req.Form.Persons,
		Price:      req.Event.Price,
		Language:   req.Lang,
	}
	content, err := s.renderer.Render(bookingRequestTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render booking_request template: %w", err)
	}
	msg := domain.EmailMessage{
		To:      s.studioTo,
		ReplyTo: req.Form.Email,
		Subject: content.Subject,
		HTML:    content.HTML,
		Text:    content.Text,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send booking request email: %w", err)
	}
	s.logger.InfoContext(ctx, "booking request email sent", "request_id", req.ID, "to", s.studioTo)
	return nil
}
