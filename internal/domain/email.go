package domain

import "context"

// EmailMessage is one outgoing email.
type EmailMessage struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// EmailContent is a rendered email template.
type EmailContent struct {
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers email.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailTemplateRenderer renders a named email template.
type EmailTemplateRenderer interface {
	Render(name string, data any) (EmailContent, error)
}

// BookingRequestEmailData is the data of the booking request email sent to the studio.
type BookingRequestEmailData struct {
	RequestID  string
	EventTitle string
	EventDate  string
	Name       string
	Phone      string
	Email      string
	Persons    int
	Price      float64
	Language   string
}
