package service

import (
	"context"
	"fmt"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(toEmail, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	logger.ExternalServiceCall("sendgrid", "send", "to", toEmail, "subject", subject)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendWaitlistOffer(ctx context.Context, toEmail, toName, campgroundID string, arrival, departure *time.Time) error {
	dates := "your requested dates"
	if arrival != nil && departure != nil {
		dates = fmt.Sprintf("%s to %s", arrival.Format("2006-01-02"), departure.Format("2006-01-02"))
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nGood news - a site matching your waitlist request has opened up for %s.\n\nLog in or call the office to complete your booking before the spot is offered to the next guest in line.\n\nHappy camping,\nThe CampReserv Team",
		toName, dates)
	return s.send(toEmail, toName, "A campsite just opened up for you", body)
}

func (s *emailService) SendStaleTillReminder(ctx context.Context, toEmail, toName string, session domain.TillSession) error {
	terminal := "unassigned terminal"
	if session.TerminalID != nil {
		terminal = "terminal " + *session.TerminalID
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nTill session %s (%s) has been open since %s and has not been counted and closed.\n\nPlease reconcile the drawer or investigate.\n\nThe CampReserv Team",
		toName, session.ID, terminal, session.OpenedAt.Format(time.RFC1123))
	return s.send(toEmail, toName, "Till session left open", body)
}
