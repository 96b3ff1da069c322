package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"sric-access-backend/internal/domain"
	"sric-access-backend/internal/logger"
)

type notificationService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewNotificationService(apiKey, fromEmail, fromName string) NotificationService {
	return &notificationService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendArrivalNotification tells an inviter that their guest has been
// checked in by security.
func (s *notificationService) SendArrivalNotification(ctx context.Context, toEmail, toName string, guest *domain.Guest) error {
	subject := fmt.Sprintf("Guest Arrival Notification - %s", guest.Name)

	text := fmt.Sprintf(`SRIC Access Portal - Guest Arrival Notification

Hello %s,

This is to notify you that your invited guest has arrived at the facility.

Guest Details:
- Name: %s
- Visit Date: %s
- Estimated Arrival: %s
- Floor Access: %s
- Organization: %s

Please note that your guest has been checked in by security and is now in the building.

This is an automated notification from the SRIC Access Portal.
Please do not reply to this email.`,
		toName, guest.Name, guest.VisitDate, guest.EstimatedArrival, guest.FloorAccess, guest.Organization)

	html := fmt.Sprintf(`<html><body>
<h2>SRIC Access Portal - Guest Arrival Notification</h2>
<p>Hello %s,</p>
<p>This is to notify you that your invited guest has arrived at the facility.</p>
<ul>
<li><strong>Guest Name:</strong> %s</li>
<li><strong>Visit Date:</strong> %s</li>
<li><strong>Estimated Arrival:</strong> %s</li>
<li><strong>Floor Access:</strong> %s</li>
<li><strong>Organization:</strong> %s</li>
</ul>
<p>Please note that your guest has been checked in by security and is now in the building.</p>
<p>This is an automated notification from the SRIC Access Portal. Please do not reply to this email.</p>
</body></html>`,
		toName, guest.Name, guest.VisitDate, guest.EstimatedArrival, guest.FloorAccess, guest.Organization)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, text, html)

	client := sendgrid.NewSendClient(s.apiKey)
	logger.ExternalServiceCall("sendgrid", "Send", "to", toEmail)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "Send", err, "to", toEmail)
	if err != nil {
		return fmt.Errorf("failed to send arrival notification: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
