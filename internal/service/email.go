package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"courtside-backend/internal/config"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(cfg config.SendGridConfig) EmailService {
	return &emailService{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *emailService) SendOTP(ctx context.Context, email, code string) error {
	subject := "Your verification code"
	plainText := fmt.Sprintf("Your one-time verification code is %s. It expires in 5 minutes.", code)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Verification Code</h2>
				<p>Your one-time verification code is <strong>%s</strong>.</p>
				<p>It expires in 5 minutes. If you did not request this, ignore this email.</p>
			</body>
		</html>
	`, code)

	return s.send(email, subject, plainText, htmlContent)
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, email, facilityName, bookedDate, slot string) error {
	subject := fmt.Sprintf("Booking confirmed: %s", facilityName)
	plainText := fmt.Sprintf("Your booking for %s on %s (%s) is confirmed.", facilityName, bookedDate, slot)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Booking Confirmed</h2>
				<p>Your booking for <strong>%s</strong> on <strong>%s</strong> (%s) is confirmed.</p>
			</body>
		</html>
	`, facilityName, bookedDate, slot)

	return s.send(email, subject, plainText, htmlContent)
}

func (s *emailService) send(to, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
