package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	resetURL  string
}

func NewEmailService(apiKey, fromEmail, fromName, resetURL string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		resetURL:  resetURL,
	}
}

func (s *emailService) SendPasswordReset(ctx context.Context, email, name, token string) error {
	logger.ExternalServiceCall("sendgrid", "password_reset", "to", email)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(name, email)
	subject := "Reset your password"

	link := fmt.Sprintf("%s?token=%s", s.resetURL, token)
	plainText := fmt.Sprintf(
		"Hello %s,\n\nWe received a request to reset your password. Use the link below within one hour:\n\n%s\n\nIf you did not request this, you can ignore this email.",
		name, link)
	htmlContent := fmt.Sprintf(
		`<p>Hello %s,</p><p>We received a request to reset your password. Use the link below within one hour:</p><p><a href="%s">Reset password</a></p><p>If you did not request this, you can ignore this email.</p>`,
		name, link)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)
	client := sendgrid.NewSendClient(s.apiKey)

	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "password_reset", err)
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d", response.StatusCode)
		logger.ExternalServiceResult("sendgrid", "password_reset", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "password_reset", nil)
	return nil
}
