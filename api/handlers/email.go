package handlers

import (
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// sendEmail delivers a single HTML email through sendgrid. A missing API key
// turns delivery into a no-op so local and test runs never hit the network.
func sendEmail(toEmail, toName, subject, plain, html string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		zap.S().Debugw("sendgrid api key not set, skipping email",
			"to", toEmail,
			"subject", subject)
		return nil
	}

	from := mail.NewEmail("Codementee", "no-reply@codementee.com")
	to := mail.NewEmail(toName, toEmail)
	msg := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(apiKey)
	_, err := client.Send(msg)
	return err
}

// sendEmailAsync fires an email in the background. Notification delivery is
// out-of-band: a failed send never fails the request that triggered it.
func sendEmailAsync(toEmail, toName, subject, plain, html string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				zap.S().Errorw("panic while sending email",
					"to", toEmail,
					"recover", r)
			}
		}()
		if err := sendEmail(toEmail, toName, subject, plain, html); err != nil {
			zap.S().Errorw("failed to send email",
				"to", toEmail,
				"subject", subject,
				"error", err)
		}
	}()
}
