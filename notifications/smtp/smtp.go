// Package smtp provides an SMTP-based implementation of the
// NotificationService interface for sending email notifications. It is meant
// for self-hosted deployments where SendGrid is not available.
package smtp

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/mail"
	"net/smtp"
	"net/textproto"

	"github.com/ciiready/checkout-backend/notifications"
)

// Config represents the configuration for the SMTP email service.
type Config struct {
	FromName     string
	FromAddress  string
	SMTPUsername string
	SMTPPassword string
	SMTPServer   string
	SMTPPort     int
}

// Email is the implementation of the NotificationService interface for the
// SMTP email service. It uses the net/smtp package to send emails.
type Email struct {
	config *Config
	auth   smtp.Auth
}

// Init sets the SMTP configuration and prepares the auth when credentials are
// provided. It returns an error if the sender address cannot be parsed.
func (se *Email) Init(rawConfig any) error {
	config, ok := rawConfig.(*Config)
	if !ok {
		return fmt.Errorf("invalid SMTP configuration")
	}
	if _, err := mail.ParseAddress(config.FromAddress); err != nil {
		return fmt.Errorf("could not parse from email: %v", err)
	}
	se.config = config
	if config.SMTPUsername != "" && config.SMTPPassword != "" {
		se.auth = smtp.PlainAuth("", config.SMTPUsername, config.SMTPPassword, config.SMTPServer)
	}
	return nil
}

// SendNotification composes a multipart email from the notification data and
// sends it through the configured SMTP server.
func (se *Email) SendNotification(ctx context.Context, notification *notifications.Notification) error {
	body, err := se.composeBody(notification)
	if err != nil {
		return fmt.Errorf("could not compose email body: %v", err)
	}
	server := fmt.Sprintf("%s:%d", se.config.SMTPServer, se.config.SMTPPort)
	errCh := make(chan error, 1)
	go func() {
		errCh <- smtp.SendMail(server, se.auth, se.config.FromAddress, []string{notification.ToAddress}, body)
		close(errCh)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// composeBody builds a multipart/alternative message with a plain text part
// and an HTML part.
func (se *Email) composeBody(notification *notifications.Notification) ([]byte, error) {
	to, err := mail.ParseAddress(notification.ToAddress)
	if err != nil {
		return nil, fmt.Errorf("could not parse to email: %v", err)
	}
	fromName := se.config.FromName
	if notification.FromName != "" {
		fromName = notification.FromName
	}
	fromAddr := mail.Address{Name: fromName, Address: se.config.FromAddress}

	var body bytes.Buffer
	bodyWriter := multipart.NewWriter(&body)

	var msg bytes.Buffer
	msg.WriteString(fmt.Sprintf("From: %s\r\n", fromAddr.String()))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to.String()))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", notification.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", bodyWriter.Boundary()))
	msg.WriteString("\r\n")

	textPart, _ := bodyWriter.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {`text/plain; charset="UTF-8"`},
		"Content-Transfer-Encoding": {"7bit"},
	})
	if _, err := textPart.Write([]byte(notification.PlainBody)); err != nil {
		return nil, fmt.Errorf("could not write plain text part: %v", err)
	}
	htmlPart, _ := bodyWriter.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {`text/html; charset="UTF-8"`},
		"Content-Transfer-Encoding": {"7bit"},
	})
	if _, err := htmlPart.Write([]byte(notification.Body)); err != nil {
		return nil, fmt.Errorf("could not write HTML part: %v", err)
	}
	if err := bodyWriter.Close(); err != nil {
		return nil, fmt.Errorf("could not close writer: %v", err)
	}
	msg.Write(body.Bytes())
	return msg.Bytes(), nil
}
