// Package sendgrid provides a SendGrid-based implementation of the
// NotificationService interface for sending email notifications.
package sendgrid

import (
	"context"
	"fmt"

	"github.com/ciiready/checkout-backend/notifications"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Config represents the configuration for the SendGrid email service. It
// contains the default sender identity and the SendGrid API key.
type Config struct {
	FromName    string
	FromAddress string
	APIKey      string
}

// Email is the implementation of the NotificationService interface for the
// SendGrid email service.
type Email struct {
	config *Config
	client *sendgrid.Client
}

func (sg *Email) Init(rawConfig any) error {
	config, ok := rawConfig.(*Config)
	if !ok {
		return fmt.Errorf("invalid SendGrid configuration")
	}
	if config.APIKey == "" {
		return fmt.Errorf("SendGrid API key is required")
	}
	if config.FromAddress == "" {
		return fmt.Errorf("sender address is required")
	}
	sg.config = config
	sg.client = sendgrid.NewSendClient(config.APIKey)
	return nil
}

func (sg *Email) SendNotification(ctx context.Context, notification *notifications.Notification) error {
	fromName := sg.config.FromName
	if notification.FromName != "" {
		fromName = notification.FromName
	}
	from := mail.NewEmail(fromName, sg.config.FromAddress)
	to := mail.NewEmail(notification.ToName, notification.ToAddress)
	message := mail.NewSingleEmail(from, notification.Subject, to, notification.PlainBody, notification.Body)
	resp, err := sg.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
