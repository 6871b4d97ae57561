package api

import (
	"context"
	"fmt"

	"github.com/ciiready/checkout-backend/internal"
	"github.com/ciiready/checkout-backend/notifications/mailtemplates"
)

// sendAccessMail renders the access-link template and sends it to the buyer.
// The sender display name follows the first word of the buyer's name when
// present; otherwise the driver's configured identity is used.
func (a *API) sendAccessMail(ctx context.Context, to, name, link string) error {
	if a.mail == nil {
		return fmt.Errorf("mail service not available")
	}
	if !internal.ValidEmail(to) {
		return fmt.Errorf("invalid email address")
	}
	ctx, cancel := context.WithTimeout(ctx, mailSendTimeout)
	defer cancel()

	firstName := internal.FirstWord(name)
	greeting := firstName
	if greeting == "" {
		greeting = "there"
	}
	notification, err := mailtemplates.AccessLinkNotification.ExecTemplate(struct {
		Name string
		Link string
	}{greeting, link})
	if err != nil {
		return err
	}
	notification.ToAddress = to
	notification.ToName = name
	notification.FromName = firstName
	return a.mail.SendNotification(ctx, notification)
}
