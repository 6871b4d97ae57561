// Package notifications defines the notification model and the service
// interface implemented by the mail drivers (sendgrid, smtp, testmail).
package notifications

import "context"

// Notification carries a single outbound email. Body holds the HTML part and
// PlainBody the text fallback. FromName, when set, overrides the configured
// sender display name for this message only; the sender address always comes
// from the driver configuration.
type Notification struct {
	FromName  string
	ToName    string
	ToAddress string
	Subject   string
	Body      string
	PlainBody string
}

// NotificationService is implemented by every mail driver. Init receives the
// driver-specific configuration struct.
type NotificationService interface {
	Init(conf any) error
	SendNotification(context.Context, *Notification) error
}
