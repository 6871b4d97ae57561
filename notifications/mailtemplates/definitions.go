// Package mailtemplates provides the predefined email templates sent by the
// checkout backend, along with utilities for rendering their content.
package mailtemplates

import "github.com/ciiready/checkout-backend/notifications"

// AccessLinkNotification is the notification to be sent when a purchase is
// finalized and the buyer receives their access link.
var AccessLinkNotification = MailTemplate{
	File: "access_link",
	Placeholder: notifications.Notification{
		Subject: "Your CIIReady R01 access link",
		PlainBody: `Hi {{.Name}},

Thanks for your purchase. Use this link to access CIIReady R01:

{{.Link}}

Keep this email safe, the link is your key to the product.`,
	},
}
