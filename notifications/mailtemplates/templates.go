package mailtemplates

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/ciiready/checkout-backend/notifications"
)

// assets holds the HTML mail templates compiled into the binary. Every file
// under assets/ is addressed by its filename without the ".html" extension.
//
//go:embed assets/*.html
var assets embed.FS

// TemplateFile represents an email template key. Every email template should
// have a key that identifies it, which is the filename without the extension.
type TemplateFile string

// MailTemplate struct represents an email template. It includes the file key
// and the notification placeholder to be sent. The notification placeholder
// includes the plain body template to be used as a fallback for email clients
// that do not support HTML, and the mail subject.
type MailTemplate struct {
	File        TemplateFile
	Placeholder notifications.Notification
}

// ExecTemplate executes the HTML template identified by the file key with the
// data provided, and the plain body placeholder with the same data. It
// returns a notification with the subject, body and plain body filled in.
func (mt MailTemplate) ExecTemplate(data any) (*notifications.Notification, error) {
	n := &notifications.Notification{
		Subject:   mt.Placeholder.Subject,
		PlainBody: mt.Placeholder.PlainBody,
	}
	tmpl, err := htmltemplate.ParseFS(assets, "assets/"+string(mt.File)+".html")
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		return nil, err
	}
	n.Body = buf.String()
	if n.PlainBody != "" {
		tmpl, err := texttemplate.New("plain").Parse(n.PlainBody)
		if err != nil {
			return nil, err
		}
		buf := new(bytes.Buffer)
		if err := tmpl.Execute(buf, data); err != nil {
			return nil, err
		}
		n.PlainBody = buf.String()
	}
	return n, nil
}
