package mailtemplates

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestAccessLinkTemplate(t *testing.T) {
	c := qt.New(t)

	data := struct {
		Name string
		Link string
	}{
		Name: "Ada",
		Link: "https://app.ciiready.com?token=tok-123",
	}
	n, err := AccessLinkNotification.ExecTemplate(data)
	c.Assert(err, qt.IsNil)
	c.Assert(n.Subject, qt.Equals, "Your CIIReady R01 access link")
	c.Assert(n.Body, qt.Contains, "Hi Ada")
	c.Assert(n.Body, qt.Contains, "https://app.ciiready.com?token=tok-123")
	c.Assert(n.PlainBody, qt.Contains, "Hi Ada")
	c.Assert(n.PlainBody, qt.Contains, "https://app.ciiready.com?token=tok-123")
}

func TestUnknownTemplate(t *testing.T) {
	c := qt.New(t)
	mt := MailTemplate{File: "does_not_exist"}
	_, err := mt.ExecTemplate(nil)
	c.Assert(err, qt.IsNotNil)
}
