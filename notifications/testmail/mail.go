// Package testmail provides an in-memory implementation of the
// NotificationService interface for tests. It records every notification it
// is asked to send and can be told to fail on demand.
package testmail

import (
	"context"
	"sync"

	"github.com/ciiready/checkout-backend/notifications"
)

type Mail struct {
	mu      sync.Mutex
	sent    []*notifications.Notification
	sendErr error
}

func (tm *Mail) Init(_ any) error {
	return nil
}

func (tm *Mail) SendNotification(_ context.Context, notification *notifications.Notification) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if tm.sendErr != nil {
		return tm.sendErr
	}
	n := *notification
	tm.sent = append(tm.sent, &n)
	return nil
}

// FailWith makes every subsequent send return err. Pass nil to restore
// normal behavior.
func (tm *Mail) FailWith(err error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.sendErr = err
}

// Sent returns a copy of the notifications recorded so far.
func (tm *Mail) Sent() []*notifications.Notification {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	out := make([]*notifications.Notification, len(tm.sent))
	copy(out, tm.sent)
	return out
}

// Last returns the most recently recorded notification, or nil.
func (tm *Mail) Last() *notifications.Notification {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if len(tm.sent) == 0 {
		return nil
	}
	return tm.sent[len(tm.sent)-1]
}
