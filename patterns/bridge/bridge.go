// Package bridge demonstrates the Bridge pattern: an abstraction (Notifier)
// varies independently from its implementation (Channel).
package bridge

import "fmt"

// Channel delivers a rendered message. Implementations vary independently
// from the notifiers that use them.
type Channel interface {
	Deliver(to, message string) string
}

// EmailChannel delivers over email.
type EmailChannel struct{}

func (EmailChannel) Deliver(to, message string) string {
	return fmt.Sprintf("email to %s: %s", to, message)
}

// SMSChannel delivers over SMS.
type SMSChannel struct{}

func (SMSChannel) Deliver(to, message string) string {
	return fmt.Sprintf("sms to %s: %s", to, message)
}

// Notifier is the abstraction side of the bridge.
type Notifier struct {
	channel Channel
}

// NewNotifier builds a Notifier over the given channel.
func NewNotifier(c Channel) *Notifier {
	return &Notifier{channel: c}
}

// Alert sends an urgent notification.
func (n *Notifier) Alert(to, message string) string {
	return n.channel.Deliver(to, "[alert] "+message)
}

// Reminder sends a low-priority notification.
func (n *Notifier) Reminder(to, message string) string {
	return n.channel.Deliver(to, "[reminder] "+message)
}
