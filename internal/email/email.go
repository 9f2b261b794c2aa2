package email

import "context"

// Message is a fully rendered outgoing email with a plain-text body and an
// HTML alternative.
type Message struct {
	To       string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}

type Sender interface {
	Send(ctx context.Context, msg *Message) error
	// Configured reports whether the transport has credentials. Unconfigured
	// deployments skip delivery instead of failing.
	Configured() bool
}
