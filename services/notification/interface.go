package notification

import "context"

// Message is a push notification payload.
type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

// SendReport is the interpreted per-token outcome of one multicast send.
type SendReport struct {
	SuccessCount int
	FailureCount int
	// InvalidTokens are tokens the delivery service reported as no
	// longer registered (or otherwise permanently invalid). The caller
	// is expected to delete them. Transient failures (rate limiting,
	// backend unavailable) never appear here.
	InvalidTokens []string
}

// PushSender delivers one message to a set of device tokens.
type PushSender interface {
	Send(ctx context.Context, tokens []string, msg Message) (*SendReport, error)
}
