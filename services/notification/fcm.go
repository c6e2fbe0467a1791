package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// FCMSender is the production PushSender backed by Firebase Cloud
// Messaging.
type FCMSender struct {
	client *messaging.Client
	logger *zap.Logger
}

func NewFCMSender(client *messaging.Client, logger *zap.Logger) (*FCMSender, error) {
	if client == nil {
		return nil, fmt.Errorf("notification: messaging client is nil")
	}
	return &FCMSender{client: client, logger: logger.Named("FCMSender")}, nil
}

// Send multicasts one message to all tokens with high-priority
// delivery semantics and interprets the per-token results.
func (s *FCMSender) Send(ctx context.Context, tokens []string, msg Message) (*SendReport, error) {
	multicast := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	br, err := s.client.SendEachForMulticast(ctx, multicast)
	if err != nil {
		return nil, fmt.Errorf("FCMSender: multicast send failed: %w", err)
	}

	report := &SendReport{
		SuccessCount: br.SuccessCount,
		FailureCount: br.FailureCount,
	}
	for i, resp := range br.Responses {
		if resp.Success {
			continue
		}
		if isDeadToken(resp.Error) {
			report.InvalidTokens = append(report.InvalidTokens, tokens[i])
			continue
		}
		s.logger.Debug("transient push failure",
			zap.String("token", tokens[i]),
			zap.Error(resp.Error))
	}
	return report, nil
}

// isDeadToken reports whether a per-token error means the registration
// is permanently gone. Rate limiting and backend unavailability must
// not match, or valid destinations would be discarded.
func isDeadToken(err error) bool {
	return messaging.IsUnregistered(err) || errorutils.IsInvalidArgument(err)
}
