// utils/firebase.go
package utils

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// NewMessagingClient initializes the Firebase app and returns its
// Messaging client. The client is handed to the services that need it
// rather than kept in a package global.
func NewMessagingClient(ctx context.Context, credentialsFile string) (*messaging.Client, error) {
	opt := option.WithCredentialsFile(credentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Messaging client: %w", err)
	}

	return client, nil
}
