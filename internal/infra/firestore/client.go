// internal/infra/firestore/client.go
package firestoreinfra

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// ClientWrapper wraps the Firestore client together with its settings.
type ClientWrapper struct {
	Client    *firestore.Client
	ProjectID string
}

// NewClient initializes the Firestore client. With an empty credentialsFile
// it falls back to Application Default Credentials.
func NewClient(ctx context.Context, projectID string, credentialsFile string) (*ClientWrapper, error) {
	var (
		client *firestore.Client
		err    error
	)
	if credentialsFile != "" {
		client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	log.Printf("[firestore] connected (project: %s)", projectID)
	return &ClientWrapper{Client: client, ProjectID: projectID}, nil
}

// Ping tests the connection. Firestore has no ping API, so a cheap listing
// is used instead.
func (cw *ClientWrapper) Ping(ctx context.Context) error {
	if cw == nil || cw.Client == nil {
		return fmt.Errorf("firestore client is nil")
	}
	_, err := cw.Client.Collections(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("firestore ping failed: %w", err)
	}
	return nil
}

// Close releases the Firestore client.
func (cw *ClientWrapper) Close() error {
	if cw == nil || cw.Client == nil {
		return nil
	}
	return cw.Client.Close()
}
