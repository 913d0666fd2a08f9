// internal/infra/config/secrets.go
package config

import (
	"context"
	"errors"
	"log"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// ResolveSecrets fills secret fields still empty after Load from Secret
// Manager. Missing secrets are logged and skipped: a local run without
// SendGrid or Postgres credentials should still boot the HTTP surface.
func (c *Config) ResolveSecrets(ctx context.Context) {
	if c.SendGridAPIKey != "" && c.PGPassword != "" {
		return
	}

	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Printf("[config] secret manager unavailable: %v", err)
		return
	}
	defer sm.Close()

	if c.SendGridAPIKey == "" {
		if v, err := accessSecret(ctx, sm, c.FirestoreProjectID, "sendgrid-api-key"); err != nil {
			log.Printf("[config] sendgrid-api-key not resolved: %v", err)
		} else {
			c.SendGridAPIKey = v
		}
	}
	if c.PGPassword == "" {
		if v, err := accessSecret(ctx, sm, c.FirestoreProjectID, "pg-password"); err != nil {
			log.Printf("[config] pg-password not resolved: %v", err)
		} else {
			c.PGPassword = v
		}
	}
}

func accessSecret(ctx context.Context, sm *secretmanager.Client, projectID, secretID string) (string, error) {
	prj := strings.TrimSpace(projectID)
	if prj == "" {
		return "", errors.New("config: projectID is empty")
	}

	name := "projects/" + prj + "/secrets/" + secretID + "/versions/latest"
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", err
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("config: empty payload (" + name + ")")
	}
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
