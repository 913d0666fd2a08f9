// internal/infra/config/config.go
package config

import (
	"os"
	"strings"
)

// Config holds the process-wide environment configuration.
type Config struct {
	Port string

	// AllowedOrigin is the front-end origin for CORS; empty means "*".
	AllowedOrigin string

	// Firestore (session carts)
	FirestoreProjectID       string
	FirestoreCredentialsFile string

	// Firebase Auth
	FirebaseProjectID string

	// PostgreSQL (orders, statuses, users, products)
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	// SendGrid
	SendGridAPIKey string
	SendGridFrom   string
	StoreCopyTo    string

	// Kafka; empty brokers disable publishing
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads the environment and returns the Config. Secrets left empty in
// the environment may later be filled from Secret Manager via ResolveSecrets.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "storefront-development")

	cfg := &Config{
		Port:                     getenvDefault("PORT", "8080"),
		AllowedOrigin:            os.Getenv("ALLOWED_ORIGIN"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		PGHost:     getenvDefault("PG_HOST", "localhost"),
		PGPort:     getenvDefault("PG_PORT", "5432"),
		PGUser:     getenvDefault("PG_USER", "postgres"),
		PGPassword: os.Getenv("PG_PASSWORD"),
		PGDatabase: getenvDefault("PG_DATABASE", "storefront"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		SendGridFrom:   os.Getenv("SENDGRID_FROM"),
		StoreCopyTo:    os.Getenv("STORE_COPY_TO"),

		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   os.Getenv("KAFKA_TOPIC"),
	}

	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
