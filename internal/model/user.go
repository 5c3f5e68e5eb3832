package model

import "time"

// User represents a dashboard user. Provider API keys are stored encrypted
// and never leave the service in plaintext responses.
type User struct {
	ID    string
	Email string

	// Per-user third-party provider keys (AES-GCM encrypted at rest)
	SupadataAPIKeyEnc string
	ApifyAPIKeyEnc    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
