package repository

import "time"

type CreateUserOptions struct {
	ID    string
	Email string
}

// UpdateUserKeysOptions carries the provider keys to store. Nil fields are
// left untouched.
type UpdateUserKeysOptions struct {
	UserID            string
	SupadataAPIKeyEnc *string
	ApifyAPIKeyEnc    *string
}

type SetCodeOptions struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}
