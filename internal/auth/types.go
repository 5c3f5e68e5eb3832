package auth

import "repurpose-srv/internal/model"

type RequestCodeInput struct {
	Email string
}

type VerifyCodeInput struct {
	Email string
	Code  string
}

type VerifyCodeOutput struct {
	Token string
	User  model.User
}

// UpdateKeysInput carries the provider API keys to store for the user. Nil
// fields are left untouched; empty strings clear the stored key.
type UpdateKeysInput struct {
	SupadataAPIKey *string
	ApifyAPIKey    *string
}

type MeOutput struct {
	User           model.User
	HasSupadataKey bool
	HasApifyKey    bool
}
