package scope

import (
	"context"

	"repurpose-srv/internal/model"
)

// Payload is the verified token payload a Manager produces.
type Payload struct {
	UserID    string
	Email     string
	Username  string
	Subject   string
	Issuer    string
	ID        string
	IssuedAt  int64
	ExpiresAt int64
}

// Manager verifies a bearer token into a Payload.
type Manager interface {
	Verify(token string) (Payload, error)
}

// NewScope builds a request scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Email:    payload.Email,
		Username: payload.Username,
	}
}

type payloadKey struct{}
type scopeKey struct{}

// SetPayloadToContext stores the verified payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

// GetPayloadFromContext retrieves the verified payload from the context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadKey{}).(Payload)
	return payload, ok
}

// SetScopeToContext stores the request scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext retrieves the request scope from the context.
// Returns a zero scope when none is set (unauthenticated paths).
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
