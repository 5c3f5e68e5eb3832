package model

// Scope carries the authenticated caller's identity through a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
