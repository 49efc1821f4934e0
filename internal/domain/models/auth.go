package models

// Role values accepted by the API.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// TokenResponse mirrors the payload returned by /auth/login and /auth/refresh.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Profile is the authenticated user's identity as returned by /auth/profile.
type Profile struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// IsAdmin reports whether the profile carries the admin role.
func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Session is the user-facing authentication state derived from the current
// credential. Loading is true while the bootstrap refresh is still pending,
// during which callers must treat the state as indeterminate.
type Session struct {
	Profile       *Profile
	Authenticated bool
	Loading       bool
}

// RegisterRequest is the body for /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse wraps endpoints that answer with a bare confirmation text.
type MessageResponse struct {
	Message string `json:"message"`
}
