package models

// User mirrors the administration entries returned by /users.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// UserUpdate carries the optional fields for PUT /users/{id}. Password is
// omitted entirely when empty so the server keeps the current one.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UserFilters narrows /users listings.
type UserFilters struct {
	Search   string
	IsActive *bool
}
