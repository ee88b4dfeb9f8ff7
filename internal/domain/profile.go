package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role user role
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// IsValid reports whether the role is a known value
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleUser
}

// Profile mirrors an authenticated user
type Profile struct {
	ID            uuid.UUID
	Email         string
	FullName      string
	Department    string
	Role          Role
	AvatarURL     *string
	TermsAccepted bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin returns true for administrators
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
