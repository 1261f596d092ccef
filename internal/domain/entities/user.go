package entities

import "time"

// UserRole mirrors the role enum exposed by the OS backend.

type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleTechnician UserRole = "TECHNICIAN"
	RoleManager    UserRole = "MANAGER"
	RoleClient     UserRole = "CLIENT"
)

// User is the authenticated identity returned by /auth/login and cached
// locally alongside the bearer token.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
