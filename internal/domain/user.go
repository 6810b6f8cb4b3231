package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a club member who can hold tools.
// PasswordHash is opaque everywhere outside the auth service.
type User struct {
	ID           uuid.UUID
	Name         string
	Team         *string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPatch describes a partial administrative update of a user.
// Nil fields are left unchanged. By the time a patch reaches the
// repository, Password holds a bcrypt hash produced by the user service.
type UserPatch struct {
	Name     *string
	Team     *string
	Role     *Role
	Password *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Team == nil && p.Role == nil && p.Password == nil
}
