package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns counters.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Name         string
	Language     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate carries the optional fields of a profile update.
// A nil field is left unchanged.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	Name         *string
	Language     *string
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.PasswordHash == nil && u.Name == nil && u.Language == nil
}
