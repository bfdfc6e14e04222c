package auth

import (
	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

// AuthResult is returned by Signup and Login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// Identity is the caller behind a valid session token.
type Identity struct {
	UserID uuid.UUID
	Token  string
}
