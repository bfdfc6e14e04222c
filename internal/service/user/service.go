package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// passwordHasher hashes replacement passwords.
type passwordHasher interface {
	Hash(raw string) (string, error)
}

// Service implements account operations for the authenticated user.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher passwordHasher
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, hasher passwordHasher) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		hasher: hasher,
	}
}
