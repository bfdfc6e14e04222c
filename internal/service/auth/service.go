package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

// userRepo defines the credential store operations needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// revocationList defines the revoked token store needed by auth service.
// Entries are token hashes, never raw tokens.
type revocationList interface {
	Add(ctx context.Context, tokenHash string) error
	Contains(ctx context.Context, tokenHash string) (bool, error)
}

// tokenManager issues and verifies signed session tokens.
type tokenManager interface {
	Issue(userID uuid.UUID) (string, error)
	Parse(token string) (uuid.UUID, error)
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(raw string) (string, error)
	Verify(raw, hash string) bool
}

// Service implements signup, login and the session token lifecycle.
type Service struct {
	log     *slog.Logger
	users   userRepo
	revoked revocationList
	tokens  tokenManager
	hasher  passwordHasher
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	revoked revocationList,
	tokens tokenManager,
	hasher passwordHasher,
) *Service {
	return &Service{
		log:     logger.With("service", "auth"),
		users:   users,
		revoked: revoked,
		tokens:  tokens,
		hasher:  hasher,
	}
}
