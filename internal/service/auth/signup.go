package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

// Signup registers a new user and returns a session token for them.
// Returns ErrAlreadyExists if the username is taken; no token is issued then.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.users.UsernameExists(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup check username: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("auth.Signup: username %q: %w", input.Username, domain.ErrAlreadyExists)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup hash password: %w", err)
	}

	now := time.Now()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: hash,
		Name:         input.Name,
		Language:     input.Language,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// A concurrent signup can still win the unique constraint.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Signup: username %q: %w", input.Username, domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Signup create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", user.ID.String()))

	return &AuthResult{Token: token, User: user}, nil
}
