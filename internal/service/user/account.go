package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/JanRezzonico/API-Dipendenze/pkg/ctxutil"
)

// Update changes the authenticated user's account and returns the stored result.
// A new password is hashed before it reaches the store.
// Returns ErrAlreadyExists if the new username belongs to someone else.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.User, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	upd := domain.UserUpdate{
		Username: input.Username,
		Name:     input.Name,
		Language: input.Language,
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("user.Update hash password: %w", err)
		}
		upd.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, userID, upd)
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", slog.String("user_id", userID.String()))
	return user, nil
}

// Delete removes the authenticated user's account. Counters are left in place.
func (s *Service) Delete(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", userID.String()))
	return nil
}

// UsernameAvailable reports whether username is free to register.
// An empty username is never available and is not looked up.
func (s *Service) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, nil
	}

	exists, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return false, fmt.Errorf("user.UsernameAvailable: %w", err)
	}
	return !exists, nil
}

