package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JanRezzonico/API-Dipendenze/internal/auth"
	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/JanRezzonico/API-Dipendenze/pkg/ctxutil"
)

// Logout revokes the session token the current request was authenticated with.
// Returns ErrUnauthorized if no token is bound to the context.
func (s *Service) Logout(ctx context.Context) error {
	token, ok := ctxutil.TokenFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.Revoke(ctx, token); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	}
	return nil
}

// Revoke adds token to the revocation list. Revoking twice is not an error.
func (s *Service) Revoke(ctx context.Context, token string) error {
	if err := s.revoked.Add(ctx, auth.HashToken(token)); err != nil {
		return fmt.Errorf("auth.Revoke: %w", err)
	}
	return nil
}
