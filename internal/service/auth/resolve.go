package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/JanRezzonico/API-Dipendenze/internal/auth"
	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

// Resolve maps a raw session token to the identity behind it.
// Checks run in order: signature and claims, revocation list, subject lookup.
// Resolve never writes.
func (s *Service) Resolve(ctx context.Context, token string) (*Identity, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	revoked, err := s.revoked.Contains(ctx, auth.HashToken(token))
	if err != nil {
		return nil, fmt.Errorf("auth.Resolve check revocation: %w", err)
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnknownSubject
		}
		return nil, fmt.Errorf("auth.Resolve get user: %w", err)
	}

	return &Identity{UserID: userID, Token: token}, nil
}
