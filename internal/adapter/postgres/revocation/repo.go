// Package revocation implements the session token revocation list using PostgreSQL.
package revocation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/adapter/postgres"
)

// Repo stores hashes of revoked session tokens. Entries are never removed.
type Repo struct {
	db postgres.Querier
}

// New creates a new revocation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Add records tokenHash as revoked. Adding an existing entry is a no-op.
func (r *Repo) Add(ctx context.Context, tokenHash string) error {
	query, args, err := postgres.Builder().
		Insert("revoked_tokens").
		Columns("token_hash").
		Values(tokenHash).
		Suffix("ON CONFLICT (token_hash) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert revoked token: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "revoked_token", uuid.Nil)
	}
	return nil
}

// Contains reports whether tokenHash has been revoked.
func (r *Repo) Contains(ctx context.Context, tokenHash string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE token_hash = $1)`, tokenHash).
		Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "revoked_token", uuid.Nil)
	}
	return exists, nil
}
