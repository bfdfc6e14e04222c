// Package user implements the credential store using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/adapter/postgres"
	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "password_hash", "name", "language", "created_at", "updated_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Language     string    `db:"language"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Name:         r.Name,
		Language:     r.Language,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByUsername returns a user by exact (case-sensitive) username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"username": username}, uuid.Nil)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// UsernameExists reports whether any user already holds username.
func (r *Repo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).
		Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "user", uuid.Nil)
	}
	return exists, nil
}

// Create inserts a new user. A taken username yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "username", "password_hash", "name", "language").
		Values(u.ID, u.Username, u.PasswordHash, u.Name, u.Language).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return row.toDomain(), nil
}

// Update applies the non-nil fields of upd and returns the updated user.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error) {
	if upd.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)
	if upd.Username != nil {
		b = b.Set("username", *upd.Username)
	}
	if upd.PasswordHash != nil {
		b = b.Set("password_hash", *upd.PasswordHash)
	}
	if upd.Name != nil {
		b = b.Set("name", *upd.Name)
	}
	if upd.Language != nil {
		b = b.Set("language", *upd.Language)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// Delete removes the user. Deleting a missing user is not an error.
// Counters owned by the user are left in place.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return postgres.MapError(err, "user", id)
	}
	return nil
}
