package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique username and a placeholder hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user_" + uniqueSuffix(),
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderplacehold",
		Name:         "Test User",
		Language:     "en",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, name, language, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.PasswordHash, user.Name, user.Language, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCounter inserts a counter owned by userID with empty record arrays.
func SeedCounter(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Counter {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Counter{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "counter " + uniqueSuffix(),
		Start:     now.Add(-24 * time.Hour),
		Color:     "#ff8800",
		ResetIDs:  []uuid.UUID{},
		DiaryIDs:  []uuid.UUID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO counters (id, user_id, name, start, color, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.UserID, c.Name, c.Start, c.Color, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCounter: %v", err)
	}

	return c
}

// SeedRecord inserts a comment record that no counter references.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, comment string, createdAt time.Time) domain.CommentRecord {
	t.Helper()

	rec := domain.CommentRecord{
		ID:        uuid.New(),
		Date:      createdAt.UTC().Truncate(time.Microsecond),
		Comment:   comment,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO comment_records (id, date, comment, created_at) VALUES ($1, $2, $3, $4)`,
		rec.ID, rec.Date, rec.Comment, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord: %v", err)
	}

	return rec
}
